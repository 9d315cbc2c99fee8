// Copyright 2025 go-libm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package bessel

// Envelopes of the binary64 large-argument form. Each band is a rational
// minimax fit in z = 1/x²; the fits on [8, +Inf) are accurate to 2^-60.
// Band limits are compared on the high word of |x|.

// pzero64 is P0(x) = 1 + R/S, asymptotically 1 - 9/128 s² + 11025/98304 s⁴ (s = 1/x).
var pzero64 = Table[float64]{
	Name:  "pzero",
	Lead:  1,
	OverX: false,
	Bands: []Band[float64]{
		{
			Lower:     8,
			LowerBits: 0x40200000,
			Num:       []float64{0, -0.07031249999999004, -8.081670412753498, -257.06310567970485, -2485.216410094288, -5253.043804907295},
			Den:       []float64{116.53436461966818, 3833.7447536412183, 40597.857264847255, 116752.97256437592, 47627.728414673096},
			ErrLog2:   -50,
		},
		{
			Lower:     4.545452117919922,
			LowerBits: 0x40122e8b,
			Num:       []float64{-1.141254646918945e-11, -0.07031249408735993, -4.159610644705878, -67.67476522651673, -331.23129964917297, -346.4333883656049},
			Den:       []float64{60.753938269230034, 1051.2523059570458, 5978.970943338558, 9625.445143577745, 2406.058159229391},
			ErrLog2:   -50,
		},
		{
			Lower:     2.8571414947509766,
			LowerBits: 0x4006db6d,
			Num:       []float64{-2.547046017719519e-09, -0.07031196163814817, -2.409032215495296, -21.96597747348831, -58.07917047017376, -31.44794705948885},
			Den:       []float64{35.85603380552097, 361.51398305030386, 1193.6078379211153, 1127.9967985690741, 173.58093081333575},
			ErrLog2:   -50,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float64{-8.875343330325264e-08, -0.07030309954836247, -1.4507384678095299, -7.635696138235278, -11.193166886035675, -3.2336457935133534},
			Den:       []float64{22.22029975320888, 136.2067942182152, 270.4702786580835, 153.87539420832033, 14.65761769482562},
			ErrLog2:   -50,
		},
	},
}

// qzero64 is Q0(x) = (-1/8 + R/S)/x, asymptotically -1/8 s + 75/1024 s³.
var qzero64 = Table[float64]{
	Name:  "qzero",
	Lead:  -0.125,
	OverX: true,
	Bands: []Band[float64]{
		{
			Lower:     8,
			LowerBits: 0x40200000,
			Num:       []float64{0, 0.0732421874999935, 11.76820646822527, 557.6733802564019, 8859.197207564686, 37014.62677768878},
			Den:       []float64{163.77602689568982, 8098.344946564498, 142538.29141912048, 803309.2571195144, 840501.5798190605, -343899.2935378666},
			ErrLog2:   -50,
		},
		{
			Lower:     4.545452117919922,
			LowerBits: 0x40122e8b,
			Num:       []float64{1.8408596359451553e-11, 0.07324217666126848, 5.8356350896205695, 135.11157728644983, 1027.243765961641, 1989.9778586460538},
			Den:       []float64{82.77661022365378, 2077.81416421393, 18847.28877857181, 56751.11228949473, 35976.75384251145, -5354.342756019448},
			ErrLog2:   -50,
		},
		{
			Lower:     2.8571414947509766,
			LowerBits: 0x4006db6d,
			Num:       []float64{4.377410140897386e-09, 0.07324111800429114, 3.344231375161707, 42.621844074541265, 170.8080913405656, 166.73394869665117},
			Den:       []float64{48.75887297245872, 709.689221056606, 3704.1482262011136, 6460.425167525689, 2516.3336892036896, -149.2474518361564},
			ErrLog2:   -50,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float64{1.5044444488698327e-07, 0.07322342659630793, 1.99819174093816, 14.495602934788574, 31.666231750478154, 16.252707571092927},
			Den:       []float64{30.36558483552192, 269.34811860804984, 844.7837575953201, 882.9358451124886, 212.66638851179883, -5.3109549388266695},
			ErrLog2:   -50,
		},
	},
}

// pone64 is P1(x) = 1 + R/S, asymptotically 1 + 15/128 s² - 4725/2^15 s⁴.
var pone64 = Table[float64]{
	Name:  "pone",
	Lead:  1,
	OverX: false,
	Bands: []Band[float64]{
		{
			Lower:     8,
			LowerBits: 0x40200000,
			Num:       []float64{0, 0.11718749999998865, 13.239480659307358, 412.05185430737856, 3874.7453891396053, 7914.479540318917},
			Den:       []float64{114.20737037567841, 3650.9308342085346, 36956.206026903346, 97602.79359349508, 30804.27206278888},
			ErrLog2:   -50,
		},
		{
			Lower:     4.545452117919922,
			LowerBits: 0x40122e8b,
			Num:       []float64{1.3199051955624352e-11, 0.1171874931906141, 6.802751278684329, 108.30818299018911, 517.6361395331998, 528.7152013633375},
			Den:       []float64{59.28059872211313, 991.4014187336144, 5353.26695291488, 7844.690317495512, 1504.0468881036106},
			ErrLog2:   -50,
		},
		{
			Lower:     2.8571414947509766,
			LowerBits: 0x4006db6d,
			Num:       []float64{3.025039161373736e-09, 0.11718686556725359, 3.9329775003331564, 35.11940355916369, 91.05501107507813, 48.55906851973649},
			Den:       []float64{34.79130950012515, 336.76245874782575, 1046.8713997577513, 890.8113463982564, 103.78793243963928},
			ErrLog2:   -50,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float64{1.0771083010687374e-07, 0.11717621946268335, 2.368514966676088, 12.242610914826123, 17.693971127168773, 5.073523125888185},
			Den:       []float64{21.43648593638214, 125.29022716840275, 232.2764690571628, 117.6793732871471, 8.364638933716183},
			ErrLog2:   -50,
		},
	},
}

// qone64 is Q1(x) = (3/8 + R/S)/x, asymptotically 3/8 s - 105/1024 s³.
var qone64 = Table[float64]{
	Name:  "qone",
	Lead:  0.375,
	OverX: true,
	Bands: []Band[float64]{
		{
			Lower:     8,
			LowerBits: 0x40200000,
			Num:       []float64{0, -0.10253906249999271, -16.271753454459, -759.6017225139501, -11849.806670242959, -48438.512428575035},
			Den:       []float64{161.3953697007229, 7825.385999233485, 133875.33628724958, 719657.7236832409, 666601.2326177764, -294490.26430383464},
			ErrLog2:   -50,
		},
		{
			Lower:     4.545452117919922,
			LowerBits: 0x40122e8b,
			Num:       []float64{-2.089799311417641e-11, -0.10253905024137543, -8.05644828123936, -183.66960747488838, -1373.1937606550816, -2612.4444045321566},
			Den:       []float64{81.27655013843358, 1991.7987346048596, 17468.48519249089, 49851.42709103523, 27948.075163891812, -4719.183547951285},
			ErrLog2:   -50,
		},
		{
			Lower:     2.8571414947509766,
			LowerBits: 0x4006db6d,
			Num:       []float64{-5.078312264617666e-09, -0.10253782982083709, -4.610115811394734, -57.847221656278364, -228.2445407376317, -219.21012847890933},
			Den:       []float64{47.66515503237295, 673.8651126766997, 3380.1528667952634, 5547.729097207228, 1903.119193388108, -135.20119144430734},
			ErrLog2:   -50,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float64{-1.7838172751095887e-07, -0.10251704260798555, -2.7522056827818746, -19.663616264370372, -42.32531333728305, -21.371921170370406},
			Den:       []float64{29.533362906052385, 252.98154998219053, 757.5028348686454, 739.3932053204672, 155.94900333666612, -4.959498988226282},
			ErrLog2:   -50,
		},
	},
}
