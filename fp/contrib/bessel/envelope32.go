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

// Envelopes of the binary32 large-argument form, evaluated in float32.
// The order-1 coefficients are the binary64 ones rounded to float32. Band
// limits are compared on the bits of |x|.

var pzero32 = Table[float32]{
	Name:  "pzero",
	Lead:  1,
	OverX: false,
	Bands: []Band[float32]{
		{
			Lower:     8,
			LowerBits: 0x41000000,
			Num:       []float32{0, -7.0312500000e-02, -8.0816707611e+00, -2.5706311035e+02, -2.4852163086e+03, -5.2530439453e+03},
			Den:       []float32{1.1653436279e+02, 3.8337448730e+03, 4.0597855469e+04, 1.1675296875e+05, 4.7627726562e+04},
			ErrLog2:   -21,
		},
		{
			Lower:     4.545400142669678,
			LowerBits: 0x409173eb,
			Num:       []float32{-1.1412546255e-11, -7.0312492549e-02, -4.1596107483e+00, -6.7674766541e+01, -3.3123129272e+02, -3.4643338013e+02},
			Den:       []float32{6.0753936768e+01, 1.0512523193e+03, 5.9789707031e+03, 9.6254453125e+03, 2.4060581055e+03},
			ErrLog2:   -21,
		},
		{
			Lower:     2.8570001125335693,
			LowerBits: 0x4036d917,
			Num:       []float32{-2.5470459075e-09, -7.0311963558e-02, -2.4090321064e+00, -2.1965976715e+01, -5.8079170227e+01, -3.1447946548e+01},
			Den:       []float32{3.5856033325e+01, 3.6151397705e+02, 1.1936077881e+03, 1.1279968262e+03, 1.7358093262e+02},
			ErrLog2:   -21,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float32{-8.8753431271e-08, -7.0303097367e-02, -1.4507384300e+00, -7.6356959343e+00, -1.1193166733e+01, -3.2336456776e+00},
			Den:       []float32{2.2220300674e+01, 1.3620678711e+02, 2.7047027588e+02, 1.5387539673e+02, 1.4657617569e+01},
			ErrLog2:   -21,
		},
	},
}

var qzero32 = Table[float32]{
	Name:  "qzero",
	Lead:  -0.125,
	OverX: true,
	Bands: []Band[float32]{
		{
			Lower:     8,
			LowerBits: 0x41000000,
			Num:       []float32{0, 7.3242187500e-02, 1.1768206596e+01, 5.5767340088e+02, 8.8591972656e+03, 3.7014625000e+04},
			Den:       []float32{1.6377603149e+02, 8.0983447266e+03, 1.4253829688e+05, 8.0330925000e+05, 8.4050156250e+05, -3.4389928125e+05},
			ErrLog2:   -21,
		},
		{
			Lower:     4.545400142669678,
			LowerBits: 0x409173eb,
			Num:       []float32{1.8408595828e-11, 7.3242180049e-02, 5.8356351852e+00, 1.3511157227e+02, 1.0272437744e+03, 1.9899779053e+03},
			Den:       []float32{8.2776611328e+01, 2.0778142090e+03, 1.8847289062e+04, 5.6751113281e+04, 3.5976753906e+04, -5.3543427734e+03},
			ErrLog2:   -21,
		},
		{
			Lower:     2.8570001125335693,
			LowerBits: 0x4036d917,
			Num:       []float32{4.3774099900e-09, 7.3241114616e-02, 3.3442313671e+00, 4.2621845245e+01, 1.7080809021e+02, 1.6673394775e+02},
			Den:       []float32{4.8758872986e+01, 7.0968920898e+02, 3.7041481934e+03, 6.4604252930e+03, 2.5163337402e+03, -1.4924745178e+02},
			ErrLog2:   -21,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float32{1.5044444979e-07, 7.3223426938e-02, 1.9981917143e+00, 1.4495602608e+01, 3.1666231155e+01, 1.6252708435e+01},
			Den:       []float32{3.0365585327e+01, 2.6934811401e+02, 8.4478375244e+02, 8.8293585205e+02, 2.1266638184e+02, -5.3109550476e+00},
			ErrLog2:   -21,
		},
	},
}

var pone32 = Table[float32]{
	Name:  "pone",
	Lead:  1,
	OverX: false,
	Bands: []Band[float32]{
		{
			Lower:     8,
			LowerBits: 0x41000000,
			Num:       []float32{0, 0.11718749999998865, 13.239480659307358, 412.05185430737856, 3874.7453891396053, 7914.479540318917},
			Den:       []float32{114.20737037567841, 3650.9308342085346, 36956.206026903346, 97602.79359349508, 30804.27206278888},
			ErrLog2:   -21,
		},
		{
			Lower:     4.545400142669678,
			LowerBits: 0x409173eb,
			Num:       []float32{1.3199051955624352e-11, 0.1171874931906141, 6.802751278684329, 108.30818299018911, 517.6361395331998, 528.7152013633375},
			Den:       []float32{59.28059872211313, 991.4014187336144, 5353.26695291488, 7844.690317495512, 1504.0468881036106},
			ErrLog2:   -21,
		},
		{
			Lower:     2.8570001125335693,
			LowerBits: 0x4036d917,
			Num:       []float32{3.025039161373736e-09, 0.11718686556725359, 3.9329775003331564, 35.11940355916369, 91.05501107507813, 48.55906851973649},
			Den:       []float32{34.79130950012515, 336.76245874782575, 1046.8713997577513, 890.8113463982564, 103.78793243963928},
			ErrLog2:   -21,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float32{1.0771083010687374e-07, 0.11717621946268335, 2.368514966676088, 12.242610914826123, 17.693971127168773, 5.073523125888185},
			Den:       []float32{21.43648593638214, 125.29022716840275, 232.2764690571628, 117.6793732871471, 8.364638933716183},
			ErrLog2:   -21,
		},
	},
}

var qone32 = Table[float32]{
	Name:  "qone",
	Lead:  0.375,
	OverX: true,
	Bands: []Band[float32]{
		{
			Lower:     8,
			LowerBits: 0x41000000,
			Num:       []float32{0, -0.10253906249999271, -16.271753454459, -759.6017225139501, -11849.806670242959, -48438.512428575035},
			Den:       []float32{161.3953697007229, 7825.385999233485, 133875.33628724958, 719657.7236832409, 666601.2326177764, -294490.26430383464},
			ErrLog2:   -21,
		},
		{
			Lower:     4.545400142669678,
			LowerBits: 0x409173eb,
			Num:       []float32{-2.089799311417641e-11, -0.10253905024137543, -8.05644828123936, -183.66960747488838, -1373.1937606550816, -2612.4444045321566},
			Den:       []float32{81.27655013843358, 1991.7987346048596, 17468.48519249089, 49851.42709103523, 27948.075163891812, -4719.183547951285},
			ErrLog2:   -21,
		},
		{
			Lower:     2.8570001125335693,
			LowerBits: 0x4036d917,
			Num:       []float32{-5.078312264617666e-09, -0.10253782982083709, -4.610115811394734, -57.847221656278364, -228.2445407376317, -219.21012847890933},
			Den:       []float32{47.66515503237295, 673.8651126766997, 3380.1528667952634, 5547.729097207228, 1903.119193388108, -135.20119144430734},
			ErrLog2:   -21,
		},
		{
			Lower:     2,
			LowerBits: 0x40000000,
			Num:       []float32{-1.7838172751095887e-07, -0.10251704260798555, -2.7522056827818746, -19.663616264370372, -42.32531333728305, -21.371921170370406},
			Den:       []float32{29.533362906052385, 252.98154998219053, 757.5028348686454, 739.3932053204672, 155.94900333666612, -4.959498988226282},
			ErrLog2:   -21,
		},
	},
}
