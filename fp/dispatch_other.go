//go:build !amd64 && !arm64

package fp

func init() {
	// Other architectures use the portable split until their FMA intrinsics
	// are confirmed.
	currentLevel = DispatchDekker
}
