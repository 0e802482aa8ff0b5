//go:build !amd64 && !arm64

package bn

func init() {
	// Other architectures use scalar-width blocking for now.
	setScalarMode()
}
