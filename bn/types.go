// Package bn provides fast in-place replacement of values in numeric
// nd-arrays, in the style of bottleneck's replace.
//
// It follows a two-tier dispatch design: a static table maps each
// supported (rank, dtype) pair to a specialized scan routine, and a
// parallel table maps axis values to a general unaccelerated fallback.
// Both tables are built once at init and never mutated, so any number
// of goroutines may resolve routines concurrently without locking.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-bottleneck/bn"
//
//	a, _ := bn.FromSlice([]float64{1, math.NaN(), 3}, 3)
//	err := bn.Replace(a, math.NaN(), 0) // a is now [1, 0, 3]
//
// Callers performing many replacements on arrays of one fixed shape and
// dtype can amortize routine selection with SelectRoutine.
package bn

// Floats is a constraint for the floating-point element types.
//
// The constraints in this package intentionally name exact machine types
// rather than type sets with ~: runtime dispatch maps a concrete backing
// slice type to its DType tag, and a named defined type would not carry
// that tag.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for the signed integer element types.
type SignedInts interface {
	int8 | int32 | int64
}

// Elements is a constraint for all supported array element types.
type Elements interface {
	Floats | SignedInts
}
