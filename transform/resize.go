// Package transform implements the adaptive butterfly transform built on a
// Blaschke function system: a generalization of the radix-2 FFT where the
// twiddle factors at each level come from the roots of a Blaschke function
// instead of fixed roots of unity.
package transform

// Mode selects how a signal whose length isn't a power of two is padded
// before the transform (and cropped back afterward).
type Mode int

const (
	// Resize truncates or zero-extends the signal to the working size.
	Resize Mode = iota
	// LinearInterpolation resamples the signal between a uniform grid and
	// the Blaschke function system's non-uniform sample grid.
	LinearInterpolation
)

// baseSeed is the canonical disk point base-point recursion starts from.
var baseSeed = complex(1, 0)

// CeilPow2 returns the smallest power of two >= n (1 if n <= 1).
func CeilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// CeilLog2 returns ceil(log2(n)), 0 for n <= 1.
func CeilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	p, l := 1, 0
	for p < n {
		p <<= 1
		l++
	}
	return l
}

func resizeVector(data []complex128, n int) []complex128 {
	out := make([]complex128, n)
	copy(out, data)
	return out
}
