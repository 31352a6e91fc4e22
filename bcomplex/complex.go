// Package bcomplex provides the handful of complex-arithmetic helpers the
// Blaschke transform needs beyond what math/cmplx offers: a square root with
// an explicit branch convention, a conjugate-multiply fused op, and a
// finiteness check used to guard against basis blow-up near the unit circle.
package bcomplex

import (
	"math"
	"math/cmplx"
)

// ConjMult returns a * conj(b).
func ConjMult(a, b complex128) complex128 {
	return a * cmplx.Conj(b)
}

// Polar builds a complex number from a radius and an angle in radians.
func Polar(radius, angle float64) complex128 {
	return complex(radius*math.Cos(angle), radius*math.Sin(angle))
}

// Sqrt returns the square root of z, choosing the branch whose imaginary
// part has the same sign as z's imaginary part (principal branch on the
// upper half-plane). The real part is never negative. This differs from
// math/cmplx.Sqrt only on the branch cut itself: for a negative real z whose
// imaginary part is -0, cmplx.Sqrt returns a negative imaginary part and
// Sqrt a positive one. The Blaschke root-finding relies on this convention.
func Sqrt(z complex128) complex128 {
	r := cmplx.Abs(z)
	if r == 0 {
		return 0
	}

	unit := z / complex(r, 0)

	a := math.Sqrt(math.Abs((real(unit) + 1.0) * 0.5))
	b := math.Sqrt(math.Abs((1.0 - real(unit)) * 0.5))
	if imag(unit) < 0 {
		b = -b
	}

	return complex(a, b) * complex(math.Sqrt(r), 0)
}

// IsFinite reports whether both components of z are finite numbers.
func IsFinite(z complex128) bool {
	return !math.IsInf(real(z), 0) && !math.IsNaN(real(z)) &&
		!math.IsInf(imag(z), 0) && !math.IsNaN(imag(z))
}

// NearEqual reports whether a and b are within eps of each other in modulus.
func NearEqual(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) < eps
}
