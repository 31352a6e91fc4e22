// Package blaschke implements the Blaschke function system: the per-level
// Möbius-like automorphisms of the unit disk whose roots generate the
// non-uniform sample grid the adaptive butterfly transform operates on.
package blaschke

import (
	"math/cmplx"

	"github.com/vargapeter25/BFFT/bcomplex"
)

// Function is a single Blaschke automorphism of the unit disk, parameterized
// by one complex number P with |P| < 1.
//
//	f(x) = (x^2 - P^2) / (1 - conj(P^2) * x^2)
type Function struct {
	P complex128
}

// Eval evaluates the function at x.
func (f Function) Eval(x complex128) complex128 {
	p2 := f.P * f.P
	return (x*x - p2) / (1 - bcomplex.ConjMult(x*x, p2))
}

// Roots returns the two preimages of x under f, i.e. the two values y with
// f(y) = x. The pair is ordered so the first root has a non-negative real
// part.
func (f Function) Roots(x complex128) (complex128, complex128) {
	p2 := f.P * f.P
	num := p2 + x
	den := bcomplex.ConjMult(x, p2) + 1
	root := bcomplex.Sqrt(num / den)
	if real(root) >= 0 {
		return root, -root
	}
	return -root, root
}

func conjMultImagPositive(a, b complex128) bool {
	return imag(a*cmplx.Conj(b)) > 0
}
