package bcomplex

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestSqrtMatchesCmplxMagnitude(t *testing.T) {
	cases := []complex128{
		complex(4, 0),
		complex(0, 4),
		complex(-4, 0),
		complex(3, -4),
		complex(-1, -1),
	}
	for _, z := range cases {
		got := Sqrt(z)
		if diff := math.Abs(cmplx.Abs(got) - math.Sqrt(cmplx.Abs(z))); diff > 1e-9 {
			t.Errorf("Sqrt(%v) magnitude = %v, want %v", z, cmplx.Abs(got), math.Sqrt(cmplx.Abs(z)))
		}
		if diff := cmplx.Abs(got*got - z); diff > 1e-9 {
			t.Errorf("Sqrt(%v)^2 = %v, want %v", z, got*got, z)
		}
	}
}

func TestSqrtBranchMatchesImagSign(t *testing.T) {
	pos := Sqrt(complex(3, 4))
	if imag(pos) < 0 {
		t.Errorf("Sqrt(3+4i) = %v, want non-negative imaginary part", pos)
	}
	neg := Sqrt(complex(3, -4))
	if imag(neg) > 0 {
		t.Errorf("Sqrt(3-4i) = %v, want non-positive imaginary part", neg)
	}
}

func TestSqrtZero(t *testing.T) {
	if got := Sqrt(0); got != 0 {
		t.Errorf("Sqrt(0) = %v, want 0", got)
	}
}

func TestConjMult(t *testing.T) {
	a := complex(1, 2)
	b := complex(3, -4)
	got := ConjMult(a, b)
	want := a * cmplx.Conj(b)
	if got != want {
		t.Errorf("ConjMult(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestPolar(t *testing.T) {
	got := Polar(2, 0)
	if diff := cmplx.Abs(got - complex(2, 0)); diff > 1e-9 {
		t.Errorf("Polar(2, 0) = %v, want 2", got)
	}
	got = Polar(1, math.Pi/2)
	if diff := cmplx.Abs(got - complex(0, 1)); diff > 1e-9 {
		t.Errorf("Polar(1, pi/2) = %v, want i", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(complex(1, 2)) {
		t.Error("IsFinite(1+2i) = false, want true")
	}
	if IsFinite(complex(math.Inf(1), 0)) {
		t.Error("IsFinite(+Inf) = true, want false")
	}
	if IsFinite(complex(math.NaN(), 0)) {
		t.Error("IsFinite(NaN) = true, want false")
	}
}

func TestNearEqual(t *testing.T) {
	if !NearEqual(complex(1, 1), complex(1, 1.0000000001), 1e-6) {
		t.Error("NearEqual should treat near-identical values as equal")
	}
	if NearEqual(complex(1, 1), complex(2, 2), 1e-6) {
		t.Error("NearEqual should not treat distant values as equal")
	}
}
