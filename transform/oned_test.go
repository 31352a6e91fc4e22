package transform

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/vargapeter25/BFFT/blaschke"
)

func TestCeilPow2AndLog2(t *testing.T) {
	cases := []struct {
		n        int
		wantPow2 int
		wantLog2 int
	}{
		{0, 1, 0},
		{1, 1, 0},
		{2, 2, 1},
		{3, 4, 2},
		{4, 4, 2},
		{5, 8, 3},
		{16, 16, 4},
	}
	for _, c := range cases {
		if got := CeilPow2(c.n); got != c.wantPow2 {
			t.Errorf("CeilPow2(%d) = %d, want %d", c.n, got, c.wantPow2)
		}
		if got := CeilLog2(c.n); got != c.wantLog2 {
			t.Errorf("CeilLog2(%d) = %d, want %d", c.n, got, c.wantLog2)
		}
	}
}

func zeroParamSystem() *blaschke.System {
	s := blaschke.NewSystem()
	s.SetDefault(blaschke.Function{P: 0})
	return s
}

func TestForwardInverseRoundTripResize(t *testing.T) {
	data := make([]complex128, 8)
	for i := range data {
		data[i] = complex(float64(i), float64(-i))
	}
	sys := zeroParamSystem()

	coeffs := Forward1D(data, sys, Resize)
	if len(coeffs) != 8 {
		t.Fatalf("len(coeffs) = %d, want 8", len(coeffs))
	}

	back := Inverse1D(coeffs, len(data), sys, Resize)
	if len(back) != len(data) {
		t.Fatalf("len(back) = %d, want %d", len(back), len(data))
	}
	for i := range data {
		if cmplx.Abs(back[i]-data[i]) > 1e-6 {
			t.Errorf("round trip[%d] = %v, want %v", i, back[i], data[i])
		}
	}
}

func TestForwardInverseRoundTripNonPow2(t *testing.T) {
	data := make([]complex128, 5)
	for i := range data {
		data[i] = complex(float64(i)*1.5, float64(i))
	}
	sys := zeroParamSystem()

	coeffs := Forward1D(data, sys, Resize)
	if len(coeffs) != 8 {
		t.Fatalf("len(coeffs) = %d, want 8 (next pow2 of 5)", len(coeffs))
	}

	back := Inverse1D(coeffs, len(data), sys, Resize)
	for i := range data {
		if cmplx.Abs(back[i]-data[i]) > 1e-6 {
			t.Errorf("round trip[%d] = %v, want %v", i, back[i], data[i])
		}
	}
}

// referenceDFT computes the classical 1/N-normalized DFT: the convention
// Forward1D reduces to once every Blaschke parameter is zero, since the
// butterfly's conj-multiply twiddle degenerates to the usual root-of-unity
// twiddle and the 0.5-per-phase scaling accumulates to 1/N overall.
func referenceDFT(data []complex128) []complex128 {
	n := len(data)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j, x := range data {
			angle := -2 * math.Pi * float64(j) * float64(k) / float64(n)
			sum += x * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum / complex(float64(n), 0)
	}
	return out
}

func TestForwardZeroParamsMatchesClassicalDFT(t *testing.T) {
	data := []complex128{
		complex(1, 0.5), complex(-2, 1), complex(0.3, -0.7), complex(4, 0),
		complex(-1.5, 2), complex(0, -3), complex(2.2, 0.1), complex(-0.4, -0.4),
	}
	sys := zeroParamSystem()

	got := Forward1D(data, sys, Resize)
	want := referenceDFT(data)

	for k := range want {
		if cmplx.Abs(got[k]-want[k]) > 1e-9 {
			t.Errorf("Forward1D[%d] = %v, want classical DFT %v", k, got[k], want[k])
		}
	}
}

func TestBitReversePermuteInvolution(t *testing.T) {
	c := []complex128{0, 1, 2, 3, 4, 5, 6, 7}
	orig := append([]complex128(nil), c...)
	bitReversePermute(c)
	bitReversePermute(c)
	for i := range c {
		if c[i] != orig[i] {
			t.Errorf("double bit-reverse[%d] = %v, want %v", i, c[i], orig[i])
		}
	}
}
