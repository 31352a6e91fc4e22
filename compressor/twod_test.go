package compressor

import (
	"testing"

	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/bmatrix"
	"github.com/vargapeter25/BFFT/transform"
)

func zeroSystem2D() *transform.System2D {
	sys := transform.NewSystem2D()
	sys.Default.SetDefault(blaschke.Function{P: 0})
	return sys
}

func TestCompressor2DFullRatioLowError(t *testing.T) {
	sys := zeroSystem2D()
	c := NewCompressor2D(sys, 1.0, transform.Resize)

	m := bmatrix.New[complex128](4, 4)
	v := 0
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			m.Set(r, col, complex(float64(v), 0))
			v++
		}
	}

	if err := c.CompressionError(m); err > 1e-6 {
		t.Errorf("CompressionError at ratio 1.0 = %v, want ~0", err)
	}
}

func TestCompressor2DDecompressIndependentOfCompressor(t *testing.T) {
	sys := zeroSystem2D()
	c := NewCompressor2D(sys, 0.5, transform.Resize)

	m := bmatrix.New[complex128](4, 4)
	v := 0
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			m.Set(r, col, complex(float64(v), float64(-v)))
			v++
		}
	}

	cd := c.Compress(m)
	viaThis := c.ThisDecompress(cd)
	viaFresh := Decompress2D(cd)

	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			if cabs(viaThis.At(r, col)-viaFresh.At(r, col)) > 1e-9 {
				t.Errorf("Decompress2D diverged at (%d,%d): %v vs %v", r, col, viaFresh.At(r, col), viaThis.At(r, col))
			}
		}
	}
}

func TestQuickCompressionErrorMatchesFullPath(t *testing.T) {
	sys := zeroSystem2D()
	ratio := 0.5
	c := NewCompressor2D(sys, ratio, transform.Resize)

	m := bmatrix.New[complex128](4, 4)
	v := 0
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			m.Set(r, col, complex(float64(v%7), float64(v%3)))
			v++
		}
	}

	want := c.CompressionError(m)
	got := QuickCompressionError(sys, m, ratio, transform.Resize)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("QuickCompressionError = %v, want %v", got, want)
	}
}
