package compressor

import (
	"testing"

	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/transform"
)

func TestCompressor1DFullRatioLowError(t *testing.T) {
	sys := blaschke.NewSystem()
	sys.SetDefault(blaschke.Function{P: 0})
	c := NewCompressor1D(sys, 1.0, transform.Resize)

	data := make([]complex128, 8)
	for i := range data {
		data[i] = complex(float64(i), float64(i)*0.5)
	}

	err := c.CompressionError(data)
	if err > 1e-6 {
		t.Errorf("CompressionError at ratio 1.0 = %v, want ~0", err)
	}
}

func TestCompressor1DDecompressIndependentOfCompressor(t *testing.T) {
	sys := blaschke.NewSystem()
	sys.SetDefault(blaschke.Function{P: complex(0.1, 0.05)})
	c := NewCompressor1D(sys, 0.5, transform.Resize)

	data := make([]complex128, 8)
	for i := range data {
		data[i] = complex(float64(i), 0)
	}

	cd := c.Compress(data)
	viaThis := c.ThisDecompress(cd)
	viaFresh := Decompress1D(cd)

	for i := range viaThis {
		if cabs(viaThis[i]-viaFresh[i]) > 1e-9 {
			t.Errorf("Decompress1D diverged from ThisDecompress at %d: %v vs %v", i, viaFresh[i], viaThis[i])
		}
	}
}

func TestCompressor1DRetainsFewerCoeffsAtLowRatio(t *testing.T) {
	sys := blaschke.NewSystem()
	sys.SetDefault(blaschke.Function{P: 0})
	full := NewCompressor1D(sys, 1.0, transform.Resize)
	half := NewCompressor1D(sys, 0.25, transform.Resize)

	data := make([]complex128, 16)
	for i := range data {
		data[i] = complex(float64(i%5), float64(i%3))
	}

	cdFull := full.Compress(data)
	cdHalf := half.Compress(data)
	if len(cdHalf.Coeffs) >= len(cdFull.Coeffs) {
		t.Errorf("ratio 0.25 kept %d coeffs, ratio 1.0 kept %d; want fewer", len(cdHalf.Coeffs), len(cdFull.Coeffs))
	}
}
