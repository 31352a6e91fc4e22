package optimize

import (
	"math"
	"testing"

	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/bmatrix"
	"github.com/vargapeter25/BFFT/compressor"
	"github.com/vargapeter25/BFFT/transform"
)

func TestLevelPresetClampsRange(t *testing.T) {
	low := LevelPreset(-1)
	high := LevelPreset(99)
	if low.MaxIterations != 3 {
		t.Errorf("LevelPreset(-1).MaxIterations = %d, want 3", low.MaxIterations)
	}
	if high.MaxIterations != 40 {
		t.Errorf("LevelPreset(99).MaxIterations = %d, want 40", high.MaxIterations)
	}
}

func TestOptimizeBlaschke1DReducesError(t *testing.T) {
	sys := blaschke.NewSystem()
	data := make([]complex128, 8)
	for i := range data {
		data[i] = complex(float64(i%4), float64((i*3)%5))
	}

	cfg := DefaultSearchConfig()
	cfg.NelderMead = LevelPreset(0)
	cfg.GridAngleSegments = 4
	cfg.GridRadiusSegments = 2

	before := quickError1D(sys, data, 0.5)
	OptimizeBlaschke1D(data, sys, 0.5, transform.Resize, cfg)
	after := quickError1D(sys, data, 0.5)

	if after > before+1e-9 {
		t.Errorf("error after optimization %v > before %v", after, before)
	}
}

func quickError1D(sys *blaschke.System, data []complex128, ratio float64) float64 {
	c := compressor.NewCompressor1D(sys, ratio, transform.Resize)
	back := c.ThisDecompress(c.Compress(data))
	sum := 0.0
	for i := range data {
		d := data[i] - back[i]
		sum += realAbs(d)
	}
	return sum / float64(len(data))
}

func realAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func TestOptimizeBlaschke2DDoesNotPanic(t *testing.T) {
	sys := transform.NewSystem2D()
	m := bmatrix.New[complex128](2, 2)
	m.Set(0, 0, complex(1, 0))
	m.Set(0, 1, complex(2, 0))
	m.Set(1, 0, complex(3, 0))
	m.Set(1, 1, complex(4, 0))

	nm := LevelPreset(0)
	OptimizeBlaschke2D(m, sys, 0.5, transform.Resize, 2, 2, nm)
}
