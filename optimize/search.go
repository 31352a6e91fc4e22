package optimize

import (
	"math"

	"github.com/vargapeter25/BFFT/bcomplex"
	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/bmatrix"
	"github.com/vargapeter25/BFFT/compressor"
	"github.com/vargapeter25/BFFT/transform"
)

// SearchConfig tunes the per-level parameter search: a coarse grid over
// (angle, radius) seeds a Nelder-Mead refinement around the best grid point.
type SearchConfig struct {
	GridAngleSegments  int
	GridRadiusSegments int
	NelderMead         Config
}

// DefaultSearchConfig matches the 1-D search's default grid density.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		GridAngleSegments:  20,
		GridRadiusSegments: 10,
		NelderMead:         DefaultConfig(),
	}
}

// LevelPreset maps the CLI's coarse "-lvl" quality setting (0..3) to a
// Nelder-Mead iteration budget: higher settings search longer per level at
// the cost of compression time.
func LevelPreset(lvl int) Config {
	presets := []struct {
		maxIterations int
		maxShrink     int
	}{
		{3, 1},
		{5, 2},
		{10, 3},
		{40, 5},
	}
	if lvl < 0 {
		lvl = 0
	}
	if lvl >= len(presets) {
		lvl = len(presets) - 1
	}
	cfg := DefaultConfig()
	cfg.MaxIterations = presets[lvl].maxIterations
	cfg.MaxShrink = presets[lvl].maxShrink
	return cfg
}

const radiusClamp = 0.99

func clampRadius(r float64) float64 {
	if r > radiusClamp {
		return radiusClamp
	}
	if r < -radiusClamp {
		return -radiusClamp
	}
	return r
}

func gridPoints1D(cfg SearchConfig) [][2]float64 {
	points := [][2]float64{{0, 0}}
	for i := 1; i < cfg.GridRadiusSegments; i++ {
		for j := 1; j < cfg.GridAngleSegments; j++ {
			angle := math.Pi / float64(cfg.GridAngleSegments) * float64(j)
			radius := 0.1 * float64(i)
			points = append(points, [2]float64{angle, radius})
		}
	}
	return points
}

func gridPoints2D(angleSegments, radiusSegments int) [][2]float64 {
	points := [][2]float64{{0, 0}}
	for i := 1; i <= angleSegments; i++ {
		for j := 1; j <= radiusSegments; j++ {
			angle := math.Pi / float64(angleSegments) * float64(i-1)
			radius := 0.9 / float64(radiusSegments) * float64(j)
			points = append(points, [2]float64{angle, radius})
		}
	}
	return points
}

func bestOf(points [][2]float64, eval func(angle, radius float64) float64) (float64, float64) {
	bestAngle, bestRadius := points[0][0], points[0][1]
	bestVal := eval(bestAngle, bestRadius)
	for _, p := range points[1:] {
		v := eval(p[0], p[1])
		if v < bestVal {
			bestVal = v
			bestAngle, bestRadius = p[0], p[1]
		}
	}
	return bestAngle, bestRadius
}

// OptimizeLevel1D searches for the (angle, radius) pair minimizing the
// compression error of data when sys's function at level is set to
// Polar(radius, angle), and leaves sys mutated with the winning parameter.
func OptimizeLevel1D(data []complex128, sys *blaschke.System, level int, ratio float64, mode transform.Mode, cfg SearchConfig) float64 {
	objective := func(angle, radius float64) float64 {
		sys.SetFunction(level, blaschke.Function{P: bcomplex.Polar(clampRadius(radius), angle)})
		c := compressor.NewCompressor1D(sys, ratio, mode)
		return c.CompressionError(data)
	}

	angle, radius := bestOf(gridPoints1D(cfg), objective)

	start := StartingPoints([]float64{angle, radius}, 0.1)
	best := FindMin(func(args []float64) float64 {
		return objective(args[0], args[1])
	}, start, cfg.NelderMead)

	sys.SetFunction(level, blaschke.Function{P: bcomplex.Polar(clampRadius(best[1]), best[0])})
	c := compressor.NewCompressor1D(sys, ratio, mode)
	return c.CompressionError(data)
}

// OptimizeBlaschke1D tunes sys's function at every level, from the
// coarsest (highest index) down to the finest, mutating sys in place.
func OptimizeBlaschke1D(data []complex128, sys *blaschke.System, ratio float64, mode transform.Mode, cfg SearchConfig) {
	levels := transform.CeilLog2(transform.CeilPow2(len(data)))
	for level := levels - 1; level >= 0; level-- {
		OptimizeLevel1D(data, sys, level, ratio, mode, cfg)
	}
}

const penaltyRadiusThreshold = 0.98
const penaltyValue = 1e18

func objective2D(sys *transform.System2D, data *bmatrix.Matrix[complex128], ratio float64, mode transform.Mode, set func(fn blaschke.Function)) func(angle, radius float64) float64 {
	return func(angle, radius float64) float64 {
		if math.Abs(radius) > penaltyRadiusThreshold {
			return penaltyValue
		}
		set(blaschke.Function{P: bcomplex.Polar(clampRadius(radius), angle)})
		return compressor.QuickCompressionError(sys, data, ratio, mode)
	}
}

// OptimizeRowLevel2D tunes the function at level for row r's function
// system, mutating sys in place.
func OptimizeRowLevel2D(data *bmatrix.Matrix[complex128], sys *transform.System2D, row, level int, ratio float64, mode transform.Mode, angleSegments, radiusSegments int, nm Config) {
	rowSys := sys.EnsureRowSystem(row)
	set := func(fn blaschke.Function) { rowSys.SetFunction(level, fn) }

	objective := objective2D(sys, data, ratio, mode, set)
	angle, radius := bestOf(gridPoints2D(angleSegments, radiusSegments), objective)

	start := StartingPoints([]float64{angle, radius}, 0.1)
	best := FindMin(func(args []float64) float64 { return objective(args[0], args[1]) }, start, nm)
	set(blaschke.Function{P: bcomplex.Polar(clampRadius(best[1]), best[0])})
}

// OptimizeColLevel2D tunes the function at level for column c's function
// system, mutating sys in place.
func OptimizeColLevel2D(data *bmatrix.Matrix[complex128], sys *transform.System2D, col, level int, ratio float64, mode transform.Mode, angleSegments, radiusSegments int, nm Config) {
	colSys := sys.EnsureColSystem(col)
	set := func(fn blaschke.Function) { colSys.SetFunction(level, fn) }

	objective := objective2D(sys, data, ratio, mode, set)
	angle, radius := bestOf(gridPoints2D(angleSegments, radiusSegments), objective)

	start := StartingPoints([]float64{angle, radius}, 0.1)
	best := FindMin(func(args []float64) float64 { return objective(args[0], args[1]) }, start, nm)
	set(blaschke.Function{P: bcomplex.Polar(clampRadius(best[1]), best[0])})
}

// OptimizeBlaschke2D tunes every row's function system across all its
// levels, then every column's, mutating sys in place. Rows are optimized
// to completion before columns start.
func OptimizeBlaschke2D(data *bmatrix.Matrix[complex128], sys *transform.System2D, ratio float64, mode transform.Mode, angleSegments, radiusSegments int, nm Config) {
	colLevels := transform.CeilLog2(transform.CeilPow2(data.Cols()))
	for r := 0; r < data.Rows(); r++ {
		for level := 0; level < colLevels; level++ {
			OptimizeRowLevel2D(data, sys, r, level, ratio, mode, angleSegments, radiusSegments, nm)
		}
	}

	rowLevels := transform.CeilLog2(transform.CeilPow2(data.Rows()))
	for c := 0; c < data.Cols(); c++ {
		for level := 0; level < rowLevels; level++ {
			OptimizeColLevel2D(data, sys, c, level, ratio, mode, angleSegments, radiusSegments, nm)
		}
	}
}
