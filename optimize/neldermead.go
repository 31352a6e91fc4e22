// Package optimize implements a generic Nelder-Mead simplex search and the
// coarse-grid-plus-refine driver used to fit per-level Blaschke parameters.
package optimize

import (
	"math"
	"sort"
)

// Point is one simplex vertex: an argument vector and its objective value.
type Point struct {
	Args []float64
	Val  float64
}

// less orders points by Val, breaking ties lexicographically on Args so the
// search has a deterministic order even across equal-valued vertices.
func less(a, b Point) bool {
	if a.Val != b.Val {
		return a.Val < b.Val
	}
	for i := range a.Args {
		if a.Args[i] != b.Args[i] {
			return a.Args[i] < b.Args[i]
		}
	}
	return false
}

// Config holds the Nelder-Mead reflection/expansion/contraction/shrink
// coefficients and termination tuning.
type Config struct {
	Alpha, Gamma, Rho, Omega float64
	MaxIterations            int
	MaxShrink                int
	Threshold                float64
}

// DefaultConfig returns the textbook Nelder-Mead coefficients.
func DefaultConfig() Config {
	return Config{
		Alpha: 1, Gamma: 2, Rho: 0.5, Omega: 0.5,
		MaxIterations: 200,
		MaxShrink:     30,
		Threshold:     0.01,
	}
}

// StartingPoints builds the initial simplex: p itself, plus p shifted by
// shift along each coordinate axis.
func StartingPoints(p []float64, shift float64) [][]float64 {
	k := len(p)
	out := make([][]float64, k+1)
	out[0] = append([]float64(nil), p...)
	for i := 0; i < k; i++ {
		v := append([]float64(nil), p...)
		v[i] += shift
		out[i+1] = v
	}
	return out
}

// FindMin runs the Nelder-Mead simplex search starting from start (one
// argument vector per simplex vertex; len(start) must be len(args)+1) and
// returns the best argument vector found.
func FindMin(f func([]float64) float64, start [][]float64, cfg Config) []float64 {
	points := make([]Point, len(start))
	for i, a := range start {
		points[i] = Point{Args: a, Val: f(a)}
	}
	sortPoints(points)

	shrinkCounter := 0
	for iter := 0; iter < cfg.MaxIterations && shrinkCounter < cfg.MaxShrink; iter++ {
		if checkTermination(points, cfg.Threshold) {
			break
		}

		k := len(points) - 1
		centroid := centroidExcept(points, k)
		best := points[0]
		secondWorst := points[k-1]
		worst := points[k]

		reflected := combine(centroid, worst.Args, -cfg.Alpha)
		reflVal := f(reflected)

		switch {
		case reflVal >= best.Val && reflVal < secondWorst.Val:
			points[k] = Point{Args: reflected, Val: reflVal}

		case reflVal < best.Val:
			expanded := combine(centroid, reflected, cfg.Gamma)
			expVal := f(expanded)
			if expVal < reflVal {
				points[k] = Point{Args: expanded, Val: expVal}
			} else {
				points[k] = Point{Args: reflected, Val: reflVal}
			}

		case reflVal < worst.Val:
			contracted := combine(centroid, reflected, cfg.Rho)
			conVal := f(contracted)
			if conVal <= reflVal {
				points[k] = Point{Args: contracted, Val: conVal}
			} else {
				shrink(points, cfg.Omega, f)
				shrinkCounter++
			}

		default:
			contracted := combine(centroid, worst.Args, cfg.Rho)
			conVal := f(contracted)
			if conVal < worst.Val {
				points[k] = Point{Args: contracted, Val: conVal}
			} else {
				shrink(points, cfg.Omega, f)
				shrinkCounter++
			}
		}

		sortPoints(points)
	}

	return points[0].Args
}

func sortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool { return less(points[i], points[j]) })
}

func centroidExcept(points []Point, exclude int) []float64 {
	dim := len(points[0].Args)
	c := make([]float64, dim)
	count := 0
	for i, p := range points {
		if i == exclude {
			continue
		}
		for d := 0; d < dim; d++ {
			c[d] += p.Args[d]
		}
		count++
	}
	for d := 0; d < dim; d++ {
		c[d] /= float64(count)
	}
	return c
}

// combine returns c + (x - c) * factor, elementwise.
func combine(c, x []float64, factor float64) []float64 {
	out := make([]float64, len(c))
	for i := range c {
		out[i] = c[i] + (x[i]-c[i])*factor
	}
	return out
}

func shrink(points []Point, omega float64, f func([]float64) float64) {
	best := points[0]
	for i := 1; i < len(points); i++ {
		args := combine(best.Args, points[i].Args, omega)
		points[i] = Point{Args: args, Val: f(args)}
	}
}

func checkTermination(points []Point, threshold float64) bool {
	best := points[0].Val
	worst := points[len(points)-1].Val
	if math.Abs(best-worst) < 1e-4 {
		return true
	}
	return maxPairwiseDistance(points) < threshold
}

func maxPairwiseDistance(points []Point) float64 {
	max := 0.0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := euclidean(points[i].Args, points[j].Args)
			if d > max {
				max = d
			}
		}
	}
	return max
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
