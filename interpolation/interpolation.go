// Package interpolation provides piecewise-linear interpolation between two
// irregularly spaced 1-D point sets, used to resample between uniform grids
// and Blaschke function-system sample points.
package interpolation

import "reflect"

// Number is any type the interpolator can take a weighted average of.
type Number interface {
	~float64 | ~complex128
}

// Point is a single (position, value) sample.
type Point[P ~float64, V Number] struct {
	Pos P
	Val V
}

// Linear returns the value at pos, linearly interpolated between p0 and p1.
// If p0.Pos == p1.Pos, p0.Val is returned to avoid a division by zero.
func Linear[P ~float64, V Number](p0, p1 Point[P, V], pos P) V {
	if p0.Pos == p1.Pos {
		return p0.Val
	}
	t := float64(pos-p0.Pos) / float64(p1.Pos-p0.Pos)
	diff := p1.Val - p0.Val
	d := reflect.ValueOf(&diff).Elem()
	if d.Kind() == reflect.Complex128 {
		d.SetComplex(d.Complex() * complex(t, 0))
	} else {
		d.SetFloat(d.Float() * t)
	}
	return p0.Val + diff
}

// Vector resamples base (sorted ascending by Pos) at each position in
// samplePos, walking both sequences once (amortized O(len(base) +
// len(samplePos))). The walk over base never moves back, so samplePos is
// taken to be non-decreasing. Positions before base's first point or after
// its last take that edge point's value; they are not extrapolated.
func Vector[P ~float64, V Number](base []Point[P, V], samplePos []P) []V {
	out := make([]V, len(samplePos))
	if len(base) == 0 {
		return out
	}
	if len(base) == 1 {
		for i := range out {
			out[i] = base[0].Val
		}
		return out
	}

	j := 0
	for i, pos := range samplePos {
		for j < len(base) && base[j].Pos < pos {
			j++
		}
		idxPrev := j - 1
		if idxPrev < 0 {
			idxPrev = 0
		}
		idxNext := j
		if idxNext >= len(base) {
			idxNext = len(base) - 1
		}
		out[i] = Linear(base[idxPrev], base[idxNext], pos)
	}
	return out
}
