package blaschke

import (
	"math"

	"github.com/vargapeter25/BFFT/bcomplex"
)

// System holds one Function per transform level (falling back to a default
// for any level that hasn't been set explicitly) and derives the base point
// and sample point grids the transform needs at each level.
//
// Base point computation for a given (level, seed) pair is cached in a
// single slot, so repeated BasePoints/SamplePoints calls between mutations
// (for example the forward and inverse resampling of one transform round
// trip) reuse the result instead of redoing the recursive doubling. Any
// mutation (SetFunction, SetDefault) invalidates it, so each new parameter
// tried by the optimizer recomputes the points once.
type System struct {
	functions map[int]Function
	def       Function

	baseCacheOK    bool
	baseCacheLevel int
	baseCacheSeed  complex128
	baseCacheVals  []complex128
}

// NewSystem returns a system whose default function is the zero-parameter
// Blaschke function (f(x) = x^2).
func NewSystem() *System {
	return &System{}
}

// At returns the function in effect at level, which is the default unless
// SetFunction has overridden that level.
func (s *System) At(level int) Function {
	if f, ok := s.functions[level]; ok {
		return f
	}
	return s.def
}

// SetFunction overrides the function used at level.
func (s *System) SetFunction(level int, f Function) {
	if s.functions == nil {
		s.functions = make(map[int]Function)
	}
	s.functions[level] = f
	s.invalidate()
}

// SetDefault sets the function used at any level without an explicit
// override.
func (s *System) SetDefault(f Function) {
	s.def = f
	s.invalidate()
}

func (s *System) invalidate() {
	s.baseCacheOK = false
}

// Clone returns an independent copy of s: mutating the copy's functions
// never affects s, and vice versa.
func (s *System) Clone() *System {
	out := &System{def: s.def}
	if s.functions != nil {
		out.functions = make(map[int]Function, len(s.functions))
		for level, f := range s.functions {
			out.functions[level] = f
		}
	}
	return out
}

// BasePoints returns the 2^level roots of seed under the level-deep
// recursive doubling: it starts from {seed}, and the m-th doubling (from
// 2^(m-1) to 2^m points) takes both preimages of each point under the
// function at index level-m, so the first doubling uses level-1 and the last
// uses 0. Each doubling is followed by a cyclic-order correction so that
// consecutive points wind around the disk in a consistent direction. The
// result equals BasePointsByLevel(level, seed)[level].
func (s *System) BasePoints(level int, seed complex128) []complex128 {
	if s.baseCacheOK && level == s.baseCacheLevel && bcomplex.NearEqual(seed, s.baseCacheSeed, 1e-9) {
		out := make([]complex128, len(s.baseCacheVals))
		copy(out, s.baseCacheVals)
		return out
	}

	base := []complex128{seed}
	for i := level; i >= 1; i-- {
		half := len(base)
		fn := s.At(i - 1)
		next := make([]complex128, half*2)
		for j := 0; j < half; j++ {
			r1, r2 := fn.Roots(base[j])
			next[j] = r1
			next[j+half] = r2
		}
		for j := 0; j < half-1; j++ {
			if conjMultImagPositive(next[j], next[j+1]) {
				next[j+1], next[half+j+1] = next[half+j+1], next[j+1]
			}
		}
		base = next
	}

	s.baseCacheOK = true
	s.baseCacheLevel = level
	s.baseCacheSeed = seed
	s.baseCacheVals = make([]complex128, len(base))
	copy(s.baseCacheVals, base)

	return base
}

// BasePointsByLevel returns the full table of base points for every
// intermediate level 0..n in a single pass: table[0] is {seed}, and
// table[m] is table[m-1] doubled under the function at level n-m.
//
// This differs from calling BasePoints(m, seed) independently for each m:
// an independent call treats its own m as the top-level depth and so walks
// function indices 0..(m-1), whereas a true sub-level of an n-level
// derivation must walk the same n-m index the full n-level table would use
// at that step. The two only coincide when every level shares one function
// (e.g. the all-zero-parameter case), which is why a standalone BasePoints
// call per phase is wrong once per-level parameters diverge.
func (s *System) BasePointsByLevel(n int, seed complex128) [][]complex128 {
	table := make([][]complex128, n+1)
	table[0] = []complex128{seed}

	for m := 1; m <= n; m++ {
		prev := table[m-1]
		half := len(prev)
		fn := s.At(n - m)
		next := make([]complex128, half*2)
		for j := 0; j < half; j++ {
			r1, r2 := fn.Roots(prev[j])
			next[j] = r1
			next[j+half] = r2
		}
		for j := 0; j < half-1; j++ {
			if conjMultImagPositive(next[j], next[j+1]) {
				next[j+1], next[half+j+1] = next[half+j+1], next[j+1]
			}
		}
		table[m] = next
	}

	return table
}

// SamplePoints projects the level-deep base points onto [0, 1) by taking
// each point's angle on the unit circle (acos of its real part, mirrored
// into the lower half for negative imaginary parts) and normalizing by 2*pi,
// then unwinds the result into a single monotonically increasing sequence
// (the raw angles wrap around the circle, which would otherwise produce a
// non-monotonic position sequence that the interpolation package requires
// to be sorted).
func (s *System) SamplePoints(level int, seed complex128) []float64 {
	base := s.BasePoints(level, seed)
	pos := make([]float64, len(base))
	for i, b := range base {
		re := real(b)
		if re > 1 {
			re = 1
		} else if re < -1 {
			re = -1
		}
		angle := math.Acos(re)
		if imag(b) < 0 {
			angle = 2*math.Pi - angle
		}
		pos[i] = angle / (2 * math.Pi)
	}

	if len(pos) == 0 {
		return pos
	}

	minIdx := 0
	for i := 1; i < len(pos); i++ {
		if pos[i] < pos[minIdx] {
			minIdx = i
		}
	}
	for i := 0; i < minIdx; i++ {
		pos[i] -= 1.0
	}

	offset := 0.0
	for i := 1; i < len(pos); i++ {
		pos[i] += offset
		if pos[i] < pos[i-1] {
			offset += 1.0
			pos[i] += 1.0
		}
	}

	return pos
}
