package transform

import (
	"github.com/vargapeter25/BFFT/bcomplex"
	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/interpolation"
)

// Forward1D transforms data (any length) into transform-domain coefficients
// of length CeilPow2(len(data)), using sys to derive the per-level twiddle
// points. The caller is responsible for recording len(data) (the original
// size) separately, since Inverse1D needs it to undo the padding.
func Forward1D(data []complex128, sys *blaschke.System, mode Mode) []complex128 {
	n := CeilPow2(len(data))
	levels := CeilLog2(n)

	var c []complex128
	switch mode {
	case LinearInterpolation:
		c = resizeInputInterp(data, sys, levels)
	default:
		c = resizeVector(data, n)
	}

	forwardButterfly(c, sys)
	return c
}

// Inverse1D reconstructs a signal of length originalSize from transform
// coefficients produced by Forward1D (or a compressor's truncated variant
// of them).
func Inverse1D(data []complex128, originalSize int, sys *blaschke.System, mode Mode) []complex128 {
	c := make([]complex128, len(data))
	copy(c, data)
	levels := CeilLog2(len(c))

	inverseButterfly(c, sys)

	switch mode {
	case LinearInterpolation:
		return resizeOutputInterp(c, originalSize, sys, levels)
	default:
		return resizeVector(c, originalSize)
	}
}

func forwardButterfly(c []complex128, sys *blaschke.System) {
	n := len(c)
	levels := CeilLog2(n)
	half := complex(0.5, 0)
	table := sys.BasePointsByLevel(levels, baseSeed)

	for phase := 0; phase < levels; phase++ {
		partWidth := n >> phase
		butterflyCount := partWidth / 2
		numParts := n / partWidth
		basePts := table[levels-phase]

		for part := 0; part < numParts; part++ {
			for b := 0; b < butterflyCount; b++ {
				i := partWidth*part + b
				j := i + butterflyCount
				tmp := c[i]
				c[i] = (tmp + c[j]) * half
				c[j] = bcomplex.ConjMult(tmp-c[j], basePts[b]) * half
			}
		}
	}

	bitReversePermute(c)
}

func inverseButterfly(c []complex128, sys *blaschke.System) {
	bitReversePermute(c)

	n := len(c)
	levels := CeilLog2(n)
	table := sys.BasePointsByLevel(levels, baseSeed)

	for phase := 1; phase <= levels; phase++ {
		partWidth := 1 << uint(phase)
		butterflyCount := partWidth / 2
		numParts := n / partWidth
		basePts := table[phase]

		for part := 0; part < numParts; part++ {
			for b := 0; b < butterflyCount; b++ {
				i := partWidth*part + b
				j := i + butterflyCount
				tmp := c[j] * basePts[b]
				c[j] = c[i] - tmp
				c[i] = c[i] + tmp
			}
		}
	}
}

func bitReversePermute(c []complex128) {
	n := len(c)
	bits := CeilLog2(n)
	for i := 0; i < n; i++ {
		j := reverseBits(i, bits)
		if i < j {
			c[i], c[j] = c[j], c[i]
		}
	}
}

func reverseBits(x, bits int) int {
	r := 0
	for b := 0; b < bits; b++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func resizeInputInterp(data []complex128, sys *blaschke.System, levels int) []complex128 {
	n := 1 << uint(levels)
	if len(data) == 0 {
		return make([]complex128, n)
	}

	pts := make([]interpolation.Point[float64, complex128], len(data))
	for i, v := range data {
		pts[i] = interpolation.Point[float64, complex128]{Pos: float64(i) / float64(len(data)), Val: v}
	}

	targetPos := sys.SamplePoints(levels, baseSeed)
	return interpolation.Vector(pts, targetPos)
}

func resizeOutputInterp(data []complex128, originalSize int, sys *blaschke.System, levels int) []complex128 {
	if originalSize <= 0 {
		return nil
	}

	srcPos := sys.SamplePoints(levels, baseSeed)
	pts := make([]interpolation.Point[float64, complex128], len(data))
	for i, v := range data {
		pos := 0.0
		if i < len(srcPos) {
			pos = srcPos[i]
		}
		pts[i] = interpolation.Point[float64, complex128]{Pos: pos, Val: v}
	}

	targetPos := make([]float64, originalSize)
	for i := range targetPos {
		targetPos[i] = float64(i) / float64(originalSize)
	}
	return interpolation.Vector(pts, targetPos)
}
