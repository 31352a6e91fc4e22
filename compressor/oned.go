// Package compressor implements lossy compression of a transformed signal
// by keeping only its largest-magnitude coefficients.
package compressor

import (
	"math"
	"sort"

	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/transform"
)

// Coefficient1D is one retained transform coefficient, identified by its
// position in the (dense) transformed array.
type Coefficient1D struct {
	ID    int
	Value complex128
}

// Data1D is a sparse representation of a compressed 1-D signal: enough of
// the transform's largest coefficients to approximately reconstruct it, plus
// the per-level Blaschke parameters and sizing needed to invert the
// transform without the original compressor around.
type Data1D struct {
	Coeffs          []Coefficient1D
	Params          []complex128
	TransformedSize int
	OriginalSize    int
	ResizeMode      transform.Mode
}

// Compressor1D compresses and decompresses 1-D signals at a fixed retention
// ratio using one Blaschke function system.
type Compressor1D struct {
	Sys   *blaschke.System
	Ratio float64
	Mode  transform.Mode
}

// NewCompressor1D returns a Compressor1D over sys retaining the given
// fraction of coefficients (0 < ratio <= 1).
func NewCompressor1D(sys *blaschke.System, ratio float64, mode transform.Mode) *Compressor1D {
	return &Compressor1D{Sys: sys, Ratio: ratio, Mode: mode}
}

func sortCoefficients1D(coeffs []Coefficient1D) {
	sort.Slice(coeffs, func(i, j int) bool {
		ai, aj := cabs(coeffs[i].Value), cabs(coeffs[j].Value)
		if ai != aj {
			return ai > aj
		}
		return coeffs[i].ID < coeffs[j].ID
	})
}

func cabs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// retainCount returns floor(ratio * count), clamped to [0, count]. count is
// the number of coefficients in the transformed (flattened) representation.
func retainCount(count int, ratio float64) int {
	n := int(math.Floor(float64(count) * ratio))
	if n > count {
		n = count
	}
	if n < 0 {
		n = 0
	}
	return n
}

func levelParams(sys *blaschke.System, levels int) []complex128 {
	params := make([]complex128, levels)
	for l := 0; l < levels; l++ {
		params[l] = sys.At(l).P
	}
	return params
}

func systemFromParams(params []complex128) *blaschke.System {
	sys := blaschke.NewSystem()
	for level, p := range params {
		sys.SetFunction(level, blaschke.Function{P: p})
	}
	return sys
}

// Compress transforms data and keeps its Ratio-fraction largest-magnitude
// coefficients.
func (c *Compressor1D) Compress(data []complex128) Data1D {
	transformed := transform.Forward1D(data, c.Sys, c.Mode)

	coeffs := make([]Coefficient1D, len(transformed))
	for i, v := range transformed {
		coeffs[i] = Coefficient1D{ID: i, Value: v}
	}
	sortCoefficients1D(coeffs)

	keep := retainCount(len(coeffs), c.Ratio)

	levels := transform.CeilLog2(len(transformed))
	return Data1D{
		Coeffs:          append([]Coefficient1D(nil), coeffs[:keep]...),
		Params:          levelParams(c.Sys, levels),
		TransformedSize: len(transformed),
		OriginalSize:    len(data),
		ResizeMode:      c.Mode,
	}
}

func scatter1D(cd Data1D) []complex128 {
	out := make([]complex128, cd.TransformedSize)
	for _, coef := range cd.Coeffs {
		out[coef.ID] = coef.Value
	}
	return out
}

// Decompress1D reconstructs an approximation of the original signal from cd,
// rebuilding a fresh Blaschke function system from cd.Params. Use this form
// when the Compressor1D that produced cd is no longer available.
func Decompress1D(cd Data1D) []complex128 {
	sys := systemFromParams(cd.Params)
	return transform.Inverse1D(scatter1D(cd), cd.OriginalSize, sys, cd.ResizeMode)
}

// ThisDecompress reconstructs an approximation of the original signal from
// cd, reusing c's function system instead of rebuilding one from cd.Params.
// Faster than Decompress1D; only valid while c's parameters match the ones
// cd was compressed with.
func (c *Compressor1D) ThisDecompress(cd Data1D) []complex128 {
	return transform.Inverse1D(scatter1D(cd), cd.OriginalSize, c.Sys, cd.ResizeMode)
}

// CompressionError returns the mean absolute magnitude of the per-sample
// residual between data and its compressed-then-decompressed approximation.
// Despite the name this is not a squared error; the formula is kept exactly
// as the reference implementation defines it.
func (c *Compressor1D) CompressionError(data []complex128) float64 {
	approx := c.ThisDecompress(c.Compress(data))
	return meanAbsoluteError(data, approx)
}

func meanAbsoluteError(a, b []complex128) float64 {
	if len(a) == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		sum += cabs(a[i] - b[i])
	}
	return sum / float64(len(a))
}
