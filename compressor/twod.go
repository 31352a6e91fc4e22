package compressor

import (
	"sort"

	"github.com/vargapeter25/BFFT/bmatrix"
	"github.com/vargapeter25/BFFT/transform"
)

// Coefficient2D is one retained transform coefficient, identified by its
// row and column in the (dense) transformed matrix.
type Coefficient2D struct {
	IDRow int
	IDCol int
	Value complex128
}

// Data2D is the sparse representation of a compressed 2-D block: the
// largest-magnitude coefficients plus the per-row and per-column Blaschke
// parameters and sizing needed to invert the transform independently of the
// compressor that produced it.
type Data2D struct {
	Coeffs          []Coefficient2D
	RowParams       [][]complex128
	ColParams       [][]complex128
	TransformedRows int
	TransformedCols int
	ResultRows      int
	ResultCols      int
	ResizeMode      transform.Mode
}

// Compressor2D compresses and decompresses 2-D blocks at a fixed retention
// ratio using one row/column Blaschke function system.
type Compressor2D struct {
	Sys   *transform.System2D
	Ratio float64
	Mode  transform.Mode
}

// NewCompressor2D returns a Compressor2D over sys retaining the given
// fraction of coefficients.
func NewCompressor2D(sys *transform.System2D, ratio float64, mode transform.Mode) *Compressor2D {
	return &Compressor2D{Sys: sys, Ratio: ratio, Mode: mode}
}

func sortCoefficients2D(coeffs []Coefficient2D) {
	sort.Slice(coeffs, func(i, j int) bool {
		ai, aj := cabs(coeffs[i].Value), cabs(coeffs[j].Value)
		if ai != aj {
			return ai > aj
		}
		if coeffs[i].IDRow != coeffs[j].IDRow {
			return coeffs[i].IDRow < coeffs[j].IDRow
		}
		return coeffs[i].IDCol < coeffs[j].IDCol
	})
}

func flatten(m *bmatrix.Matrix[complex128]) []Coefficient2D {
	rows, cols := m.Rows(), m.Cols()
	out := make([]Coefficient2D, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Coefficient2D{IDRow: r, IDCol: c, Value: m.At(r, c)})
		}
	}
	return out
}

func rowColParams(sys *transform.System2D, rows, cols int) ([][]complex128, [][]complex128) {
	colLevels := transform.CeilLog2(transform.CeilPow2(cols))
	rowLevels := transform.CeilLog2(transform.CeilPow2(rows))

	rowParams := make([][]complex128, rows)
	for r := 0; r < rows; r++ {
		rowParams[r] = levelParams(sys.RowSystem(r), colLevels)
	}
	colParams := make([][]complex128, transform.CeilPow2(cols))
	for c := range colParams {
		colParams[c] = levelParams(sys.ColSystem(c), rowLevels)
	}
	return rowParams, colParams
}

func system2DFromParams(rowParams, colParams [][]complex128) *transform.System2D {
	sys := transform.NewSystem2D()
	for r, params := range rowParams {
		sys.SetRowSystem(r, systemFromParams(params))
	}
	for c, params := range colParams {
		sys.SetColSystem(c, systemFromParams(params))
	}
	return sys
}

// Compress transforms data and keeps its Ratio-fraction largest-magnitude
// coefficients.
func (c *Compressor2D) Compress(data *bmatrix.Matrix[complex128]) Data2D {
	transformed := transform.Forward2D(data, c.Sys, c.Mode)

	coeffs := flatten(transformed)
	sortCoefficients2D(coeffs)

	keep := retainCount(len(coeffs), c.Ratio)

	rowParams, colParams := rowColParams(c.Sys, data.Rows(), data.Cols())

	return Data2D{
		Coeffs:          append([]Coefficient2D(nil), coeffs[:keep]...),
		RowParams:       rowParams,
		ColParams:       colParams,
		TransformedRows: transformed.Rows(),
		TransformedCols: transformed.Cols(),
		ResultRows:      data.Rows(),
		ResultCols:      data.Cols(),
		ResizeMode:      c.Mode,
	}
}

func scatter2D(cd Data2D) *bmatrix.Matrix[complex128] {
	out := bmatrix.New[complex128](cd.TransformedRows, cd.TransformedCols)
	for _, coef := range cd.Coeffs {
		out.Set(coef.IDRow, coef.IDCol, coef.Value)
	}
	return out
}

// Decompress2D reconstructs an approximation of the original block from cd,
// rebuilding fresh per-row/per-column function systems from cd's stored
// parameters.
func Decompress2D(cd Data2D) *bmatrix.Matrix[complex128] {
	sys := system2DFromParams(cd.RowParams, cd.ColParams)
	return transform.Inverse2D(scatter2D(cd), cd.ResultRows, cd.ResultCols, sys, cd.ResizeMode)
}

// ThisDecompress reconstructs an approximation of the original block from
// cd, reusing c's function system. Faster than Decompress2D; only valid
// while c's parameters match the ones cd was compressed with.
func (c *Compressor2D) ThisDecompress(cd Data2D) *bmatrix.Matrix[complex128] {
	return transform.Inverse2D(scatter2D(cd), cd.ResultRows, cd.ResultCols, c.Sys, cd.ResizeMode)
}

// CompressionError returns the mean absolute magnitude of the per-element
// residual between data and its compressed-then-decompressed approximation.
func (c *Compressor2D) CompressionError(data *bmatrix.Matrix[complex128]) float64 {
	approx := c.ThisDecompress(c.Compress(data))
	return meanAbsoluteError2D(data, approx)
}

func meanAbsoluteError2D(a, b *bmatrix.Matrix[complex128]) float64 {
	rows, cols := a.Rows(), a.Cols()
	if rows == 0 || cols == 0 {
		return 0
	}
	sum := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sum += cabs(a.At(r, c) - b.At(r, c))
		}
	}
	return sum / float64(rows*cols)
}

// QuickCompressionError is a faster variant of CompressionError used by the
// parameter optimizer's inner loop: it transforms data, ranks the
// coefficients exactly as Compress does, copies the retained ones into a
// fresh zero matrix, inverts, and measures the residual. It skips building a
// Data2D (the copied coefficient list and the per-row/per-column parameter
// vectors) and the scatter step of ThisDecompress; the coefficient list is
// still flattened and sorted on every call.
func QuickCompressionError(sys *transform.System2D, data *bmatrix.Matrix[complex128], ratio float64, mode transform.Mode) float64 {
	transformed := transform.Forward2D(data, sys, mode)

	coeffs := flatten(transformed)
	sortCoefficients2D(coeffs)
	keep := retainCount(len(coeffs), ratio)

	zeroed := bmatrix.New[complex128](transformed.Rows(), transformed.Cols())
	for _, coef := range coeffs[:keep] {
		zeroed.Set(coef.IDRow, coef.IDCol, coef.Value)
	}

	approx := transform.Inverse2D(zeroed, data.Rows(), data.Cols(), sys, mode)
	return meanAbsoluteError2D(data, approx)
}
