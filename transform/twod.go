package transform

import (
	"github.com/vargapeter25/BFFT/blaschke"
	"github.com/vargapeter25/BFFT/bmatrix"
)

// System2D holds the function systems the separable 2-D transform uses: a
// default shared by every row and column, plus optional per-row and
// per-column overrides so the optimizer can tune a row or column
// independently of the rest of the block.
type System2D struct {
	Default      *blaschke.System
	rowOverrides map[int]*blaschke.System
	colOverrides map[int]*blaschke.System
}

// NewSystem2D returns a System2D with a fresh default function system.
func NewSystem2D() *System2D {
	return &System2D{Default: blaschke.NewSystem()}
}

// RowSystem returns the function system used to transform row r.
func (s *System2D) RowSystem(r int) *blaschke.System {
	if sys, ok := s.rowOverrides[r]; ok {
		return sys
	}
	return s.Default
}

// ColSystem returns the function system used to transform column c.
func (s *System2D) ColSystem(c int) *blaschke.System {
	if sys, ok := s.colOverrides[c]; ok {
		return sys
	}
	return s.Default
}

// SetRowSystem overrides the function system used for row r.
func (s *System2D) SetRowSystem(r int, sys *blaschke.System) {
	if s.rowOverrides == nil {
		s.rowOverrides = make(map[int]*blaschke.System)
	}
	s.rowOverrides[r] = sys
}

// SetColSystem overrides the function system used for column c.
func (s *System2D) SetColSystem(c int, sys *blaschke.System) {
	if s.colOverrides == nil {
		s.colOverrides = make(map[int]*blaschke.System)
	}
	s.colOverrides[c] = sys
}

// EnsureRowSystem returns row r's override system, cloning the default into
// a fresh override the first time r is touched so later mutations don't
// leak into the shared default or other rows.
func (s *System2D) EnsureRowSystem(r int) *blaschke.System {
	if sys, ok := s.rowOverrides[r]; ok {
		return sys
	}
	sys := s.Default.Clone()
	s.SetRowSystem(r, sys)
	return sys
}

// EnsureColSystem returns column c's override system, cloning the default
// into a fresh override the first time c is touched.
func (s *System2D) EnsureColSystem(c int) *blaschke.System {
	if sys, ok := s.colOverrides[c]; ok {
		return sys
	}
	sys := s.Default.Clone()
	s.SetColSystem(c, sys)
	return sys
}

// Forward2D applies the separable 2-D transform: each row is transformed
// independently (with its own or the default row function system), then
// each resulting column is transformed independently.
func Forward2D(m *bmatrix.Matrix[complex128], sys *System2D, mode Mode) *bmatrix.Matrix[complex128] {
	rows, cols := m.Rows(), m.Cols()
	newCols := CeilPow2(cols)

	rowStage := bmatrix.New[complex128](rows, newCols)
	for r := 0; r < rows; r++ {
		rowStage.SetRow(r, Forward1D(m.Row(r), sys.RowSystem(r), mode))
	}

	newRows := CeilPow2(rows)
	result := bmatrix.New[complex128](newRows, newCols)
	for c := 0; c < newCols; c++ {
		result.SetCol(c, Forward1D(rowStage.Col(c), sys.ColSystem(c), mode))
	}

	return result
}

// Inverse2D reconstructs an origRows x origCols matrix from transform
// coefficients produced by Forward2D: columns are inverted first, then
// rows, mirroring Forward2D's row-then-column order in reverse.
func Inverse2D(m *bmatrix.Matrix[complex128], origRows, origCols int, sys *System2D, mode Mode) *bmatrix.Matrix[complex128] {
	cols := m.Cols()

	colStage := bmatrix.New[complex128](origRows, cols)
	for c := 0; c < cols; c++ {
		colStage.SetCol(c, Inverse1D(m.Col(c), origRows, sys.ColSystem(c), mode))
	}

	result := bmatrix.New[complex128](origRows, origCols)
	for r := 0; r < origRows; r++ {
		result.SetRow(r, Inverse1D(colStage.Row(r), origCols, sys.RowSystem(r), mode))
	}

	return result
}
