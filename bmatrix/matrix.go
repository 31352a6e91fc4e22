// Package bmatrix implements a dense, row-major generic matrix with an O(1)
// logical transpose and the clipped copy/paste operations the block pipeline
// uses to tile and untile channel planes.
package bmatrix

// Matrix is a dense rows x cols grid of T, stored row-major. Transpose()
// flips row/col addressing without touching the backing data; call
// MemTranspose to physically reorder the data when a strided view would be
// too slow for the caller's access pattern.
type Matrix[T any] struct {
	data      []T
	rows      int
	cols      int
	transpose bool
}

// New returns a rows x cols matrix with all elements zero-valued.
func New[T any](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("bmatrix: negative dimension")
	}
	return &Matrix[T]{data: make([]T, rows*cols), rows: rows, cols: cols}
}

// Rows returns the logical row count (post-transpose).
func (m *Matrix[T]) Rows() int {
	if m.transpose {
		return m.cols
	}
	return m.rows
}

// Cols returns the logical column count (post-transpose).
func (m *Matrix[T]) Cols() int {
	if m.transpose {
		return m.rows
	}
	return m.cols
}

func (m *Matrix[T]) physicalIndex(r, c int) int {
	if m.transpose {
		r, c = c, r
	}
	return r*m.cols + c
}

// At returns the element at logical (r, c).
func (m *Matrix[T]) At(r, c int) T {
	return m.data[m.physicalIndex(r, c)]
}

// Set writes the element at logical (r, c).
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[m.physicalIndex(r, c)] = v
}

// Transpose toggles the logical transpose flag. It does not move data.
func (m *Matrix[T]) Transpose() {
	m.transpose = !m.transpose
}

// IsTransposed reports whether the logical transpose flag is set.
func (m *Matrix[T]) IsTransposed() bool {
	return m.transpose
}

// MemTranspose physically reorders the backing storage to match the current
// logical view and clears the transpose flag, so future Row/Col access is
// unit-strided again.
func (m *Matrix[T]) MemTranspose() {
	if !m.transpose {
		return
	}
	newData := make([]T, len(m.data))
	rows, cols := m.Rows(), m.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			newData[r*cols+c] = m.At(r, c)
		}
	}
	m.data = newData
	m.rows, m.cols = rows, cols
	m.transpose = false
}

// Row returns a copy of logical row r.
func (m *Matrix[T]) Row(r int) []T {
	cols := m.Cols()
	out := make([]T, cols)
	for c := 0; c < cols; c++ {
		out[c] = m.At(r, c)
	}
	return out
}

// Col returns a copy of logical column c.
func (m *Matrix[T]) Col(c int) []T {
	rows := m.Rows()
	out := make([]T, rows)
	for r := 0; r < rows; r++ {
		out[r] = m.At(r, c)
	}
	return out
}

// SetRow overwrites logical row r from vals. len(vals) must equal Cols().
func (m *Matrix[T]) SetRow(r int, vals []T) {
	if len(vals) != m.Cols() {
		panic("bmatrix: SetRow length mismatch")
	}
	for c, v := range vals {
		m.Set(r, c, v)
	}
}

// SetCol overwrites logical column c from vals. len(vals) must equal Rows().
func (m *Matrix[T]) SetCol(c int, vals []T) {
	if len(vals) != m.Rows() {
		panic("bmatrix: SetCol length mismatch")
	}
	for r, v := range vals {
		m.Set(r, c, v)
	}
}

// CopyToZeros returns a new rows x cols matrix containing m in its
// top-left corner (clipped if m is larger), zero-padded elsewhere.
func (m *Matrix[T]) CopyToZeros(rows, cols int) *Matrix[T] {
	out := New[T](rows, cols)
	srcRows, srcCols := m.Rows(), m.Cols()
	for r := 0; r < rows && r < srcRows; r++ {
		for c := 0; c < cols && c < srcCols; c++ {
			out.Set(r, c, m.At(r, c))
		}
	}
	return out
}

// CopyToPos pastes src into a copy of dst at the given offset, clipped to
// dst's bounds, and returns the result. dst is not modified.
func CopyToPos[T any](dst, src *Matrix[T], offsetRow, offsetCol int) *Matrix[T] {
	out := dst.CopyToZeros(dst.Rows(), dst.Cols())
	dstRows, dstCols := out.Rows(), out.Cols()
	srcRows, srcCols := src.Rows(), src.Cols()
	for r := 0; r < srcRows; r++ {
		dr := r + offsetRow
		if dr < 0 || dr >= dstRows {
			continue
		}
		for c := 0; c < srcCols; c++ {
			dc := c + offsetCol
			if dc < 0 || dc >= dstCols {
				continue
			}
			out.Set(dr, dc, src.At(r, c))
		}
	}
	return out
}

// SubmatrixFromPos extracts a rows x cols block starting at (offsetRow,
// offsetCol), zero-filling any part that falls outside src's bounds.
func SubmatrixFromPos[T any](src *Matrix[T], offsetRow, offsetCol, rows, cols int) *Matrix[T] {
	out := New[T](rows, cols)
	srcRows, srcCols := src.Rows(), src.Cols()
	for r := 0; r < rows; r++ {
		sr := r + offsetRow
		if sr < 0 || sr >= srcRows {
			continue
		}
		for c := 0; c < cols; c++ {
			sc := c + offsetCol
			if sc < 0 || sc >= srcCols {
				continue
			}
			out.Set(r, c, src.At(sr, sc))
		}
	}
	return out
}
