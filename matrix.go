package txt2img

import "strings"

// Matrix is a dense binary matrix stored row-major. Cells hold 0 or 1.
//
// Compose produces a Matrix holding the composed text, Scale produces an
// enlarged copy of one. Neither ever modifies its input.
type Matrix struct {
	Rows, Cols int
	Cells      []uint8
}

// NewMatrix returns a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]uint8, rows*cols),
	}
}

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) uint8 {
	return m.Cells[i*m.Cols+j]
}

// Set sets the cell at row i, column j.
func (m *Matrix) Set(i, j int, v uint8) {
	m.Cells[i*m.Cols+j] = v
}

// Row returns row i as a slice sharing the matrix storage.
func (m *Matrix) Row(i int) []uint8 {
	return m.Cells[i*m.Cols : (i+1)*m.Cols]
}

// Clone creates a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	clone := NewMatrix(m.Rows, m.Cols)
	copy(clone.Cells, m.Cells)
	return clone
}

// Count returns the number of set cells.
func (m *Matrix) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// String draws the matrix with '#' for set and '.' for clear cells,
// one line per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.Rows * (m.Cols + 1))
	for i := 0; i < m.Rows; i++ {
		for _, v := range m.Row(i) {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
