package txt2img

import "math"

// Scale enlarges m by an integer factor using nearest-neighbor block
// replication: every cell becomes a factor×factor block of the same value,
// so cell (i, j) of the result equals cell (i/factor, j/factor) of m.
//
// A factor of 1 returns a copy. Factors below 1 are rejected, as are
// factors whose RGB raster would not fit in an int.
func Scale(m *Matrix, factor int) (*Matrix, error) {
	if factor < 1 {
		return nil, invalidArgument("scale factor must be >= 1, got %d", factor)
	}
	if cells := m.Rows * m.Cols; cells > 0 && factor > math.MaxInt/(cells*3)/factor {
		return nil, invalidArgument("scale factor %d too large for a %dx%d matrix", factor, m.Rows, m.Cols)
	}
	if factor == 1 {
		return m.Clone(), nil
	}

	scaled := NewMatrix(m.Rows*factor, m.Cols*factor)
	for i := 0; i < m.Rows; i++ {
		src := m.Row(i)
		// Build the first row of the block, then copy it down.
		first := scaled.Row(i * factor)
		for j, v := range src {
			block := first[j*factor : (j+1)*factor]
			for k := range block {
				block[k] = v
			}
		}
		for k := 1; k < factor; k++ {
			copy(scaled.Row(i*factor+k), first)
		}
	}
	return scaled, nil
}
