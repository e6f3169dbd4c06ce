package txt2img

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleIdentity(t *testing.T) {
	m, err := Compose(Normalize("Hi 7"), DefaultLayout())
	require.NoError(t, err)

	scaled, err := Scale(m, 1)
	require.NoError(t, err)
	assert.Equal(t, m.Rows, scaled.Rows)
	assert.Equal(t, m.Cols, scaled.Cols)
	assert.Equal(t, m.Cells, scaled.Cells)

	// a copy, not the same storage
	scaled.Set(0, 0, 1)
	assert.Zero(t, m.At(0, 0))
}

func TestScaleBlocks(t *testing.T) {
	m, err := Compose(Normalize("Wq?"), Layout{LetterGap: 2, WordGap: 3, Margins: Margins{Top: 1, Left: 3}})
	require.NoError(t, err)

	for _, f := range []int{2, 3, 5} {
		scaled, err := Scale(m, f)
		require.NoError(t, err)
		require.Equal(t, m.Rows*f, scaled.Rows)
		require.Equal(t, m.Cols*f, scaled.Cols)
		for i := 0; i < scaled.Rows; i++ {
			for j := 0; j < scaled.Cols; j++ {
				if scaled.At(i, j) != m.At(i/f, j/f) {
					t.Fatalf("factor %d: cell (%d,%d) = %d, source (%d,%d) = %d",
						f, i, j, scaled.At(i, j), i/f, j/f, m.At(i/f, j/f))
				}
			}
		}
		assert.Equal(t, m.Count()*f*f, scaled.Count())
	}
}

func TestScaleSmall(t *testing.T) {
	m := &Matrix{Rows: 2, Cols: 2, Cells: []uint8{1, 0, 0, 1}}
	scaled, err := Scale(m, 2)
	require.NoError(t, err)
	assert.Equal(t, "##..\n##..\n..##\n..##\n", scaled.String())
}

func TestScaleInvalid(t *testing.T) {
	m := NewMatrix(7, 1)
	for _, f := range []int{0, -1, -100} {
		_, err := Scale(m, f)
		assert.ErrorIs(t, err, ErrInvalidArgument, "factor %d", f)
	}
}

func TestScaleTooLarge(t *testing.T) {
	m := NewMatrix(7, 1)
	for _, f := range []int{math.MaxInt32, math.MaxInt / 2, math.MaxInt} {
		var err error
		assert.NotPanics(t, func() { _, err = Scale(m, f) }, "factor %d", f)
		assert.ErrorIs(t, err, ErrInvalidArgument, "factor %d", f)
	}

	scaled, err := Scale(m, 1000)
	require.NoError(t, err)
	assert.Equal(t, 7000, scaled.Rows)

	// empty matrices scale to empty matrices
	scaled, err = Scale(NewMatrix(0, 0), math.MaxInt32)
	require.NoError(t, err)
	assert.Zero(t, scaled.Rows)
}
