package txt2img

import (
	"sort"
	"strings"
)

const (
	// GlyphHeight is the row count shared by all glyphs of DefaultTable.
	GlyphHeight = 7

	// FallbackRune is drawn in place of any character without a glyph.
	FallbackRune = '?'

	// SpaceRune is the word separator. Its glyph is blank and it is
	// followed by the word gap instead of the letter gap.
	SpaceRune = ' '
)

// Glyph is a binary bitmap of one character. All glyphs of a Table share
// the same height, widths vary per glyph. A Glyph is immutable.
type Glyph struct {
	rows, cols int
	bits       []uint8
}

// NewGlyph builds a glyph from rows of '0' and '1' characters, top row
// first. All rows must have the same non-zero length.
func NewGlyph(rows ...string) (Glyph, error) {
	if len(rows) == 0 {
		return Glyph{}, invalidArgument("glyph needs at least one row")
	}
	width := len(rows[0])
	if width == 0 {
		return Glyph{}, invalidArgument("glyph needs at least one column")
	}
	g := Glyph{rows: len(rows), cols: width, bits: make([]uint8, len(rows)*width)}
	for y, row := range rows {
		if len(row) != width {
			return Glyph{}, invalidArgument("glyph row %d has %d columns, expected %d",
				y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '0':
			case '1':
				g.bits[y*width+x] = 1
			default:
				return Glyph{}, invalidArgument("glyph row %d: invalid cell %q", y, row[x])
			}
		}
	}
	return g, nil
}

// MustGlyph is like NewGlyph but panics on malformed rows. It is meant for
// font data compiled into the program.
func MustGlyph(rows ...string) Glyph {
	g, err := NewGlyph(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// BlankGlyph returns a zero-filled glyph of the given size.
func BlankGlyph(height, width int) Glyph {
	return Glyph{rows: height, cols: width, bits: make([]uint8, height*width)}
}

// glyphFromMatrix copies a matrix into a new glyph.
func glyphFromMatrix(m *Matrix) Glyph {
	bits := make([]uint8, len(m.Cells))
	copy(bits, m.Cells)
	return Glyph{rows: m.Rows, cols: m.Cols, bits: bits}
}

// Height returns the number of rows.
func (g Glyph) Height() int {
	return g.rows
}

// Width returns the number of columns.
func (g Glyph) Width() int {
	return g.cols
}

// At returns the cell at row y, column x.
func (g Glyph) At(y, x int) uint8 {
	return g.bits[y*g.cols+x]
}

// IsBlank reports whether no cell of the glyph is set.
func (g Glyph) IsBlank() bool {
	for _, b := range g.bits {
		if b != 0 {
			return false
		}
	}
	return true
}

// Rows returns the glyph as '0'/'1' strings, the inverse of NewGlyph.
func (g Glyph) Rows() []string {
	rows := make([]string, g.rows)
	var sb strings.Builder
	for y := 0; y < g.rows; y++ {
		sb.Reset()
		for x := 0; x < g.cols; x++ {
			sb.WriteByte('0' + g.At(y, x))
		}
		rows[y] = sb.String()
	}
	return rows
}

// Table maps characters to glyphs of a common height. A Table is never
// modified after construction and needs no locking.
type Table struct {
	height int
	glyphs map[rune]Glyph
}

// NewTable validates glyphs and wraps a copy of them in a Table.
//
// Every glyph must have exactly height rows and at least one column, and the
// table must contain FallbackRune and a blank SpaceRune glyph.
func NewTable(height int, glyphs map[rune]Glyph) (*Table, error) {
	if height < 1 {
		return nil, invalidArgument("glyph height must be >= 1, got %d", height)
	}
	t := &Table{height: height, glyphs: make(map[rune]Glyph, len(glyphs))}
	for r, g := range glyphs {
		if g.Height() != height {
			return nil, invalidArgument("glyph %q has %d rows, table height is %d",
				r, g.Height(), height)
		}
		if g.Width() < 1 {
			return nil, invalidArgument("glyph %q has no columns", r)
		}
		for _, b := range g.bits {
			if b > 1 {
				return nil, invalidArgument("glyph %q has non-binary cell %d", r, b)
			}
		}
		t.glyphs[r] = g
	}
	if _, ok := t.glyphs[FallbackRune]; !ok {
		return nil, invalidArgument("glyph table lacks the fallback glyph %q", FallbackRune)
	}
	space, ok := t.glyphs[SpaceRune]
	if !ok {
		return nil, invalidArgument("glyph table lacks the space glyph")
	}
	if !space.IsBlank() {
		return nil, invalidArgument("space glyph must be blank")
	}
	return t, nil
}

// Height returns the row count shared by all glyphs.
func (t *Table) Height() int {
	return t.height
}

// Len returns the number of glyphs.
func (t *Table) Len() int {
	return len(t.glyphs)
}

// Lookup returns the glyph for r. It does not substitute the fallback glyph;
// use Normalize to map arbitrary text onto table keys first.
func (t *Table) Lookup(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Has reports whether r has a glyph.
func (t *Table) Has(r rune) bool {
	_, ok := t.glyphs[r]
	return ok
}

// Fallback returns the character drawn for unsupported input.
func (t *Table) Fallback() rune {
	return FallbackRune
}

// Runes returns all characters of the table in ascending order.
func (t *Table) Runes() []rune {
	runes := make([]rune, 0, len(t.glyphs))
	for r := range t.glyphs {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
