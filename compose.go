package txt2img

// Margins are blank rows and columns added around the composed text, in
// font pixels (before scaling).
type Margins struct {
	Top, Bottom, Left, Right int
}

// UniformMargins returns margins of n on every side.
func UniformMargins(n int) Margins {
	return Margins{Top: n, Bottom: n, Left: n, Right: n}
}

// Layout holds the spacing used by Compose.
type Layout struct {
	// LetterGap is the number of blank columns after every character
	// but the last.
	LetterGap int
	// WordGap replaces LetterGap after a space character.
	WordGap int
	Margins Margins
}

// DefaultLayout returns a letter gap of 1, a word gap of 3 and margins of 2.
func DefaultLayout() Layout {
	return Layout{
		LetterGap: 1,
		WordGap:   3,
		Margins:   UniformMargins(2),
	}
}

func (l Layout) validate() error {
	switch {
	case l.LetterGap < 0:
		return invalidArgument("letter gap must be >= 0, got %d", l.LetterGap)
	case l.WordGap < 0:
		return invalidArgument("word gap must be >= 0, got %d", l.WordGap)
	case l.Margins.Top < 0, l.Margins.Bottom < 0, l.Margins.Left < 0, l.Margins.Right < 0:
		return invalidArgument("margins must be >= 0, got %+v", l.Margins)
	}
	return nil
}

// Compose lays out chars with DefaultTable.
func Compose(chars []rune, layout Layout) (*Matrix, error) {
	return DefaultTable.Compose(chars, layout)
}

// Compose concatenates the glyphs of chars into one binary matrix.
//
// Glyphs are separated by layout.LetterGap blank columns, or WordGap after a
// space. The strip is then placed inside the margins. Every character must
// be a key of t, so chars normally comes from t.Normalize.
//
// Empty input yields a blank Height()×1 matrix without margins.
func (t *Table) Compose(chars []rune, layout Layout) (*Matrix, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return NewMatrix(t.height, 1), nil
	}
	glyphs, width, err := t.collect(chars, layout)
	if err != nil {
		return nil, err
	}

	mg := layout.Margins
	m := NewMatrix(mg.Top+t.height+mg.Bottom, mg.Left+width+mg.Right)
	x := mg.Left
	for i, g := range glyphs {
		for y := 0; y < g.rows; y++ {
			copy(m.Row(mg.Top + y)[x:x+g.cols], g.bits[y*g.cols:(y+1)*g.cols])
		}
		x += g.cols + t.gapAfter(chars, i, layout)
	}
	tracer().Debugf("composed %d characters into %dx%d", len(chars), m.Rows, m.Cols)
	return m, nil
}

// Measure returns the size Compose would produce, without allocating it.
func (t *Table) Measure(chars []rune, layout Layout) (rows, cols int, err error) {
	if err := layout.validate(); err != nil {
		return 0, 0, err
	}
	if len(chars) == 0 {
		return t.height, 1, nil
	}
	_, width, err := t.collect(chars, layout)
	if err != nil {
		return 0, 0, err
	}
	mg := layout.Margins
	return mg.Top + t.height + mg.Bottom, mg.Left + width + mg.Right, nil
}

// collect looks up all glyphs and sums the strip width including gaps.
func (t *Table) collect(chars []rune, layout Layout) ([]Glyph, int, error) {
	glyphs := make([]Glyph, len(chars))
	width := 0
	for i, r := range chars {
		g, ok := t.Lookup(r)
		if !ok {
			return nil, 0, invalidArgument("no glyph for %q", r)
		}
		if g.rows != t.height {
			return nil, 0, invalidArgument("glyph %q has %d rows, table height is %d",
				r, g.rows, t.height)
		}
		glyphs[i] = g
		width += g.cols + t.gapAfter(chars, i, layout)
	}
	return glyphs, width, nil
}

func (t *Table) gapAfter(chars []rune, i int, layout Layout) int {
	switch {
	case i == len(chars)-1:
		return 0
	case chars[i] == SpaceRune:
		return layout.WordGap
	default:
		return layout.LetterGap
	}
}
