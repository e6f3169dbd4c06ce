package txt2img

import "unicode"

// DefaultTable is the built-in 7-row font. It covers a-z, A-Z, 0-9, space,
// '.' and '?'. It is built once at package initialization.
var DefaultTable = mustDefaultTable()

// Lowercase letters, digits and punctuation, top row first.
var defaultGlyphRows = map[rune][]string{
	'a': {"0110", "1001", "1001", "1111", "1001", "1001", "1001"},
	'b': {"1110", "1001", "1001", "1110", "1001", "1001", "1110"},
	'c': {"0110", "1001", "1000", "1000", "1000", "1001", "0110"},
	'd': {"1110", "1001", "1001", "1001", "1001", "1001", "1110"},
	'e': {"1111", "1000", "1000", "1110", "1000", "1000", "1111"},
	'f': {"1111", "1000", "1000", "1110", "1000", "1000", "1000"},
	'g': {"0110", "1001", "1000", "1011", "1001", "1001", "0110"},
	'h': {"1001", "1001", "1001", "1111", "1001", "1001", "1001"},
	'i': {"010", "010", "010", "010", "010", "010", "010"},
	'j': {"0001", "0001", "0001", "0001", "0001", "1001", "0110"},
	'k': {"1001", "1010", "1100", "1000", "1100", "1010", "1001"},
	'l': {"10", "10", "10", "10", "10", "10", "11"},
	'm': {"10001", "11011", "10101", "10101", "10001", "10001", "10001"},
	'n': {"1001", "1101", "1101", "1011", "1011", "1001", "1001"},
	'o': {"0110", "1001", "1001", "1001", "1001", "1001", "0110"},
	'p': {"1110", "1001", "1001", "1110", "1000", "1000", "1000"},
	'q': {"0110", "1001", "1001", "1001", "1101", "0110", "0001"},
	'r': {"1110", "1001", "1001", "1110", "1010", "1001", "1001"},
	's': {"0110", "1001", "1000", "0110", "0001", "1001", "0110"},
	't': {"111", "010", "010", "010", "010", "010", "010"},
	'u': {"1001", "1001", "1001", "1001", "1001", "1001", "0110"},
	'v': {"1001", "1001", "1001", "1001", "1010", "1010", "0100"},
	'w': {"10001", "10001", "10001", "10101", "10101", "11011", "10001"},
	'x': {"1001", "1001", "0110", "0110", "0110", "1001", "1001"},
	'y': {"1001", "1001", "0110", "0110", "0100", "0100", "0100"},
	'z': {"1111", "0001", "0010", "0100", "1000", "1000", "1111"},

	'0': {"0110", "1001", "1011", "1101", "1001", "1001", "0110"},
	'1': {"010", "110", "010", "010", "010", "010", "111"},
	'2': {"0110", "1001", "0001", "0010", "0100", "1000", "1111"},
	'3': {"0110", "1001", "0001", "0110", "0001", "1001", "0110"},
	'4': {"0010", "0110", "1010", "1010", "1111", "0010", "0010"},
	'5': {"1111", "1000", "1000", "1110", "0001", "1001", "0110"},
	'6': {"0110", "1001", "1000", "1110", "1001", "1001", "0110"},
	'7': {"1111", "0001", "0010", "0010", "0100", "0100", "0100"},
	'8': {"0110", "1001", "1001", "0110", "1001", "1001", "0110"},
	'9': {"0110", "1001", "1001", "0111", "0001", "1001", "0110"},

	'.': {"00", "00", "00", "00", "00", "11", "11"},
	'?': {"0110", "1001", "0001", "0010", "0100", "0000", "0100"},
}

// spaceWidth is narrower than most letters.
const spaceWidth = 3

func mustDefaultTable() *Table {
	glyphs := make(map[rune]Glyph, 2*26+10+3)
	for r, rows := range defaultGlyphRows {
		g := MustGlyph(rows...)
		glyphs[r] = g
		// Capitals share the lowercase shapes.
		if unicode.IsLower(r) {
			glyphs[unicode.ToUpper(r)] = g
		}
	}
	glyphs[SpaceRune] = BlankGlyph(GlyphHeight, spaceWidth)
	t, err := NewTable(GlyphHeight, glyphs)
	if err != nil {
		panic(err)
	}
	return t
}
