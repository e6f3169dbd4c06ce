package txt2img

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// equivalents maps accented letters to their unaccented ASCII form.
var equivalents = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ñ': 'n', 'ç': 'c', 'ý': 'y', 'ÿ': 'y',

	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ä': 'A', 'Ã': 'A', 'Å': 'A',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
	'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Ö': 'O', 'Õ': 'O',
	'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
	'Ñ': 'N', 'Ç': 'C', 'Ý': 'Y',
}

// Normalize maps text onto characters of DefaultTable.
func Normalize(text string) []rune {
	return DefaultTable.Normalize(text)
}

// Normalize maps every character of text onto a key of t. Accented letters
// become their plain form, anything else without a glyph becomes '?'.
// The result has exactly one entry per rune of text.
func (t *Table) Normalize(text string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, t.normalizeRune(r))
	}
	return out
}

func (t *Table) normalizeRune(r rune) rune {
	if e, ok := equivalents[r]; ok {
		r = e
	}
	if t.Has(r) {
		return r
	}
	if base, ok := baseLetter(r); ok && t.Has(base) {
		return base
	}
	return FallbackRune
}

// baseLetter returns the first rune of the canonical decomposition of r if
// all remaining runes are non-spacing marks, e.g. 'ő' → 'o'.
func baseLetter(r rune) (rune, bool) {
	d := norm.NFD.String(string(r))
	base, size := utf8.DecodeRuneInString(d)
	if size == len(d) {
		return 0, false
	}
	for _, m := range d[size:] {
		if !unicode.Is(unicode.Mn, m) {
			return 0, false
		}
	}
	return base, true
}
