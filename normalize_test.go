package txt2img

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"á", "a"},
		{"@", "?"},
		{"Hola", "Hola"},
		{"Año", "Ano"},
		{"ÁÉÍÓÚ", "AEIOU"},
		{"pingüino", "pinguino"},
		{"crème brûlée", "creme brulee"},
		{"Straße", "Stra?e"},
		{"ő", "o"}, // not in the fixed table, decomposes to o + mark
		{"a,b!", "a?b?"},
		{"日本", "??"},
		{"\xff", "?"},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.Equal(t, tt.want, string(got), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeLengthAndKeys(t *testing.T) {
	inputs := []string{
		"The quick brown fox jumps over the lazy dog.",
		"¿Qué pasó? ¡Mañana!",
		"tab\tand\nnewline",
		"emoji 🙂 here",
	}
	for _, in := range inputs {
		out := Normalize(in)
		assert.Len(t, out, utf8.RuneCountInString(in), "input %q", in)
		for _, r := range out {
			assert.True(t, DefaultTable.Has(r), "%q is not a table key", r)
		}
	}
}

func TestNormalizeOtherTable(t *testing.T) {
	table, err := NewTable(1, map[rune]Glyph{
		'?': MustGlyph("1"),
		' ': BlankGlyph(1, 1),
		'x': MustGlyph("1"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "x??", string(table.Normalize("xaé")))
}
