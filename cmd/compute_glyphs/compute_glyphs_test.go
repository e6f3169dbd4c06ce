package main

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/txt2img"
)

func TestComputeGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "txt2img")
	defer teardown()
	//
	out := filepath.Join(t.TempDir(), "goregular.glyphs")
	table, err := computeGlyphs("go", out, txt2img.TrueTypeOptions{Height: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, table.Height())

	loaded, name, err := txt2img.LoadTable(out)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", name)
	assert.Equal(t, table.Runes(), loaded.Runes())
	for _, r := range table.Runes() {
		want, _ := table.Lookup(r)
		got, _ := loaded.Lookup(r)
		assert.Equal(t, want.Rows(), got.Rows(), "glyph %q", r)
	}
}

func TestComputeGlyphsMissingFont(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.glyphs")
	_, err := computeGlyphs(filepath.Join(t.TempDir(), "none.ttf"), out, txt2img.TrueTypeOptions{})
	assert.Error(t, err)
}
