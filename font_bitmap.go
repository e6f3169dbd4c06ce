package txt2img

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TrueTypeOptions controls how TableFromTrueType rasterizes a font.
type TrueTypeOptions struct {
	// Height is the number of glyph rows. Defaults to GlyphHeight.
	Height int
	// Threshold is the coverage alpha above which a pixel is set.
	// Defaults to 64 (25%).
	Threshold uint8
	// Runes lists the characters to rasterize. Defaults to printable ASCII.
	// SpaceRune and FallbackRune are always included.
	Runes []rune
}

func (opts TrueTypeOptions) withDefaults() TrueTypeOptions {
	if opts.Height == 0 {
		opts.Height = GlyphHeight
	}
	if opts.Threshold == 0 {
		opts.Threshold = 64
	}
	if len(opts.Runes) == 0 {
		for r := rune(32); r <= rune(126); r++ {
			opts.Runes = append(opts.Runes, r)
		}
	}
	return opts
}

// TableFromTrueType pre-renders a TrueType font into a glyph table.
//
// Each glyph is as wide as the rounded-up advance width of its character,
// so the result stays variable-width like DefaultTable. Characters the font
// does not map are left out, to be replaced by '?' during normalization.
//
// The low default threshold keeps thin strokes such as the dot on 'i'
// which a 50% cut would drop at these sizes.
func TableFromTrueType(ttf []byte, opts TrueTypeOptions) (*Table, error) {
	opts = opts.withDefaults()
	if opts.Height < 1 {
		return nil, invalidArgument("glyph height must be >= 1, got %d", opts.Height)
	}
	ttfFont, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(opts.Height),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent >> 6   // 26.6 fixed point to pixels
	descent := metrics.Descent >> 6 // usually positive in x/image
	baseline := (opts.Height + int(ascent) - int(descent)) / 2

	runes := make([]rune, 0, len(opts.Runes)+2)
	runes = append(append(runes, opts.Runes...), FallbackRune, SpaceRune)
	glyphs := make(map[rune]Glyph, len(runes))
	for _, r := range runes {
		if _, done := glyphs[r]; done {
			continue
		}
		if r != FallbackRune && r != SpaceRune && ttfFont.Index(r) == 0 {
			tracer().Debugf("font has no glyph for %q", r)
			continue
		}
		width := 1
		if adv, ok := face.GlyphAdvance(r); ok && adv.Ceil() > 1 {
			width = adv.Ceil()
		}
		if r == SpaceRune {
			glyphs[r] = BlankGlyph(opts.Height, width)
			continue
		}
		glyphs[r] = rasterizeGlyph(face, r, width, opts.Height, baseline, opts.Threshold)
	}
	tracer().Debugf("rasterized %d glyphs at %d rows", len(glyphs), opts.Height)
	return NewTable(opts.Height, glyphs)
}

// rasterizeGlyph draws r into an alpha image and thresholds it to one bit
// per pixel.
func rasterizeGlyph(face font.Face, r rune, width, height, baseline int, threshold uint8) Glyph {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, baseline),
	}
	d.DrawString(string(r))

	m := NewMatrix(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if img.AlphaAt(x, y).A > threshold {
				m.Set(y, x, 1)
			}
		}
	}
	return glyphFromMatrix(m)
}

// GlyphData is the serialized form of a glyph table, stored gob-encoded
// and gzip-compressed in .glyphs files.
type GlyphData struct {
	FontName string
	Height   int
	Glyphs   map[rune][]string
}

// WriteTable serializes t to w.
func WriteTable(w io.Writer, t *Table, name string) error {
	data := GlyphData{
		FontName: name,
		Height:   t.Height(),
		Glyphs:   make(map[rune][]string, t.Len()),
	}
	for r, g := range t.glyphs {
		data.Glyphs[r] = g.Rows()
	}

	gz := gzip.NewWriter(w)
	if err := gob.NewEncoder(gz).Encode(&data); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode glyph data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip: %w", err)
	}
	return nil
}

// ReadTable deserializes a table written by WriteTable and validates it
// like NewTable does. It returns the table and its font name.
func ReadTable(r io.Reader) (*Table, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	var data GlyphData
	if err := gob.NewDecoder(gr).Decode(&data); err != nil {
		return nil, "", fmt.Errorf("failed to decode glyph data: %w", err)
	}

	glyphs := make(map[rune]Glyph, len(data.Glyphs))
	for ch, rows := range data.Glyphs {
		g, err := NewGlyph(rows...)
		if err != nil {
			return nil, "", fmt.Errorf("glyph %q: %w", ch, err)
		}
		glyphs[ch] = g
	}
	t, err := NewTable(data.Height, glyphs)
	if err != nil {
		return nil, "", err
	}
	return t, data.FontName, nil
}

// SaveTable writes t to a .glyphs file.
func SaveTable(path string, t *Table, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteTable(f, t, name); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadTable reads a .glyphs file.
func LoadTable(path string) (*Table, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open glyph data: %w", err)
	}
	defer f.Close()
	return ReadTable(f)
}
