package txt2img

import (
	"github.com/wbrown/txt2img/imageutil"
)

// Renderer turns text into images. Image and Render only read the
// configuration, so a Renderer that is no longer modified may serve
// concurrent calls. A zero table means DefaultTable.
type Renderer struct {
	// Configuration options
	Foreground ColorSpec
	Background ColorSpec
	Layout     Layout
	Scale      int

	table *Table
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: black on white, letter gap 1, word gap 3, margins of 2
// on every side, scale 1, DefaultTable.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Foreground: Black,
		Background: White,
		Layout:     DefaultLayout(),
		Scale:      1,
		table:      DefaultTable,
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithForeground sets the color of set glyph pixels.
func WithForeground(c ColorSpec) RendererOption {
	return func(r *Renderer) {
		r.Foreground = c
	}
}

// WithBackground sets the color of everything else.
func WithBackground(c ColorSpec) RendererOption {
	return func(r *Renderer) {
		r.Background = c
	}
}

// WithLetterGap sets the blank columns between characters.
func WithLetterGap(n int) RendererOption {
	return func(r *Renderer) {
		r.Layout.LetterGap = n
	}
}

// WithWordGap sets the blank columns after a space.
func WithWordGap(n int) RendererOption {
	return func(r *Renderer) {
		r.Layout.WordGap = n
	}
}

// WithMargins sets the blank border, in font pixels.
func WithMargins(m Margins) RendererOption {
	return func(r *Renderer) {
		r.Layout.Margins = m
	}
}

// WithScale sets the integer up-scaling factor.
func WithScale(factor int) RendererOption {
	return func(r *Renderer) {
		r.Scale = factor
	}
}

// WithTable renders with a different font. A nil table keeps the current one.
func WithTable(t *Table) RendererOption {
	return func(r *Renderer) {
		if t != nil {
			r.table = t
		}
	}
}

// Table returns the glyph table used by r.
func (r *Renderer) Table() *Table {
	if r.table == nil {
		return DefaultTable
	}
	return r.table
}

// Image runs the in-memory part of the pipeline: normalize, compose,
// scale and colorize. It has no side effects.
func (r *Renderer) Image(text string) (*PixelBuffer, error) {
	table := r.Table()
	chars := table.Normalize(text)
	m, err := table.Compose(chars, r.Layout)
	if err != nil {
		return nil, err
	}
	scaled, err := Scale(m, r.Scale)
	if err != nil {
		return nil, err
	}
	fg, err := ParseColor(r.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(r.Background)
	if err != nil {
		return nil, err
	}
	return Colorize(scaled, fg, bg), nil
}

// Result describes a written image.
type Result struct {
	Path          string
	Width, Height int
}

// Render draws text and writes it to outputPath, creating missing parent
// directories first. The encoding follows the file extension, PNG by
// default. Nothing is written unless the whole image could be built.
func (r *Renderer) Render(text, outputPath string) (Result, error) {
	buf, err := r.Image(text)
	if err != nil {
		return Result{}, err
	}
	if err := imageutil.EnsureDir(outputPath); err != nil {
		return Result{}, err
	}
	if err := imageutil.SaveImage(buf.ToRGBA(), outputPath); err != nil {
		return Result{}, err
	}
	res := Result{Path: outputPath, Width: buf.Width(), Height: buf.Height()}
	tracer().Infof("image saved to %s (%dx%d px)", res.Path, res.Width, res.Height)
	return res, nil
}

// Render is a shortcut for NewRenderer(opts...).Render(text, outputPath).
func Render(text, outputPath string, opts ...RendererOption) (Result, error) {
	return NewRenderer(opts...).Render(text, outputPath)
}
