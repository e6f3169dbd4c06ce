package txt2img

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"github.com/wbrown/txt2img/imageutil"
)

// --- Test Suite Preparation ------------------------------------------------

type RendererTestEnviron struct {
	suite.Suite
	dir string
}

// listen for 'go test' command --> run test methods
func TestRendererFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "txt2img")
	defer teardown()
	suite.Run(t, new(RendererTestEnviron))
}

// run once, before test suite methods
func (env *RendererTestEnviron) SetupSuite() {
	tracing.Select("txt2img").SetTraceLevel(tracing.LevelInfo)
}

// run before each test method
func (env *RendererTestEnviron) SetupTest() {
	env.dir = env.T().TempDir()
}

// --- Tests -----------------------------------------------------------------

func (env *RendererTestEnviron) TestDefaults() {
	r := NewRenderer()
	env.Equal(ColorSpec(Black), r.Foreground)
	env.Equal(ColorSpec(White), r.Background)
	env.Equal(DefaultLayout(), r.Layout)
	env.Equal(1, r.Scale)
	env.Same(DefaultTable, r.Table())

	r = NewRenderer(WithTable(nil))
	env.Same(DefaultTable, r.Table(), "nil table keeps the default")
}

func (env *RendererTestEnviron) TestLiteralRenderer() {
	r := &Renderer{Foreground: Black, Background: White, Scale: 1}
	env.Same(DefaultTable, r.Table())
	buf, err := r.Image("a")
	env.Require().NoError(err)
	want, err := NewRenderer(WithMargins(Margins{}), WithLetterGap(0), WithWordGap(0)).Image("a")
	env.Require().NoError(err)
	env.Equal(want.Pix, buf.Pix)
}

func (env *RendererTestEnviron) TestRenderHi() {
	path := filepath.Join(env.dir, "hi.png")
	res, err := Render("Hi", path, WithScale(2), WithLetterGap(1))
	env.Require().NoError(err)

	h, _ := DefaultTable.Lookup('H')
	i, _ := DefaultTable.Lookup('i')
	wantCols := (2 + h.Width() + 1 + i.Width() + 2) * 2
	wantRows := (7 + 2 + 2) * 2
	env.Equal(Result{Path: path, Width: wantCols, Height: wantRows}, res)

	img, err := imageutil.LoadImage(path)
	env.Require().NoError(err)
	env.Equal(wantCols, img.Bounds().Dx())
	env.Equal(wantRows, img.Bounds().Dy())

	// top-left of 'H' is ink, the margin is background
	env.Equal(uint8(0), img.RGBAAt(4, 4).R)
	env.Equal(uint8(0), img.RGBAAt(5, 5).R)
	env.Equal(uint8(255), img.RGBAAt(3, 3).R)
	env.Equal(uint8(255), img.RGBAAt(0, 0).R)
}

func (env *RendererTestEnviron) TestRenderMatchesImage() {
	r := NewRenderer(
		WithForeground(Name("tab:red")),
		WithBackground(Triple{10, 20, 30}),
		WithMargins(Margins{Top: 1, Bottom: 0, Left: 3, Right: 1}),
		WithWordGap(5),
		WithScale(3),
	)
	buf, err := r.Image("Texto de prueba 123.")
	env.Require().NoError(err)

	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		path := filepath.Join(env.dir, name)
		res, err := r.Render("Texto de prueba 123.", path)
		env.Require().NoError(err, name)
		env.Equal(buf.Width(), res.Width)
		env.Equal(buf.Height(), res.Height)

		img, err := imageutil.LoadImage(path)
		env.Require().NoError(err, name)
		env.True(imageutil.SameRGB(buf, img), "%s differs from the in-memory image", name)
	}
}

func (env *RendererTestEnviron) TestRenderCreatesDirectories() {
	path := filepath.Join(env.dir, "a", "b", "c", "nested.png")
	_, err := Render("ok", path)
	env.Require().NoError(err)
	_, err = os.Stat(path)
	env.NoError(err)
}

func (env *RendererTestEnviron) TestRenderEmptyText() {
	buf, err := NewRenderer(WithScale(4)).Image("")
	env.Require().NoError(err)
	env.Equal(4, buf.Width())
	env.Equal(28, buf.Height())
}

func (env *RendererTestEnviron) TestRenderErrors() {
	tests := []struct {
		name string
		opts []RendererOption
	}{
		{"scale 0", []RendererOption{WithScale(0)}},
		{"scale -1", []RendererOption{WithScale(-1)}},
		{"bad foreground", []RendererOption{WithForeground(Name("not_a_color"))}},
		{"bad background", []RendererOption{WithBackground(Triple{256, 0, 0})}},
		{"nil color", []RendererOption{WithForeground(nil)}},
		{"negative gap", []RendererOption{WithLetterGap(-1)}},
		{"huge scale", []RendererOption{WithScale(math.MaxInt32)}},
	}
	for _, tt := range tests {
		path := filepath.Join(env.dir, "x", "err.png")
		_, err := Render("abc", path, tt.opts...)
		env.ErrorIs(err, ErrInvalidArgument, tt.name)
		_, statErr := os.Stat(filepath.Dir(path))
		env.True(os.IsNotExist(statErr), "%s: nothing may be created on failure", tt.name)
	}
}

func (env *RendererTestEnviron) TestRenderIOFailure() {
	// a regular file where a directory is expected
	blocker := filepath.Join(env.dir, "file")
	env.Require().NoError(os.WriteFile(blocker, []byte("x"), 0o644))
	_, err := Render("abc", filepath.Join(blocker, "out.png"))
	env.Error(err)
	env.NotErrorIs(err, ErrInvalidArgument)
}

func (env *RendererTestEnviron) TestConcurrentRenders() {
	r := NewRenderer(WithScale(2))
	want, err := r.Image("concurrent")
	env.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([]*PixelBuffer, 8)
	errs := make([]error, 8)
	for n := range results {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n], errs[n] = r.Image("concurrent")
		}(n)
	}
	wg.Wait()
	for n := range results {
		env.Require().NoError(errs[n])
		env.Equal(want.Pix, results[n].Pix)
	}
}
