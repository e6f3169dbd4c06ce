package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/wbrown/txt2img"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'txt2img'
func tracer() tracing.Trace {
	return tracing.Select("txt2img")
}

func main() {
	initDisplay()

	text := flag.String("text", "",
		"Text to render (default: remaining arguments)")
	outputFile := flag.String("output", "",
		"Path of the output image; the extension selects png, jpg, gif, bmp or tiff (required)")
	fg := flag.String("fg", "black",
		"Foreground color: name, #RRGGBB or r,g,b")
	bg := flag.String("bg", "white",
		"Background color: name, #RRGGBB or r,g,b")
	letterGap := flag.Int("letter-gap", 1, "Blank columns between letters")
	wordGap := flag.Int("word-gap", 3, "Blank columns after a space")
	margin := flag.Int("margin", 2, "Margin on all sides, in font pixels")
	marginTop := flag.Int("margin-top", 2, "Top margin (overrides -margin)")
	marginBottom := flag.Int("margin-bottom", 2, "Bottom margin (overrides -margin)")
	marginLeft := flag.Int("margin-left", 2, "Left margin (overrides -margin)")
	marginRight := flag.Int("margin-right", 2, "Right margin (overrides -margin)")
	scale := flag.Int("scale", 1, "Integer scale factor")
	glyphFile := flag.String("glyphs", "",
		"Load the font from a .glyphs file (see compute_glyphs)")
	fontPath := flag.String("font", "",
		"Rasterize a TrueType font instead of the built-in one ('go' for Go Regular)")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false,
		"Interactive mode: render every line typed")
	flag.Parse()

	if err := setupTracing(*tlevel); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	if *outputFile == "" {
		pterm.Error.Println("Please provide the output path using the -output flag")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Per-side margins only win when given explicitly
	margins := txt2img.UniformMargins(*margin)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "margin-top":
			margins.Top = *marginTop
		case "margin-bottom":
			margins.Bottom = *marginBottom
		case "margin-left":
			margins.Left = *marginLeft
		case "margin-right":
			margins.Right = *marginRight
		}
	})

	table, err := loadTable(*glyphFile, *fontPath)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("Error loading font: %v", err))
		os.Exit(3)
	}

	s := &settings{
		output:    *outputFile,
		table:     table,
		letterGap: *letterGap,
		wordGap:   *wordGap,
		margins:   margins,
		scale:     *scale,
	}
	if err := s.setColor(&s.fg, *fg); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	if err := s.setColor(&s.bg, *bg); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}

	if *interactive {
		if err := repl(s); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(5)
		}
		return
	}

	msg := *text
	if msg == "" {
		msg = strings.Join(flag.Args(), " ")
	}
	if _, err := s.render(msg, s.output); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(6)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing routes the library trace to the Go logger.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.txt2img":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// loadTable picks the glyph source: a .glyphs file, a TrueType font or
// the built-in table.
func loadTable(glyphFile, fontPath string) (*txt2img.Table, error) {
	switch {
	case glyphFile != "" && fontPath != "":
		return nil, fmt.Errorf("use either -glyphs or -font, not both")
	case glyphFile != "":
		table, name, err := txt2img.LoadTable(glyphFile)
		if err != nil {
			return nil, err
		}
		tracer().Infof("loaded %d glyphs of %s", table.Len(), name)
		return table, nil
	case fontPath == "go":
		return txt2img.TableFromTrueType(goregular.TTF, txt2img.TrueTypeOptions{})
	case fontPath != "":
		ttf, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, err
		}
		return txt2img.TableFromTrueType(ttf, txt2img.TrueTypeOptions{})
	}
	return txt2img.DefaultTable, nil
}
