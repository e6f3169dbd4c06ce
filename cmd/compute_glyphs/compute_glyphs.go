package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/wbrown/txt2img"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'txt2img'
func tracer() tracing.Trace {
	return tracing.Select("txt2img")
}

// readFont returns the bytes of a TrueType font; "go" selects the
// embedded Go Regular font.
func readFont(path string) ([]byte, string, error) {
	if path == "go" {
		return goregular.TTF, "Go Regular", nil
	}
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return ttf, filepath.Base(path), nil
}

// computeGlyphs rasterizes a font and writes the table to outputPath.
func computeGlyphs(fontPath, outputPath string, opts txt2img.TrueTypeOptions) (*txt2img.Table, error) {
	ttf, name, err := readFont(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	table, err := txt2img.TableFromTrueType(ttf, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute glyphs: %w", err)
	}
	if err := txt2img.SaveTable(outputPath, table, name); err != nil {
		return nil, fmt.Errorf("failed to save glyph data: %w", err)
	}
	return table, nil
}

func main() {
	inputFont := flag.String("font", "", "Path to the input font file, or 'go' (required)")
	outputFile := flag.String("output", "", "Path to save the output glyph data file (required)")
	height := flag.Int("height", txt2img.GlyphHeight, "Glyph height in pixels")
	threshold := flag.Int("threshold", 64, "Coverage alpha (1-255) above which a pixel is set")
	flag.Parse()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.txt2img":   "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.LevelInfo)

	if *inputFont == "" || *outputFile == "" {
		fmt.Println("Both -font and -output flags are required")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *threshold < 1 || *threshold > 255 {
		fmt.Println("-threshold must be between 1 and 255")
		os.Exit(1)
	}

	tracer().Infof("Computing glyphs for font: %s", *inputFont)
	table, err := computeGlyphs(*inputFont, *outputFile, txt2img.TrueTypeOptions{
		Height:    *height,
		Threshold: uint8(*threshold),
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	tracer().Infof("Computed %d glyphs of %d rows", table.Len(), table.Height())

	// Report file size
	if fileInfo, err := os.Stat(*outputFile); err == nil {
		tracer().Infof("Saved glyph data to %s (%.2f KB)", *outputFile, float64(fileInfo.Size())/1024)
	}
	baseName := strings.TrimSuffix(filepath.Base(*outputFile), filepath.Ext(*outputFile))
	tracer().Infof("Use it with: txt2img -glyphs %s -output %s.png <text>", *outputFile, baseName)
}
