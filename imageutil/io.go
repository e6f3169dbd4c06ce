package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension.
// Unknown extensions default to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	default:
		return PNG
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case GIF:
		return gif.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format %v", format)
}

// EnsureDir creates the parent directory of path, including missing
// ancestors. A path without a directory part refers to the working
// directory and needs nothing.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif, bmp, tif/tiff).
// The image is encoded completely before the file is created, so a failed
// encoding leaves no partial file behind.
func SaveImage(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatFromPath(path)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP and TIFF.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return ToRGBA(img), nil
}
