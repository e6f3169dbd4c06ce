package txt2img

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ToColor converts an RGB color to an opaque color.RGBA.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// ColorSpec is a color as given by a caller: a Triple, a Name or an
// already resolved RGB. ParseColor turns it into an RGB.
type ColorSpec interface {
	colorSpec()
}

// Triple is a color given as three integer channels in [0, 255].
type Triple []int

// Name is a color given as a named color ("red", "tab:blue", "k") or as a
// hex string of the form #RRGGBB.
type Name string

func (RGB) colorSpec()    {}
func (Triple) colorSpec() {}
func (Name) colorSpec()   {}

// acceptedFormats is quoted by errors for unrecognized color strings.
const acceptedFormats = "use a color name, a hex string '#RRGGBB' or an (R, G, B) triple"

// ParseColor validates spec and converts it to RGB. Invalid input is an
// error wrapping ErrInvalidArgument; values are never clamped.
func ParseColor(spec ColorSpec) (RGB, error) {
	switch spec := spec.(type) {
	case RGB:
		return spec, nil
	case Triple:
		return parseTriple(spec)
	case Name:
		return parseName(string(spec))
	default:
		return RGB{}, invalidArgument("unsupported color type %T; %s", spec, acceptedFormats)
	}
}

// ParseColorString parses command line input: either "r,g,b" with integer
// channels or anything ParseColor accepts as a Name.
func ParseColorString(s string) (RGB, error) {
	if !strings.Contains(s, ",") {
		return ParseColor(Name(s))
	}
	parts := strings.Split(s, ",")
	triple := make(Triple, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, invalidArgument("color channel %q in %q is not an integer", p, s)
		}
		triple[i] = v
	}
	return ParseColor(triple)
}

func parseTriple(t Triple) (RGB, error) {
	if len(t) != 3 {
		return RGB{}, invalidArgument("RGB triple must have exactly 3 elements: %v", []int(t))
	}
	for _, v := range t {
		if v < 0 || v > 255 {
			return RGB{}, invalidArgument(
				"each RGB channel must be an integer between 0 and 255, got %d in %v",
				v, []int(t))
		}
	}
	return RGB{uint8(t[0]), uint8(t[1]), uint8(t[2])}, nil
}

func parseName(s string) (RGB, error) {
	key := strings.ToLower(s)
	if strings.HasPrefix(key, "#") {
		if c, ok := parseHex(key); ok {
			return c, nil
		}
	} else if c, ok := baseColors[key]; ok {
		return RGB{fromFraction(c[0]), fromFraction(c[1]), fromFraction(c[2])}, nil
	} else if c, ok := tableauColors[key]; ok {
		return c, nil
	} else if c, ok := colornames.Map[key]; ok {
		return RGB{c.R, c.G, c.B}, nil
	}
	return RGB{}, invalidArgument("unrecognized color %q; %s", s, acceptedFormats)
}

// parseHex parses a lowercased "#rrggbb" string.
func parseHex(s string) (RGB, bool) {
	if len(s) != 7 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

// fromFraction converts a channel in [0, 1] to [0, 255], truncating.
func fromFraction(f float64) uint8 {
	return uint8(f * 255)
}

// baseColors are the single-letter shorthands, given as fractions.
var baseColors = map[string][3]float64{
	"b": {0, 0, 1},
	"g": {0, 0.5, 0},
	"r": {1, 0, 0},
	"c": {0, 0.75, 0.75},
	"m": {0.75, 0, 0.75},
	"y": {0.75, 0.75, 0},
	"k": {0, 0, 0},
	"w": {1, 1, 1},
}

// tableauColors is the Tableau 10 palette.
var tableauColors = map[string]RGB{
	"tab:blue":   {0x1f, 0x77, 0xb4},
	"tab:orange": {0xff, 0x7f, 0x0e},
	"tab:green":  {0x2c, 0xa0, 0x2c},
	"tab:red":    {0xd6, 0x27, 0x28},
	"tab:purple": {0x94, 0x67, 0xbd},
	"tab:brown":  {0x8c, 0x56, 0x4b},
	"tab:pink":   {0xe3, 0x77, 0xc2},
	"tab:gray":   {0x7f, 0x7f, 0x7f},
	"tab:grey":   {0x7f, 0x7f, 0x7f},
	"tab:olive":  {0xbc, 0xbd, 0x22},
	"tab:cyan":   {0x17, 0xbe, 0xcf},
}
