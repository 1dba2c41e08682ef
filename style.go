package niceplots

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/vg"
)

// SetAlpha sets alpha to a in color c. An alpha already present in c is
// replaced, not combined.
func SetAlpha(c color.Color, a float64) color.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	nc.A = uint8(a*0xff + 0.5)
	return nc
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

var lineTypeNames = map[string]LineType{
	"blank":    BlankLine,
	"solid":    SolidLine,
	"dashed":   DashedLine,
	"dotted":   DottedLine,
	"dotdash":  DotDashLine,
	"longdash": LongdashLine,
	"twodash":  TwodashLine,
}

// ParseLineType accepts the names blank, solid, dashed, dotted, dotdash,
// longdash and twodash.
func ParseLineType(s string) (LineType, error) {
	if lt, ok := lineTypeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lt, nil
	}
	return BlankLine, fmt.Errorf("niceplots: unknown line type %q", s)
}

// Dashes returns the dash pattern of lt for a line of width w.
// Solid and blank lines have no dashes.
func (lt LineType) Dashes(w vg.Length) []vg.Length {
	if w <= 0 {
		w = vg.Points(1)
	}
	switch lt {
	case DashedLine:
		return []vg.Length{4 * w, 2 * w}
	case DottedLine:
		return []vg.Length{w, 2 * w}
	case DotDashLine:
		return []vg.Length{w, 2 * w, 4 * w, 2 * w}
	case LongdashLine:
		return []vg.Length{8 * w, 2 * w}
	case TwodashLine:
		return []vg.Length{2 * w, 2 * w, 6 * w, 2 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]colorful.Color{
	"red":     {R: 1, G: 0, B: 0},
	"green":   {R: 0, G: 1, B: 0},
	"blue":    {R: 0, G: 0, B: 1},
	"cyan":    {R: 0, G: 1, B: 1},
	"magenta": {R: 1, G: 0, B: 1},
	"yellow":  {R: 1, G: 1, B: 0},
	"white":   {R: 1, G: 1, B: 1},
	"gray20":  {R: 0x33 / 255.0, G: 0x33 / 255.0, B: 0x33 / 255.0},
	"gray40":  {R: 0x66 / 255.0, G: 0x66 / 255.0, B: 0x66 / 255.0},
	"gray":    {R: 0x7f / 255.0, G: 0x7f / 255.0, B: 0x7f / 255.0},
	"gray60":  {R: 0x99 / 255.0, G: 0x99 / 255.0, B: 0x99 / 255.0},
	"gray80":  {R: 0xcc / 255.0, G: 0xcc / 255.0, B: 0xcc / 255.0},
	"black":   {R: 0, G: 0, B: 0},
}

// ParseColor understands "#rrggbb", "#rrggbbaa", "#rgb", the names in
// BuiltinColors and "none" (fully transparent).
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return color.Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		alpha := uint64(0xff)
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[7:9], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("niceplots: bad alpha in color %q: %w", s, err)
			}
			alpha = a
			s = s[:7]
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("niceplots: bad color %q: %w", s, err)
		}
		return SetAlpha(c, float64(alpha)/0xff), nil
	}
	if c, ok := BuiltinColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("niceplots: unknown color %q", s)
}

// MustParseColor is like ParseColor but panics on malformed input.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
