package chart

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ColorBlack     = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite     = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	ColorGridlines = drawing.Color{R: 0xdd, G: 0xdd, B: 0xdd, A: 255}
)

var namedColors = map[string]drawing.Color{
	"black":  ColorBlack,
	"white":  ColorWhite,
	"blue":   {R: 0, G: 0, B: 255, A: 255},
	"red":    {R: 255, G: 0, B: 0, A: 255},
	"green":  {R: 0, G: 128, B: 0, A: 255},
	"orange": {R: 255, G: 165, B: 0, A: 255},
	"purple": {R: 128, G: 0, B: 128, A: 255},
	"brown":  {R: 165, G: 42, B: 42, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"teal":   {R: 0, G: 128, B: 128, A: 255},
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultPalette returns the series colours: blue, red, green, orange, purple, brown
func DefaultPalette() []drawing.Color {
	return []drawing.Color{
		namedColors["blue"],
		namedColors["red"],
		namedColors["green"],
		namedColors["orange"],
		namedColors["purple"],
		namedColors["brown"],
	}
}

// ParseColor accepts a basic colour name or a #rgb / #rrggbb hex value
func ParseColor(value string) (drawing.Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[value]; ok {
		return c, nil
	}
	if !hexColor.MatchString(value) {
		return drawing.Color{}, fmt.Errorf("invalid color %q", value)
	}
	return drawing.ColorFromHex(strings.TrimPrefix(value, "#")), nil
}

// ParsePalette parses a comma separated list of colours
func ParsePalette(value string) ([]drawing.Color, error) {
	palette := make([]drawing.Color, 0)
	for _, entry := range strings.Split(value, ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		c, err := ParseColor(entry)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}
