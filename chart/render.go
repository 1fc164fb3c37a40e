package chart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 450

	svgMediaType = "image/svg+xml"
)

// Format is an output image format
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png" in any case
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", value)
}

// ContentType returns the HTTP media type of the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return svgMediaType
}

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	return m
}

// Render draws the chart into an image of the requested format. Options
// without a size render at DefaultWidth x DefaultHeight.
func Render(format Format, labels []string, series []Series, labelMap map[string]string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(labels, series, labelMap, opts)
	case FormatPNG:
		return RenderPNG(labels, series, labelMap, opts)
	}
	return nil, fmt.Errorf("unsupported chart format %q", format)
}

// RenderSVG draws the chart as minified SVG
func RenderSVG(labels []string, series []Series, labelMap map[string]string, opts Options) ([]byte, error) {
	raw, err := render(gochart.SVG, labels, series, labelMap, opts)
	if err != nil {
		return nil, err
	}
	out, err := minifier.Bytes(svgMediaType, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to minify chart: %w", err)
	}
	return out, nil
}

// RenderPNG draws the chart as a PNG image
func RenderPNG(labels []string, series []Series, labelMap map[string]string, opts Options) ([]byte, error) {
	return render(gochart.PNG, labels, series, labelMap, opts)
}

func render(provider gochart.RendererProvider, labels []string, series []Series, labelMap map[string]string, opts Options) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	ctx, err := NewRendererContext(provider, int(opts.Width), int(opts.Height))
	if err != nil {
		return nil, err
	}
	DrawMultiLineChart(ctx, labels, series, labelMap, opts)

	var buf bytes.Buffer
	if err := ctx.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
