package chart

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultPadding = 50

	gridSteps       = 5
	axisLabelOffset = 10
	axisFontSize    = 10
	axisLineWidth   = 1
	seriesLineWidth = 2
	markerRadius    = 4

	legendFontSize     = 14
	legendRightPadding = 150
	legendInset        = 10
	legendSwatch       = 12
	legendSwatchOffset = 8
	legendTextOffset   = 18
	legendLineSpacing  = 20
)

// Series is one line of the chart: a value per x-axis label. Labels without
// a value leave a gap in the line.
type Series struct {
	ID     string             `json:"id"`
	Values map[string]float64 `json:"values"`
}

// Options controls the chart geometry and palette. Zero values fall back to
// the context size, DefaultPadding and DefaultPalette.
type Options struct {
	Width   float64
	Height  float64
	Padding float64
	Colors  []drawing.Color
}

func (o Options) withDefaults(ctx Context) Options {
	w, h := ctx.Size()
	if o.Width <= 0 {
		o.Width = w
	}
	if o.Height <= 0 {
		o.Height = h
	}
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}
	if len(o.Colors) == 0 {
		o.Colors = DefaultPalette()
	}
	return o
}

// plot maps label indexes and values to pixel coordinates
type plot struct {
	width, height, padding float64
	minY, maxY             float64
	labels                 int
}

func (p plot) x(i int) float64 {
	if p.labels == 1 {
		return p.width / 2
	}
	return p.padding + float64(i)*p.stepX()
}

func (p plot) stepX() float64 {
	if p.labels < 2 {
		return 0
	}
	return (p.width - 2*p.padding) / float64(p.labels-1)
}

func (p plot) y(value float64) float64 {
	return p.height - p.padding - (value-p.minY)/(p.maxY-p.minY)*(p.height-2*p.padding)
}

func (p plot) gridY(i int) float64 {
	return p.height - p.padding - (p.height-2*p.padding)/gridSteps*float64(i)
}

// lookup returns the value of a series at label, ignoring NaN and infinities
func lookup(s Series, label string) (float64, bool) {
	v, ok := s.Values[label]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// valueRange returns the y-axis range over every present value. An empty set
// yields [0, 1] and a single distinct value v yields [v-1, v+1].
func valueRange(labels []string, series []Series) (float64, float64) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, label := range labels {
			v, ok := lookup(s, label)
			if !ok {
				continue
			}
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	switch {
	case math.IsInf(minY, 1):
		return 0, 1
	case minY == maxY:
		return minY - 1, maxY + 1
	}
	return minY, maxY
}

// DrawMultiLineChart draws axes, gridlines, one polyline with point markers per
// series, and a legend. Series names are resolved through labelMap, falling back
// to the series ID.
func DrawMultiLineChart(ctx Context, labels []string, series []Series, labelMap map[string]string, opts Options) {
	opts = opts.withDefaults(ctx)
	minY, maxY := valueRange(labels, series)
	p := plot{
		width:   opts.Width,
		height:  opts.Height,
		padding: opts.Padding,
		minY:    minY,
		maxY:    maxY,
		labels:  len(labels),
	}

	ctx.ClearRect(0, 0, p.width, p.height)
	ctx.SetFontSize(axisFontSize)

	drawAxes(ctx, p)
	drawGrid(ctx, p)
	drawXLabels(ctx, p, labels)

	for i, s := range series {
		color := opts.Colors[i%len(opts.Colors)]
		drawSeries(ctx, p, labels, s, color)
	}

	drawLegend(ctx, p, series, labelMap, opts.Colors)
}

func drawAxes(ctx Context, p plot) {
	ctx.SetStrokeColor(ColorBlack)
	ctx.SetLineWidth(axisLineWidth)
	ctx.BeginPath()
	ctx.MoveTo(p.padding, p.padding)
	ctx.LineTo(p.padding, p.height-p.padding)
	ctx.LineTo(p.width-p.padding, p.height-p.padding)
	ctx.Stroke()
}

func drawGrid(ctx Context, p plot) {
	ctx.SetFillColor(ColorBlack)
	ctx.SetTextAlign(AlignRight)
	ctx.SetTextBaseline(BaselineMiddle)

	for i := 0; i <= gridSteps; i++ {
		value := p.minY + (p.maxY-p.minY)/gridSteps*float64(i)
		y := p.gridY(i)
		ctx.FillText(strconv.FormatFloat(value, 'f', 1, 64), p.padding-axisLabelOffset, y)

		ctx.SetStrokeColor(ColorGridlines)
		ctx.BeginPath()
		ctx.MoveTo(p.padding, y)
		ctx.LineTo(p.width-p.padding, y)
		ctx.Stroke()
	}
}

func drawXLabels(ctx Context, p plot, labels []string) {
	ctx.SetTextAlign(AlignCenter)
	ctx.SetTextBaseline(BaselineTop)
	for i, label := range labels {
		ctx.FillText(label, p.x(i), p.height-p.padding+axisLabelOffset)
	}
}

func drawSeries(ctx Context, p plot, labels []string, s Series, color drawing.Color) {
	ctx.SetStrokeColor(color)
	ctx.SetLineWidth(seriesLineWidth)
	ctx.BeginPath()
	previous := false
	for i, label := range labels {
		v, ok := lookup(s, label)
		if !ok {
			previous = false
			continue
		}
		if previous {
			ctx.LineTo(p.x(i), p.y(v))
		} else {
			ctx.MoveTo(p.x(i), p.y(v))
		}
		previous = true
	}
	ctx.Stroke()

	for i, label := range labels {
		v, ok := lookup(s, label)
		if !ok {
			continue
		}
		ctx.SetFillColor(color)
		ctx.BeginPath()
		ctx.Arc(p.x(i), p.y(v), markerRadius, 0, 2*math.Pi)
		ctx.Fill()
	}
}

func drawLegend(ctx Context, p plot, series []Series, labelMap map[string]string, colors []drawing.Color) {
	ctx.SetTextAlign(AlignLeft)
	ctx.SetTextBaseline(BaselineMiddle)
	ctx.SetFontSize(legendFontSize)

	x := p.width - legendRightPadding + legendInset
	y := p.padding
	for i, s := range series {
		name := labelMap[s.ID]
		if name == "" {
			name = s.ID
		}
		ctx.SetFillColor(colors[i%len(colors)])
		ctx.FillRect(x, y-legendSwatchOffset, legendSwatch, legendSwatch)
		ctx.SetFillColor(ColorBlack)
		ctx.FillText(name, x+legendTextOffset, y)
		y += legendLineSpacing
	}
}
