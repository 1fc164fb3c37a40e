package chart

import (
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type pathOpKind int

const (
	opMove pathOpKind = iota
	opLine
	opArc
)

type pathOp struct {
	kind                pathOpKind
	x, y                float64
	radius, start, stop float64
}

func (op pathOp) fullCircle() bool {
	return op.kind == opArc && math.Abs(op.stop-op.start) >= 2*math.Pi
}

// RendererContext implements Context on a go-chart renderer. The current path
// is buffered and replayed into the renderer on every Stroke or Fill.
type RendererContext struct {
	r          gochart.Renderer
	width      float64
	height     float64
	background drawing.Color

	stroke    drawing.Color
	fill      drawing.Color
	lineWidth float64
	fontSize  float64
	align     TextAlign
	baseline  TextBaseline

	path []pathOp
}

// NewRendererContext creates a width x height surface from a go-chart renderer
// provider such as gochart.SVG or gochart.PNG
func NewRendererContext(provider gochart.RendererProvider, width, height int) (*RendererContext, error) {
	r, err := provider(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart font: %w", err)
	}
	r.SetFont(font)

	return &RendererContext{
		r:          r,
		width:      float64(width),
		height:     float64(height),
		background: ColorWhite,
		stroke:     ColorBlack,
		fill:       ColorBlack,
		lineWidth:  1,
		fontSize:   axisFontSize,
	}, nil
}

// Save writes the rendered image
func (c *RendererContext) Save(w io.Writer) error {
	if err := c.r.Save(w); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

func (c *RendererContext) Size() (float64, float64) {
	return c.width, c.height
}

// ClearRect paints the area with the background colour
func (c *RendererContext) ClearRect(x, y, width, height float64) {
	c.fillRect(x, y, width, height, c.background)
}

func (c *RendererContext) SetStrokeColor(color drawing.Color) { c.stroke = color }
func (c *RendererContext) SetFillColor(color drawing.Color) { c.fill = color }
func (c *RendererContext) SetLineWidth(width float64) { c.lineWidth = width }
func (c *RendererContext) SetFontSize(px float64) { c.fontSize = px }
func (c *RendererContext) SetTextAlign(align TextAlign) { c.align = align }
func (c *RendererContext) SetTextBaseline(b TextBaseline) { c.baseline = b }

func (c *RendererContext) BeginPath() {
	c.path = c.path[:0]
}

func (c *RendererContext) MoveTo(x, y float64) {
	c.path = append(c.path, pathOp{kind: opMove, x: x, y: y})
}

func (c *RendererContext) LineTo(x, y float64) {
	c.path = append(c.path, pathOp{kind: opLine, x: x, y: y})
}

func (c *RendererContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.path = append(c.path, pathOp{kind: opArc, x: x, y: y, radius: radius, start: startAngle, stop: endAngle})
}

func (c *RendererContext) Stroke() {
	if len(c.path) == 0 {
		return
	}
	c.r.SetStrokeColor(c.stroke)
	c.r.SetStrokeWidth(c.lineWidth)
	c.r.SetFillColor(drawing.ColorTransparent)
	c.replay()
	c.r.Stroke()
}

// Fill fills the current path. A path holding a single full circle is drawn
// with the renderer's circle primitive; go-chart's SVG arcs collapse when the
// start and end points coincide.
func (c *RendererContext) Fill() {
	if len(c.path) == 0 {
		return
	}
	if len(c.path) == 1 && c.path[0].fullCircle() {
		op := c.path[0]
		c.r.SetFillColor(c.fill)
		c.r.SetStrokeColor(drawing.ColorTransparent)
		c.r.SetStrokeWidth(0)
		c.r.Circle(op.radius, px(op.x), px(op.y))
		return
	}
	c.r.SetFillColor(c.fill)
	c.r.SetStrokeColor(drawing.ColorTransparent)
	c.r.SetStrokeWidth(0)
	c.replay()
	c.r.Close()
	c.r.Fill()
}

func (c *RendererContext) FillRect(x, y, width, height float64) {
	c.fillRect(x, y, width, height, c.fill)
}

// FillText draws text anchored according to the current align and baseline.
// go-chart always anchors at the left of the alphabetic baseline, so the
// anchor is shifted by the measured text box.
func (c *RendererContext) FillText(text string, x, y float64) {
	c.r.SetFontColor(c.fill)
	c.r.SetFontSize(c.fontSize * 72 / c.r.GetDPI())

	box := c.r.MeasureText(text)
	w, h := float64(box.Width()), float64(box.Height())

	switch c.align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	switch c.baseline {
	case BaselineTop:
		y += h
	case BaselineMiddle:
		y += h / 2
	}
	c.r.Text(text, px(x), px(y))
}

func (c *RendererContext) fillRect(x, y, width, height float64, color drawing.Color) {
	c.r.SetFillColor(color)
	c.r.SetStrokeColor(drawing.ColorTransparent)
	c.r.SetStrokeWidth(0)
	c.r.MoveTo(px(x), px(y))
	c.r.LineTo(px(x+width), px(y))
	c.r.LineTo(px(x+width), px(y+height))
	c.r.LineTo(px(x), px(y+height))
	c.r.Close()
	c.r.Fill()
}

func (c *RendererContext) replay() {
	for _, op := range c.path {
		switch op.kind {
		case opMove:
			c.r.MoveTo(px(op.x), px(op.y))
		case opLine:
			c.r.LineTo(px(op.x), px(op.y))
		case opArc:
			c.r.ArcTo(px(op.x), px(op.y), op.radius, op.radius, op.start, op.stop-op.start)
		}
	}
}

func px(v float64) int {
	return int(math.Round(v))
}
