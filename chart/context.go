// Package chart draws the season averages line chart.
//
// Drawing goes through Context, a small 2D canvas abstraction with stateful
// stroke, fill and text settings. RendererContext implements it on top of a
// go-chart renderer so the same drawing code produces SVG and PNG output.
package chart

import "github.com/wcharczuk/go-chart/v2/drawing"

// TextAlign is the horizontal anchor of text relative to its x coordinate
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchor of text relative to its y coordinate
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// Context is a 2D drawing surface in pixel coordinates with (0,0) at the top left.
// State setters affect every later draw call until changed again.
type Context interface {
	Size() (width, height float64)
	ClearRect(x, y, width, height float64)

	SetStrokeColor(c drawing.Color)
	SetFillColor(c drawing.Color)
	SetLineWidth(width float64)
	SetFontSize(px float64)
	SetTextAlign(align TextAlign)
	SetTextBaseline(baseline TextBaseline)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centred on (x, y); angles are radians
	Arc(x, y, radius, startAngle, endAngle float64)
	Stroke()
	Fill()

	FillRect(x, y, width, height float64)
	FillText(text string, x, y float64)
}
