package chart

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type strokedPath struct {
	color drawing.Color
	width float64
	ops   []string
}

type marker struct {
	x, y, radius float64
	color        drawing.Color
}

type text struct {
	body     string
	x, y     float64
	align    TextAlign
	baseline TextBaseline
	fontSize float64
	color    drawing.Color
}

type rect struct {
	x, y, w, h float64
	color      drawing.Color
}

// recorder is a Context that remembers what was drawn
type recorder struct {
	width, height float64

	stroke    drawing.Color
	fill      drawing.Color
	lineWidth float64
	fontSize  float64
	align     TextAlign
	baseline  TextBaseline
	path      []string
	arcs      []marker

	cleared []rect
	strokes []strokedPath
	markers []marker
	texts   []text
	rects   []rect
}

func newRecorder(width, height float64) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) Size() (float64, float64) { return r.width, r.height }

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.cleared = append(r.cleared, rect{x: x, y: y, w: w, h: h})
}

func (r *recorder) SetStrokeColor(c drawing.Color) { r.stroke = c }
func (r *recorder) SetFillColor(c drawing.Color) { r.fill = c }
func (r *recorder) SetLineWidth(w float64) { r.lineWidth = w }
func (r *recorder) SetFontSize(px float64) { r.fontSize = px }
func (r *recorder) SetTextAlign(a TextAlign) { r.align = a }
func (r *recorder) SetTextBaseline(b TextBaseline) { r.baseline = b }
func (r *recorder) BeginPath() { r.path, r.arcs = nil, nil }
func (r *recorder) MoveTo(x, y float64) { r.path = append(r.path, point("M", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.path = append(r.path, point("L", x, y)) }
func (r *recorder) FillRect(x, y, w, h float64) { r.rects = append(r.rects, rect{x, y, w, h, r.fill}) }
func (r *recorder) Arc(x, y, radius, start, end float64) {
	r.arcs = append(r.arcs, marker{x: x, y: y, radius: radius})
}

func (r *recorder) Stroke() {
	r.strokes = append(r.strokes, strokedPath{color: r.stroke, width: r.lineWidth, ops: r.path})
}

func (r *recorder) Fill() {
	for _, arc := range r.arcs {
		arc.color = r.fill
		r.markers = append(r.markers, arc)
	}
}

func (r *recorder) FillText(body string, x, y float64) {
	r.texts = append(r.texts, text{body, x, y, r.align, r.baseline, r.fontSize, r.fill})
}

func (r *recorder) strokesIn(color drawing.Color) []strokedPath {
	found := make([]strokedPath, 0)
	for _, s := range r.strokes {
		if s.color == color {
			found = append(found, s)
		}
	}
	return found
}

func (r *recorder) text(body string) (text, bool) {
	for _, t := range r.texts {
		if t.body == body {
			return t, true
		}
	}
	return text{}, false
}

func point(op string, x, y float64) string {
	return fmt.Sprintf("%s %.1f %.1f", op, x, y)
}

func blue() drawing.Color { return DefaultPalette()[0] }

func TestDrawMultiLineChartScalesTwoPoints(t *testing.T) {
	ctx := newRecorder(400, 300)
	series := []Series{{ID: "alice", Values: map[string]float64{"2020": 10, "2021": 20}}}

	DrawMultiLineChart(ctx, []string{"2020", "2021"}, series, nil, Options{})

	require.Equal(t, []rect{{x: 0, y: 0, w: 400, h: 300}}, ctx.cleared)

	lines := ctx.strokesIn(blue())
	require.Len(t, lines, 1)
	assert.Equal(t, 2.0, lines[0].width)
	assert.Equal(t, []string{"M 50.0 250.0", "L 350.0 50.0"}, lines[0].ops)

	assert.Equal(t, []marker{
		{x: 50, y: 250, radius: 4, color: blue()},
		{x: 350, y: 50, radius: 4, color: blue()},
	}, ctx.markers)
}

func TestDrawMultiLineChartAxesAndGrid(t *testing.T) {
	ctx := newRecorder(400, 300)
	series := []Series{{ID: "alice", Values: map[string]float64{"2020": 10, "2021": 20}}}

	DrawMultiLineChart(ctx, []string{"2020", "2021"}, series, nil, Options{})

	axes := ctx.strokesIn(ColorBlack)
	require.Len(t, axes, 1)
	assert.Equal(t, 1.0, axes[0].width)
	assert.Equal(t, []string{"M 50.0 50.0", "L 50.0 250.0", "L 350.0 250.0"}, axes[0].ops)

	grid := ctx.strokesIn(ColorGridlines)
	require.Len(t, grid, 6)
	assert.Equal(t, []string{"M 50.0 250.0", "L 350.0 250.0"}, grid[0].ops)
	assert.Equal(t, []string{"M 50.0 50.0", "L 350.0 50.0"}, grid[5].ops)

	for i, want := range []string{"10.0", "12.0", "14.0", "16.0", "18.0", "20.0"} {
		label, ok := ctx.text(want)
		require.True(t, ok, want)
		assert.Equal(t, 40.0, label.x)
		assert.Equal(t, 250.0-40*float64(i), label.y)
		assert.Equal(t, AlignRight, label.align)
		assert.Equal(t, BaselineMiddle, label.baseline)
	}

	first, ok := ctx.text("2020")
	require.True(t, ok)
	assert.Equal(t, text{body: "2020", x: 50, y: 260, align: AlignCenter, baseline: BaselineTop, fontSize: 10, color: ColorBlack}, first)
	last, _ := ctx.text("2021")
	assert.Equal(t, 350.0, last.x)
}

func TestDrawMultiLineChartGaps(t *testing.T) {
	labels := []string{"2018", "2019", "2020", "2021"}

	t.Run("line restarts after a gap", func(t *testing.T) {
		ctx := newRecorder(400, 300)
		series := []Series{{ID: "a", Values: map[string]float64{"2018": 10, "2019": 20, "2021": 15}}}

		DrawMultiLineChart(ctx, labels, series, nil, Options{})

		lines := ctx.strokesIn(blue())
		require.Len(t, lines, 1)
		require.Len(t, lines[0].ops, 3)
		assert.True(t, strings.HasPrefix(lines[0].ops[0], "M "))
		assert.True(t, strings.HasPrefix(lines[0].ops[1], "L "))
		assert.Equal(t, "M 350.0 150.0", lines[0].ops[2])
		assert.Len(t, ctx.markers, 3)
	})

	t.Run("isolated points keep their markers", func(t *testing.T) {
		ctx := newRecorder(400, 300)
		series := []Series{{ID: "a", Values: map[string]float64{"2018": 10, "2020": 20}}}

		DrawMultiLineChart(ctx, labels, series, nil, Options{})

		lines := ctx.strokesIn(blue())
		require.Len(t, lines, 1)
		assert.Equal(t, []string{"M 50.0 250.0", "M 250.0 50.0"}, lines[0].ops)
		assert.Len(t, ctx.markers, 2)
	})

	t.Run("values for unknown labels and NaN are ignored", func(t *testing.T) {
		ctx := newRecorder(400, 300)
		series := []Series{{ID: "a", Values: map[string]float64{"2018": 10, "2019": math.NaN(), "1999": 500, "2021": 20}}}

		DrawMultiLineChart(ctx, labels, series, nil, Options{})

		_, ok := ctx.text("20.0")
		assert.True(t, ok)
		assert.Len(t, ctx.markers, 2)
	})
}

func TestDrawMultiLineChartDegenerateRanges(t *testing.T) {
	t.Run("no values", func(t *testing.T) {
		ctx := newRecorder(400, 300)

		DrawMultiLineChart(ctx, []string{"2020", "2021"}, nil, nil, Options{})

		for _, want := range []string{"0.0", "0.2", "0.4", "0.6", "0.8", "1.0"} {
			_, ok := ctx.text(want)
			assert.True(t, ok, want)
		}
		assert.Empty(t, ctx.markers)
		assert.Empty(t, ctx.rects)
	})

	t.Run("single distinct value", func(t *testing.T) {
		ctx := newRecorder(400, 300)
		series := []Series{{ID: "a", Values: map[string]float64{"2020": 7, "2021": 7}}}

		DrawMultiLineChart(ctx, []string{"2020", "2021"}, series, nil, Options{})

		_, ok := ctx.text("6.0")
		assert.True(t, ok)
		_, ok = ctx.text("8.0")
		assert.True(t, ok)
		require.Len(t, ctx.markers, 2)
		assert.Equal(t, 150.0, ctx.markers[0].y)
	})

	t.Run("single label is centred", func(t *testing.T) {
		ctx := newRecorder(400, 300)
		series := []Series{{ID: "a", Values: map[string]float64{"2020": 90}}}

		DrawMultiLineChart(ctx, []string{"2020"}, series, nil, Options{})

		label, ok := ctx.text("2020")
		require.True(t, ok)
		assert.Equal(t, 200.0, label.x)
		require.Len(t, ctx.markers, 1)
		assert.Equal(t, 200.0, ctx.markers[0].x)
		assert.Equal(t, 150.0, ctx.markers[0].y)
	})
}

func TestDrawMultiLineChartNeverEmitsNonFiniteCoordinates(t *testing.T) {
	cases := map[string][]Series{
		"empty":   nil,
		"flat":    {{ID: "a", Values: map[string]float64{"x": 3}}},
		"one nan": {{ID: "a", Values: map[string]float64{"x": math.NaN()}}},
		"inf":     {{ID: "a", Values: map[string]float64{"x": math.Inf(1), "y": 2}}},
	}
	for name, series := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := newRecorder(300, 200)
			DrawMultiLineChart(ctx, []string{"x", "y"}, series, nil, Options{})
			for _, s := range ctx.strokes {
				for _, op := range s.ops {
					assert.NotContains(t, op, "NaN")
					assert.NotContains(t, op, "Inf")
				}
			}
			for _, m := range ctx.markers {
				assert.False(t, math.IsNaN(m.x) || math.IsNaN(m.y))
			}
		})
	}
}

func TestDrawMultiLineChartLegend(t *testing.T) {
	ctx := newRecorder(400, 300)
	series := []Series{
		{ID: "alice", Values: map[string]float64{"2020": 10}},
		{ID: "bob", Values: map[string]float64{"2020": 12}},
	}

	DrawMultiLineChart(ctx, []string{"2020"}, series, map[string]string{"alice": "Alice"}, Options{})

	palette := DefaultPalette()
	assert.Equal(t, []rect{
		{x: 260, y: 42, w: 12, h: 12, color: palette[0]},
		{x: 260, y: 62, w: 12, h: 12, color: palette[1]},
	}, ctx.rects)

	alice, ok := ctx.text("Alice")
	require.True(t, ok)
	assert.Equal(t, text{body: "Alice", x: 278, y: 50, align: AlignLeft, baseline: BaselineMiddle, fontSize: 14, color: ColorBlack}, alice)

	bob, ok := ctx.text("bob")
	require.True(t, ok, "unknown ids fall back to the raw identifier")
	assert.Equal(t, 70.0, bob.y)
}

func TestDrawMultiLineChartPaletteWraps(t *testing.T) {
	ctx := newRecorder(400, 300)
	series := make([]Series, 7)
	for i := range series {
		series[i] = Series{ID: fmt.Sprintf("m%d", i), Values: map[string]float64{"2020": float64(i)}}
	}

	DrawMultiLineChart(ctx, []string{"2020"}, series, nil, Options{})

	require.Len(t, ctx.rects, 7)
	assert.Equal(t, blue(), ctx.rects[6].color)
	assert.Len(t, ctx.strokesIn(blue()), 2)
}

func TestDrawMultiLineChartOptions(t *testing.T) {
	ctx := newRecorder(1000, 1000)
	red := namedColors["red"]
	series := []Series{{ID: "a", Values: map[string]float64{"x": 0, "y": 10}}}

	DrawMultiLineChart(ctx, []string{"x", "y"}, series, nil, Options{Width: 200, Height: 100, Padding: 20, Colors: []drawing.Color{red}})

	assert.Equal(t, []rect{{x: 0, y: 0, w: 200, h: 100}}, ctx.cleared)
	lines := ctx.strokesIn(red)
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"M 20.0 80.0", "L 180.0 20.0"}, lines[0].ops)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Blue")
	require.NoError(t, err)
	assert.Equal(t, blue(), c)

	c, err = ParseColor("#dddddd")
	require.NoError(t, err)
	assert.Equal(t, ColorGridlines, c)

	c, err = ParseColor("fff")
	require.NoError(t, err)
	assert.Equal(t, ColorWhite, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("chartreuse-ish")
	assert.Error(t, err)

	palette, err := ParsePalette("red, #00ff00,,blue")
	require.NoError(t, err)
	assert.Len(t, palette, 3)
	_, err = ParsePalette("red,nope")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" SVG ")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	f, err = ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.ContentType())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestRenderSVG(t *testing.T) {
	series := []Series{
		{ID: "alice", Values: map[string]float64{"2020": 101.5, "2021": 97.25}},
		{ID: "bob", Values: map[string]float64{"2021": 110}},
	}

	out, err := RenderSVG([]string{"2020", "2021"}, series, map[string]string{"alice": "Alice"}, Options{Width: 640, Height: 320})

	require.NoError(t, err)
	body := string(out)
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "bob")
	assert.NotContains(t, body, "NaN")
}

func TestRenderPNG(t *testing.T) {
	series := []Series{{ID: "alice", Values: map[string]float64{"2020": 101.5}}}

	out, err := Render(FormatPNG, []string{"2020"}, series, nil, Options{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))

	_, err = Render(Format("gif"), nil, nil, nil, Options{})
	assert.Error(t, err)
}
