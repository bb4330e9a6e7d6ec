// Package raster draws an attached test chart to PNG or SVG.
package raster

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/junkd0g/labchart/internal/chart"
)

var (
	// ErrGradientUnsupported is returned by the canvas surface; bars are
	// drawn with their solid palette colour.
	ErrGradientUnsupported = errors.New("raster canvas does not support gradients")
	// ErrNothingToDraw is returned by Render when no chart is attached.
	ErrNothingToDraw = errors.New("no chart attached")
	ErrUnknownFormat = errors.New("unknown image format")
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// Canvas is an off-screen rendering target. It implements both
// chart.Document and chart.Target.
type Canvas struct {
	id          string
	width       int
	height      int
	chart       *chart.Chart
	placeholder string
}

// NewCanvas returns a canvas with the given element id and pixel size.
func NewCanvas(id string, width, height int) *Canvas {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = width / 2
	}
	return &Canvas{id: id, width: width, height: height}
}

func (c *Canvas) Lookup(id string) (chart.Target, bool) {
	if id != c.id {
		return nil, false
	}
	return c, true
}

func (c *Canvas) LinearGradient(x0, y0, x1, y1 float64, stops ...chart.ColorStop) (*chart.Gradient, error) {
	return nil, ErrGradientUnsupported
}

func (c *Canvas) Placeholder(message string) {
	c.placeholder = message
}

func (c *Canvas) Attach(ch *chart.Chart) error {
	c.chart = ch
	return nil
}

// Chart returns the attached chart.
func (c *Canvas) Chart() *chart.Chart {
	return c.chart
}

// PlaceholderText returns the empty-state message, if one was set.
func (c *Canvas) PlaceholderText() string {
	return c.placeholder
}

// Render writes the attached chart to w.
func (c *Canvas) Render(w io.Writer, format Format) error {
	if c.chart == nil {
		return ErrNothingToDraw
	}

	var provider gochart.RendererProvider
	switch format {
	case PNG:
		provider = gochart.PNG
	case SVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	graph := c.barChart()
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func (c *Canvas) barChart() gochart.BarChart {
	cfg := c.chart.Config
	scales := cfg.Options.Scales

	bars := make([]gochart.Value, len(c.chart.Bars))
	maxValue := 0.0
	for i, bar := range c.chart.Bars {
		v := finite(bar.Count)
		maxValue = math.Max(maxValue, v)
		bars[i] = gochart.Value{
			Label: bar.Label,
			Value: v,
			Style: gochart.Style{
				FillColor:   toDrawing(bar.Fill.Solid),
				StrokeColor: toDrawing(bar.Scheme.Border),
				StrokeWidth: 2,
			},
		}
	}

	tickStyle := gochart.Style{
		FontColor: toDrawing(scales.Y.Ticks.Color),
		FontSize:  float64(scales.Y.Ticks.Font.Size),
	}

	title := ""
	if len(cfg.Data.Datasets) > 0 {
		title = cfg.Data.Datasets[0].Label
	}

	return gochart.BarChart{
		Title:      title,
		Width:      c.width,
		Height:     c.height,
		BarWidth:   barWidth(c.width, len(bars)),
		BarSpacing: barWidth(c.width, len(bars)) / 2,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		XAxis:      tickStyle,
		YAxis: gochart.YAxis{
			Name:      scales.Y.Title.Text,
			NameStyle: gochart.Style{FontColor: toDrawing(scales.Y.Title.Color)},
			Style:     tickStyle,
			Range:     &gochart.ContinuousRange{Min: 0, Max: niceMax(maxValue)},
			Ticks:     ticks(niceMax(maxValue)),
		},
		Bars: bars,
	}
}

func toDrawing(c chart.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// finite maps NaN and infinities to zero; go-chart cannot place them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return math.Ceil(v * 11 / 10)
}

func ticks(top float64) []gochart.Tick {
	const steps = 5
	out := make([]gochart.Tick, 0, steps+1)
	for i := 0; i <= steps; i++ {
		v := top * float64(i) / steps
		out = append(out, gochart.Tick{Value: v, Label: trimFloat(v)})
	}
	return out
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func barWidth(width, n int) int {
	if n == 0 {
		return 0
	}
	w := width / (n * 2)
	if w > 80 {
		w = 80
	}
	if w < 8 {
		w = 8
	}
	return w
}
