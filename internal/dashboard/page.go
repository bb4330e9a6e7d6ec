// Package dashboard builds the admin dashboard page: the test code form
// and the canvas the test chart is attached to.
package dashboard

import (
	"errors"
	"io"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/codes"
)

var (
	// ErrDegenerateGradient is returned for a gradient whose start and end
	// points coincide.
	ErrDegenerateGradient = errors.New("gradient has zero length")
	// ErrAlreadyAttached is returned when a second chart is attached to
	// the same canvas.
	ErrAlreadyAttached = errors.New("canvas already has a chart")
)

// WidgetType defines the sections a page can show.
type WidgetType string

const (
	WidgetSummaryCards  WidgetType = "summary_cards"
	WidgetCodeForm      WidgetType = "code_form"
	WidgetTestChart     WidgetType = "test_chart"
	WidgetCategoryTable WidgetType = "category_table"
)

// HTMLConfig configures what to include in the page.
type HTMLConfig struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Theme       string       `yaml:"theme"` // "dark" or "light"
	Widgets     []WidgetType `yaml:"widgets"`
}

// DefaultConfig returns the full admin dashboard.
func DefaultConfig() HTMLConfig {
	return HTMLConfig{
		Title:       "Panel de Administración",
		Description: "Pruebas realizadas por categoría",
		Theme:       "light",
		Widgets: []WidgetType{
			WidgetSummaryCards,
			WidgetCodeForm,
			WidgetTestChart,
			WidgetCategoryTable,
		},
	}
}

// Page is a single-use HTML document. It implements chart.Document.
type Page struct {
	config      HTMLConfig
	table       *codes.Table
	targetID    string
	chart       *chart.Chart
	placeholder string
}

// New returns a page whose chart canvas has the given id.
func New(config HTMLConfig, table *codes.Table, targetID string) *Page {
	if targetID == "" {
		targetID = chart.DefaultTargetID
	}
	if table == nil {
		table = codes.Default()
	}
	return &Page{config: config, table: table, targetID: targetID}
}

// Lookup returns the chart canvas when the page shows the chart widget.
func (p *Page) Lookup(id string) (chart.Target, bool) {
	if id != p.targetID || !p.hasWidget(WidgetTestChart) {
		return nil, false
	}
	return &canvas{page: p}, true
}

// Chart returns the attached chart, if any.
func (p *Page) Chart() *chart.Chart {
	return p.chart
}

// Placeholder returns the message shown instead of the chart, if any.
func (p *Page) Placeholder() string {
	return p.placeholder
}

func (p *Page) hasWidget(w WidgetType) bool {
	for _, have := range p.config.Widgets {
		if have == w {
			return true
		}
	}
	return false
}

// WriteTo writes the rendered page to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	doc, err := p.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, doc)
	return int64(n), err
}

// canvas is the <canvas> element of a page.
type canvas struct {
	page *Page
}

func (c *canvas) LinearGradient(x0, y0, x1, y1 float64, stops ...chart.ColorStop) (*chart.Gradient, error) {
	if x0 == x1 && y0 == y1 {
		return nil, ErrDegenerateGradient
	}
	return &chart.Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}, nil
}

func (c *canvas) Placeholder(message string) {
	c.page.placeholder = message
}

func (c *canvas) Attach(ch *chart.Chart) error {
	if c.page.chart != nil {
		return ErrAlreadyAttached
	}
	c.page.chart = ch
	return nil
}

