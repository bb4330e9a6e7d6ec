package chart

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrTargetNotFound is returned when the document has no element with the
// configured target id.
var ErrTargetNotFound = errors.New("rendering target not found")

// Document resolves rendering targets by element id.
type Document interface {
	Lookup(id string) (Target, bool)
}

// Target is the element a chart is drawn into.
type Target interface {
	Surface
	// Placeholder replaces the content around the target with a message.
	Placeholder(message string)
	// Attach binds the chart to the target.
	Attach(c *Chart) error
}

// Bar is one rendered bar with its resolved styling.
type Bar struct {
	Label  string
	Count  float64
	Scheme ColorScheme
	Fill   Fill
}

// Chart is the rendering object attached to a target.
type Chart struct {
	TargetID string
	Bars     []Bar
	Total    float64
	Config   Config
	Tooltips []Tooltip
}

// TooltipTitle returns the tooltip title of bar i.
func (c *Chart) TooltipTitle(i int) string {
	return c.Tooltips[i].Title
}

// TooltipBody returns the tooltip body lines of bar i.
func (c *Chart) TooltipBody(i int) []string {
	return c.Tooltips[i].Body
}

// Renderer builds bar charts from datasets. It holds no per-render state.
type Renderer struct {
	opts Options
	log  logrus.FieldLogger
}

// NewRenderer returns a renderer. A nil logger uses the logrus standard logger.
func NewRenderer(opts Options, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{opts: opts.withDefaults(), log: log}
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render draws data into the document's target. An empty dataset shows the
// placeholder and returns a nil chart with a nil error.
func (r *Renderer) Render(doc Document, data Dataset) (*Chart, error) {
	log := r.log.WithField("target", r.opts.TargetID)

	target, ok := doc.Lookup(r.opts.TargetID)
	if !ok || target == nil {
		log.Errorf("no element with id '%s'", r.opts.TargetID)
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, r.opts.TargetID)
	}

	if len(data) == 0 {
		log.Debug("empty dataset, showing placeholder")
		target.Placeholder(r.opts.Placeholder)
		return nil, nil
	}

	bars := make([]Bar, len(data))
	fills := make([]Fill, len(data))
	borders := make([]RGBA, len(data))
	for i, rec := range data {
		scheme := SchemeFor(i)
		fill, err := barFill(target, scheme, r.opts.GradientHeight)
		if err != nil {
			log.WithField("index", i).WithError(err).Debug("gradient unavailable, using solid fill")
		}
		bars[i] = Bar{Label: rec.Category, Count: rec.Count, Scheme: scheme, Fill: fill}
		fills[i] = fill
		borders[i] = scheme.Border
	}

	c := &Chart{
		TargetID: r.opts.TargetID,
		Bars:     bars,
		Total:    data.Total(),
		Config:   buildConfig(r.opts, data, fills, borders),
		Tooltips: buildTooltips(data),
	}

	if err := target.Attach(c); err != nil {
		return nil, fmt.Errorf("failed to attach chart: %w", err)
	}

	log.WithField("bars", len(bars)).Debug("chart attached")
	return c, nil
}
