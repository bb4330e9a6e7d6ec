// Package report renders the test chart into a dashboard page or an image.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/codes"
	"github.com/junkd0g/labchart/internal/config"
	"github.com/junkd0g/labchart/internal/dashboard"
	"github.com/junkd0g/labchart/internal/raster"
)

// Format is an output format.
type Format string

const (
	HTML Format = "html"
	PNG  Format = "png"
	SVG  Format = "svg"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case HTML, PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to HTML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG
	case ".svg":
		return SVG
	default:
		return HTML
	}
}

// Summary describes a finished render.
type Summary struct {
	Format      Format
	Bars        int
	Total       float64
	Placeholder bool
	// NoTarget is set when the page has no chart canvas. The rest of the
	// page is still written.
	NoTarget bool
	// Written is set by WriteFile once the output file exists.
	Written bool
}

// Builder runs the chart renderer against a page or canvas.
type Builder struct {
	Config *config.Config
	Table  *codes.Table
	Logger logrus.FieldLogger
}

// NewBuilder builds the code table from cfg.
func NewBuilder(cfg *config.Config, logger logrus.FieldLogger) (*Builder, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	return &Builder{Config: cfg, Table: table, Logger: logger}, nil
}

// Build renders data in the given format and writes it to w. Images of an
// empty dataset are not produced; the summary reports the placeholder and
// nothing is written. A page without a chart canvas is still written.
func (b *Builder) Build(data chart.Dataset, format Format, w io.Writer) (Summary, error) {
	renderer := chart.NewRenderer(b.Config.Chart, b.Logger)
	targetID := renderer.Options().TargetID
	summary := Summary{Format: format}

	switch format {
	case HTML:
		page := dashboard.New(b.Config.Dashboard, b.Table, targetID)
		c, err := renderer.Render(page, data)
		switch {
		case errors.Is(err, chart.ErrTargetNotFound):
			summary.NoTarget = true
		case err != nil:
			return summary, err
		default:
			summarize(&summary, c)
		}
		if _, err := page.WriteTo(w); err != nil {
			return summary, fmt.Errorf("failed to write page: %w", err)
		}
		return summary, nil

	case PNG, SVG:
		canvas := raster.NewCanvas(targetID, b.Config.Raster.Width, b.Config.Raster.Height)
		c, err := renderer.Render(canvas, data)
		if err != nil {
			return summary, err
		}
		summarize(&summary, c)
		if c == nil {
			return summary, nil
		}
		if err := canvas.Render(w, raster.Format(format)); err != nil {
			return summary, err
		}
		return summary, nil

	default:
		return summary, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile renders data to path. An empty format is taken from the
// path's extension. Missing parent directories are created. Images of an
// empty dataset are not written.
func (b *Builder) WriteFile(data chart.Dataset, path string, format Format) (Summary, error) {
	if format == "" {
		format = FormatFromPath(path)
	}

	var buf bytes.Buffer
	summary, err := b.Build(data, format, &buf)
	if err != nil {
		return summary, err
	}
	if buf.Len() == 0 {
		return summary, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return summary, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return summary, fmt.Errorf("failed to write output: %w", err)
	}
	summary.Written = true
	return summary, nil
}

func summarize(s *Summary, c *chart.Chart) {
	if c == nil {
		s.Placeholder = true
		return
	}
	s.Bars = len(c.Bars)
	s.Total = c.Total
}
