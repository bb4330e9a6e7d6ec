// Package dataset reads the chart input slot from JSON or YAML documents
// and derives it from raw test results.
package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/junkd0g/labchart/internal/chart"
)

// DefaultPath is where dashboard documents keep the chart data.
const DefaultPath = "datos_grafica"

// FromJSON extracts the dataset found at path in doc. An absent path is an
// empty dataset. Entries missing a count get NaN.
func FromJSON(doc []byte, path string) (chart.Dataset, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	if path == "" {
		path = DefaultPath
	}

	result := gjson.GetBytes(doc, path)
	if !result.Exists() || result.Type == gjson.Null {
		return chart.Dataset{}, nil
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("value at %q is not an array", path)
	}

	items := result.Array()
	data := make(chart.Dataset, 0, len(items))
	for _, item := range items {
		cantidad := item.Get("cantidad")
		data = append(data, chart.Record{
			Category: category(item.Get("categoria")),
			Count:    count(cantidad),
			Blank:    cantidad.Type == gjson.Null && cantidad.Exists(),
		})
	}
	return data, nil
}

func category(v gjson.Result) string {
	if !v.Exists() {
		return "undefined"
	}
	return v.String()
}

func count(v gjson.Result) float64 {
	switch v.Type {
	case gjson.Number:
		return v.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// FromYAML decodes a YAML list of {categoria, cantidad} records.
func FromYAML(r io.Reader) (chart.Dataset, error) {
	var data chart.Dataset
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if err == io.EOF {
			return chart.Dataset{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML dataset: %w", err)
	}
	if data == nil {
		data = chart.Dataset{}
	}
	return data, nil
}

// Load reads a dataset file. YAML is chosen by extension, anything else is
// read as JSON with jsonPath.
func Load(path, jsonPath string) (chart.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if isYAML(path) {
		return FromYAML(f)
	}

	doc, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return FromJSON(doc, jsonPath)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
