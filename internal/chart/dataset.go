// Package chart builds the test-count bar chart: per-bar gradient fills,
// percentage tooltips and axis styling, attached to a rendering target.
package chart

import (
	"encoding/json"
	"math"
	"strconv"
)

// Record is one bar: a test category and how many tests it holds.
type Record struct {
	Category string  `json:"categoria" yaml:"categoria"`
	Count    float64 `json:"cantidad" yaml:"cantidad"`
	// Blank marks an explicit null count. The bar is drawn empty (Count is
	// NaN) but adds nothing to the total.
	Blank bool `json:"-" yaml:"-"`
}

// Dataset is the ordered input of the chart. It is never mutated.
type Dataset []Record

// Labels returns the categories in input order.
func (d Dataset) Labels() []string {
	labels := make([]string, len(d))
	for i, r := range d {
		labels[i] = r.Category
	}
	return labels
}

// Quantities returns the counts in input order.
func (d Dataset) Quantities() []Quantity {
	values := make([]Quantity, len(d))
	for i, r := range d {
		values[i] = Quantity(r.Count)
	}
	return values
}

// Total sums all counts. Blank records add zero; any other NaN count
// makes the total NaN.
func (d Dataset) Total() float64 {
	var total float64
	for _, r := range d {
		if r.Blank {
			continue
		}
		total += r.Count
	}
	return total
}

// Quantity is a bar value. Non-finite values encode as JSON null, which
// Chart.js draws as a missing bar.
type Quantity float64

func (q Quantity) MarshalJSON() ([]byte, error) {
	f := float64(q)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// jsNumber formats v the way a JavaScript template literal would.
func jsNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
