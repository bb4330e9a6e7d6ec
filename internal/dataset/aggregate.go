package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/junkd0g/labchart/internal/chart"
)

// Result is one test performed on a patient.
type Result struct {
	ID   int    `json:"id" yaml:"id"`
	Test string `json:"test" yaml:"test"`
}

// Aggregate counts distinct results per test name, largest first. Ties are
// ordered by name.
func Aggregate(results []Result) chart.Dataset {
	seen := make(map[string]map[int]struct{})
	for _, r := range results {
		ids, ok := seen[r.Test]
		if !ok {
			ids = make(map[int]struct{})
			seen[r.Test] = ids
		}
		ids[r.ID] = struct{}{}
	}

	data := make(chart.Dataset, 0, len(seen))
	for name, ids := range seen {
		data = append(data, chart.Record{Category: name, Count: float64(len(ids))})
	}

	sort.Slice(data, func(i, j int) bool {
		if data[i].Count != data[j].Count {
			return data[i].Count > data[j].Count
		}
		return data[i].Category < data[j].Category
	})
	return data
}

// Reconcile compares the number of results with the charted total and logs
// both. A mismatch means duplicate result ids.
func Reconcile(log logrus.FieldLogger, results []Result, data chart.Dataset) (recorded, charted float64) {
	recorded = float64(len(results))
	charted = data.Total()
	log.WithFields(logrus.Fields{
		"total_real":    recorded,
		"total_charted": charted,
	}).Debug("dataset totals")
	return recorded, charted
}

// LoadResults reads a JSON or YAML list of results.
func LoadResults(path string) ([]Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	var results []Result
	if isYAML(path) {
		err = yaml.Unmarshal(raw, &results)
	} else {
		err = json.Unmarshal(raw, &results)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}
	return results, nil
}

// Document wraps a dataset the way dashboard pages expect it.
type Document struct {
	Data chart.Dataset `json:"datos_grafica"`
}

// WriteJSON writes data as a dashboard document.
func WriteJSON(path string, data chart.Dataset) error {
	raw, err := json.MarshalIndent(Document{Data: data}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
