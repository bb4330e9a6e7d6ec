package codes

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyName     = errors.New("test name cannot be empty")
	ErrEmptyCode     = errors.New("test code cannot be empty")
	ErrDuplicateName = errors.New("duplicate test name")
)

// Entry pairs a display name with its lookup code.
type Entry struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"`
}

// DefaultEntries are the test types offered by the selection control.
var DefaultEntries = []Entry{
	{Name: "PCR", Code: "PCR001"},
	{Name: "Antígeno", Code: "ANT002"},
	{Name: "Anticuerpos", Code: "ANT003"},
}

// Field is a text input that receives the resolved code.
type Field interface {
	SetValue(value string)
}

// Table is an immutable name to code mapping. The zero value resolves
// every name to the empty string.
type Table struct {
	entries []Entry
	byName  map[string]string
}

// NewTable builds a table from entries, keeping their order.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, ErrEmptyName
		}
		if e.Code == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCode, e.Name)
		}
		key := norm.NFC.String(e.Name)
		if _, ok := t.byName[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		t.byName[key] = e.Code
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// Default returns the built-in table.
func Default() *Table {
	t, err := NewTable(DefaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the code for name, or "" when the name is unknown.
func (t *Table) Resolve(name string) string {
	if t == nil || t.byName == nil {
		return ""
	}
	return t.byName[norm.NFC.String(name)]
}

// Update writes the code for the selected name into field.
func (t *Table) Update(field Field, selected string) {
	field.SetValue(t.Resolve(selected))
}

// Names returns the display names in table order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the table entries.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Map returns the table as a plain map keyed by display name.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, t.Len())
	for _, e := range t.Entries() {
		out[e.Name] = e.Code
	}
	return out
}

// Len reports the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
