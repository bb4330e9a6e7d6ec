package cli

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for command output
type ColorScheme struct {
	Name    *color.Color
	Code    *color.Color
	Success *color.Color
	Warning *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Name:    color.New(color.FgCyan),
		Code:    color.New(color.FgGreen, color.Bold),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
	}
}
