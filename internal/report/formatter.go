package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"filestats/pkg/logger"
	"filestats/pkg/models"
	"filestats/pkg/stats"

	"gopkg.in/yaml.v3"
)

// Report is the document written for json and yaml output
type Report struct {
	Path  string          `json:"path" yaml:"path"`
	Stats stats.FileStats `json:"stats" yaml:"stats"`
}

// Formatter renders computed statistics
type Formatter struct {
	format models.OutputFormat
}

// NewFormatter creates a formatter for the given output format
func NewFormatter(format models.OutputFormat) (*Formatter, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Formatter{format: format}, nil
}

// Format renders fs computed from path
func (f *Formatter) Format(path string, fs stats.FileStats) (string, error) {
	logger.Logger.WithField("format", f.format).Debug("Formatting report")

	switch f.format {
	case models.FormatJSON:
		data, err := json.MarshalIndent(Report{Path: path, Stats: fs}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data) + "\n", nil
	case models.FormatYAML:
		data, err := yaml.Marshal(Report{Path: path, Stats: fs})
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(data), nil
	default:
		return formatText(fs), nil
	}
}

// formatText prints one labeled line per counter
func formatText(fs stats.FileStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Characters: %d\n", fs.Characters)
	fmt.Fprintf(&b, "Lines: %d\n", fs.Lines)
	fmt.Fprintf(&b, "Spaces: %d\n", fs.Spaces)
	fmt.Fprintf(&b, "Tabs: %d\n", fs.Tabs)
	fmt.Fprintf(&b, "Words: %d\n", fs.Words)
	fmt.Fprintf(&b, "Special characters: %d\n", fs.Special)
	return b.String()
}
