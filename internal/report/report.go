// Package report renders command results as text, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// globalFormat is set by the root command's --output flag.
var globalFormat = FormatText

// SetFormat sets the global output format. Unknown values fall back to text.
func SetFormat(format string) {
	switch format {
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		globalFormat = FormatText
	}
}

// GetFormat returns the current global output format.
func GetFormat() Format {
	return globalFormat
}

// IsStructured returns true when the output format is JSON or YAML. Commands
// print their human-readable report only when this is false.
func IsStructured() bool {
	return globalFormat == FormatJSON || globalFormat == FormatYAML
}

// Output writes data to stdout in the configured format.
func Output(data any) error {
	return OutputTo(os.Stdout, globalFormat, data)
}

// OutputTo writes data to the given writer in the specified format.
func OutputTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return fmt.Errorf("no structured encoding for format: %s", format)
	}
}
