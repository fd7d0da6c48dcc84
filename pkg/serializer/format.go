// Package serializer writes structured results to stdout or files in the
// output formats the CLI offers: yaml, json, and a flattened key/value
// table for terminal viewing.
package serializer

// Format is an output format selector.
type Format string

const (
	// FormatYAML is human-readable and diff-friendly.
	FormatYAML Format = "yaml"

	// FormatJSON is machine-parseable.
	FormatJSON Format = "json"

	// FormatTable is a flattened FIELD/VALUE listing for terminals.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return false
	}
	return true
}
