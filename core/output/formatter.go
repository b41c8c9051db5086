// Package output provides output formatting interfaces.
// Renders audit reports and changesets for humans and machines.
package output

import (
	"io"

	"package-audit/core/audit"
	"package-audit/core/changeset"
	"package-audit/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter renders audit and update output in one format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderReport renders a batch audit report
	RenderReport(w io.Writer, report audit.Report) error

	// RenderChangeset renders an update changeset
	RenderChangeset(w io.Writer, cs changeset.Changeset) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}
