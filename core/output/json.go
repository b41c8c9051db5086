// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"package-audit/core/audit"
	"package-audit/core/changeset"
)

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) RenderReport(w io.Writer, report audit.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (f *jsonFormatter) RenderChangeset(w io.Writer, cs changeset.Changeset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cs)
}
