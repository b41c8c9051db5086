// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"

	"package-audit/core/audit"
	"package-audit/core/changeset"
)

type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) RenderReport(w io.Writer, report audit.Report) error {
	fmt.Fprintln(w, "## Package Price Audit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Package | Status | Listed | Intrinsic | Diff % | Issues |")
	fmt.Fprintln(w, "|---------|--------|--------|-----------|--------|--------|")

	for _, r := range report.Results {
		issues := ""
		for i, issue := range r.Issues {
			if i > 0 {
				issues += "; "
			}
			issues += issue
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %+.1f%% | %s |\n",
			r.PackageID, r.Status, r.ListedPrice, r.IntrinsicPrice, r.DifferencePercent, issues)
	}

	s := report.Summary
	fmt.Fprintf(w, "\n**%d packages**: %d ok, %d too low, %d too high, %d missing data\n",
		s.Total, s.OK, s.TooLow, s.TooHigh, s.MissingData)
	return nil
}

func (f *markdownFormatter) RenderChangeset(w io.Writer, cs changeset.Changeset) error {
	fmt.Fprintln(w, "## Price Update Plan")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w, cs.Patch)
	fmt.Fprintln(w, "```")

	s := cs.Summary
	fmt.Fprintf(w, "\n**%d packages**: %d updated, %d skipped, net difference %s\n",
		s.Total, s.Updated, s.Skipped, s.TotalDifference)
	return nil
}
