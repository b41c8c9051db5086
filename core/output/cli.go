// Package output - Terminal rendering
package output

import (
	"fmt"
	"io"

	"package-audit/core/audit"
	"package-audit/core/changeset"
)

// Terminal colors
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func statusColor(status audit.Status) string {
	switch status {
	case audit.StatusOK:
		return green
	case audit.StatusTooLow:
		return red
	case audit.StatusTooHigh:
		return yellow
	default:
		return cyan
	}
}

func (f *cliFormatter) RenderReport(w io.Writer, report audit.Report) error {
	fmt.Fprintf(w, "%s━━━ Package Price Audit ━━━%s\n\n", bold+cyan, reset)

	for _, r := range report.Results {
		fmt.Fprintf(w, "%s%-30s%s %s%-12s%s listed %8s  intrinsic %8s  %+.1f%%\n",
			bold, r.PackageID, reset,
			statusColor(r.Status), r.Status, reset,
			r.ListedPrice, r.IntrinsicPrice, r.DifferencePercent)
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
	}

	s := report.Summary
	fmt.Fprintf(w, "\n%sTotal %d: %d ok, %d too low, %d too high, %d missing data%s\n",
		bold, s.Total, s.OK, s.TooLow, s.TooHigh, s.MissingData, reset)
	return nil
}

func (f *cliFormatter) RenderChangeset(w io.Writer, cs changeset.Changeset) error {
	fmt.Fprintf(w, "%s━━━ Price Update Plan ━━━%s\n\n", bold+cyan, reset)
	fmt.Fprintln(w, cs.Patch)

	s := cs.Summary
	fmt.Fprintf(w, "\n%sTotal %d: %d updated, %d skipped, net difference %s%s\n",
		bold, s.Total, s.Updated, s.Skipped, s.TotalDifference, reset)
	return nil
}
