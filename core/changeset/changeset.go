// Package changeset - Human-readable update changesets
// Renders a batch of update decisions as a machine-readable summary plus
// a textual patch an operator can review and apply to the package data.
package changeset

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"package-audit/core/planner"
)

// NoUpdatesSentinel is emitted when the updated set is empty
const NoUpdatesSentinel = "// no updates required"

// Summary tallies a batch of update decisions
type Summary struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`

	// TotalDifference sums the differences of updated entries only
	TotalDifference decimal.Decimal `json:"total_difference"`
}

// Changeset bundles the batch summary with the textual patch
type Changeset struct {
	Summary Summary `json:"summary"`
	Patch   string  `json:"patch"`
}

// Generate builds the changeset for a batch of decisions
func Generate(decisions []planner.Decision) Changeset {
	summary := Summary{Total: len(decisions)}
	var blocks []string

	for _, d := range decisions {
		if !d.Updated {
			summary.Skipped++
			continue
		}
		summary.Updated++
		summary.TotalDifference = summary.TotalDifference.Add(d.Difference)
		blocks = append(blocks, patchBlock(d))
	}

	return Changeset{
		Summary: summary,
		Patch:   renderPatch(blocks, summary.Updated),
	}
}

func patchBlock(d planner.Decision) string {
	sign := ""
	if d.DifferencePercent > 0 {
		sign = "+"
	}
	return fmt.Sprintf(`// %s
package %q {
  listed_price = %s
  // was %s (%s%.1f%%)
}`, d.PackageName, d.PackageID, d.NewPrice, d.OldPrice, sign, d.DifferencePercent)
}

func renderPatch(blocks []string, updated int) string {
	if len(blocks) == 0 {
		return NoUpdatesSentinel
	}

	var b strings.Builder
	b.WriteString("// listed price updates derived from the component catalog\n")
	b.WriteString("// review and apply to the package data\n\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString(fmt.Sprintf("\n\n// %d package(s) updated\n", updated))
	return b.String()
}
