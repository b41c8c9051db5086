// Package audit - Listed vs intrinsic price reconciliation
// Compares each package's hand-set listed price against the intrinsic
// price derived from the component catalog and classifies the gap.
package audit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"package-audit/core/catalog"
	"package-audit/core/composer"
	"package-audit/core/mapper"
	"package-audit/core/types"
)

// Status classifies one package's listed price against its intrinsic price
type Status string

const (
	StatusOK          Status = "ok"
	StatusTooLow      Status = "too_low"
	StatusTooHigh     Status = "too_high"
	StatusMissingData Status = "missing_data"
)

// Classification thresholds in percent of the listed price.
// The bands (-10,-5] and [5,20] intentionally fall through to ok.
const (
	okBandPercent      = 5
	tooLowBelowPercent = -10
	tooHighOverPercent = 20
)

// Result is the audit outcome for one package.
// Recomputed fresh on every run, never mutated in place.
type Result struct {
	PackageID   string `json:"package_id"`
	PackageName string `json:"package_name"`

	// ListedPrice is the hand-set price on the package record
	ListedPrice decimal.Decimal `json:"listed_price"`

	// IntrinsicPrice is the catalog-derived price
	IntrinsicPrice decimal.Decimal `json:"intrinsic_price"`

	// Difference is listed minus intrinsic
	Difference decimal.Decimal `json:"difference"`

	// DifferencePercent is Difference relative to the listed price,
	// zero when the listed price is zero
	DifferencePercent float64 `json:"difference_percent"`

	Breakdown composer.Breakdown `json:"breakdown"`

	Status Status `json:"status"`

	// Issues collects diagnostics in detection order
	Issues []string `json:"issues,omitempty"`
}

// Auditor runs the mapper and composer over package records
type Auditor struct {
	composer *composer.Composer
}

// NewAuditor creates an auditor backed by the given catalog
func NewAuditor(c *catalog.Catalog) *Auditor {
	return &Auditor{composer: composer.NewComposer(c)}
}

// Audit reconciles one package
func (a *Auditor) Audit(pkg *types.Package) Result {
	comp := mapper.Map(pkg)
	breakdown := a.composer.Compose(comp)

	listed := pkg.Pricing.Listed
	difference := listed.Sub(breakdown.Total)

	differencePercent := 0.0
	if listed.IsPositive() {
		differencePercent, _ = difference.Div(listed).Mul(decimal.NewFromInt(100)).Float64()
	}

	result := Result{
		PackageID:         pkg.ID,
		PackageName:       pkg.Name,
		ListedPrice:       listed,
		IntrinsicPrice:    breakdown.Total,
		Difference:        difference,
		DifferencePercent: differencePercent,
		Breakdown:         breakdown,
		Status:            StatusOK,
	}

	abs := differencePercent
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs < okBandPercent:
		result.Status = StatusOK
	case differencePercent < tooLowBelowPercent:
		result.Status = StatusTooLow
		result.Issues = append(result.Issues,
			fmt.Sprintf("listed price is too low: %.1f%% below the intrinsic price", -differencePercent))
	case differencePercent > tooHighOverPercent:
		result.Status = StatusTooHigh
		result.Issues = append(result.Issues,
			fmt.Sprintf("listed price is too high: %.1f%% above the intrinsic price", differencePercent))
	}

	// A zero listed price overrides any percentage classification.
	if listed.IsZero() {
		result.Status = StatusMissingData
		result.Issues = append(result.Issues, "listed price is not set")
	}

	if pkg.Cameras.Default == 0 {
		result.Issues = append(result.Issues, "default camera count is not set")
	}

	if pkg.Storage.Size == "" {
		result.Issues = append(result.Issues, "storage size is not set")
	}

	return result
}

// AuditAll reconciles every package in the batch.
// A degenerate record never prevents reporting on the rest.
func (a *Auditor) AuditAll(pkgs []*types.Package) []Result {
	results := make([]Result, 0, len(pkgs))
	for _, pkg := range pkgs {
		results = append(results, a.Audit(pkg))
	}
	return results
}
