// Package planner - Threshold-gated price update planning
// Turns audit results into update decisions. The intrinsic price is always
// proposed as the candidate; whether it is applied depends on the policy.
package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"package-audit/core/audit"
	"package-audit/core/types"
)

// Policy gates automatic price updates
type Policy struct {
	// AutoUpdate enables applying updates at all
	AutoUpdate bool `json:"auto_update"`

	// MinDifferencePercent is the smallest absolute difference worth acting on
	MinDifferencePercent float64 `json:"min_difference_percent"`

	// MaxDifferencePercent is the largest absolute difference eligible for
	// automatic application; anything above needs manual review
	MaxDifferencePercent float64 `json:"max_difference_percent"`
}

// DefaultPolicy returns the standard update thresholds
func DefaultPolicy() Policy {
	return Policy{
		AutoUpdate:           false,
		MinDifferencePercent: 5,
		MaxDifferencePercent: 50,
	}
}

// Decision is the planned update for one package
type Decision struct {
	PackageID   string `json:"package_id"`
	PackageName string `json:"package_name"`

	OldPrice decimal.Decimal `json:"old_price"`

	// NewPrice is always the intrinsic price, applied or not
	NewPrice decimal.Decimal `json:"new_price"`

	Difference        decimal.Decimal `json:"difference"`
	DifferencePercent float64         `json:"difference_percent"`

	// Updated reports whether the policy allows applying NewPrice
	Updated bool `json:"updated"`

	// Reason explains the decision in human-readable form
	Reason string `json:"reason"`
}

// Plan decides whether an audit result warrants a price update
func Plan(result audit.Result, policy Policy) Decision {
	abs := result.DifferencePercent
	if abs < 0 {
		abs = -abs
	}

	updated := policy.AutoUpdate &&
		abs >= policy.MinDifferencePercent &&
		abs <= policy.MaxDifferencePercent

	var reason string
	switch {
	case updated:
		reason = fmt.Sprintf("price updated from %s to %s (difference of %.1f%%)",
			result.ListedPrice, result.IntrinsicPrice, result.DifferencePercent)
	case !policy.AutoUpdate:
		reason = "automatic updates are disabled"
	case abs < policy.MinDifferencePercent:
		reason = fmt.Sprintf("difference too small (%.1f%% < %.1f%%), no action needed",
			result.DifferencePercent, policy.MinDifferencePercent)
	default:
		reason = fmt.Sprintf("difference too large (%.1f%% > %.1f%%), requires manual review",
			result.DifferencePercent, policy.MaxDifferencePercent)
	}

	return Decision{
		PackageID:         result.PackageID,
		PackageName:       result.PackageName,
		OldPrice:          result.ListedPrice,
		NewPrice:          result.IntrinsicPrice,
		Difference:        result.Difference,
		DifferencePercent: result.DifferencePercent,
		Updated:           updated,
		Reason:            reason,
	}
}

// Planner drives the auditor across a batch of packages
type Planner struct {
	auditor *audit.Auditor
}

// NewPlanner creates a planner on top of an auditor
func NewPlanner(a *audit.Auditor) *Planner {
	return &Planner{auditor: a}
}

// PlanAll audits every package and plans its update
func (p *Planner) PlanAll(pkgs []*types.Package, policy Policy) []Decision {
	decisions := make([]Decision, 0, len(pkgs))
	for _, pkg := range pkgs {
		decisions = append(decisions, Plan(p.auditor.Audit(pkg), policy))
	}
	return decisions
}
