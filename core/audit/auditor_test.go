package audit

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"package-audit/core/catalog"
	"package-audit/core/types"
)

// basicPackage returns a residential package whose intrinsic price is 1488:
// 2 x 4MP standard (900) + 4ch recorder (600) + 1TB (250) with bundled
// installation, no maintenance; round(1750 * 0.85) = 1488.
func basicPackage(listed int64) *types.Package {
	return &types.Package{
		ID:       "home-basic",
		Name:     "Home Basic",
		Category: types.CategoryResidential,
		Cameras:  types.CameraSpec{Min: 2, Max: 4, Default: 2, Types: []string{"IP", "4MP"}, AILevel: types.AIBasic},
		Recorder: types.RecorderSpec{Channels: 4},
		Storage:  types.StorageSpec{Size: "1TB"},
		Pricing: types.Pricing{
			Listed:       decimal.NewFromInt(listed),
			Currency:     types.CurrencyILS,
			Installation: types.InstallationSpec{Included: true},
		},
	}
}

func newAuditor() *Auditor {
	return NewAuditor(catalog.Default())
}

// TestAuditStatusClassification walks the classification bands
func TestAuditStatusClassification(t *testing.T) {
	a := newAuditor()

	tests := []struct {
		name      string
		listed    int64
		expected  Status
		hasIssues bool
	}{
		// intrinsic is 1488 for all cases
		{"exact match", 1488, StatusOK, false},
		{"within ok band", 1500, StatusOK, false},
		{"overpriced 17 percent stays ok", 1800, StatusOK, false}, // (5,20] band
		{"underpriced 8 percent stays ok", 1380, StatusOK, false}, // (-10,-5] band
		{"too high", 1990, StatusTooHigh, true},                   // +25.2%
		{"too low", 1300, StatusTooLow, true},                     // -14.5%
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Audit(basicPackage(tt.listed))

			if result.Status != tt.expected {
				t.Errorf("expected status %s, got %s (diff %.1f%%)",
					tt.expected, result.Status, result.DifferencePercent)
			}
			if tt.hasIssues && len(result.Issues) == 0 {
				t.Error("expected an issue to be recorded")
			}
			if !tt.hasIssues && len(result.Issues) != 0 {
				t.Errorf("expected no issues, got %v", result.Issues)
			}
			if !result.IntrinsicPrice.Equal(decimal.NewFromInt(1488)) {
				t.Errorf("expected intrinsic price 1488, got %s", result.IntrinsicPrice)
			}
		})
	}
}

// TestAuditZeroListedPrice verifies missing_data overrides classification
func TestAuditZeroListedPrice(t *testing.T) {
	a := newAuditor()
	result := a.Audit(basicPackage(0))

	if result.Status != StatusMissingData {
		t.Errorf("expected %s, got %s", StatusMissingData, result.Status)
	}
	if result.DifferencePercent != 0 {
		t.Errorf("expected zero difference percent, got %.1f", result.DifferencePercent)
	}
	if len(result.Issues) != 1 || !strings.Contains(result.Issues[0], "listed price") {
		t.Errorf("expected a listed price issue, got %v", result.Issues)
	}
}

// TestAuditIssuesAccumulate verifies diagnostics never short-circuit
func TestAuditIssuesAccumulate(t *testing.T) {
	a := newAuditor()

	pkg := basicPackage(0)
	pkg.Cameras.Default = 0
	pkg.Storage.Size = ""

	result := a.Audit(pkg)

	if result.Status != StatusMissingData {
		t.Errorf("expected %s, got %s", StatusMissingData, result.Status)
	}
	if len(result.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(result.Issues), result.Issues)
	}
}

// TestAuditMissingFieldsKeepStatus verifies field issues do not reclassify
func TestAuditMissingFieldsKeepStatus(t *testing.T) {
	a := newAuditor()

	// Intrinsic without cameras, storage floored: 0 + 600 + 250 = 850,
	// round(850 * 0.85) = 723, listed 700 lands inside the ok band.
	pkg := basicPackage(0)
	pkg.Pricing.Listed = decimal.NewFromInt(700)
	pkg.Cameras.Default = 0
	pkg.Storage.Size = ""

	result := a.Audit(pkg)

	if result.Status == StatusMissingData {
		t.Errorf("non-zero listed price must not classify as missing_data")
	}
	if len(result.Issues) < 2 {
		t.Errorf("expected camera and storage issues, got %v", result.Issues)
	}
}

// TestAuditDeterminism verifies repeated audits are identical
func TestAuditDeterminism(t *testing.T) {
	a := newAuditor()
	pkg := basicPackage(1990)

	first := a.Audit(pkg)
	second := a.Audit(pkg)

	if !reflect.DeepEqual(first, second) {
		t.Error("auditing the same package twice produced different results")
	}
}

// TestAuditEndToEnd verifies the canonical scenario
func TestAuditEndToEnd(t *testing.T) {
	a := newAuditor()
	result := a.Audit(basicPackage(1990))

	if !result.Breakdown.Cameras.Equal(decimal.NewFromInt(900)) {
		t.Errorf("cameras: expected 900, got %s", result.Breakdown.Cameras)
	}
	if !result.Breakdown.Recorder.Equal(decimal.NewFromInt(600)) {
		t.Errorf("recorder: expected 600, got %s", result.Breakdown.Recorder)
	}
	if !result.Breakdown.Storage.Equal(decimal.NewFromInt(250)) {
		t.Errorf("storage: expected 250, got %s", result.Breakdown.Storage)
	}
	if !result.Breakdown.Installation.IsZero() {
		t.Errorf("installation is bundled, expected 0, got %s", result.Breakdown.Installation)
	}
	if !result.Difference.Equal(decimal.NewFromInt(502)) {
		t.Errorf("difference: expected 502, got %s", result.Difference)
	}
	if result.Status != StatusTooHigh {
		t.Errorf("expected %s, got %s", StatusTooHigh, result.Status)
	}
}

// TestAuditAllContinuesThroughBadRecords verifies batch resilience
func TestAuditAllContinuesThroughBadRecords(t *testing.T) {
	a := newAuditor()

	pkgs := []*types.Package{
		basicPackage(1488),
		{ID: "broken", Name: "Broken"}, // everything zero or empty
		basicPackage(1990),
	}

	results := a.AuditAll(pkgs)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].Status != StatusMissingData {
		t.Errorf("degenerate record: expected %s, got %s", StatusMissingData, results[1].Status)
	}
}

// TestReportSummary verifies status tallies
func TestReportSummary(t *testing.T) {
	a := newAuditor()

	pkgs := []*types.Package{
		basicPackage(1488), // ok
		basicPackage(1990), // too_high
		basicPackage(1300), // too_low
		basicPackage(0),    // missing_data
	}

	report := a.Report(pkgs)
	s := report.Summary

	if s.Total != 4 || s.OK != 1 || s.TooHigh != 1 || s.TooLow != 1 || s.MissingData != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
}
