package changeset

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"package-audit/core/planner"
)

func decision(id string, old, new int64, percent float64, updated bool) planner.Decision {
	o := decimal.NewFromInt(old)
	n := decimal.NewFromInt(new)
	return planner.Decision{
		PackageID:         id,
		PackageName:       strings.ToUpper(id),
		OldPrice:          o,
		NewPrice:          n,
		Difference:        o.Sub(n),
		DifferencePercent: percent,
		Updated:           updated,
	}
}

// TestGenerateSummary verifies the batch tallies
func TestGenerateSummary(t *testing.T) {
	decisions := []planner.Decision{
		decision("pkg-a", 1990, 1488, 25.2, true),
		decision("pkg-b", 1500, 1480, 1.3, false),
		decision("pkg-c", 900, 1200, -33.3, true),
	}

	cs := Generate(decisions)
	s := cs.Summary

	if s.Total != 3 || s.Updated != 2 || s.Skipped != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
	// 502 + (-300); skipped entries do not contribute
	if !s.TotalDifference.Equal(decimal.NewFromInt(202)) {
		t.Errorf("expected total difference 202, got %s", s.TotalDifference)
	}
}

// TestGeneratePatch verifies per-package blocks
func TestGeneratePatch(t *testing.T) {
	decisions := []planner.Decision{
		decision("pkg-a", 1990, 1488, 25.2, true),
		decision("pkg-b", 1500, 1480, 1.3, false),
	}

	patch := Generate(decisions).Patch

	if !strings.Contains(patch, `package "pkg-a"`) {
		t.Errorf("patch missing updated package block:\n%s", patch)
	}
	if !strings.Contains(patch, "listed_price = 1488") {
		t.Errorf("patch missing new price:\n%s", patch)
	}
	if !strings.Contains(patch, "was 1990 (+25.2%)") {
		t.Errorf("patch missing old price comment:\n%s", patch)
	}
	if strings.Contains(patch, "pkg-b") {
		t.Errorf("patch must not include skipped packages:\n%s", patch)
	}
	if !strings.Contains(patch, "1 package(s) updated") {
		t.Errorf("patch missing trailer:\n%s", patch)
	}
}

// TestGenerateNegativePercentSign verifies signed percent rendering
func TestGenerateNegativePercentSign(t *testing.T) {
	patch := Generate([]planner.Decision{
		decision("pkg-c", 900, 1200, -33.3, true),
	}).Patch

	if !strings.Contains(patch, "(-33.3%)") {
		t.Errorf("expected signed negative percent:\n%s", patch)
	}
}

// TestGenerateEmpty verifies the sentinel for no updates
func TestGenerateEmpty(t *testing.T) {
	tests := [][]planner.Decision{
		nil,
		{decision("pkg-b", 1500, 1480, 1.3, false)},
	}

	for i, decisions := range tests {
		cs := Generate(decisions)
		if cs.Patch != NoUpdatesSentinel {
			t.Errorf("case %d: expected sentinel, got:\n%s", i, cs.Patch)
		}
		if cs.Summary.Updated != 0 {
			t.Errorf("case %d: expected no updates, got %d", i, cs.Summary.Updated)
		}
		if !cs.Summary.TotalDifference.IsZero() {
			t.Errorf("case %d: expected zero total difference", i)
		}
	}
}
