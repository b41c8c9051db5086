// Package audit - Batch audit reporting
package audit

import "package-audit/core/types"

// Summary counts audit outcomes by status
type Summary struct {
	Total       int `json:"total"`
	OK          int `json:"ok"`
	TooLow      int `json:"too_low"`
	TooHigh     int `json:"too_high"`
	MissingData int `json:"missing_data"`
}

// Report bundles a batch of audit results with their summary
type Report struct {
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Report audits a batch and tallies the outcomes
func (a *Auditor) Report(pkgs []*types.Package) Report {
	results := a.AuditAll(pkgs)

	summary := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			summary.OK++
		case StatusTooLow:
			summary.TooLow++
		case StatusTooHigh:
			summary.TooHigh++
		case StatusMissingData:
			summary.MissingData++
		}
	}

	return Report{Summary: summary, Results: results}
}
