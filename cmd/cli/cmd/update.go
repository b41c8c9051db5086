// Package cmd - update command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"package-audit/core/audit"
	"package-audit/core/changeset"
	"package-audit/core/loader"
	"package-audit/core/output"
	"package-audit/core/planner"
	"package-audit/internal/config"
	"package-audit/internal/logging"
)

var (
	updateFormat string
	autoUpdate   bool
	minDiff      float64
	maxDiff      float64
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [packages-file]",
	Short: "Plan listed price updates from the component catalog",
	Long: `Audit every package and plan which listed prices should change.

Updates apply only with --auto and only when the difference falls between
the minimum and maximum thresholds; larger gaps are flagged for manual
review. The output is a changeset an operator can review and apply.

Examples:
  package-audit update packages.json
  package-audit update --auto packages.json
  package-audit update --auto --min 5 --max 50 packages.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateFormat, "format", "f", "", "output format (cli, json, markdown)")
	updateCmd.Flags().BoolVar(&autoUpdate, "auto", false, "apply in-range updates automatically")
	updateCmd.Flags().Float64Var(&minDiff, "min", 0, "minimum difference percent worth updating")
	updateCmd.Flags().Float64Var(&maxDiff, "max", 0, "maximum difference percent for automatic update")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	pkgs, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	cat, err := buildCatalog()
	if err != nil {
		return err
	}

	policy := resolvePolicy()
	logging.Info("planning price updates",
		zap.Int("packages", len(pkgs)),
		zap.Bool("auto_update", policy.AutoUpdate),
		zap.Float64("min_percent", policy.MinDifferencePercent),
		zap.Float64("max_percent", policy.MaxDifferencePercent))

	p := planner.NewPlanner(audit.NewAuditor(cat))
	decisions := p.PlanAll(pkgs, policy)
	cs := changeset.Generate(decisions)

	formatter, err := output.New(resolveFormat(updateFormat))
	if err != nil {
		return err
	}
	return formatter.RenderChangeset(os.Stdout, cs)
}

// resolvePolicy layers CLI flags over configured defaults
func resolvePolicy() planner.Policy {
	cfg := config.Get().Update

	policy := planner.Policy{
		AutoUpdate:           cfg.AutoUpdate || autoUpdate,
		MinDifferencePercent: cfg.MinDifferencePercent,
		MaxDifferencePercent: cfg.MaxDifferencePercent,
	}
	if minDiff > 0 {
		policy.MinDifferencePercent = minDiff
	}
	if maxDiff > 0 {
		policy.MaxDifferencePercent = maxDiff
	}
	return policy
}
