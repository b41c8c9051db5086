// Package cmd - audit command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"package-audit/core/audit"
	"package-audit/core/loader"
	"package-audit/core/output"
	"package-audit/internal/config"
	"package-audit/internal/logging"
)

var auditFormat string

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit [packages-file]",
	Short: "Audit package prices against the component catalog",
	Long: `Reconcile every package's listed price with its intrinsic price.

The packages file carries the package specifications in JSON or YAML.

Examples:
  package-audit audit packages.json
  package-audit audit --format markdown packages.yaml
  package-audit audit --pricebook prices.hcl packages.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runAudit(cmd *cobra.Command, args []string) error {
	pkgs, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	cat, err := buildCatalog()
	if err != nil {
		return err
	}

	logging.Info("auditing packages",
		zap.Int("packages", len(pkgs)),
		zap.Int("catalog_components", cat.Len()))

	report := audit.NewAuditor(cat).Report(pkgs)

	formatter, err := output.New(resolveFormat(auditFormat))
	if err != nil {
		return err
	}
	return formatter.RenderReport(os.Stdout, report)
}

func resolveFormat(flag string) output.Format {
	if flag != "" {
		return output.Format(flag)
	}
	return output.Format(config.Get().Output.DefaultFormat)
}
