// Package cmd provides the CLI commands for package-audit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"package-audit/core/catalog"
	"package-audit/internal/config"
	"package-audit/internal/logging"
)

var (
	cfgFile       string
	verbose       bool
	pricebookPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "package-audit",
	Short: "Audit bundled package prices against the component catalog",
	Long: `package-audit reconciles hand-set package prices with the intrinsic
price derived from per-component unit prices.

It maps each package's specification onto canonical component keys, sums
the catalog costs with the bundle discount, and classifies every listed
price as ok, too low, too high, or missing data.

Examples:
  package-audit audit packages.json
  package-audit update --auto packages.yaml
  package-audit catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.package-audit.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&pricebookPath, "pricebook", "", "HCL pricebook with component price overrides")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildCatalog constructs the component catalog with any pricebook applied
func buildCatalog() (*catalog.Catalog, error) {
	c := catalog.Default()

	path := pricebookPath
	if path == "" {
		path = config.Get().Catalog.PricebookPath
	}
	if path == "" {
		return c, nil
	}

	overrides, err := catalog.LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	return c, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("package-audit version 0.1.0")
	},
}
