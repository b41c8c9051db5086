// Package cmd - catalog command
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"package-audit/core/catalog"
)

// catalogCmd lists the component price catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the component price catalog",
	Long: `Print every canonical component id with its display name and unit
price, including any pricebook overrides.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog()
	if err != nil {
		return err
	}

	categories := []catalog.ComponentCategory{
		catalog.CategoryCamera,
		catalog.CategoryRecorder,
		catalog.CategoryStorage,
		catalog.CategoryBackupPower,
		catalog.CategoryService,
		catalog.CategoryAccessory,
	}

	for _, category := range categories {
		ids := cat.ListByCategory(category)
		sort.Strings(ids)

		fmt.Printf("%s:\n", category)
		for _, id := range ids {
			entry, _ := cat.Get(id)
			fmt.Printf("  %-30s %8s  %s\n", entry.ID, entry.UnitPrice, entry.DisplayName)
		}
		fmt.Println()
	}

	stats := cat.Stats()
	fmt.Printf("%d components\n", stats.Total)
	return nil
}
