// Package cmd - factors command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecotrack/core/factors"
	"ecotrack/internal/config"
)

// factorsCmd represents the factors command
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Show the active emission factor catalog",
	RunE:  runFactors,
}

func runFactors(cmd *cobra.Command, args []string) error {
	table, err := factors.LoadOrDefault(config.Get().Engine.FactorsPath)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog version: %s (%s, %d entries)\n",
		table.Version(), table.Source(), table.Len())
	fmt.Printf("Content hash:    %s\n\n", table.ContentHash()[:16])

	for _, entry := range table.Entries() {
		fmt.Printf("  %-12s %-24s %8.3f kgCO2e/%s\n",
			entry.Category, entry.Activity, entry.Factor.Value, entry.Factor.Unit)
	}
	return nil
}
