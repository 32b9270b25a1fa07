// Package cmd - offset command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// offsetCmd represents the offset command
var offsetCmd = &cobra.Command{
	Use:   "offset <footprint-kg>",
	Short: "Price carbon offset options for a footprint",
	Long: `Price the offset project catalog for a footprint in kg CO2e.

Examples:
  ecotrack offset 1500
  ecotrack offset 420.5`,
	Args: cobra.ExactArgs(1),
	RunE: runOffset,
}

func runOffset(cmd *cobra.Command, args []string) error {
	footprintKg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid footprint: %s", args[0])
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	result, err := eng.Offset(footprintKg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
