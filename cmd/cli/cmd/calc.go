// Package cmd - calc command
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ecotrack/api"
	"ecotrack/core/types"
)

var (
	refineFlag  bool
	suggestFlag bool
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc [input-file]",
	Short: "Calculate a carbon footprint from an input record",
	Long: `Calculate the baseline carbon footprint for a JSON input
record, optionally applying the refinement overlay and generating
reduction suggestions.

Reads from stdin when no file is given.

Examples:
  ecotrack calc input.json
  ecotrack calc --refine input.json
  cat input.json | ecotrack calc --refine --suggest`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&refineFlag, "refine", false, "apply the refinement overlay")
	calcCmd.Flags().BoolVar(&suggestFlag, "suggest", false, "include reduction suggestions")
}

func runCalc(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var input types.InputRecord
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	if err := api.ValidateInput(&input); err != nil {
		return err
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	var result *types.EstimateResult
	if refineFlag {
		result = eng.Refine(&input)
	} else {
		result = eng.Calculate(&input)
	}

	output := map[string]interface{}{
		"estimate": api.NewEstimateResponse(uuid.NewString(), result),
	}
	if suggestFlag {
		output["suggestions"] = eng.Suggest(result.Breakdown)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
