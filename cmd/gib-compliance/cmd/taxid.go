package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/gib-compliance/internal/taxid"
)

var taxidCmd = &cobra.Command{
	Use:   "taxid [identifiers...]",
	Short: "Validate taxpayer identifiers (VKN / TCKN)",
	Long: `Validate one or more taxpayer identifiers.

A 10-digit identifier is checked as a VKN (organization tax number), an
11-digit identifier as a TCKN (citizen identification number). Both use the
regulator's check-digit algorithms; no registry lookup is performed.

Examples:
  gib-compliance taxid 1234567890
  gib-compliance taxid 1234567890 10000000146 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaxID,
}

func init() {
	rootCmd.AddCommand(taxidCmd)
}

type taxidResult struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func runTaxID(cmd *cobra.Command, args []string) error {
	results := make([]taxidResult, 0, len(args))
	allValid := true

	for _, id := range args {
		kind, r := taxid.Classify(id)
		results = append(results, taxidResult{
			ID: id, Kind: string(kind), Valid: r.Valid, Error: r.Err,
		})
		if !r.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: %s\n", r.ID, r.Kind)
			} else {
				fmt.Printf("✗ %s: %s\n", r.ID, r.Error)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("one or more identifiers failed validation")
	}
	return nil
}
