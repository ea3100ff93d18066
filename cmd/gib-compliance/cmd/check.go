package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/gib-compliance/internal/ubltr"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check UBL-TR documents for structural completeness",
	Long: `Check one or more serialized UBL-TR invoice documents for the
required elements and namespace declarations.

This is a cheap presence check, not schema validation: a document that
passes may still fail strict XSD conformance.

Examples:
  gib-compliance check invoice.xml
  gib-compliance check *.xml -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	results := make([]checkResult, 0, len(args))
	allValid := true

	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		r := ubltr.ValidateStructure(string(data))
		results = append(results, checkResult{File: file, Valid: r.Valid, Errors: r.Errors})
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
				fmt.Printf("✓ %s: VALID\n", r.File)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
		}
	}

	if !allValid {
		return fmt.Errorf("one or more documents failed the structure check")
	}
	return nil
}
