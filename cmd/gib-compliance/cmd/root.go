package cmd

import (
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	outputFormat string
	locale       string
)

var rootCmd = &cobra.Command{
	Use:   "gib-compliance",
	Short: "Validate and generate GIB e-invoicing compliance data",
	Long: `gib-compliance is a CLI front end for the GIB e-invoicing compliance engine.

Supports:
  - VKN / TCKN taxpayer identifier validation
  - KDV (VAT) breakdown calculation with regulator rounding
  - Invoice totals and double-entry ledger reconciliation
  - UBL-TR structural completeness checks
  - ETTN and e-Arşiv series number generation

Examples:
  # Validate taxpayer identifiers
  gib-compliance taxid 1234567890 10000000146

  # Compute a VAT breakdown
  gib-compliance vat --amount 118 --rate 18 --included

  # Check a serialized UBL-TR document
  gib-compliance check invoice.xml

  # Generate a transaction identifier
  gib-compliance generate ettn`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text or json")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "tr", "Message locale: tr or en")
}
