package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/gib-compliance/internal/money"
	"github.com/rezonia/gib-compliance/internal/vat"
)

var (
	vatAmount   string
	vatRate     string
	vatIncluded bool
)

var vatCmd = &cobra.Command{
	Use:   "vat",
	Short: "Compute a KDV breakdown",
	Long: `Compute the tax base, tax amount and total for an amount.

With --included the amount is treated as VAT-inclusive (gross) and the base
is extracted from it. Intermediate values are rounded to kuruş at every step,
matching the regulator's rounding.

Examples:
  gib-compliance vat --amount 100 --rate 18
  gib-compliance vat --amount 118 --rate 18 --included`,
	RunE: runVAT,
}

func init() {
	rootCmd.AddCommand(vatCmd)

	vatCmd.Flags().StringVar(&vatAmount, "amount", "", "Amount (required)")
	vatCmd.Flags().StringVar(&vatRate, "rate", "18", "VAT rate percent")
	vatCmd.Flags().BoolVar(&vatIncluded, "included", false, "Amount is VAT-inclusive")
	_ = vatCmd.MarkFlagRequired("amount")
}

func runVAT(cmd *cobra.Command, args []string) error {
	amount, err := money.FromString(vatAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", vatAmount, err)
	}
	rate, err := money.FromString(vatRate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", vatRate, err)
	}
	if amount.IsNegative() || rate.IsNegative() {
		return fmt.Errorf("amount and rate must be non-negative")
	}

	b := vat.Compute(amount, rate, vatIncluded)

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(b)
	}

	fmt.Printf("Tax base:   %s\n", b.TaxBase.StringFixed(2))
	fmt.Printf("Tax amount: %s\n", b.TaxAmount.StringFixed(2))
	fmt.Printf("Total:      %s\n", b.TotalAmount.StringFixed(2))
	return nil
}
