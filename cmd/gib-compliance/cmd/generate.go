package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/gib-compliance/internal/txid"
)

var (
	seriesPrefix string
	seriesYear   int
	seriesSerial int
	ettnCount    int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate regulator identifiers",
}

var generateETTNCmd = &cobra.Command{
	Use:   "ettn",
	Short: "Generate transaction identifiers (ETTN)",
	Long: `Generate one or more ETTNs: 32-character uppercase hexadecimal
transaction identifiers drawn from a cryptographically secure random source.

Examples:
  gib-compliance generate ettn
  gib-compliance generate ettn --count 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i := 0; i < ettnCount; i++ {
			fmt.Println(txid.NewETTN())
		}
		return nil
	},
}

var generateSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Generate an e-Arşiv series number",
	Long: `Generate a human-readable invoice number from a series prefix,
issue year and serial, e.g. GIB2026000000042.

Examples:
  gib-compliance generate series --prefix GIB --year 2026 --serial 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(txid.SeriesNumber(seriesPrefix, seriesYear, seriesSerial))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateETTNCmd)
	generateCmd.AddCommand(generateSeriesCmd)

	generateETTNCmd.Flags().IntVar(&ettnCount, "count", 1, "Number of identifiers to generate")

	generateSeriesCmd.Flags().StringVar(&seriesPrefix, "prefix", "", "3-letter series prefix (required)")
	generateSeriesCmd.Flags().IntVar(&seriesYear, "year", 0, "Issue year (required)")
	generateSeriesCmd.Flags().IntVar(&seriesSerial, "serial", 0, "Serial number (required)")
	_ = generateSeriesCmd.MarkFlagRequired("prefix")
	_ = generateSeriesCmd.MarkFlagRequired("year")
	_ = generateSeriesCmd.MarkFlagRequired("serial")
}
