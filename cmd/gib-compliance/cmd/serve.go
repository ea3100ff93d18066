package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/gib-compliance/internal/server"
)

var (
	serveAddress string
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run an HTTP server exposing the compliance engine.

Endpoints:
  POST /api/v1/validate/taxid      Validate a taxpayer identifier
  POST /api/v1/validate/totals     Reconcile declared invoice totals
  POST /api/v1/validate/ledger     Check double-entry balance
  POST /api/v1/validate/structure  Check UBL-TR structural completeness
  POST /api/v1/compute/vat         Compute a KDV breakdown
  POST /api/v1/generate/ettn       Generate a transaction identifier
  POST /api/v1/generate/series     Generate an e-Arşiv series number
  POST /api/v1/translate           Translate a GIB response code
  POST /api/v1/status/map          Map an internal status to GIB vocabulary

Examples:
  gib-compliance serve
  gib-compliance serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddress, "address", ":8080", "Listen address")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.NewServer(&server.Config{
		Address:      serveAddress,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		Debug:        serveDebug,
	})

	fmt.Printf("Listening on %s\n", serveAddress)
	return srv.Run()
}
