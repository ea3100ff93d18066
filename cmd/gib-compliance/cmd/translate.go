package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/gib-compliance/internal/i18n"
)

var translateCmd = &cobra.Command{
	Use:   "translate [codes...]",
	Short: "Translate GIB response codes",
	Long: `Translate one or more GIB response codes into localized messages.

Unknown codes produce a fallback message with error severity rather than
failing.

Examples:
  gib-compliance translate 1200
  gib-compliance translate 1120 1215 --locale en -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	loc := i18n.ParseLocale(locale)

	messages := make([]i18n.Message, 0, len(args))
	for _, code := range args {
		messages = append(messages, i18n.Translate(code, loc))
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(messages)
	}

	for _, m := range messages {
		fmt.Printf("[%s] %s: %s\n", m.Severity, m.Code, m.Text)
	}
	return nil
}
