package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd dumps all sources in an export format
var exportCmd = &cobra.Command{
	Use:   "export <sources.yaml>",
	Short: "Export sources as JSON, BibTeX or CSV",
	Long: `Export registers every source from the file and writes the full
source table in the chosen format. Exports are write-only: nothing reads
them back into a ledger.

Example:
  deepcite export sources.yaml --format json
  deepcite export sources.yaml --format csv --out sources.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, formatter, err := buildLedger(args[0])
		if err != nil {
			return err
		}

		text, err := formatter.Export(exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(text), 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s export to %s\n", exportFormat, exportOut)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format (json, bibtex, csv)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default: stdout)")
}
