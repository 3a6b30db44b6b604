package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bibliographyFormat string

// bibliographyCmd renders every source as a numbered bibliography line
var bibliographyCmd = &cobra.Command{
	Use:   "bibliography <sources.yaml>",
	Short: "Render a numbered bibliography for a sources file",
	Long: `Bibliography registers every source from the file and renders one
"[id] citation" line per source, in ascending citation-id order.

Example:
  deepcite bibliography sources.yaml
  deepcite bibliography sources.yaml --format mla`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := flagFormat(bibliographyFormat)
		if err != nil {
			return err
		}

		_, formatter, err := buildLedger(args[0])
		if err != nil {
			return err
		}

		fmt.Println(formatter.Bibliography(format))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bibliographyCmd)
	bibliographyCmd.Flags().StringVar(&bibliographyFormat, "format", "", "citation style (apa, mla, chicago, harvard, bibtex, ieee, vancouver)")
}
