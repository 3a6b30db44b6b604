package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var citeFormat string

// citeCmd renders a single citation by id
var citeCmd = &cobra.Command{
	Use:   "cite <sources.yaml> <citation-id>",
	Short: "Render one citation by id",
	Long: `Cite renders the citation for one source. An id that is not in the
file renders as the bracketed placeholder, matching what a report writer
would substitute for a dangling reference.

Example:
  deepcite cite sources.yaml 3 --format chicago`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := flagFormat(citeFormat)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("citation id must be an integer: %q", args[1])
		}

		_, formatter, err := buildLedger(args[0])
		if err != nil {
			return err
		}

		fmt.Println(formatter.FormatCitation(id, format))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citeCmd)
	citeCmd.Flags().StringVar(&citeFormat, "format", "", "citation style (apa, mla, chicago, harvard, bibtex, ieee, vancouver)")
}
