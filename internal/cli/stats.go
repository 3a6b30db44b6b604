package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statsSummary bool

// statsCmd summarizes the sources in a file
var statsCmd = &cobra.Command{
	Use:   "stats <sources.yaml>",
	Short: "Show source statistics and credibility averages",
	Long: `Stats registers every source from the file and prints counts by
type and industry, the average credibility, and the verified/recent
source counts. With --summary, the human-readable credibility block is
appended.

Example:
  deepcite stats sources.yaml --summary`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		led, formatter, err := buildLedger(args[0])
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(led.Statistics())
		if err != nil {
			return fmt.Errorf("marshal statistics: %w", err)
		}
		fmt.Print(string(data))

		if statsSummary {
			fmt.Println()
			fmt.Println(formatter.CredibilitySummary())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsSummary, "summary", false, "append the credibility summary block")
}
