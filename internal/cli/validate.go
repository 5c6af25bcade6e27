package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/covgap/internal/core"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an input file without rendering a report",
	Long: `Load and normalize an input file, reporting how many records and systems
it contains. The first invalid record aborts the load with its error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Loader == nil {
			return fmt.Errorf("record loader not initialized")
		}

		records, err := Loader.Load(validateInput)
		if err != nil {
			return fmt.Errorf("validating %s: %w", validateInput, err)
		}

		coverages, _ := core.Analyze(records)
		fmt.Printf("%s: %d record(s) across %d system(s), all valid\n",
			validateInput, len(records), len(coverages))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input data file (JSON, CSV, or YAML)")
	_ = validateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(validateCmd)
}
