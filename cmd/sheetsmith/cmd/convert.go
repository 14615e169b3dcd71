package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheetsmith/sheetsmith/pkg/tableio"
)

var (
	convertOut   string
	convertNames []string
)

// convertCmd combines CSV files into one workbook.
var convertCmd = &cobra.Command{
	Use:     "convert <file.csv>...",
	GroupID: "utility",
	Short:   "Combine CSV files into one workbook",
	Long: `Convert writes each CSV file onto its own sheet of a single xlsx
workbook. Sheet names default to the file stems, sanitized to the xlsx
naming rules; --names overrides them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var names []string
		if len(convertNames) > 0 {
			names = convertNames
		}
		if err := tableio.CSVsToExcel(args, convertOut, names); err != nil {
			return err
		}
		if !globalFlags.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Combined %d CSV files into %s\n", len(args), convertOut)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output xlsx file (required)")
	_ = convertCmd.MarkFlagRequired("out")
	convertCmd.Flags().StringSliceVar(&convertNames, "names", nil, "sheet names, one per CSV file")

	rootCmd.AddCommand(convertCmd)
}
