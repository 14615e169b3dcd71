package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sheetsmith/sheetsmith/internal/cmd/output"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
)

// sheetsCmd lists the sheet names of a workbook.
var sheetsCmd = &cobra.Command{
	Use:     "sheets <file.xlsx>",
	GroupID: "utility",
	Short:   "List the sheets of a workbook",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := tableio.SheetNames(args[0])
		if err != nil {
			return err
		}

		format := output.Format(globalFlags.Output)
		formatter := output.NewFormatter(format)

		// Structured formats get the plain name list
		if format == output.FormatJSON || format == output.FormatYAML {
			return formatter.Format(cmd.OutOrStdout(), names)
		}

		data := output.Data{Headers: []string{"Index", "Name"}}
		for i, name := range names {
			data.Rows = append(data.Rows, []string{strconv.Itoa(i), name})
		}
		return formatter.Format(cmd.OutOrStdout(), data)
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}
