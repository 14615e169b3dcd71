package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/merge"
)

var (
	mergeOut    string
	mergePolicy string
	mergeSheet  string
	mergeCommon bool
)

// mergeCmd consolidates same-named sheets across workbook files.
var mergeCmd = &cobra.Command{
	Use:     "merge <file.xlsx>...",
	GroupID: "core",
	Short:   "Merge same-named sheets across workbooks",
	Long: `Merge consolidates multiple workbooks into one: every sheet name that
occurs in at least one input appears exactly once in the output,
containing the concatenated rows from every workbook that has it.

The strict policy requires identical columns in identical order on
every occurrence of a sheet. The lenient policy takes the union of the
column sets, padding absent cells. --sheet restricts the merge to one
named sheet; --common-only merges only sheets present in every input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := merge.ParsePolicy(mergePolicy)
		if err != nil {
			return err
		}

		ctx := logging.WithOperation(cmd.Context(), "merge")
		ctx = logging.WithFile(ctx, mergeOut)
		if mergeSheet != "" {
			ctx = logging.WithSheet(ctx, mergeSheet)
		}
		logging.Ctx(ctx).Debug().Int("workbooks", len(args)).Str("policy", string(policy)).Msg("Starting merge")

		switch {
		case mergeSheet != "":
			err = merge.SheetFiles(args, mergeOut, mergeSheet, policy)
		case mergeCommon:
			err = merge.CommonFiles(args, mergeOut, policy)
		default:
			err = merge.Files(args, mergeOut, policy)
		}
		if err != nil {
			return err
		}

		if !globalFlags.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Merge of %d workbooks written to %s\n", len(args), mergeOut)
		}
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "output xlsx file (required)")
	_ = mergeCmd.MarkFlagRequired("out")
	mergeCmd.Flags().StringVar(&mergePolicy, "policy", "lenient", "column reconciliation policy: strict, lenient")
	mergeCmd.Flags().StringVar(&mergeSheet, "sheet", "", "merge only this sheet")
	mergeCmd.Flags().BoolVar(&mergeCommon, "common-only", false, "merge only sheets present in every workbook")

	rootCmd.AddCommand(mergeCmd)
}
