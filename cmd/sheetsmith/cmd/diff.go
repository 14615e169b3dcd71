package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sheetsmith/sheetsmith/internal/cmd/output"
	"github.com/sheetsmith/sheetsmith/pkg/diff"
)

var (
	diffKeys        []string
	diffIgnoreWS    bool
	diffIgnoreCase  bool
	diffIgnoreOrder bool
	diffOnlyDiffs   bool
	diffMaxRows     int
	diffReport      string
	diffShowTable   bool
)

// diffCmd compares two files side by side.
var diffCmd = &cobra.Command{
	Use:     "diff <fileA> <fileB>",
	GroupID: "core",
	Short:   "Compare two files side by side",
	Long: `Diff aligns two CSV or xlsx files, by row position or by key columns
with --key, classifies every aligned row pair as MATCH, DIFF, ONLY_A,
or ONLY_B, and prints the aggregate counts.

With --report, a highlighted multi-sheet xlsx report is written: the
full comparison color-coded by status, a summary, and one sheet each
for the rows only present on one side.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []diff.Option
		if len(diffKeys) > 0 {
			opts = append(opts, diff.ByKey(diffKeys...))
		}
		if diffIgnoreWS {
			opts = append(opts, diff.IgnoreWhitespace())
		}
		if diffIgnoreCase {
			opts = append(opts, diff.IgnoreCase())
		}
		if diffIgnoreOrder {
			opts = append(opts, diff.IgnoreColumnOrder())
		}
		if diffOnlyDiffs {
			opts = append(opts, diff.OnlyDiffs())
		}
		if diffMaxRows > 0 {
			opts = append(opts, diff.MaxRows(diffMaxRows))
		}

		res, err := diff.Files(args[0], args[1], opts...)
		if err != nil {
			return err
		}

		if diffReport != "" {
			nameA := filepath.Base(args[0])
			nameB := filepath.Base(args[1])
			if err := diff.WriteReport(res, diffReport, nameA, nameB); err != nil {
				return err
			}
		}

		if diffShowTable {
			tf := output.NewFormatter(output.FormatTable)
			if err := tf.Format(cmd.OutOrStdout(), res.Table); err != nil {
				return err
			}
		}

		formatter := output.NewFormatter(output.Format(globalFlags.Output))
		return formatter.Format(cmd.OutOrStdout(), res.Stats)
	},
}

func init() {
	diffCmd.Flags().StringSliceVar(&diffKeys, "key", nil, "align rows by these key columns instead of by position")
	diffCmd.Flags().BoolVar(&diffIgnoreWS, "ignore-whitespace", false, "trim whitespace before comparing")
	diffCmd.Flags().BoolVar(&diffIgnoreCase, "ignore-case", false, "case-fold strings before comparing")
	diffCmd.Flags().BoolVar(&diffIgnoreOrder, "ignore-column-order", false, "compare only common columns, matched by name")
	diffCmd.Flags().BoolVar(&diffOnlyDiffs, "only-diffs", false, "drop MATCH rows from the report")
	diffCmd.Flags().IntVar(&diffMaxRows, "max-rows", 0, "truncate each input to its first N rows")
	diffCmd.Flags().StringVar(&diffReport, "report", "", "write a highlighted xlsx report to this path")
	diffCmd.Flags().BoolVar(&diffShowTable, "show-table", false, "print the full row-by-row comparison before the counts")

	rootCmd.AddCommand(diffCmd)
}
