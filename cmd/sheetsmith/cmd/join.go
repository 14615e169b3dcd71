package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheetsmith/sheetsmith/pkg/join"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

var (
	joinOut      string
	joinOn       []string
	joinLeftOn   []string
	joinRightOn  []string
	joinHow      string
	joinSheets   []string
	joinOutSheet string
)

// joinCmd joins two files, or two sheets of one workbook, on key columns.
var joinCmd = &cobra.Command{
	Use:     "join <left> <right> | join <workbook.xlsx> --sheets <left>,<right>",
	GroupID: "core",
	Short:   "Join two tables on key columns",
	Long: `Join relates two CSV files (or two sheets of one workbook, with
--sheets) on one or more key columns.

Kinds: inner, left, right, outer, cross. Cross ignores the keys and
pairs every left row with every right row. Non-key columns present on
both sides are disambiguated with _left and _right suffixes.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := join.ParseKind(joinHow)
		if err != nil {
			return err
		}

		spec := join.Spec{LeftKeys: joinOn, RightKeys: joinOn, Kind: kind}
		if len(joinLeftOn) > 0 || len(joinRightOn) > 0 {
			spec.LeftKeys = joinLeftOn
			spec.RightKeys = joinRightOn
		}

		if len(joinSheets) > 0 {
			if len(args) != 1 {
				return fmt.Errorf("--sheets takes a single workbook argument")
			}
			if len(joinSheets) != 2 {
				return fmt.Errorf("--sheets needs exactly two sheet names, got %d", len(joinSheets))
			}
			if err := join.SheetsToFile(args[0], joinOut, joinSheets[0], joinSheets[1], joinOutSheet, spec); err != nil {
				return err
			}
		} else {
			if len(args) != 2 {
				return fmt.Errorf("join needs a left and a right file")
			}
			if err := joinFiles(args[0], args[1], spec); err != nil {
				return err
			}
		}

		if !globalFlags.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Join result written to %s\n", joinOut)
		}
		return nil
	},
}

// joinFiles joins two table files, writing CSV or xlsx by the output
// file extension.
func joinFiles(left, right string, spec join.Spec) error {
	if tableio.IsCSV(joinOut) {
		return join.CSVs(left, right, joinOut, spec)
	}

	lt, err := tableio.LoadTable(left)
	if err != nil {
		return err
	}
	rt, err := tableio.LoadTable(right)
	if err != nil {
		return err
	}
	result, err := join.Tables(lt, rt, spec)
	if err != nil {
		return err
	}

	wb := tables.NewWorkbook(joinOut)
	wb.SetSheet(joinOutSheet, result)
	return tableio.SaveWorkbook(wb, joinOut)
}

func init() {
	joinCmd.Flags().StringVar(&joinOut, "out", "", "output file (required)")
	_ = joinCmd.MarkFlagRequired("out")
	joinCmd.Flags().StringSliceVar(&joinOn, "on", nil, "key column(s) shared by both sides")
	joinCmd.Flags().StringSliceVar(&joinLeftOn, "left-on", nil, "key column(s) in the left table")
	joinCmd.Flags().StringSliceVar(&joinRightOn, "right-on", nil, "key column(s) in the right table")
	joinCmd.Flags().StringVar(&joinHow, "how", "inner", "join kind: inner, left, right, outer, cross")
	joinCmd.Flags().StringSliceVar(&joinSheets, "sheets", nil, "join two sheets of one workbook: left,right")
	joinCmd.Flags().StringVar(&joinOutSheet, "out-sheet", "Joined", "sheet name for xlsx output")

	rootCmd.AddCommand(joinCmd)
}
