package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/union"
)

var (
	unionOut           string
	unionDedupe        bool
	unionDedupeColumns []string
	unionStrict        bool
	unionChunkSize     int
	unionProgress      bool
)

// unionCmd concatenates CSV files into one.
var unionCmd = &cobra.Command{
	Use:     "union <file.csv>...",
	GroupID: "core",
	Short:   "Concatenate CSV files into one",
	Long: `Union concatenates the rows of two or more CSV files into a single
output file. Files with differing columns are reconciled: the output
carries the union of all column names, padding absent cells.

With --dedupe, duplicate rows are removed keeping the first occurrence;
--dedupe-columns restricts duplicate detection to the named columns.
With --strict, any column deviation between inputs fails the union
instead of padding. --chunk-size streams the inputs in row chunks to
bound memory during concatenation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []union.Option
		if unionDedupe {
			opts = append(opts, union.WithDedupe())
		}
		if len(unionDedupeColumns) > 0 {
			opts = append(opts, union.WithDedupeColumns(unionDedupeColumns...))
		}
		if unionStrict {
			opts = append(opts, union.WithStrictColumns())
		}
		if unionChunkSize > 0 {
			opts = append(opts, union.WithChunkSize(unionChunkSize))
		}
		if unionProgress {
			opts = append(opts, union.WithProgress())
		}

		ctx := logging.WithFile(logging.WithOperation(cmd.Context(), "union"), unionOut)
		logging.Ctx(ctx).Debug().Strs("inputs", args).Msg("Starting union")

		if err := union.Files(args, unionOut, opts...); err != nil {
			return err
		}
		if !globalFlags.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Union of %d files written to %s\n", len(args), unionOut)
		}
		return nil
	},
}

func init() {
	unionCmd.Flags().StringVar(&unionOut, "out", "", "output CSV file (required)")
	_ = unionCmd.MarkFlagRequired("out")
	unionCmd.Flags().BoolVar(&unionDedupe, "dedupe", false, "remove duplicate rows, keeping the first occurrence")
	unionCmd.Flags().StringSliceVar(&unionDedupeColumns, "dedupe-columns", nil, "columns to consider for duplicate detection (implies --dedupe)")
	unionCmd.Flags().BoolVar(&unionStrict, "strict", false, "require identical columns in identical order across inputs")
	unionCmd.Flags().IntVar(&unionChunkSize, "chunk-size", 0, "process inputs in chunks of N rows")
	unionCmd.Flags().BoolVar(&unionProgress, "progress", false, "log per-file progress")

	rootCmd.AddCommand(unionCmd)
}
