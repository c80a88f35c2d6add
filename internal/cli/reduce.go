package cli

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/eda"
)

func newReduceCmd() *cobra.Command {
	var (
		col      string
		topN     int
		strategy = string(eda.AsOther)
		output   string
	)

	cmd := &cobra.Command{
		Use:   "reduce [file.csv]",
		Short: "Limit a column to its most frequent categories",
		Long: `reduce keeps the top-n most frequent values of a column. With the
strategy "as other" every other value, missing ones included, becomes
"Other"; with "exclude" the rows of the other values are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}
			df, err := readCSV(args[0], cfg.Delimiter)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("top-n") {
				topN = cfg.TopN
			}
			reduced, err := eda.CategoricalReduce(df, col, topN, eda.Strategy(strategy))
			if err != nil {
				return err
			}
			rows, _ := reduced.Dims()
			loggerFromContext(cmd.Context()).Debug("reduced", "column", col, "rows", rows)
			return writeCSV(reduced, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&col, "col", "", "column to reduce")
	cmd.Flags().IntVar(&topN, "top-n", 0, "number of categories kept (default from config)")
	cmd.Flags().StringVar(&strategy, "strategy", strategy, `"as other" or "exclude"`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default stdout)")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}
