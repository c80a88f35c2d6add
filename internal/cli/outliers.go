package cli

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/eda"
)

func newOutliersCmd() *cobra.Command {
	var (
		col          string
		upper, lower float64
		output       string
	)

	cmd := &cobra.Command{
		Use:   "outliers [file.csv]",
		Short: "Drop missing values and outliers of a numeric column",
		Long: `outliers drops the rows where the column is missing or above the
--upper percentile; with --lower also the rows below that percentile.`,
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
			var lowerPct *float64
			if cmd.Flags().Changed("lower") {
				lowerPct = &lower
			}
			filtered, err := eda.ContinuousNullAndOutliers(df, col, upper, lowerPct)
			if err != nil {
				return err
			}
			before, _ := df.Dims()
			after, _ := filtered.Dims()
			loggerFromContext(cmd.Context()).Info("filtered", "column", col, "dropped", before-after, "kept", after)
			return writeCSV(filtered, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&col, "col", "", "numeric column to filter")
	cmd.Flags().Float64Var(&upper, "upper", 99, "upper percentile in [0,100]")
	cmd.Flags().Float64Var(&lower, "lower", 0, "lower percentile in [0,100]")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default stdout)")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}
