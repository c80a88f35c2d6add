package cli

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/eda"
)

func newDescribeCmd() *cobra.Command {
	var topN int
	var output string

	cmd := &cobra.Command{
		Use:   "describe [file.csv]",
		Short: "Summarise the distinct and missing values of every column",
		Args:  cobra.ExactArgs(1),
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
				topN = cfg.DescribeTopN
			}

			e := eda.New(df,
				eda.WithLogger(loggerFromContext(cmd.Context())),
				eda.WithOutput(cmd.OutOrStdout()))
			summary, err := e.CategoricalDescribe(topN)
			if err != nil {
				return err
			}
			return writeCSV(summary.DataFrame(), output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&topN, "top-n", 0, "number of most frequent values per column (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default stdout)")

	return cmd
}
