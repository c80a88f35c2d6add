package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/eda"
)

type corrOpts struct {
	cols      []string // numeric columns, default all numeric
	n         int      // number of pairs plotted
	columns   int
	polyOrder int
	output    string
}

func newCorrCmd() *cobra.Command {
	opts := corrOpts{n: 6}

	cmd := &cobra.Command{
		Use:   "corr [file.csv]",
		Short: "Rank column pairs by correlation and plot the strongest",
		Long: `corr prints all pairs of numeric columns ranked by the absolute value of
their correlation coefficient and draws scatter plots with polynomial
trend lines of the strongest n pairs. With -n 0 no figure is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorr(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.cols, "cols", nil, "numeric columns (default all numeric)")
	cmd.Flags().IntVarP(&opts.n, "pairs", "n", opts.n, "number of pairs to plot")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "number of grid columns (default from config)")
	cmd.Flags().IntVar(&opts.polyOrder, "polyorder", 0, "order of the trend line (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default corr.<format>)")

	return cmd
}

func runCorr(cmd *cobra.Command, path string, opts *corrOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg, err := configFromContext(ctx)
	if err != nil {
		return err
	}

	df, err := readCSV(path, cfg.Delimiter)
	if err != nil {
		return err
	}
	pal, err := cfg.ParsedPalette()
	if err != nil {
		return err
	}
	cols := opts.cols
	if len(cols) == 0 {
		cols = numericColumns(df)
	}

	e := eda.New(df, eda.WithLogger(logger), eda.WithTheme(cfg.Theme()))
	pairs, err := e.RankCorrelations(cols)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range pairs {
		fmt.Fprintf(out, "%s\t%s\t%.4f\n", p.X, p.Y, p.Coef)
	}
	if opts.n == 0 {
		return nil
	}

	ro := eda.RankOptions{Columns: cfg.RankColumns, PolyOrder: cfg.PolyOrder, Palette: pal}
	if cmd.Flags().Changed("columns") {
		ro.Columns = opts.columns
	}
	if cmd.Flags().Changed("polyorder") {
		ro.PolyOrder = opts.polyOrder
	}
	fig, err := e.RankCorrelationsPlots(cols, opts.n, ro)
	if err != nil {
		return err
	}
	if fig.Grid.Rows == 0 {
		logger.Warn("no column pairs to plot", "columns", len(cols))
		return nil
	}

	output := opts.output
	if output == "" {
		output = "corr." + cfg.Format
	}
	if err := fig.Save(output); err != nil {
		return err
	}
	logger.Info("wrote figure", "file", output, "pairs", min(opts.n, len(pairs)))
	return nil
}
