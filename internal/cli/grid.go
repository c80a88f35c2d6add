package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda"
)

// gridOpts holds the flags of the grid command.
type gridOpts struct {
	cols          []string // columns to plot, default all
	plotType      string
	columns       int // grid columns
	topN          int
	hue           string
	xVar          string
	cmap          string
	set           map[string]string // further renderer options
	width, height float64           // figure size in inches, 0 estimates it
	output        string
}

func newGridCmd() *cobra.Command {
	opts := gridOpts{plotType: eda.CountPlot.String()}

	cmd := &cobra.Command{
		Use:   "grid [file.csv]",
		Short: "Draw one plot per column into a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.cols, "cols", nil, "columns to plot (default all)")
	cmd.Flags().StringVarP(&opts.plotType, "type", "t", opts.plotType, "plot type: boxplot, countplot, distplot, wordcloud or bar")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "number of grid columns (default from config)")
	cmd.Flags().IntVar(&opts.topN, "top-n", 0, "number of categories shown (default from config)")
	cmd.Flags().StringVar(&opts.hue, "hue", "", "grouping column")
	cmd.Flags().StringVar(&opts.xVar, "x-var", "", "categorical x axis of bar plots")
	cmd.Flags().StringVar(&opts.cmap, "cmap", "", "color map of word clouds")
	cmd.Flags().StringToStringVar(&opts.set, "set", nil, "renderer options, e.g. bins=20,alpha=0.6,size=2")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "figure width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "figure height in inches")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default grid.<format>)")

	return cmd
}

func runGrid(cmd *cobra.Command, path string, opts *gridOpts) error {
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

	grid := eda.GridOptions{
		Columns: cfg.Columns,
		Palette: pal,
		Options: eda.Options{eda.OptTopN: strconv.Itoa(cfg.TopN)},
	}
	if cmd.Flags().Changed("columns") {
		grid.Columns = opts.columns
	}
	if cmd.Flags().Changed("top-n") {
		grid.Options[eda.OptTopN] = strconv.Itoa(opts.topN)
	}
	for key, val := range map[string]string{eda.OptHue: opts.hue, eda.OptXVar: opts.xVar, eda.OptCmap: opts.cmap} {
		if val != "" {
			grid.Options[key] = val
		}
	}
	for key, val := range opts.set {
		grid.Options[key] = val
	}
	if opts.width > 0 && opts.height > 0 {
		grid.Size = &eda.Size{
			Width:  vg.Length(opts.width) * vg.Inch,
			Height: vg.Length(opts.height) * vg.Inch,
		}
	}

	cols := opts.cols
	if len(cols) == 0 {
		cols = df.Names()
	}

	e := eda.New(df, eda.WithLogger(logger), eda.WithTheme(cfg.Theme()))
	fig, err := e.MassPlot(eda.Columns(cols...), opts.plotType, grid)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = "grid." + cfg.Format
	}
	if err := fig.Save(output); err != nil {
		return err
	}
	logger.Info("wrote figure", "file", output, "plots", len(cols), "rows", fig.Grid.Rows)
	return nil
}
