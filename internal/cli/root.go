// Package cli implements the edaplot command-line interface.
//
// # Commands
//
//   - grid: one plot per column in a grid (boxplot, countplot, distplot, wordcloud, bar)
//   - corr: scatter plots of the most strongly correlated column pairs
//   - describe: distinct values, missing values and most frequent values per column
//   - reduce: limit a column to its most frequent categories
//   - outliers: drop missing values and outliers of a numeric column
//   - config: show or write the configuration
//
// Data is read from CSV files. All commands support --verbose (-v) for
// debug-level logging; loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vdobler/eda/internal/config"
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) { version = v }

// Execute runs the edaplot command line.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree; log messages go to logw.
func newRootCmd(logw io.Writer) *cobra.Command {
	var verbose bool
	var cfgFile string

	root := &cobra.Command{
		Use:          "edaplot",
		Short:        "Exploratory plots of CSV data",
		Long:         `edaplot draws grids of exploratory plots (counts, boxes, densities, word clouds, bars and correlations) of the columns of a CSV file and prepares the data for them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logw, level)
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			logger.Debug("configuration loaded", "file", cfgFile)
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default ~/.edaplot/config.yaml)")

	root.AddCommand(newGridCmd())
	root.AddCommand(newCorrCmd())
	root.AddCommand(newDescribeCmd())
	root.AddCommand(newReduceCmd())
	root.AddCommand(newOutliersCmd())
	root.AddCommand(newConfigCmd(&cfgFile))

	return root
}
