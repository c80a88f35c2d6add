package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/eda"
)

const people = `name,age,sex,income
anna,23,f,1000
bert,35,m,2300
carl,NA,m,1800
dora,51,f,NA
emil,42,m,3000
fina,30,f,2100
`

func writeData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte(people), 0o644))
	return path
}

// run executes edaplot with args and a configuration file which does
// not exist, returning standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(io.Discard)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	args = append(args, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	require.Zero(t, buf.Len())
	logger.Info("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestContextDefaults(t *testing.T) {
	require.Equal(t, log.Default(), loggerFromContext(context.Background()))

	l := log.New(io.Discard)
	require.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", writeData(t), "--top-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "Dataframe Dimension: 6 Rows, 4 Columns", lines[0])
	require.Equal(t, "Column,Unique,Missing,dtype,ValCount 1,Occ 1,ValCount 2,Occ 2", lines[1])
	require.Len(t, lines, 2+4)
	require.True(t, strings.HasPrefix(lines[3], "age,5,1,int,"), lines[3])
	require.True(t, strings.HasPrefix(lines[4], "sex,2,0,string,f,3,m,3"), lines[4])
}

func TestReduce(t *testing.T) {
	out, err := run(t, "reduce", writeData(t), "--col", "sex", "--top-n", "1")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, ",f,"))
	require.Equal(t, 3, strings.Count(out, ",Other,"))

	_, err = run(t, "reduce", writeData(t), "--col", "sex", "--strategy", "drop")
	require.ErrorIs(t, err, eda.ErrInvalidArgument)
}

func TestOutliers(t *testing.T) {
	out, err := run(t, "outliers", writeData(t), "--col", "income", "--upper", "50")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Present incomes 1000 1800 2100 2300 3000, median 2100.
	require.Len(t, lines, 1+3)
	require.NotContains(t, out, "2300")
	require.NotContains(t, out, "dora")
}

func TestGrid(t *testing.T) {
	output := filepath.Join(t.TempDir(), "counts.png")
	_, err := run(t, "grid", writeData(t), "--cols", "sex,age,name", "--type", "countplot", "--columns", "2", "-o", output)
	require.NoError(t, err)
	info, err := os.Stat(output)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	_, err = run(t, "grid", writeData(t), "--type", "scatterplot", "-o", output)
	require.ErrorIs(t, err, eda.ErrUnknownPlotType)
}

func TestGridEmptyColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,note\nanna,\nbert,NA\ncarl,\n"), 0o644))
	output := filepath.Join(t.TempDir(), "notes.png")
	_, err := run(t, "grid", path, "-o", output)
	require.NoError(t, err)
	require.FileExists(t, output)
}

func TestGridRendererOptions(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dist.svg")
	_, err := run(t, "grid", writeData(t), "--cols", "age,income", "-t", "distplot", "--set", "bins=3,alpha=0.2", "-o", output)
	require.NoError(t, err)
	require.FileExists(t, output)

	_, err = run(t, "grid", writeData(t), "--cols", "age", "-t", "distplot", "--set", "bins=three", "-o", output)
	require.ErrorIs(t, err, eda.ErrInvalidArgument)
}

func TestVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { SetVersion(old) })
	SetVersion("v1.2.3")
	out, err := run(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "edaplot version v1.2.3\n", out)
}

func TestCorr(t *testing.T) {
	out, err := run(t, "corr", writeData(t), "-n", "0")
	require.NoError(t, err)
	require.Equal(t, "age\tincome", strings.Join(strings.Split(strings.TrimSpace(out), "\t")[:2], "\t"))

	output := filepath.Join(t.TempDir(), "corr.svg")
	_, err = run(t, "corr", writeData(t), "-n", "1", "-o", output)
	require.NoError(t, err)
	require.FileExists(t, output)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "columns: 2")
	require.Contains(t, out, "format: png")
}
