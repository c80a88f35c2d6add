package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// naValues are the CSV cells read as missing values.
var naValues = []string{"NA", "NaN", "<nil>", ""}

// readCSV loads a CSV file with a header line. Column types are detected.
func readCSV(path, delimiter string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()

	opts := []dataframe.LoadOption{dataframe.NaNValues(naValues)}
	if d := []rune(delimiter); len(d) > 0 {
		opts = append(opts, dataframe.WithDelimiter(d[0]))
	}
	df := dataframe.ReadCSV(f, opts...)
	if df.Err != nil {
		return df, fmt.Errorf("read %s: %w", path, df.Err)
	}
	return df, nil
}

// writeCSV writes df to path, or to w if path is empty.
func writeCSV(df dataframe.DataFrame, path string, w io.Writer) (err error) {
	if path == "" {
		return df.WriteCSV(w)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return df.WriteCSV(f)
}

// numericColumns returns the names of the columns of df not holding
// strings.
func numericColumns(df dataframe.DataFrame) []string {
	var names []string
	for _, n := range df.Names() {
		if df.Col(n).Type() != series.String {
			names = append(names, n)
		}
	}
	return names
}
