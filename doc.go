// Package eda draws grids of exploratory plots of tabular data.
//
// # Data
//
// Data is a gota data frame (github.com/go-gota/gota/dataframe). Missing
// values are the NA elements of its series; when reading CSV files the
// strings "NA" and "NaN" become missing values. The plotting functions
// never modify the data frame.
//
// # Grids of Plots
//
// An Explorer renders one plot per target into a grid of subplots:
//
//	e := eda.New(df)
//	fig, err := e.MassPlot(eda.Columns("age", "sex", "income"), "countplot",
//	    eda.GridOptions{Columns: 2, Options: eda.Options{"top_n": "5"}})
//	err = fig.Save("counts.png")
//
// The grid has as many rows as needed; cells beyond the last target are
// left blank. The plot types are
//
//	boxplot    horizontal box and whiskers of a numeric column
//	countplot  frequencies of the most frequent categories
//	distplot   density histogram and kernel density estimate
//	wordcloud  word frequencies of a text column
//	bar        mean of a numeric column per category of "x_var"
//
// Options are string valued: "hue" groups count, box and density plots
// by a second column, "top_n" limits the number of categories (default
// 10), "cmap" selects the color map of word clouds. "bins" and
// "binwidth" set the histogram of density plots. "color", "alpha" and
// "size" override the theme style of the main marks of a cell.
//
// A column without any value leaves its cell empty and logs a warning.
//
// RankCorrelationsPlots draws the most strongly correlated pairs of a
// set of numeric columns as scatter plots with polynomial trend lines.
//
// # Helpers
//
// ContinuousNullAndOutliers and CategoricalReduce prepare a data frame
// before plotting; DescribeCategorical summarises the distinct values of
// every column.
package eda
