// Package stat contains the numeric summaries behind the exploratory plots:
// histogram binning, box and whisker summaries, kernel density estimates,
// polynomial trend fitting, value counts and correlation ranking.
//
// All functions work on plain slices. Missing values must be removed by the
// caller unless a function documents that NaN marks a missing value.
package stat
