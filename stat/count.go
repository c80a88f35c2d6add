package stat

import "sort"

// ValueCount is the number of occurrences of one distinct value.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts counts the distinct values. The result is ordered by
// descending count; values with equal count keep the order of their
// first appearance.
func ValueCounts(values []string) []ValueCount {
	index := make(map[string]int)
	var counts []ValueCount
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Top returns the first n values of counts (all if fewer).
func Top(counts []ValueCount, n int) []string {
	if n > len(counts) || n < 0 {
		n = len(counts)
	}
	top := make([]string, n)
	for i := range top {
		top[i] = counts[i].Value
	}
	return top
}
