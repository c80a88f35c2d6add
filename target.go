package eda

import "github.com/vdobler/eda/stat"

// Target is what one grid cell shows: a single column Col, or for
// correlation plots the pair Col/Y with their correlation coefficient.
type Target struct {
	Col  string
	Y    string
	Coef float64
}

// IsPair reports whether t names two columns.
func (t Target) IsPair() bool { return t.Y != "" }

func (t Target) String() string {
	if t.IsPair() {
		return t.Col + "~" + t.Y
	}
	return t.Col
}

// Columns returns one single column target per name.
func Columns(names ...string) []Target {
	targets := make([]Target, len(names))
	for i, n := range names {
		targets[i] = Target{Col: n}
	}
	return targets
}

// PairTarget turns a ranked correlation into a target.
func PairTarget(p stat.Pair) Target {
	return Target{Col: p.X, Y: p.Y, Coef: p.Coef}
}
