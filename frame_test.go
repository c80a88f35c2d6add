package eda

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var measurement = [][]string{
	{"age", "origin", "weight", "height", "comment"},
	{"20", "de", "80", "1.88", "great service"},
	{"22", "de", "85", "1.85", "NA"},
	{"20", "de", "90", "1.95", "None given"},
	{"25", "de", "90", "1.72", "great food"},

	{"20", "ch", "77", "1.78", "slow service"},
	{"20", "ch", "82", "1.75", "NA"},
	{"28", "ch", "85", "1.80", "great view"},
	{"NA", "ch", "84", "1.62", "none"},

	{"31", "de", "85", "1.88", "good food"},
	{"30", "de", "90", "1.85", "great"},
	{"30", "de", "99", "1.95", "NA"},
	{"42", "uk", "95", "1.72", "slow"},

	{"30", "ch", "80", "1.78", "good service"},
	{"30", "ch", "85", "NA", "great service"},
	{"37", "ch", "87", "1.80", "fine"},
	{"36", "uk", "90", "1.82", "great food"},
}

func measurementFrame() dataframe.DataFrame {
	return dataframe.LoadRecords(measurement)
}

func TestFrameShape(t *testing.T) {
	f := NewFrame(measurementFrame())
	rows, cols := f.Shape()
	if rows != 16 || cols != 5 {
		t.Errorf("Got %d x %d, want 16 x 5", rows, cols)
	}
	if !f.Has("origin") || f.Has("Origin") {
		t.Errorf("Has is broken")
	}
	if _, err := f.Column("bmi"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Got %v, want ErrInvalidArgument", err)
	}
}

func TestFrameMissing(t *testing.T) {
	f := NewFrame(measurementFrame())
	for col, want := range map[string]int{"age": 1, "origin": 0, "height": 1, "comment": 3} {
		got, err := f.Missing(col)
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		if got != want {
			t.Errorf("%s: Got %d missing, want %d", col, got, want)
		}
	}
}

func TestFrameFloats(t *testing.T) {
	f := NewFrame(measurementFrame())

	all, err := f.FloatsNaN("age")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(all) != 16 || !math.IsNaN(all[7]) || all[0] != 20 {
		t.Errorf("Got %v", all)
	}
	present, err := f.Floats("height")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(present) != 15 {
		t.Errorf("Got %d heights, want 15", len(present))
	}

	if _, err := f.Floats("origin"); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("Got %v, want ErrNotNumeric", err)
	}

	min, max, err := f.MinMax("weight")
	if err != nil || min != 77 || max != 99 {
		t.Errorf("Got %g, %g, %v, want 77, 99", min, max, err)
	}

	empty := NewFrame(dataframe.New(series.New([]string{"NaN", "NaN"}, series.Float, "x")))
	min, max, err = empty.MinMax("x")
	if err != nil || !math.IsNaN(min) || !math.IsNaN(max) {
		t.Errorf("Got %g, %g, %v, want NaN, NaN", min, max, err)
	}
}

func TestFrameValueCounts(t *testing.T) {
	f := NewFrame(measurementFrame())
	counts, err := f.ValueCounts("origin")
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	want := []string{"de:7", "ch:7", "uk:2"}
	if len(counts) != len(want) {
		t.Fatalf("Got %v", counts)
	}
	for i, c := range counts {
		if got := c.Value + ":" + strconv.Itoa(c.Count); got != want[i] {
			t.Errorf("%d: Got %s, want %s", i, got, want[i])
		}
	}

	top, err := f.TopCategories("age", 2)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(top) != 2 || top[0] != "20" || top[1] != "30" {
		t.Errorf("Got %v, want [20 30]", top)
	}
}
