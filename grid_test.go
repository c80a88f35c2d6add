package eda

import (
	"errors"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestComputeGrid(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for columns := 1; columns <= 6; columns++ {
			g, err := ComputeGrid(n, columns)
			if err != nil {
				t.Fatalf("ComputeGrid(%d, %d): %v", n, columns, err)
			}
			if g.NPlots < n || g.NPlots != g.Rows*g.Columns {
				t.Errorf("ComputeGrid(%d, %d) = %+v", n, columns, g)
			}
			if (g.Rows-1)*columns >= n {
				t.Errorf("ComputeGrid(%d, %d): too many rows %d", n, columns, g.Rows)
			}
		}
	}
}

func TestComputeGridExample(t *testing.T) {
	g, err := ComputeGrid(7, 3)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if g.Rows != 3 || g.NPlots != 9 {
		t.Errorf("Got %+v, want 3 rows and 9 plots", g)
	}
	if g.Size.Width != 15*vg.Inch || g.Size.Height != 12*vg.Inch {
		t.Errorf("Got size %v", g.Size)
	}
	if r, c := g.Cell(7); r != 2 || c != 1 {
		t.Errorf("Got cell %d,%d, want 2,1", r, c)
	}

	g, err = ComputeGrid(0, 2)
	if err != nil || g.Rows != 0 || g.NPlots != 0 {
		t.Errorf("Got %+v, %v", g, err)
	}
}

func TestComputeGridErrors(t *testing.T) {
	for _, tc := range []struct{ n, columns int }{{3, 0}, {3, -2}, {-1, 2}} {
		if _, err := ComputeGrid(tc.n, tc.columns); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ComputeGrid(%d, %d): Got %v", tc.n, tc.columns, err)
		}
	}
}
