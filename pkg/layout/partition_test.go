package layout

import (
	"math"
	"testing"

	"github.com/woolforge/woolgen/pkg/errors"
	"github.com/woolforge/woolgen/pkg/rng"
)

func TestPickCuts(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		numCuts int
		minSize float64
	}{
		{"Roomy", 300, 2, 20},
		{"Tight", 61, 2, 20},
		{"Exact", 60, 2, 20},
		{"SingleCut", 45, 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 50; seed++ {
				cuts, err := PickCuts(tt.total, tt.numCuts, tt.minSize, rng.New(seed))
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				if len(cuts) != tt.numCuts {
					t.Fatalf("seed %d: got %d cuts, want %d", seed, len(cuts), tt.numCuts)
				}
				prev := 0.0
				for i, c := range cuts {
					if c-prev < tt.minSize-1e-9 {
						t.Fatalf("seed %d: segment %d is %.3f, below min %.1f", seed, i, c-prev, tt.minSize)
					}
					prev = c
				}
				if tt.total-prev < tt.minSize-1e-9 {
					t.Fatalf("seed %d: last segment is %.3f, below min %.1f", seed, tt.total-prev, tt.minSize)
				}
			}
		})
	}
}

func TestPickCutsInfeasible(t *testing.T) {
	_, err := PickCuts(59, 2, 20, rng.New(1))
	if err == nil {
		t.Fatal("expected error for total below min*(cuts+1)")
	}
	if !errors.Is(err, errors.ErrCodeInfeasiblePartition) {
		t.Errorf("error code = %v, want INFEASIBLE_PARTITION", errors.GetCode(err))
	}
}

// gridTiles checks that the 3x3 zones exactly tile the width x height
// territory with no gaps or overlaps.
func gridTiles(t *testing.T, g Grid, width, height float64) {
	t.Helper()
	area := 0.0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			z := g[row][col]
			if z.Row != row || z.Col != col {
				t.Errorf("zone (%d,%d) has coords (%d,%d)", row, col, z.Row, z.Col)
			}
			area += z.Width * z.Height
			if col > 0 && math.Abs(g[row][col-1].Right()-z.X) > 1e-9 {
				t.Errorf("row %d: gap between col %d and %d", row, col-1, col)
			}
			if row > 0 && math.Abs(g[row-1][col].Bottom()-z.Y) > 1e-9 {
				t.Errorf("col %d: gap between row %d and %d", col, row-1, row)
			}
		}
		if math.Abs(g[row][2].Right()-width) > 1e-9 {
			t.Errorf("row %d does not reach the right edge", row)
		}
	}
	if math.Abs(g[2][0].Bottom()-height) > 1e-9 {
		t.Error("bottom row does not reach the bottom edge")
	}
	if math.Abs(area-width*height) > 1e-6 {
		t.Errorf("zone area %.3f != territory area %.3f", area, width*height)
	}
}

func TestBuildGridTiling(t *testing.T) {
	tests := []struct {
		name        string
		mode        GridMode
		symmetrical bool
	}{
		{"Standard", GridStandard, false},
		{"RowIndependent", GridRowIndependent, false},
		{"Symmetrical", GridStandard, true},
		{"SymmetricalForcesStandard", GridRowIndependent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				g, err := BuildGrid(300, 200, tt.mode, tt.symmetrical, rng.New(seed))
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				gridTiles(t, g, 300, 200)
			}
		})
	}
}

func TestBuildGridSymmetricalRows(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := BuildGrid(300, 200, GridStandard, true, rng.New(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		top, bottom := g[0][0].Height, g[2][0].Height
		if math.Abs(top-bottom) > 1e-9 {
			t.Errorf("seed %d: top row %.3f != bottom row %.3f", seed, top, bottom)
		}
	}
}

func TestBuildGridSymmetricalDisablesRowIndependent(t *testing.T) {
	g, err := BuildGrid(300, 200, GridRowIndependent, true, rng.New(7))
	if err != nil {
		t.Fatal(err)
	}
	// All rows must share one column cut set.
	for row := 1; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if math.Abs(g[row][col].X-g[0][col].X) > 1e-9 {
				t.Errorf("row %d col %d x = %.3f, row 0 x = %.3f", row, col, g[row][col].X, g[0][col].X)
			}
		}
	}
}

func TestBuildGridInfeasibleHeight(t *testing.T) {
	_, err := BuildGrid(300, 50, GridStandard, true, rng.New(1))
	if err == nil {
		t.Fatal("expected error for height too small to mirror")
	}
	if !errors.Is(err, errors.ErrCodeInfeasiblePartition) {
		t.Errorf("error code = %v, want INFEASIBLE_PARTITION", errors.GetCode(err))
	}
}
