package layout

import (
	"github.com/woolforge/woolgen/pkg/errors"
	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

// GridMode selects how the column cuts of the 3x3 grid are drawn.
type GridMode string

const (
	// GridStandard draws one set of column cuts shared by every row, so
	// zones line up in straight vertical lanes.
	GridStandard GridMode = "standard"
	// GridRowIndependent draws a fresh set of column cuts per row, producing
	// a staggered grid. Incompatible with symmetrical layouts.
	GridRowIndependent GridMode = "row-independent"
)

// Minimum zone dimensions. A territory that cannot fit three cells of this
// size in a direction is rejected as infeasible.
const (
	MinCellWidth  = 20.0
	MinCellHeight = 20.0
)

// PickCuts places numCuts cut positions inside [0, total] so that every
// resulting segment is at least minSize long. It draws numCuts floats,
// normalizes them into cumulative proportions of the total, then clamps the
// positions into the feasible envelope (a forward pass enforcing minSize from
// the left, a backward pass enforcing it from the right).
//
// Returns an INFEASIBLE_PARTITION error when total < minSize*(numCuts+1).
func PickCuts(total float64, numCuts int, minSize float64, r *rng.Stream) ([]float64, error) {
	if total < minSize*float64(numCuts+1) {
		return nil, errors.New(errors.ErrCodeInfeasiblePartition,
			"dimension %.1f cannot fit %d segments of minimum size %.1f", total, numCuts+1, minSize)
	}

	weights := make([]float64, numCuts)
	sum := 0.0
	for i := range weights {
		weights[i] = r.Float()
		sum += weights[i]
	}

	cuts := make([]float64, numCuts)
	cum := 0.0
	for i, w := range weights {
		if sum > 0 {
			cum += w / sum
		} else {
			cum += 1 / float64(numCuts)
		}
		cuts[i] = cum * total
	}

	// The raw cumulative positions can crowd an end; clamp them into the
	// envelope that keeps every segment at least minSize.
	prev := 0.0
	for i := range cuts {
		if cuts[i] < prev+minSize {
			cuts[i] = prev + minSize
		}
		prev = cuts[i]
	}
	next := total
	for i := numCuts - 1; i >= 0; i-- {
		if cuts[i] > next-minSize {
			cuts[i] = next - minSize
		}
		next = cuts[i]
	}

	return cuts, nil
}

// BuildGrid partitions a width x height territory anchored at the origin into
// the 3x3 zone grid.
//
// Rows: two random cuts constrained to MinCellHeight, or, when symmetrical is
// requested, a uniformly drawn top row height mirrored exactly onto the
// bottom row so the territory has a true horizontal mirror axis.
//
// Columns: one shared cut set in GridStandard mode, an independent set per
// row in GridRowIndependent mode. Row-independent columns are forced off
// whenever symmetrical is set, because staggered columns would break the
// mirror axis.
func BuildGrid(width, height float64, mode GridMode, symmetrical bool, r *rng.Stream) (Grid, error) {
	var grid Grid

	rowCuts, err := buildRowCuts(height, symmetrical, r)
	if err != nil {
		return grid, err
	}

	if symmetrical {
		mode = GridStandard
	}

	var shared []float64
	if mode == GridStandard {
		shared, err = PickCuts(width, 2, MinCellWidth, r)
		if err != nil {
			return grid, err
		}
	}

	rowBounds := append([]float64{0}, append(rowCuts, height)...)
	for row := 0; row < 3; row++ {
		colCuts := shared
		if colCuts == nil {
			colCuts, err = PickCuts(width, 2, MinCellWidth, r)
			if err != nil {
				return grid, err
			}
		}
		colBounds := append([]float64{0}, append(colCuts, width)...)
		for col := 0; col < 3; col++ {
			grid[row][col] = Zone{
				Rect: geo.Rect{
					X:      colBounds[col],
					Y:      rowBounds[row],
					Width:  colBounds[col+1] - colBounds[col],
					Height: rowBounds[row+1] - rowBounds[row],
				},
				Row: row,
				Col: col,
			}
		}
	}

	return grid, nil
}

// buildRowCuts returns the two horizontal cut positions.
func buildRowCuts(height float64, symmetrical bool, r *rng.Stream) ([]float64, error) {
	if !symmetrical {
		return PickCuts(height, 2, MinCellHeight, r)
	}

	// Mirrored rows: top = bottom = h, middle = height - 2h, all >= minimum.
	maxTop := (height - MinCellHeight) / 2
	if maxTop < MinCellHeight {
		return nil, errors.New(errors.ErrCodeInfeasiblePartition,
			"height %.1f cannot fit two mirrored rows of minimum size %.1f", height, MinCellHeight)
	}
	top := MinCellHeight + r.Float()*(maxTop-MinCellHeight)
	return []float64{top, height - top}, nil
}
