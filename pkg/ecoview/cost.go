package ecoview

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	treeCountBase       = 115.0
	treeCountScale      = 1000.0
	densityExponentGain = 100.0

	// maxDensityExponent caps exp(k). Grids under ~16k cells push k past the
	// float64 range; at 600 the base term stays finite and so does any path sum.
	maxDensityExponent = 600.0

	densityWindow = 5
	densityGain   = 50000.0

	maskHigh = 255.0
)

// DensityFactor returns exp(k) with k = (115/(rows*cols)*1000)*100, capped at exp(600).
func DensityFactor(rows, cols int) float64 {
	k := treeCountBase / float64(rows*cols) * treeCountScale * densityExponentGain
	if k > maxDensityExponent {
		k = maxDensityExponent
	}
	return math.Exp(k)
}

// BuildCostGrid combines the density-scaled base term, the local 5×5 density
// term and the squared distance to target into the cost of entering each cell.
//
// The base term is zero on vegetation and maximal elsewhere, so routes prefer
// vegetation cells. The distance term is part of the weight, not a heuristic.
func BuildCostGrid(mask *VegetationMask, target Coordinate) (*CostGrid, error) {
	rows, cols := mask.Height, mask.Width
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyImage
	}
	if err := validateCoordinate("target", target, rows, cols); err != nil {
		return nil, err
	}

	factor := DensityFactor(rows, cols)

	inverted := mask.Scaled()
	for i, v := range inverted {
		inverted[i] = maskHigh - v
	}
	invMat := MatFromFloat32(inverted, rows, cols)
	defer invMat.Close()
	avg := BoxFilterReflect(invMat, densityWindow)
	defer avg.Close()
	avgData := avg.DataFloat32()

	data := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		dr := float64(r - target.Row)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			dc := float64(c - target.Col)

			base := factor * float64(inverted[i])

			a := float64(avgData[i])
			if a < 0 {
				a = 0
			}
			density := densityGain * math.Log(a+1)

			data[i] = base + density + dr*dr + dc*dc
		}
	}

	return &CostGrid{dense: mat.NewDense(rows, cols, data)}, nil
}

// NewCostGrid wraps caller-supplied row-major costs. Every value must be finite
// and non-negative.
func NewCostGrid(rows, cols int, values []float64) (*CostGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyImage
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d grid", ErrDimensionMismatch, len(values), rows, cols)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("cost at (%d,%d) is %v: must be finite and non-negative", i/cols, i%cols, v)
		}
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &CostGrid{dense: mat.NewDense(rows, cols, data)}, nil
}
