//go:build purego || js

package ecoview

import "math"

// Mat is a pure Go 2D float32 matrix.
type Mat struct {
	data []float32
	rows int
	cols int
}

func NewMat() Mat { return Mat{} }

func NewMatWithSize(rows, cols int) Mat {
	return Mat{
		data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

func (m Mat) Rows() int   { return m.rows }
func (m Mat) Cols() int   { return m.cols }
func (m Mat) Empty() bool { return m.data == nil || m.rows == 0 || m.cols == 0 }

func (m *Mat) Close() {
	m.data = nil
	m.rows = 0
	m.cols = 0
}

// DataFloat32 returns the backing float32 slice.
func (m Mat) DataFloat32() []float32 {
	return m.data
}

// --- Pure Go CV operations ---

// reflectIndex maps an out-of-range index using edge-duplicating reflection
// (fedcba|abcdef|fedcba), matching gocv.BorderReflect.
func reflectIndex(idx, size int) int {
	for idx < 0 || idx >= size {
		if idx < 0 {
			idx = -idx - 1
		} else {
			idx = 2*size - 1 - idx
		}
	}
	return idx
}

func sepFilter2DReflect(src Mat, dst *Mat, kernelX, kernelY Mat) {
	rows, cols := src.rows, src.cols
	srcData := src.DataFloat32()
	kx := kernelX.DataFloat32()
	ky := kernelY.DataFloat32()
	kxLen := kernelX.rows * kernelX.cols
	kyLen := kernelY.rows * kernelY.cols
	kxHalf := kxLen / 2
	kyHalf := kyLen / 2

	if dst.rows != rows || dst.cols != cols || dst.data == nil {
		*dst = NewMatWithSize(rows, cols)
	}

	temp := make([]float32, rows*cols)

	// Horizontal pass
	for r := 0; r < rows; r++ {
		rowOff := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			if c >= kxHalf && c < cols-kxHalf {
				base := rowOff + c - kxHalf
				for k := 0; k < kxLen; k++ {
					sum += srcData[base+k] * kx[k]
				}
			} else {
				for k := 0; k < kxLen; k++ {
					sum += srcData[rowOff+reflectIndex(c+k-kxHalf, cols)] * kx[k]
				}
			}
			temp[rowOff+c] = sum
		}
	}

	// Vertical pass
	dstData := dst.DataFloat32()
	rowOffs := make([]int, kyLen)
	for r := 0; r < rows; r++ {
		for k := 0; k < kyLen; k++ {
			rowOffs[k] = reflectIndex(r+k-kyHalf, rows) * cols
		}
		dstOff := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := 0; k < kyLen; k++ {
				sum += temp[rowOffs[k]+c] * ky[k]
			}
			dstData[dstOff+c] = sum
		}
	}
}

func thresholdBinary(src Mat, dst *Mat, thresh, maxval float32) {
	n := src.rows * src.cols
	sd := src.DataFloat32()
	if dst.rows != src.rows || dst.cols != src.cols || dst.data == nil {
		*dst = NewMatWithSize(src.rows, src.cols)
	}
	dd := dst.DataFloat32()
	for i := 0; i < n; i++ {
		if sd[i] > thresh {
			dd[i] = maxval
		} else {
			dd[i] = 0
		}
	}
}

func matMeanStdDev(src Mat) (float64, float64) {
	data := src.DataFloat32()
	n := src.rows * src.cols
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(data[i])
	}
	mean := sum / float64(n)
	var sse float64
	for i := 0; i < n; i++ {
		d := float64(data[i]) - mean
		sse += d * d
	}
	return mean, math.Sqrt(sse / float64(n))
}
