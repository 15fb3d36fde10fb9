//go:build !purego && !js

package ecoview

import (
	"image"

	"gocv.io/x/gocv"
)

// Mat wraps gocv.Mat for the native OpenCV backend.
type Mat struct {
	m gocv.Mat
}

func NewMat() Mat                      { return Mat{m: gocv.NewMat()} }
func NewMatWithSize(rows, cols int) Mat { return Mat{m: gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)} }
func (mat Mat) Rows() int              { return mat.m.Rows() }
func (mat Mat) Cols() int              { return mat.m.Cols() }
func (mat Mat) Empty() bool            { return mat.m.Empty() }
func (mat *Mat) Close()                { mat.m.Close() }

func (mat Mat) DataFloat32() []float32 {
	data, _ := mat.m.DataPtrFloat32()
	return data
}

// --- CV operations ---

func sepFilter2DReflect(src Mat, dst *Mat, kernelX, kernelY Mat) {
	gocv.SepFilter2D(src.m, &dst.m, gocv.MatTypeCV32F, kernelX.m, kernelY.m, image.Pt(-1, -1), 0, gocv.BorderReflect)
}

func thresholdBinary(src Mat, dst *Mat, thresh, maxval float32) {
	gocv.Threshold(src.m, &dst.m, thresh, maxval, gocv.ThresholdBinary)
}

func matMeanStdDev(src Mat) (float64, float64) {
	meanMat := gocv.NewMat()
	defer meanMat.Close()
	stdMat := gocv.NewMat()
	defer stdMat.Close()
	gocv.MeanStdDev(src.m, &meanMat, &stdMat)
	return meanMat.GetDoubleAt(0, 0), stdMat.GetDoubleAt(0, 0)
}
