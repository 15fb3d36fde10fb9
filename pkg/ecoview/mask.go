package ecoview

const (
	greenChannel = 1

	// vegetationThresholdDivisor scales the mean green level down to the cut-off.
	vegetationThresholdDivisor = 1.5
)

// GreenThreshold returns mean(green)/1.5 for the grid.
func GreenThreshold(px *PixelGrid) float64 {
	green := ChannelMat(px, greenChannel)
	defer green.Close()
	return thresholdOf(green)
}

func thresholdOf(green Mat) float64 {
	return MeanValue(green) / vegetationThresholdDivisor
}

// BuildVegetationMask marks every pixel whose green value is strictly above
// GreenThreshold. Uniform images produce an all-false or all-true mask.
func BuildVegetationMask(px *PixelGrid) *VegetationMask {
	green := ChannelMat(px, greenChannel)
	defer green.Close()

	threshold := thresholdOf(green)

	binary := NewMat()
	defer binary.Close()
	Binarize(green, &binary, threshold, 255)

	data := binary.DataFloat32()
	mask := &VegetationMask{
		Width:  px.Width,
		Height: px.Height,
		Cells:  make([]bool, px.Width*px.Height),
	}
	for i := range mask.Cells {
		mask.Cells[i] = data[i] != 0
	}
	return mask
}
