package ecoview

// ChannelMat extracts one RGB channel (0=R, 1=G, 2=B) as a float32 Mat in [0, 255].
func ChannelMat(px *PixelGrid, channel int) Mat {
	m := NewMatWithSize(px.Height, px.Width)
	dest := m.DataFloat32()
	n := px.Width * px.Height
	for i := 0; i < n; i++ {
		dest[i] = float32(px.Pix[i*3+channel])
	}
	return m
}

// MatFromFloat32 copies row-major values into a new Mat.
func MatFromFloat32(values []float32, rows, cols int) Mat {
	m := NewMatWithSize(rows, cols)
	copy(m.DataFloat32(), values)
	return m
}

// GetBoxKernel1D returns a normalized box kernel of the given size.
func GetBoxKernel1D(size int) Mat {
	kernel := NewMatWithSize(size, 1)
	data := kernel.DataFloat32()
	for i := 0; i < size; i++ {
		data[i] = 1.0 / float32(size)
	}
	return kernel
}

// BoxFilterReflect computes the size×size box average of src with reflected borders.
func BoxFilterReflect(src Mat, size int) Mat {
	if size < 1 || size%2 == 0 {
		panic("size must be a positive odd number")
	}
	kernel := GetBoxKernel1D(size)
	defer kernel.Close()
	dst := NewMat()
	sepFilter2DReflect(src, &dst, kernel, kernel)
	return dst
}

// Binarize thresholds src into dst: maxval where src > threshold, else 0.
func Binarize(src Mat, dst *Mat, threshold, maxval float64) {
	thresholdBinary(src, dst, float32(threshold), float32(maxval))
}

// MeanValue returns the arithmetic mean of all elements of src.
func MeanValue(src Mat) float64 {
	mean, _ := matMeanStdDev(src)
	return mean
}
