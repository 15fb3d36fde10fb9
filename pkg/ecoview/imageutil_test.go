package ecoview_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoview/pkg/ecoview"
)

func TestBoxFilterReflect_Uniform(t *testing.T) {
	vals := make([]float32, 6*4)
	for i := range vals {
		vals[i] = 255
	}
	src := ecoview.MatFromFloat32(vals, 4, 6)
	defer src.Close()

	dst := ecoview.BoxFilterReflect(src, 5)
	defer dst.Close()
	require.Equal(t, 4, dst.Rows())
	require.Equal(t, 6, dst.Cols())
	for _, v := range dst.DataFloat32()[:24] {
		assert.InDelta(t, 255.0, v, 1e-3)
	}
}

func TestBoxFilterReflect_CornerDuplicatesEdge(t *testing.T) {
	// With edge-duplicating reflection the corner sample is counted twice in
	// each axis: 255 * (2*2)/25.
	vals := make([]float32, 5*5)
	vals[0] = 255
	src := ecoview.MatFromFloat32(vals, 5, 5)
	defer src.Close()

	dst := ecoview.BoxFilterReflect(src, 5)
	defer dst.Close()
	data := dst.DataFloat32()
	assert.InDelta(t, 40.8, data[0], 1e-3)
	assert.InDelta(t, 40.8, data[1], 1e-3)
	assert.InDelta(t, 20.4, data[2], 1e-3)

	// The centre window sees the corner once.
	assert.InDelta(t, 10.2, data[2*5+2], 1e-3)
}

func TestChannelMat(t *testing.T) {
	px := ecoview.NewPixelGrid(2, 1)
	px.Set(0, 0, color.RGBA{1, 2, 3, 255})
	px.Set(0, 1, color.RGBA{4, 5, 6, 255})

	g := ecoview.ChannelMat(px, 1)
	defer g.Close()
	assert.Equal(t, []float32{2, 5}, g.DataFloat32()[:2])
	assert.InDelta(t, 3.5, ecoview.MeanValue(g), 1e-9)
}

// Fixed 3x2 input shared by both compute backends: the threshold compare and
// the reflected box filter must give these exact figures under either build.
func TestMaskAndBoxFilter_Golden(t *testing.T) {
	greens := [2][3]uint8{{10, 200, 40}, {90, 0, 160}}
	px := ecoview.NewPixelGrid(3, 2)
	for r, row := range greens {
		for c, g := range row {
			px.Set(r, c, color.RGBA{0, g, 0, 255})
		}
	}

	// mean(G) = 500/6, cut-off = 55.56
	assert.InDelta(t, 500.0/6/1.5, ecoview.GreenThreshold(px), 1e-4)
	mask := ecoview.BuildVegetationMask(px)
	assert.Equal(t, []bool{false, true, false, true, false, true}, mask.Cells)

	inverted := mask.Scaled()
	for i, v := range inverted {
		inverted[i] = 255 - v
	}
	src := ecoview.MatFromFloat32(inverted, 2, 3)
	defer src.Close()
	dst := ecoview.BoxFilterReflect(src, 5)
	defer dst.Close()

	want := []float64{122.4, 112.2, 122.4, 132.6, 142.8, 132.6}
	got := dst.DataFloat32()[:6]
	for i, w := range want {
		assert.InDelta(t, w, got[i], 1e-3, "cell %d", i)
	}
}
