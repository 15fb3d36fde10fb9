package ecoview_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"ecoview/pkg/ecoview"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	leafy = color.RGBA{20, 200, 20, 255}
)

// solidGrid returns an h×w grid filled with c.
func solidGrid(w, h int, c color.RGBA) *ecoview.PixelGrid {
	px := ecoview.NewPixelGrid(w, h)
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			px.Set(r, col, c)
		}
	}
	return px
}

// greenRowGrid returns a black grid with a single vegetation row.
func greenRowGrid(w, h, row int) *ecoview.PixelGrid {
	px := solidGrid(w, h, black)
	for c := 0; c < w; c++ {
		px.Set(row, c, leafy)
	}
	return px
}

func encodePNG(t *testing.T, px *ecoview.PixelGrid) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, px.ToRGBA()))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func coord(r, c int) ecoview.Coordinate { return ecoview.Coordinate{Row: r, Col: c} }

func coordPtr(r, c int) *ecoview.Coordinate {
	cc := coord(r, c)
	return &cc
}

func isAdjacent(a, b ecoview.Coordinate) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1 && (dr+dc) > 0
}
