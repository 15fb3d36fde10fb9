package ecoview_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoview/pkg/ecoview"
)

func TestDecodePixels_PNGRoundTrip(t *testing.T) {
	px := ecoview.NewPixelGrid(3, 2)
	px.Set(0, 0, color.RGBA{10, 20, 30, 255})
	px.Set(1, 2, color.RGBA{200, 100, 50, 255})

	got, err := ecoview.DecodePixels(encodePNG(t, px))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Width)
	assert.Equal(t, 2, got.Height)
	assert.Equal(t, px.Pix, got.Pix)
}

func TestDecodePixels_Malformed(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("definitely not an image"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ecoview.DecodePixels(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ecoview.ErrDecode))
		})
	}
}

func TestPixelGridFromImage_KeepsStraightColour(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 200, 0, 128})
	img.SetNRGBA(1, 0, color.NRGBA{90, 60, 30, 0})

	px := ecoview.PixelGridFromImage(img)
	assert.Equal(t, color.RGBA{0, 200, 0, 255}, px.At(0, 0))
	assert.Equal(t, color.RGBA{90, 60, 30, 255}, px.At(0, 1))
}

func TestDecodePixels_TranslucentPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 200, 0, 128})
	img.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 255})
	img.SetNRGBA(2, 0, color.NRGBA{250, 40, 5, 1})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	px, err := ecoview.DecodePixels(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 200, 0, 10, 20, 30, 250, 40, 5}, px.Pix)
}
