//go:build purego || js

package ecoview

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodePixels decodes PNG, JPEG, GIF, BMP, TIFF or WebP bytes into an RGB grid.
func DecodePixels(data []byte) (*PixelGrid, error) {
	if len(data) == 0 {
		return nil, decodeError(errors.New("empty input"))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return PixelGridFromImage(img), nil
}
