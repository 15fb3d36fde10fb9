//go:build !purego && !js

package ecoview

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// DecodePixels decodes any raster format OpenCV understands into an RGB grid.
func DecodePixels(data []byte) (*PixelGrid, error) {
	if len(data) == 0 {
		return nil, decodeError(errors.New("empty input"))
	}
	src, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, decodeError(err)
	}
	defer src.Close()
	if src.Empty() {
		return nil, decodeError(errors.New("unrecognised or malformed image data"))
	}
	if src.Type() != gocv.MatTypeCV8UC3 {
		return nil, decodeError(fmt.Errorf("unexpected mat type %v", src.Type()))
	}

	w, h := src.Cols(), src.Rows()
	bgr, err := src.DataPtrUint8()
	if err != nil {
		return nil, decodeError(err)
	}

	px := NewPixelGrid(w, h)
	for i := 0; i < w*h; i++ {
		px.Pix[i*3] = bgr[i*3+2]
		px.Pix[i*3+1] = bgr[i*3+1]
		px.Pix[i*3+2] = bgr[i*3]
	}
	return px, nil
}
