package ecoview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderPath draws the route as a connected polyline over a copy of px.
// Paths with fewer than two points leave the copy untouched.
func RenderPath(px *PixelGrid, path PathResult, stroke StrokeStyle) *image.RGBA {
	img := px.ToRGBA()
	if len(path) < 2 {
		return img
	}
	width := stroke.Width
	if width < 1 {
		width = 1
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1].Point(), path[i].Point()
		drawLine(img, a.X, a.Y, b.X, b.Y, width, stroke.Color)
	}
	return img
}

// RenderPathPNG renders the route and encodes it as PNG. When annotate is set
// a coverage caption is drawn in the top-left corner.
func RenderPathPNG(px *PixelGrid, path PathResult, stroke StrokeStyle, metrics *Metrics) ([]byte, error) {
	img := RenderPath(px, path, stroke)
	if metrics != nil {
		annotate(img, metrics)
	}
	return EncodePNG(img)
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode overlay: %w", err)
	}
	return buf.Bytes(), nil
}

// annotate writes the coverage summary on a dark strip at the top of img.
func annotate(img *image.RGBA, m *Metrics) {
	face := basicfont.Face7x13
	text := fmt.Sprintf("green %.2f%%  idle %.2f%%  points %d", m.GreenCoverPct, m.IdleLandPct, m.PathPoints)

	stripH := face.Height + 4
	stripW := font.MeasureString(face, text).Round() + 8
	bg := color.RGBA{0, 0, 0, 255}
	for y := 0; y < stripH && y < img.Bounds().Dy(); y++ {
		for x := 0; x < stripW && x < img.Bounds().Dx(); x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	drawText(img, face, text, 4, face.Ascent+2, color.RGBA{255, 255, 255, 255})
}

// drawText draws a string at (x, y) using the given font face.
func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawLine draws a line between two points using Bresenham's algorithm,
// stamping a width×width square at every step.
func drawLine(img *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	dx := intAbs(x1 - x0)
	dy := -intAbs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		stamp(img, x0, y0, width, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func stamp(img *image.RGBA, cx, cy, width int, c color.RGBA) {
	lo := -(width - 1) / 2
	hi := width / 2
	bounds := img.Bounds()
	for y := cy + lo; y <= cy+hi; y++ {
		for x := cx + lo; x <= cx+hi; x++ {
			if image.Pt(x, y).In(bounds) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
