package ecoview

import (
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// Coordinate is a (row, col) cell address.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Point converts the coordinate to image space (x = col, y = row).
func (c Coordinate) Point() image.Point {
	return image.Pt(c.Col, c.Row)
}

// PixelGrid is a dense H×W grid of 8-bit RGB pixels, row-major, 3 bytes per pixel.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelGrid allocates a zeroed (black) grid.
func NewPixelGrid(width, height int) *PixelGrid {
	return &PixelGrid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// PixelGridFromImage copies any image.Image into a PixelGrid. Alpha is dropped
// without premultiplying, so translucent pixels keep their straight colour.
func PixelGridFromImage(img image.Image) *PixelGrid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	px := NewPixelGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := (y*w + x) * 3
			px.Pix[off] = c.R
			px.Pix[off+1] = c.G
			px.Pix[off+2] = c.B
		}
	}
	return px
}

func (p *PixelGrid) offset(row, col int) int { return (row*p.Width + col) * 3 }

// At returns the RGB value at (row, col).
func (p *PixelGrid) At(row, col int) color.RGBA {
	off := p.offset(row, col)
	return color.RGBA{R: p.Pix[off], G: p.Pix[off+1], B: p.Pix[off+2], A: 255}
}

// Set writes the RGB value at (row, col).
func (p *PixelGrid) Set(row, col int, c color.RGBA) {
	off := p.offset(row, col)
	p.Pix[off] = c.R
	p.Pix[off+1] = c.G
	p.Pix[off+2] = c.B
}

// Contains reports whether c addresses a cell of the grid.
func (p *PixelGrid) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < p.Height && c.Col >= 0 && c.Col < p.Width
}

// ToRGBA returns an opaque RGBA copy of the grid.
func (p *PixelGrid) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
		img.Pix[j] = p.Pix[i]
		img.Pix[j+1] = p.Pix[i+1]
		img.Pix[j+2] = p.Pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// VegetationMask holds one flag per pixel, true where the pixel is vegetation.
type VegetationMask struct {
	Width  int
	Height int
	Cells  []bool
}

// At reports whether (row, col) is vegetation.
func (m *VegetationMask) At(row, col int) bool {
	return m.Cells[row*m.Width+col]
}

// Count returns the number of vegetation cells.
func (m *VegetationMask) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v {
			n++
		}
	}
	return n
}

// Scaled returns the mask on a 0/255 scale (vegetation = 255).
func (m *VegetationMask) Scaled() []float32 {
	out := make([]float32, len(m.Cells))
	for i, v := range m.Cells {
		if v {
			out[i] = 255
		}
	}
	return out
}

// CostGrid is the per-cell cost of stepping onto a cell.
type CostGrid struct {
	dense *mat.Dense
}

func (g *CostGrid) Rows() int {
	r, _ := g.dense.Dims()
	return r
}

func (g *CostGrid) Cols() int {
	_, c := g.dense.Dims()
	return c
}

// At returns the cost of entering (row, col).
func (g *CostGrid) At(row, col int) float64 { return g.dense.At(row, col) }

// Values returns the row-major backing slice. Callers must not modify it.
func (g *CostGrid) Values() []float64 { return g.dense.RawMatrix().Data }

// Dense exposes the grid as a read-only gonum matrix view.
func (g *CostGrid) Dense() mat.Matrix { return g.dense }

// PathResult is an ordered start→target route. Empty means unreachable.
type PathResult []Coordinate

// Empty reports whether no route connects start and target.
func (p PathResult) Empty() bool { return len(p) == 0 }

// StrokeStyle controls how the route is drawn.
type StrokeStyle struct {
	Color color.RGBA
	Width int
}

// DefaultStroke is a 3px red line.
var DefaultStroke = StrokeStyle{Color: color.RGBA{255, 0, 0, 255}, Width: 3}

// PipelineParams configures a single pipeline run.
type PipelineParams struct {
	// Start and Target default to (0,0) and (H-1,W-1) when nil.
	Start  *Coordinate
	Target *Coordinate

	Stroke   StrokeStyle
	Annotate bool

	// CancelCheckInterval is the number of queue pops between context checks.
	CancelCheckInterval int

	Logger zerolog.Logger
}

// NewPipelineParams creates a PipelineParams with default values.
func NewPipelineParams() *PipelineParams {
	return &PipelineParams{
		Stroke:              DefaultStroke,
		CancelCheckInterval: defaultCancelCheckInterval,
		Logger:              zerolog.Nop(),
	}
}

// ZonePosition identifies a zone in the 3x3 coverage grid.
type ZonePosition int

const (
	ZoneTopLeft ZonePosition = iota
	ZoneTop
	ZoneTopRight
	ZoneLeft
	ZoneCenter
	ZoneRight
	ZoneBottomLeft
	ZoneBottom
	ZoneBottomRight
)

// ZoneCoverage holds per-zone vegetation statistics.
type ZoneCoverage struct {
	Label         string  `json:"label"`
	Cells         int     `json:"cells"`
	GreenCoverPct float64 `json:"green_cover_pct"`
	PathPoints    int     `json:"path_points"`
}

// Metrics is the scalar summary returned alongside the overlay.
type Metrics struct {
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	PathPoints    int            `json:"path_points"`
	GreenCoverPct float64        `json:"green_cover_pct"`
	IdleLandPct   float64        `json:"idle_land_pct"`
	Zones         []ZoneCoverage `json:"zones,omitempty"`
}

// Result is the output of one pipeline run.
type Result struct {
	Start   Coordinate
	Target  Coordinate
	Path    PathResult
	Costs   *CostGrid
	Mask    *VegetationMask
	Overlay []byte // PNG
	Metrics Metrics
}

// OverlayBase64 returns the PNG overlay as standard base64.
func (r *Result) OverlayBase64() string {
	return base64.StdEncoding.EncodeToString(r.Overlay)
}
