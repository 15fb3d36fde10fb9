package ecoview

import "math"

var zoneLabels = map[ZonePosition]string{
	ZoneTopLeft:     "TL",
	ZoneTop:         "T",
	ZoneTopRight:    "TR",
	ZoneLeft:        "L",
	ZoneCenter:      "Center",
	ZoneRight:       "R",
	ZoneBottomLeft:  "BL",
	ZoneBottom:      "B",
	ZoneBottomRight: "BR",
}

// zoneOrder is the row-major order zones are reported in.
var zoneOrder = []ZonePosition{
	ZoneTopLeft, ZoneTop, ZoneTopRight,
	ZoneLeft, ZoneCenter, ZoneRight,
	ZoneBottomLeft, ZoneBottom, ZoneBottomRight,
}

func (z ZonePosition) String() string {
	if l, ok := zoneLabels[z]; ok {
		return l
	}
	return "Unknown"
}

// ComputeMetrics summarises the mask and route. Percentages are rounded to two
// decimals; an unreachable target reports PathPoints = 0.
func ComputeMetrics(mask *VegetationMask, path PathResult) Metrics {
	total := mask.Width * mask.Height
	var green float64
	if total > 0 {
		green = float64(mask.Count()) / float64(total) * 100.0
	}
	return Metrics{
		Width:         mask.Width,
		Height:        mask.Height,
		PathPoints:    len(path),
		GreenCoverPct: round2(green),
		IdleLandPct:   round2(100.0 - green),
		Zones:         AnalyzeCoverage(mask, path),
	}
}

// AnalyzeCoverage divides the grid into a 3x3 partition and reports per-zone
// vegetation coverage and how many route points fall in each zone.
func AnalyzeCoverage(mask *VegetationMask, path PathResult) []ZoneCoverage {
	xLo := float64(mask.Width) * fieldEdgeFraction
	xHi := float64(mask.Width) * (1.0 - fieldEdgeFraction)
	yLo := float64(mask.Height) * fieldEdgeFraction
	yHi := float64(mask.Height) * (1.0 - fieldEdgeFraction)

	cells := make(map[ZonePosition]int, len(zoneOrder))
	green := make(map[ZonePosition]int, len(zoneOrder))
	points := make(map[ZonePosition]int, len(zoneOrder))

	for r := 0; r < mask.Height; r++ {
		for c := 0; c < mask.Width; c++ {
			pos := classifyZone(float64(c), float64(r), xLo, xHi, yLo, yHi)
			cells[pos]++
			if mask.At(r, c) {
				green[pos]++
			}
		}
	}
	for _, p := range path {
		points[classifyZone(float64(p.Col), float64(p.Row), xLo, xHi, yLo, yHi)]++
	}

	zones := make([]ZoneCoverage, 0, len(zoneOrder))
	for _, pos := range zoneOrder {
		z := ZoneCoverage{
			Label:      zoneLabels[pos],
			Cells:      cells[pos],
			PathPoints: points[pos],
		}
		if z.Cells > 0 {
			z.GreenCoverPct = round2(float64(green[pos]) / float64(z.Cells) * 100.0)
		}
		zones = append(zones, z)
	}
	return zones
}

const fieldEdgeFraction = 0.25

func classifyZone(x, y, xLo, xHi, yLo, yHi float64) ZonePosition {
	var col, row int
	if x < xLo {
		col = 0
	} else if x < xHi {
		col = 1
	} else {
		col = 2
	}
	if y < yLo {
		row = 0
	} else if y < yHi {
		row = 1
	} else {
		row = 2
	}

	grid := [3][3]ZonePosition{
		{ZoneTopLeft, ZoneTop, ZoneTopRight},
		{ZoneLeft, ZoneCenter, ZoneRight},
		{ZoneBottomLeft, ZoneBottom, ZoneBottomRight},
	}
	return grid[row][col]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
