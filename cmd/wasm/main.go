//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"ecoview/pkg/ecoview"
)

func main() {
	js.Global().Set("computePath", js.FuncOf(computePath))
	select {} // block forever
}

// computePath(fileBytes, options) runs the pipeline on an encoded image.
// options may carry start/target as {row, col}, strokeWidth and annotate.
func computePath(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("usage: computePath(fileBytes, options)")
	}

	jsBytes := args[0]
	length := jsBytes.Get("length").Int()
	fileBytes := make([]byte, length)
	js.CopyBytesToGo(fileBytes, jsBytes)

	params := ecoview.NewPipelineParams()
	if len(args) >= 2 && args[1].Type() == js.TypeObject {
		opts := args[1]
		params.Start = coordinateOption(opts.Get("start"))
		params.Target = coordinateOption(opts.Get("target"))
		if v := opts.Get("strokeWidth"); v.Type() == js.TypeNumber {
			params.Stroke.Width = v.Int()
		}
		if v := opts.Get("annotate"); v.Type() == js.TypeBoolean {
			params.Annotate = v.Bool()
		}
	}

	res, err := ecoview.Process(context.Background(), fileBytes, params)
	if err != nil {
		return errorResult(err.Error())
	}
	m := res.Metrics

	jsZones := make([]interface{}, len(m.Zones))
	for i, z := range m.Zones {
		jsZones[i] = map[string]interface{}{
			"label":           z.Label,
			"cells":           z.Cells,
			"green_cover_pct": z.GreenCoverPct,
			"path_points":     z.PathPoints,
		}
	}

	jsPath := make([]interface{}, len(res.Path))
	for i, c := range res.Path {
		jsPath[i] = []interface{}{c.Row, c.Col}
	}

	// Create Uint8Array and copy bytes
	uint8Array := js.Global().Get("Uint8Array").New(len(res.Overlay))
	js.CopyBytesToJS(uint8Array, res.Overlay)

	return js.ValueOf(map[string]interface{}{
		"width":           m.Width,
		"height":          m.Height,
		"path_points":     m.PathPoints,
		"green_cover_pct": m.GreenCoverPct,
		"idle_land_pct":   m.IdleLandPct,
		"zones":           jsZones,
		"path":            jsPath,
		"image":           uint8Array,
	})
}

func coordinateOption(v js.Value) *ecoview.Coordinate {
	if v.Type() != js.TypeObject {
		return nil
	}
	row, col := v.Get("row"), v.Get("col")
	if row.Type() != js.TypeNumber || col.Type() != js.TypeNumber {
		return nil
	}
	return &ecoview.Coordinate{Row: row.Int(), Col: col.Int()}
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
