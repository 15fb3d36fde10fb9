package ecoview

import (
	"context"
	"fmt"
	"time"
)

// Process decodes data and runs mask → cost surface → solve → overlay.
// A nil params uses NewPipelineParams. An unreachable target is not an error:
// Result.Path is empty and Metrics.PathPoints is 0.
func Process(ctx context.Context, data []byte, params *PipelineParams) (*Result, error) {
	if params == nil {
		params = NewPipelineParams()
	}
	log := params.Logger

	t0 := time.Now()
	px, err := DecodePixels(data)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("width", px.Width).Int("height", px.Height).Dur("elapsed", time.Since(t0)).Msg("image decoded")

	return ProcessPixels(ctx, px, params)
}

// ProcessPixels runs the pipeline on an already decoded grid.
func ProcessPixels(ctx context.Context, px *PixelGrid, params *PipelineParams) (*Result, error) {
	if params == nil {
		params = NewPipelineParams()
	}
	log := params.Logger

	if px.Width <= 0 || px.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if len(px.Pix) != px.Width*px.Height*3 {
		return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d grid", ErrDimensionMismatch, len(px.Pix), px.Width, px.Height)
	}

	start := Coordinate{Row: 0, Col: 0}
	if params.Start != nil {
		start = *params.Start
	}
	target := Coordinate{Row: px.Height - 1, Col: px.Width - 1}
	if params.Target != nil {
		target = *params.Target
	}
	if err := validateCoordinate("start", start, px.Height, px.Width); err != nil {
		return nil, err
	}
	if err := validateCoordinate("target", target, px.Height, px.Width); err != nil {
		return nil, err
	}

	t := time.Now()
	mask := BuildVegetationMask(px)
	log.Debug().Int("vegetation_cells", mask.Count()).Dur("elapsed", time.Since(t)).Msg("vegetation mask built")

	t = time.Now()
	costs, err := BuildCostGrid(mask, target)
	if err != nil {
		return nil, fmt.Errorf("building cost surface: %w", err)
	}
	log.Debug().Float64("density_factor", DensityFactor(px.Height, px.Width)).Dur("elapsed", time.Since(t)).Msg("cost surface built")

	t = time.Now()
	interval := params.CancelCheckInterval
	if interval < 1 {
		interval = defaultCancelCheckInterval
	}
	sol, err := Solve(ctx, costs, start, target, WithCancelCheckInterval(interval))
	if err != nil {
		return nil, err
	}
	log.Debug().
		Stringer("start", start).
		Stringer("target", target).
		Int("path_points", len(sol.Path)).
		Int("pops", sol.Pops).
		Int("pushes", sol.Pushes).
		Int("settled", sol.Settled).
		Dur("elapsed", time.Since(t)).
		Msg("path solved")
	if sol.Path.Empty() {
		log.Warn().Stringer("start", start).Stringer("target", target).Msg("no route found")
	}

	metrics := ComputeMetrics(mask, sol.Path)

	stroke := params.Stroke
	if stroke == (StrokeStyle{}) {
		stroke = DefaultStroke
	}
	var caption *Metrics
	if params.Annotate {
		caption = &metrics
	}
	overlay, err := RenderPathPNG(px, sol.Path, stroke, caption)
	if err != nil {
		return nil, err
	}

	return &Result{
		Start:   start,
		Target:  target,
		Path:    sol.Path,
		Costs:   costs,
		Mask:    mask,
		Overlay: overlay,
		Metrics: metrics,
	}, nil
}
