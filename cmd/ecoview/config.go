package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"ecoview/pkg/ecoview"
)

type fileConfig struct {
	StartRow            int    `toml:"start_row"`
	StartCol            int    `toml:"start_col"`
	TargetRow           int    `toml:"target_row"`
	TargetCol           int    `toml:"target_col"`
	Output              string `toml:"output"`
	StrokeWidth         int    `toml:"stroke_width"`
	StrokeColor         string `toml:"stroke_color"`
	Annotate            bool   `toml:"annotate"`
	CancelCheckInterval int    `toml:"cancel_check_interval"`
	Timeout             string `toml:"timeout"`
	LogLevel            string `toml:"log_level"`
}

// runConfig is the resolved configuration of one CLI invocation.
type runConfig struct {
	Output              string
	Start               *ecoview.Coordinate
	Target              *ecoview.Coordinate
	Stroke              ecoview.StrokeStyle
	Annotate            bool
	CancelCheckInterval int
	Timeout             time.Duration
	LogLevel            string
}

func defaultRunConfig() runConfig {
	return runConfig{
		Stroke:              ecoview.DefaultStroke,
		CancelCheckInterval: ecoview.DefaultSolveOptions().CancelCheckInterval,
		LogLevel:            "info",
	}
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load config: %w", err)
	}

	start, err := pairFromFile(meta, "start", raw.StartRow, raw.StartCol)
	if err != nil {
		return runConfig{}, err
	}
	cfg.Start = start

	target, err := pairFromFile(meta, "target", raw.TargetRow, raw.TargetCol)
	if err != nil {
		return runConfig{}, err
	}
	cfg.Target = target

	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}

	if meta.IsDefined("stroke_width") {
		if raw.StrokeWidth < 1 {
			return runConfig{}, fmt.Errorf("stroke_width must be positive, got %d", raw.StrokeWidth)
		}
		cfg.Stroke.Width = raw.StrokeWidth
	}

	if meta.IsDefined("stroke_color") {
		c, err := parseHexColor(raw.StrokeColor)
		if err != nil {
			return runConfig{}, fmt.Errorf("parse stroke_color: %w", err)
		}
		cfg.Stroke.Color = c
	}

	if meta.IsDefined("annotate") {
		cfg.Annotate = raw.Annotate
	}

	if meta.IsDefined("cancel_check_interval") {
		cfg.CancelCheckInterval = raw.CancelCheckInterval
	}

	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return runConfig{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

// pairFromFile returns nil when neither <prefix>_row nor <prefix>_col is set.
func pairFromFile(meta toml.MetaData, prefix string, row, col int) (*ecoview.Coordinate, error) {
	hasRow, hasCol := meta.IsDefined(prefix+"_row"), meta.IsDefined(prefix+"_col")
	if !hasRow && !hasCol {
		return nil, nil
	}
	if hasRow != hasCol {
		return nil, fmt.Errorf("%s_row and %s_col must be set together", prefix, prefix)
	}
	return &ecoview.Coordinate{Row: row, Col: col}, nil
}

// parseCoordinate parses "row,col".
func parseCoordinate(s string) (*ecoview.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("parse row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("parse col in %q: %w", s, err)
	}
	return &ecoview.Coordinate{Row: row, Col: col}, nil
}

// parseHexColor parses "#rrggbb" (the leading # is optional).
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
