package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecoview/internal/logging"
	"ecoview/pkg/ecoview"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// report is the JSON record printed on stdout after a run.
type report struct {
	RunID   string             `json:"run_id"`
	Input   string             `json:"input"`
	Output  string             `json:"output"`
	Start   ecoview.Coordinate `json:"start"`
	Target  ecoview.Coordinate `json:"target"`
	Elapsed string             `json:"elapsed"`
	ecoview.Metrics
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ecoview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ecoview [flags] <input-image>")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "TOML config file")
	startFlag := fs.String("start", "", "start cell as row,col (default 0,0)")
	targetFlag := fs.String("target", "", "target cell as row,col (default bottom-right)")
	outFlag := fs.String("out", "", "overlay PNG path (default <input>_path.png)")
	annotateFlag := fs.Bool("annotate", false, "draw a coverage caption on the overlay")
	widthFlag := fs.Int("stroke-width", 0, "route stroke width in pixels")
	colorFlag := fs.String("stroke-color", "", "route stroke colour as #rrggbb")
	timeoutFlag := fs.Duration("timeout", 0, "abort the run after this long")
	levelFlag := fs.String("log-level", "", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input image")
	}
	inputPath := fs.Arg(0)

	cfg := defaultRunConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadRunConfig(*configPath); err != nil {
			return err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "start":
			cfg.Start, flagErr = parseCoordinate(*startFlag)
		case "target":
			cfg.Target, flagErr = parseCoordinate(*targetFlag)
		case "out":
			cfg.Output = *outFlag
		case "annotate":
			cfg.Annotate = *annotateFlag
		case "stroke-width":
			cfg.Stroke.Width = *widthFlag
		case "stroke-color":
			cfg.Stroke.Color, flagErr = parseHexColor(*colorFlag)
		case "timeout":
			cfg.Timeout = *timeoutFlag
		case "log-level":
			cfg.LogLevel = *levelFlag
		}
		if flagErr != nil {
			flagErr = fmt.Errorf("-%s: %w", f.Name, flagErr)
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutputPath(inputPath)
	}

	logger, err := logging.New("ecoview", cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger = logger.With().Str("run", runID).Logger()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Info().Str("input", inputPath).Int("bytes", len(data)).Msg("loaded")

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	params := ecoview.NewPipelineParams()
	params.Start = cfg.Start
	params.Target = cfg.Target
	params.Stroke = cfg.Stroke
	params.Annotate = cfg.Annotate
	params.CancelCheckInterval = cfg.CancelCheckInterval
	params.Logger = logger

	startTime := time.Now()
	res, err := ecoview.Process(ctx, data, params)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)

	if err := os.WriteFile(cfg.Output, res.Overlay, 0o644); err != nil {
		return fmt.Errorf("writing overlay: %w", err)
	}
	logger.Info().
		Str("output", cfg.Output).
		Int("path_points", res.Metrics.PathPoints).
		Float64("green_cover_pct", res.Metrics.GreenCoverPct).
		Dur("elapsed", elapsed).
		Msg("overlay written")

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report{
		RunID:   runID,
		Input:   inputPath,
		Output:  cfg.Output,
		Start:   res.Start,
		Target:  res.Target,
		Elapsed: elapsed.Round(time.Millisecond).String(),
		Metrics: res.Metrics,
	})
}

func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_path.png"
}
