// Package sortcmd wires the command line to the sort pipeline: flag
// handling, input reading, output writing and optional run tracking.
package sortcmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/ssort/models"
	"github.com/dtnitsch/ssort/pkg/db"
	"github.com/dtnitsch/ssort/pkg/pipeline"
	"github.com/dtnitsch/ssort/pkg/render"
)

// SortAction is the default command: read lines, sort, write.
func SortAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	defaults, err := models.LoadDefaults(c.String("config"))
	if err != nil {
		logger.Error("invalid defaults file", "error", err)
		return cli.Exit("", 2)
	}

	cfg := buildConfig(c, defaults)
	workers := defaults.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	track := defaults.Track
	if c.IsSet("track") {
		track = c.Bool("track")
	}

	files := c.Args().Slice()
	lines, err := readInput(files)
	if err != nil {
		logger.Error("failed to read input", "error", err)
		return cli.Exit("", 2)
	}

	logger.Debug("input read", "lines", len(lines), "files", len(files), "workers", workers)

	processed, pad := pipeline.Process(cfg, lines, workers)
	output := render.Project(processed, pad, cfg)

	if err := writeOutput(os.Stdout, output); err != nil {
		logger.Error("failed to write output", "error", err)
		return cli.Exit("", 2)
	}

	if track {
		if err := recordRun(files, cfg, len(lines), len(output), time.Since(startTime)); err != nil {
			logger.Error("failed to record run", "error", err)
			return cli.Exit("", 2)
		}
	}

	logger.Debug("done", "output_lines", len(output), "duration", time.Since(startTime))
	return nil
}

// buildConfig overlays explicitly-set CLI flags on the YAML defaults.
func buildConfig(c *cli.Context, defaults models.Defaults) models.SortConfig {
	cfg := defaults.Config()
	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"ignore-case", &cfg.IgnoreCase},
		{"line", &cfg.UseEntireLine},
		{"dictionary-order", &cfg.DictionaryOrder},
		{"reverse", &cfg.Reverse},
		{"stable", &cfg.Stable},
		{"right-align", &cfg.RightAlign},
		{"exclude-no-word", &cfg.ExcludeNoWord},
		{"word-only", &cfg.WordOnly},
		{"normalize", &cfg.Normalize},
	} {
		if c.IsSet(f.name) {
			*f.dst = c.Bool(f.name)
		}
	}
	return cfg
}

func writeOutput(f *os.File, output []string) error {
	w := bufio.NewWriter(f)
	for _, line := range output {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

func recordRun(files []string, cfg models.SortConfig, lineCount, outputCount int, duration time.Duration) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	inputs := "-"
	if len(files) > 0 {
		inputs = strings.Join(files, ",")
	}

	_, err = database.RecordRun(inputs, cfg.FlagSummary(), lineCount, outputCount, duration)
	return err
}
