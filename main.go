package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"colordetect/capture"
	"colordetect/config"
	"colordetect/detection"
	"colordetect/display"
	"colordetect/inspect"
	"colordetect/metrics"
	"colordetect/overlay"
)

// Exit code when the capture source cannot be opened.
const exitOpenFailure = -1

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [video-file | camera-index]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Without an argument the default camera is opened.")
		fmt.Fprintln(flag.CommandLine.Output(), "Left-click the window to print the HSV value under the cursor; press 'q' to quit.")
	}
	flag.Parse()

	os.Exit(run(flag.Args(), os.Stdout, os.Stderr))
}

// run executes the program and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 1
	}

	var sourceArg string
	if len(args) > 0 {
		sourceArg = args[0]
	}
	if len(args) > 1 {
		logger.Warn().Strs("ignored", args[1:]).Msg("only the first argument is used")
	}

	src, err := capture.Open(sourceArg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitOpenFailure
	}
	defer src.Close()

	logger.Info().
		Str("component", "CAPTURE").
		Str("source", src.Name()).
		Stringer("properties", src.Properties()).
		Msg("capture source opened")

	detector, err := detection.NewDetector(cfg.Detection, detection.DefaultTargets(), logger)
	if err != nil {
		logger.Error().Err(err).Msg("detector setup failed")
		return 1
	}
	defer detector.Close()

	sampler := inspect.NewSampler(stdout, logger)
	defer sampler.Close()

	stats := metrics.NewPipelineStats()

	window := display.NewWindow(cfg.Display.WindowName, clickHandler(sampler, stats))
	defer window.Close()

	runner := NewRunner(cfg, src, window, detector, overlay.NewRenderer(), sampler, stats, logger)
	err = runner.Run()
	stats.Report(logger)
	if err != nil {
		logger.Error().Err(err).Msg("pipeline stopped")
		return 1
	}
	return 0
}
