// Command waveinspect filters and analyzes single-channel WAV recordings.
//
// Usage:
//
//	waveinspect <command> [flags]
//
// Examples:
//
//	waveinspect generate --freq 50,1000 tones.wav
//	waveinspect filter --type lowpass --freq 200 -o smooth.wav tones.wav
//	waveinspect filter --type notch --freq 45 --freq2 55 --csv diff.csv mains.wav
//	waveinspect stats recording.wav
//	waveinspect activity --threshold 0.2 --envelope 20 speech.wav
//	waveinspect peaks --threshold 0.5 ecg.wav
//	waveinspect export --max-points 2000 recording.wav
//
// Every flag can also be set through a WAVEINSPECT_* environment variable,
// for example WAVEINSPECT_THRESHOLD=0.3.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-waveform/internal/report"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Show version information."`

	Filter   FilterCmd   `cmd:"" help:"Apply a lowpass, highpass, bandpass or notch filter."`
	Stats    StatsCmd    `cmd:"" help:"Print descriptive statistics."`
	Activity ActivityCmd `cmd:"" help:"Detect periods where the level exceeds a threshold."`
	Peaks    PeaksCmd    `cmd:"" help:"List local maxima above a threshold."`
	Export   ExportCmd   `cmd:"" help:"Write the waveform as CSV, optionally smoothed and decimated."`
	Generate GenerateCmd `cmd:"" help:"Write a deterministic test signal."`
}

// App carries the dependencies shared by all commands.
type App struct {
	Log *zap.Logger
	Out io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", report.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command. A nil logger is
// replaced by one built from the --verbose flag.
func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("waveinspect"),
		kong.Description("IIR filtering and signal analysis for WAV recordings"),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
		kong.DefaultEnvars("WAVEINSPECT"),
		kong.Vars{"version": version},
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if logger == nil {
		logger, err = newLogger(cli.Verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	return kctx.Run(&App{Log: logger, Out: stdout})
}

// newLogger returns a JSON production logger, or a console development
// logger when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return config.Build()
}
