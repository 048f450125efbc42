package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/willmadison/tiltify"
	"github.com/willmadison/tiltify/internal/config"
	"github.com/willmadison/tiltify/internal/render"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(out io.Writer, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	if cfg.Backtrace {
		debug.SetTraceback("all")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	flagSet := flag.NewFlagSet("stjude", flag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.Usage = func() {
		fmt.Fprint(out, `stjude - print fundraising progress for a Tiltify campaign.

Usage:
  stjude [options] [VANITY SLUG]

With no arguments, reports on the Relay FM for St. Jude campaign.

Options:
`)
		flagSet.PrintDefaults()
	}

	rawJSON := flagSet.Bool("json", false, "Print the raw API response body instead of the progress report.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	vanity, slug := tiltify.DefaultVanity, tiltify.DefaultSlug
	switch flagSet.NArg() {
	case 0:
	case 2:
		vanity, slug = flagSet.Arg(0), flagSet.Arg(1)
	default:
		flagSet.Usage()
		return fmt.Errorf("expected no arguments or VANITY SLUG, got %d", flagSet.NArg())
	}

	client, err := tiltify.NewClient(tiltify.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx := context.Background()

	if *rawJSON {
		body, err := client.FetchCampaignJSON(ctx, vanity, slug)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, body)
		return nil
	}

	campaign, err := client.FetchCampaignBy(ctx, vanity, slug)
	if err != nil {
		return err
	}

	return render.Campaign(out, campaign)
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid STJUDE_LOG level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
