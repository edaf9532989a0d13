// Command chapterize inserts chapter markers from a YouTube-style text file
// into an MP4 or MKV without re-encoding.
//
// It parses arguments, runs the pre-flight checks (tools on PATH, input
// files, output path), then either runs system diagnostics (--check) or the
// parse, probe, normalize, mux pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/chapterize/internal/check"
	"github.com/backmassage/chapterize/internal/config"
	"github.com/backmassage/chapterize/internal/ffmpeg"
	"github.com/backmassage/chapterize/internal/logging"
	"github.com/backmassage/chapterize/internal/naming"
	"github.com/backmassage/chapterize/internal/pipeline"
	"github.com/backmassage/chapterize/internal/probe"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: no logger yet, so failures go straight to stderr.
	cfg := config.DefaultConfig()
	switch err := config.ParseArgs(&cfg, version, os.Args[1:], os.Stdout); {
	case errors.Is(err, config.ErrHelpRequested), errors.Is(err, config.ErrVersionRequested):
		return 0
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		if !check.RunCheck(context.Background(), log) {
			return 1
		}
		return 0
	}

	// Pre-flight: nothing is written before these pass.
	if err := check.CheckDeps(); err != nil {
		log.Result(false, "Error: %v", err)
		return 1
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = naming.DefaultOutputPath(cfg.VideoPath)
	}
	if err := cfg.ValidatePaths(); err != nil {
		log.Result(false, "Error: %v", err)
		return 1
	}
	log.Debug(cfg.Verbose, "chapterize v%s (%s)", version, commit)

	// Cancel on SIGINT/SIGTERM so ffmpeg is stopped and the partial output
	// removed.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping ffmpeg")
		cancel()
	}()

	res, err := pipeline.Run(ctx, &cfg, log, pipeline.Tools{
		Prober: probe.FFprobe{},
		Muxer:  ffmpeg.Muxer{Verbose: cfg.Verbose},
	})
	if err != nil {
		log.Result(false, "Error: %v", err)
		return 1
	}
	log.Result(true, "%s", res.Summary())
	return 0
}
