package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/backmassage/chapterize/internal/chapters"
	"github.com/backmassage/chapterize/internal/config"
	"github.com/backmassage/chapterize/internal/display"
	"github.com/backmassage/chapterize/internal/ffmetadata"
	"github.com/backmassage/chapterize/internal/logging"
	"github.com/backmassage/chapterize/internal/probe"
)

// Prober reports the duration of a media file.
type Prober interface {
	Probe(ctx context.Context, path string) (probe.Media, error)
}

// Muxer writes the chapters in metadataPath into a stream copy of src at dest.
type Muxer interface {
	Mux(ctx context.Context, src, metadataPath, dest string) error
}

// Tools bundles the external collaborators of a run.
type Tools struct {
	Prober Prober
	Muxer  Muxer
	Stdout io.Writer // Dry-run listing; defaults to os.Stdout.
}

// scratchPattern names the temporary FFMETADATA1 file handed to ffmpeg.
const scratchPattern = "chapterize-*.ffmeta"

// Run is the top-level entry point. cfg must have passed Validate and
// ValidatePaths, with OutputPath resolved. The first error aborts the run.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, tools Tools) (Result, error) {
	start := time.Now()
	res := Result{OutputPath: cfg.OutputPath, DryRun: cfg.DryRun}

	// --- Parse ---
	starts, err := chapters.ParseFile(cfg.ChaptersPath)
	if err != nil {
		return res, err
	}
	log.Debug(cfg.Verbose, "Parsed %d chapter markers from %s", len(starts), cfg.ChaptersPath)

	// --- Probe ---
	media, err := tools.Prober.Probe(ctx, cfg.VideoPath)
	if err != nil {
		return res, err
	}
	res.DurationMs = media.DurationMs
	log.Debug(cfg.Verbose, "Duration: %s (%s)", display.FormatMillis(media.DurationMs), media.FormatName)
	if media.ExistingChapters > 0 {
		log.Debug(cfg.Verbose, "Replacing %d existing chapters", media.ExistingChapters)
	}

	// --- Normalize ---
	ranges, err := chapters.Normalize(starts, media.DurationMs)
	if err != nil {
		return res, err
	}
	res.Chapters = ranges
	logAnchoring(cfg, log, starts, ranges)

	// --- Dry-run ---
	if cfg.DryRun {
		out := tools.Stdout
		if out == nil {
			out = os.Stdout
		}
		display.WriteChapterList(out, ranges)
		fmt.Fprintln(out)
		if err := ffmetadata.Write(out, ranges); err != nil {
			return res, err
		}
		res.Elapsed = time.Since(start)
		return res, nil
	}

	// --- Scratch metadata file, removed whatever the mux outcome ---
	metaPath, err := writeScratch(ranges)
	if err != nil {
		return res, err
	}
	defer os.Remove(metaPath)
	log.Debug(cfg.Verbose, "Metadata: %s", metaPath)

	// --- Mux ---
	// A failed mux only removes an output this run created.
	_, statErr := os.Stat(cfg.OutputPath)
	existed := statErr == nil
	log.Debug(cfg.Verbose, "Muxing %s -> %s", cfg.VideoPath, cfg.OutputPath)
	if err := tools.Muxer.Mux(ctx, cfg.VideoPath, metaPath, cfg.OutputPath); err != nil {
		if !existed {
			os.Remove(cfg.OutputPath)
		}
		return res, err
	}

	res.Elapsed = time.Since(start)
	log.Debug(cfg.Verbose, "Muxed in %s", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// writeScratch renders ranges into a new temporary file and returns its path.
func writeScratch(ranges []chapters.Range) (string, error) {
	f, err := os.CreateTemp("", scratchPattern)
	if err != nil {
		return "", fmt.Errorf("create metadata file: %w", err)
	}
	if err := ffmetadata.Write(f, ranges); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write metadata file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write metadata file: %w", err)
	}
	return f.Name(), nil
}

// logAnchoring explains, in verbose mode, how the first chapter was anchored
// at zero.
func logAnchoring(cfg *config.Config, log *logging.Logger, starts []chapters.Start, ranges []chapters.Range) {
	if !cfg.Verbose {
		return
	}
	earliest := starts[0].StartMs
	for _, s := range starts[1:] {
		earliest = min(earliest, s.StartMs)
	}
	switch {
	case earliest == 0:
	case earliest < chapters.IntroSnapThresholdMs:
		log.Debug(true, "First chapter %q moved from %s to 0:00", ranges[0].Title, display.FormatTimestamp(earliest))
	default:
		log.Debug(true, "Added %q chapter before %s", chapters.IntroTitle, display.FormatTimestamp(earliest))
	}
	for i, r := range ranges {
		log.Debug(true, "  %2d  %s - %s  %s", i+1, display.FormatTimestamp(r.StartMs), display.FormatTimestamp(r.EndMs), r.Title)
	}
}
