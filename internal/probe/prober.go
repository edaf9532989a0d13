package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// Data errors: ffprobe ran but its answer is unusable.
var (
	ErrNoDuration  = errors.New("ffprobe did not return a duration")
	ErrBadDuration = errors.New("invalid video duration")
)

// FFprobe probes media files with the ffprobe binary. The zero value looks
// ffprobe up on PATH.
type FFprobe struct {
	Binary string
}

// Probe runs a single ffprobe JSON call against path and returns the parsed
// result. A missing binary or a non-zero exit is returned as an error that
// wraps the exec error.
func (p FFprobe) Probe(ctx context.Context, path string) (Media, error) {
	bin := p.Binary
	if bin == "" {
		bin = "ffprobe"
	}
	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_chapters",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return Media{}, fmt.Errorf("ffprobe %q: %w: %s", path, err, lastLine(string(ee.Stderr)))
		}
		return Media{}, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into Media.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (Media, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return Media{}, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	ms, err := durationMs(raw.Format.Duration)
	if err != nil {
		return Media{}, err
	}
	return Media{
		FormatName:       raw.Format.FormatName,
		DurationMs:       ms,
		ExistingChapters: len(raw.Chapters),
	}, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format   ffprobeFormat    `json:"format"`
	Chapters []ffprobeChapter `json:"chapters"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

type ffprobeChapter struct {
	ID        int64             `json:"id"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Tags      map[string]string `json:"tags"`
}

// durationMs converts ffprobe's decimal seconds to whole milliseconds,
// truncating any sub-millisecond remainder.
func durationMs(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNoDuration
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("%w: could not parse %q", ErrBadDuration, s)
	}
	ms := int64(secs * 1000)
	if ms <= 0 {
		return 0, fmt.Errorf("%w: %d ms", ErrBadDuration, ms)
	}
	return ms, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
