package ffmpeg

import (
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled regexes for classifying ffmpeg stderr. Checked in order by
// [Classify]; the first match wins.
var stderrHints = []struct {
	re   *regexp.Regexp
	hint string
}{
	{regexp.MustCompile(`(?i)Invalid data found when processing input|moov atom not found|EBML header parsing failed`),
		"input is not a readable media file"},
	{regexp.MustCompile(`(?i)Error parsing metadata|Invalid metadata`),
		"ffmpeg rejected the generated chapter metadata"},
	{regexp.MustCompile(`(?i)Could not find tag for codec .* in stream|codec not currently supported in container|Could not write header`),
		"a stream cannot be stored in the output container; use the input's extension for -o"},
	{regexp.MustCompile(`(?i)Unable to find a suitable output format|Unable to choose an output format`),
		"output extension is not a known container"},
	{regexp.MustCompile(`(?i)Permission denied`),
		"permission denied"},
	{regexp.MustCompile(`(?i)No space left on device`),
		"no space left on device"},
	{regexp.MustCompile(`(?i)No such file or directory`),
		"file or directory not found"},
}

// Classify returns a short human-readable diagnosis for ffmpeg stderr, or ""
// when nothing recognizable is found.
func Classify(stderr string) string {
	for _, h := range stderrHints {
		if h.re.MatchString(stderr) {
			return h.hint
		}
	}
	return ""
}

// MuxError is returned when ffmpeg exits non-zero or cannot be started.
// Error() is a single line; Stderr keeps the full capture for verbose logs.
type MuxError struct {
	Err    error
	Stderr string
}

func (e *MuxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ffmpeg failed (%v)", e.Err)
	if hint := Classify(e.Stderr); hint != "" {
		b.WriteString(": " + hint)
	}
	if last := LastLine(e.Stderr); last != "" {
		b.WriteString(": " + last)
	}
	return b.String()
}

func (e *MuxError) Unwrap() error { return e.Err }

// LastLine returns the last non-empty line of s, trimmed.
func LastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
