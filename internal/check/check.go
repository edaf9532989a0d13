// Package check provides system diagnostics (--check mode) and the
// pre-flight dependency validation (CheckDeps) for ffmpeg and ffprobe.
package check

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH (install FFmpeg so both ffmpeg and ffprobe are available)")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH (install FFmpeg so both ffmpeg and ffprobe are available)")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// tools lists the binaries a run needs, in report order.
var tools = []string{"ffmpeg", "ffprobe"}

// toolStatus is the outcome of probing one binary.
type toolStatus struct {
	name    string
	path    string
	version string
	err     error
}

// RunCheck runs the --check flow: locates each tool and prints its version
// line. Tools are queried concurrently; results are logged in fixed order.
// Returns false when any tool is missing or unusable.
func RunCheck(ctx context.Context, log Logger) bool {
	log.Info("=== System Check ===")

	results := make([]toolStatus, len(tools))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range tools {
		i, name := i, name
		g.Go(func() error {
			results[i] = inspectTool(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	ok := true
	for _, r := range results {
		switch {
		case r.path == "":
			log.Error("%s not found", r.name)
			ok = false
		case r.err != nil:
			log.Warn("%s found at %s but -version failed: %v", r.name, r.path, r.err)
			ok = false
		default:
			log.Success("%s: %s", r.name, r.version)
		}
	}
	return ok
}

// CheckDeps is the pre-pipeline validation: it verifies that ffmpeg and
// ffprobe are on PATH. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// --- internal helpers ---

// inspectTool resolves name on PATH and captures the first line of
// "<name> -version".
func inspectTool(ctx context.Context, name string) toolStatus {
	st := toolStatus{name: name}
	path, err := exec.LookPath(name)
	if err != nil {
		return st
	}
	st.path = path

	out, err := exec.CommandContext(ctx, path, "-version").Output()
	if err != nil {
		st.err = err
		return st
	}
	st.version = firstLine(string(out))
	return st
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
