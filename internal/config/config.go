// Package config holds runtime configuration: defaults, CLI argument parsing,
// and validation of the input and output paths.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by ValidatePaths.
var (
	ErrVideoNotFound        = errors.New("video file not found")
	ErrChaptersNotFound     = errors.New("chapter file not found")
	ErrUnsupportedExtension = errors.New("video file must have .mp4 or .mkv extension")
	ErrOutputIsInput        = errors.New("output path must differ from the input video")
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// UnmarshalText lets ColorMode be used directly as a CLI option value.
func (c *ColorMode) UnmarshalText(b []byte) error {
	switch m := ColorMode(strings.ToLower(string(b))); m {
	case ColorAuto, ColorAlways, ColorNever:
		*c = m
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", string(b))
	}
}

// supportedExtensions lists the containers whose chapter handling is known
// to survive a stream-copy remux.
var supportedExtensions = map[string]bool{
	".mp4": true,
	".mkv": true,
}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseArgs] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args and -o).
	VideoPath    string
	ChaptersPath string
	OutputPath   string // Empty until resolved; see naming.DefaultOutputPath.

	// Behavior flags.
	DryRun    bool // Render and list chapters, skip the mux.
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseArgs] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// Validate checks enum fields and, outside CheckOnly mode, that both
// positional paths were given.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.VideoPath == "" || c.ChaptersPath == "" {
		return errors.New("need exactly a video file and a chapter file")
	}
	return nil
}

// ValidatePaths is the filesystem pre-flight: the video must exist with a
// supported extension, the chapter file must exist, and the output must not
// be the input video (ffmpeg cannot rewrite a file in place). OutputPath must
// already be resolved.
func (c *Config) ValidatePaths() error {
	if _, err := os.Stat(c.VideoPath); err != nil {
		return fmt.Errorf("%w: %s", ErrVideoNotFound, c.VideoPath)
	}
	if !supportedExtensions[strings.ToLower(filepath.Ext(c.VideoPath))] {
		return ErrUnsupportedExtension
	}
	if _, err := os.Stat(c.ChaptersPath); err != nil {
		return fmt.Errorf("%w: %s", ErrChaptersNotFound, c.ChaptersPath)
	}
	if samePath(c.VideoPath, c.OutputPath) {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, c.OutputPath)
	}
	return nil
}

// samePath reports whether a and b name the same file, either lexically
// after resolving to absolute paths or, when both exist, by inode.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	fa, errA := os.Stat(a)
	fb, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false
	}
	return os.SameFile(fa, fb)
}
