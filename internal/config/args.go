package config

// This file implements CLI argument parsing and help text on top of go-arg.
// Options may appear before, between or after the two positionals.

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
)

// ErrHelpRequested and ErrVersionRequested are returned by ParseArgs after it
// has printed help or version text; the caller should exit successfully.
var (
	ErrHelpRequested    = errors.New("help requested")
	ErrVersionRequested = errors.New("version requested")
)

// cliArgs is the go-arg schema. Values are copied into Config after parsing.
type cliArgs struct {
	Video    string    `arg:"positional" placeholder:"VIDEO" help:"input video file (.mp4 or .mkv)"`
	Chapters string    `arg:"positional" placeholder:"CHAPTERS" help:"text file with chapter lines like '0:00 Intro'"`
	Output   string    `arg:"-o,--output" placeholder:"PATH" help:"output video path [default: <input>.chapters.<ext> beside the input]"`
	DryRun   bool      `arg:"-n,--dry-run" help:"print the chapter list and metadata; do not write a video"`
	Verbose  bool      `arg:"-v,--verbose" help:"verbose output, including live ffmpeg stderr"`
	Color    ColorMode `arg:"--color" placeholder:"WHEN" help:"colored logs: auto | always | never [default: auto]"`
	NoColor  bool      `arg:"--no-color" help:"same as --color never"`
	Log      string    `arg:"-l,--log" placeholder:"PATH" help:"append logs to file"`
	Check    bool      `arg:"-c,--check" help:"check ffmpeg/ffprobe availability and exit"`

	version string `arg:"-"`
}

func (cliArgs) Description() string {
	return "Insert chapter metadata into an MP4/MKV using a YouTube-style chapter text file."
}

func (a cliArgs) Version() string {
	return "chapterize v" + a.version
}

// ParseArgs parses argv (without the program name) into cfg. Help and version
// text go to out, followed by ErrHelpRequested or ErrVersionRequested.
func ParseArgs(cfg *Config, version string, argv []string, out io.Writer) error {
	a := cliArgs{Color: cfg.ColorMode, version: version}

	p, err := arg.NewParser(arg.Config{Program: "chapterize"}, &a)
	if err != nil {
		return err
	}

	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(out)
		return ErrHelpRequested
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(out, a.Version())
		return ErrVersionRequested
	case err != nil:
		return err
	}

	cfg.VideoPath = a.Video
	cfg.ChaptersPath = a.Chapters
	cfg.OutputPath = a.Output
	cfg.DryRun = a.DryRun
	cfg.Verbose = a.Verbose
	cfg.ColorMode = a.Color
	if a.NoColor {
		cfg.ColorMode = ColorNever
	}
	cfg.LogFile = a.Log
	cfg.CheckOnly = a.Check
	return nil
}
