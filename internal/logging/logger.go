// Package logging provides the leveled, optionally colored logger used by
// every stage of a run, with an optional append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/chapterize/internal/config"
	"github.com/backmassage/chapterize/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	file     *os.File
	filePath string
}

// NewLogger configures terminal colors from cfg and optionally opens
// cfg.LogFile for appending. Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{out: os.Stdout, errOut: os.Stderr}
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}

// Result writes the single outcome line of a run without timestamp or level
// tag: to stdout on success, to stderr on failure. The log file still gets a
// timestamped copy.
func (l *Logger) Result(ok bool, format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	out, level := l.out, "DONE"
	if !ok {
		out, level = l.errOut, "FAILED"
	}
	_, _ = io.WriteString(out, text+"\n")
	if l.file != nil {
		ts := time.Now().Format("2006-01-02 15:04:05")
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}
