package chapters

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// reLine matches "<timestamp> [sep] <title>". The separator is a single
	// hyphen, en dash, em dash or pipe.
	reLine = regexp.MustCompile(`^((?:\d+:)?\d{1,2}:\d{2})\s*(?:[-–—|]\s*)?(.+?)\s*$`)

	// reEndTimestamp matches a title that still carries the end of a
	// "start - end title" range.
	reEndTimestamp = regexp.MustCompile(`^(?:\d+:)?\d{1,2}:\d{2}\s+(.+)$`)
)

// maxLineBytes bounds a single chapter line.
const maxLineBytes = 16 << 20

// ParseFile opens path and parses it with [Parse].
func ParseFile(path string) ([]Start, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads chapter markers, one per line, in file order. Blank lines are
// skipped. A UTF-8 BOM is dropped and UTF-16 input with a BOM is transcoded.
func Parse(r io.Reader) ([]Start, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanLines)

	var out []Start
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		s, ok, err := parseLine(lineNo, raw)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read chapter file: %w", err)
	}

	if len(out) == 0 {
		return nil, ErrNoChapters
	}
	return out, nil
}

// parseLine parses one record. ok is false for blank lines.
func parseLine(lineNo int, raw string) (Start, bool, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Start{}, false, nil
	}

	m := reLine.FindStringSubmatch(line)
	if m == nil {
		return Start{}, false, &ParseError{Line: lineNo, Text: raw}
	}

	startMs, err := ParseTimestamp(m[1])
	if err != nil {
		return Start{}, false, fmt.Errorf("line %d: %w", lineNo, err)
	}

	title := strings.TrimSpace(m[2])
	if em := reEndTimestamp.FindStringSubmatch(title); em != nil {
		title = strings.TrimSpace(em[1])
	}
	if title == "" {
		return Start{}, false, &EmptyTitleError{Line: lineNo, Text: raw}
	}

	return Start{StartMs: startMs, Title: title}, true, nil
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// '\r' at the end of the buffer: wait to see whether '\n' follows.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
