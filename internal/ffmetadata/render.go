// Package ffmetadata renders chapter ranges in ffmpeg's FFMETADATA1 text
// format, the input consumed by "-map_chapters" / "-map_metadata".
package ffmetadata

import (
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/chapterize/internal/chapters"
)

// Header is the mandatory first line of an FFMETADATA1 file.
const Header = ";FFMETADATA1"

// Timebase is written into every chapter stanza; START and END are in ms.
const Timebase = "1/1000"

// Render returns the FFMETADATA1 document for ranges: the header, a blank
// line, then one [CHAPTER] stanza per range, each followed by a blank line.
func Render(ranges []chapters.Range) string {
	lines := make([]string, 0, 2+6*len(ranges))
	lines = append(lines, Header, "")
	for _, r := range ranges {
		lines = append(lines,
			"[CHAPTER]",
			"TIMEBASE="+Timebase,
			"START="+strconv.FormatInt(r.StartMs, 10),
			"END="+strconv.FormatInt(r.EndMs, 10),
			"title="+Escape(r.Title),
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// Write renders ranges to w.
func Write(w io.Writer, ranges []chapters.Range) error {
	_, err := io.WriteString(w, Render(ranges))
	return err
}
