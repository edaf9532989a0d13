// Package display formats chapter data for human-readable terminal output.
package display

import (
	"fmt"
	"io"

	"github.com/backmassage/chapterize/internal/chapters"
	"github.com/backmassage/chapterize/internal/term"
)

// FormatTimestamp renders milliseconds in the chapter-file notation:
// "M:SS" below one hour, "H:MM:SS" from one hour. Sub-second parts are dropped.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatMillis renders a duration with millisecond precision, e.g. "1:02:03.450".
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%s.%03d", FormatTimestamp(ms), ms%1000)
}

// WriteChapterList prints one numbered line per range:
//
//	1  0:00 - 1:23  Intro
func WriteChapterList(w io.Writer, ranges []chapters.Range) {
	width := len(fmt.Sprint(len(ranges)))
	for i, r := range ranges {
		span := FormatTimestamp(r.StartMs) + " - " + FormatTimestamp(r.EndMs)
		fmt.Fprintf(w, "%*d  %s  %s\n", width, i+1, term.Dim.Render(span), r.Title)
	}
}
