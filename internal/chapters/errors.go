package chapters

import (
	"errors"
	"fmt"
)

// ErrNoChapters is returned when a chapter file (or a start list handed to
// Normalize) contains no entries.
var ErrNoChapters = errors.New("no chapters found in chapter file")

// FormatError reports a timestamp that is not two or three colon-separated
// integer fields.
type FormatError struct {
	Raw    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Raw, e.Reason)
}

// RangeError reports a well-formed timestamp whose minutes or seconds fall
// outside 0-59, or whose hours are negative.
type RangeError struct {
	Raw string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("timestamp out of range: %q", e.Raw)
}

// ParseError reports a chapter file line that does not start with a timestamp
// followed by a title. Line is 1-based.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse line %d: %q (expected '<timestamp> <title>' like '0:00 Intro')", e.Line, e.Text)
}

// EmptyTitleError reports a line whose title is empty once an embedded end
// timestamp has been stripped.
type EmptyTitleError struct {
	Line int
	Text string
}

func (e *EmptyTitleError) Error() string {
	return fmt.Sprintf("chapter title is empty on line %d: %q", e.Line, e.Text)
}

// NegativeStartError reports a chapter handed to Normalize with a start
// before zero.
type NegativeStartError struct {
	StartMs int64
	Title   string
}

func (e *NegativeStartError) Error() string {
	return fmt.Sprintf("chapter %q starts before zero (%d ms)", e.Title, e.StartMs)
}

// DuplicateTimestampError reports two chapters starting at the same time.
type DuplicateTimestampError struct {
	StartMs int64
}

func (e *DuplicateTimestampError) Error() string {
	return fmt.Sprintf("duplicate chapter timestamp at %d seconds", e.StartMs/1000)
}

// OutOfRangeError reports a last chapter that starts at or after the end of
// the media.
type OutOfRangeError struct {
	LastStartMs int64
	DurationMs  int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("last chapter starts at or after video duration (last start: %d ms, duration: %d ms)",
		e.LastStartMs, e.DurationMs)
}

// OrderingError reports a chapter whose computed end is not after its start.
type OrderingError struct {
	Title string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("invalid chapter order near %q: next chapter is not later in time", e.Title)
}
