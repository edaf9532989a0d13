package chapters

// Start is a single chapter marker as read from the chapter file.
type Start struct {
	StartMs int64
	Title   string
}

// Range is a bounded chapter. EndMs is always greater than StartMs; the last
// range of a normalized list ends at the media duration.
type Range struct {
	StartMs int64
	EndMs   int64
	Title   string
}

// DurationMs returns the length of the chapter in milliseconds.
func (r Range) DurationMs() int64 {
	return r.EndMs - r.StartMs
}
