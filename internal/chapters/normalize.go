package chapters

import (
	"cmp"
	"slices"
)

// IntroSnapThresholdMs is the cutoff for treating the earliest marker as the
// intro. A first chapter starting after zero but before this is moved to
// zero; one starting at or after it gets a synthesized "Intro" in front.
const IntroSnapThresholdMs = 10_000

// IntroTitle names the chapter synthesized in front of a late first marker.
const IntroTitle = "Intro"

// Normalize sorts starts and turns them into contiguous ranges covering
// [0, durationMs). The input slice is not modified.
func Normalize(starts []Start, durationMs int64) ([]Range, error) {
	if len(starts) == 0 {
		return nil, ErrNoChapters
	}

	sorted := slices.Clone(starts)
	slices.SortStableFunc(sorted, func(a, b Start) int {
		return cmp.Compare(a.StartMs, b.StartMs)
	})

	if first := sorted[0]; first.StartMs < 0 {
		return nil, &NegativeStartError{StartMs: first.StartMs, Title: first.Title}
	}

	switch first := sorted[0].StartMs; {
	case first > 0 && first < IntroSnapThresholdMs:
		sorted[0].StartMs = 0
	case first > 0:
		sorted = slices.Insert(sorted, 0, Start{StartMs: 0, Title: IntroTitle})
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartMs == sorted[i-1].StartMs {
			return nil, &DuplicateTimestampError{StartMs: sorted[i].StartMs}
		}
	}

	last := sorted[len(sorted)-1]
	if last.StartMs >= durationMs {
		return nil, &OutOfRangeError{LastStartMs: last.StartMs, DurationMs: durationMs}
	}

	ranges := make([]Range, 0, len(sorted))
	for i, c := range sorted {
		end := durationMs
		if i+1 < len(sorted) {
			end = sorted[i+1].StartMs
		}
		if end <= c.StartMs {
			return nil, &OrderingError{Title: c.Title}
		}
		ranges = append(ranges, Range{StartMs: c.StartMs, EndMs: end, Title: c.Title})
	}
	return ranges, nil
}
