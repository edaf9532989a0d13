package pipeline

import (
	"fmt"
	"time"

	"github.com/backmassage/chapterize/internal/chapters"
)

// Result describes a finished run.
type Result struct {
	Chapters   []chapters.Range
	OutputPath string
	DurationMs int64
	DryRun     bool
	Elapsed    time.Duration
}

// Summary is the one-line success message printed at the end of a run.
func (r Result) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("Dry run: %d chapters would be inserted into: %s", len(r.Chapters), r.OutputPath)
	}
	return fmt.Sprintf("Inserted %d chapters into: %s", len(r.Chapters), r.OutputPath)
}
