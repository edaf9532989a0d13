package probe

// Media is what the pipeline needs to know about the input before muxing.
type Media struct {
	FormatName       string
	DurationMs       int64 // Always > 0 for a successfully probed file.
	ExistingChapters int   // Chapters already in the container; replaced by the mux.
}
