package ffmpeg

// MuxJob describes one chapter-replacing remux.
type MuxJob struct {
	InputPath    string
	MetadataPath string // FFMETADATA1 file.
	OutputPath   string
	Verbose      bool
}

// BuildMux constructs the complete ffmpeg argument slice (including the
// binary name) for job. Input 0 is the video, input 1 the metadata file:
// every stream of input 0 is copied untouched, while global metadata and
// chapters come from input 1. The output is overwritten.
func BuildMux(bin string, job MuxJob) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, bin, "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error.
	if job.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Inputs ---
	args = append(args, "-i", job.InputPath, "-i", job.MetadataPath)

	// --- Stream maps: all streams from the video ---
	args = append(args, "-map", "0")

	// --- Metadata and chapters from the FFMETADATA1 input ---
	args = append(args, "-map_metadata", "1", "-map_chapters", "1")

	// --- Codec: copy everything ---
	args = append(args, "-codec", "copy")

	// --- Output ---
	args = append(args, job.OutputPath)

	return args
}
