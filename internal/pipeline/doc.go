// Package pipeline runs one chapter insertion end to end:
// parse chapter file → probe duration → normalize → render FFMETADATA1 →
// write scratch file → mux → remove scratch file.
//
// External tools sit behind the Prober and Muxer interfaces so the whole
// flow is testable without ffmpeg.
package pipeline
