// Package ffmpeg builds and runs the stream-copy remux that replaces a
// video's chapters and global metadata with an FFMETADATA1 file.
//
//   - BuildMux: argument list (builder.go)
//   - Muxer.Mux: run ffmpeg, capture stderr, optional tee to the terminal (executor.go)
//   - Classify / MuxError: turn ffmpeg's stderr into a one-line diagnosis (errors.go)
//
// Failures are never retried.
package ffmpeg
