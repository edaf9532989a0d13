// Package probe runs ffprobe against the input video and extracts the total
// duration (and the number of chapters it already carries) from a single
// JSON call.
package probe
