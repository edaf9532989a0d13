// Package naming derives output file names from the input video path.
package naming
