package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// Muxer runs ffmpeg to write chapters into a copy of the input video.
// The zero value looks ffmpeg up on PATH and captures stderr silently.
type Muxer struct {
	Binary  string
	Verbose bool      // Also tee ffmpeg's stderr to Tee in real time.
	Tee     io.Writer // Defaults to os.Stderr.
}

// Mux copies every stream of src into dest and replaces its chapters and
// global metadata with those in metadataPath. dest is overwritten. On
// failure the returned error is a *MuxError.
func (m Muxer) Mux(ctx context.Context, src, metadataPath, dest string) error {
	bin := m.Binary
	if bin == "" {
		bin = "ffmpeg"
	}
	args := BuildMux(bin, MuxJob{
		InputPath:    src,
		MetadataPath: metadataPath,
		OutputPath:   dest,
		Verbose:      m.Verbose,
	})

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if m.Verbose {
		tee := m.Tee
		if tee == nil {
			tee = os.Stderr
		}
		cmd.Stderr = io.MultiWriter(&stderrBuf, tee)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		return &MuxError{Err: err, Stderr: stderrBuf.String()}
	}
	return nil
}
