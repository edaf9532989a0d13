package naming

import (
	"path/filepath"
	"strings"
)

// OutputSuffix is inserted between the stem and the extension of the default
// output file name.
const OutputSuffix = ".chapters"

// DefaultOutputPath returns the output path used when -o is not given: the
// input's directory and extension with ".chapters" before the extension.
//
//	/tmp/video.mp4 -> /tmp/video.chapters.mp4
//	talk.v2.MKV    -> talk.v2.chapters.MKV
func DefaultOutputPath(videoPath string) string {
	dir, base := filepath.Split(videoPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+OutputSuffix+ext)
}
