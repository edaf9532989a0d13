package display

import (
	"bytes"
	"testing"

	"github.com/backmassage/chapterize/internal/chapters"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "0:00"},
		{"seconds", 9000, "0:09"},
		{"minutes", 754000, "12:34"},
		{"truncates millis", 83999, "1:23"},
		{"exactly one hour", 3600000, "1:00:00"},
		{"hours", 3723000, "1:02:03"},
		{"negative clamps", -5, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.ms); got != tt.want {
				t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00.000"},
		{1437123, "23:57.123"},
		{3723450, "1:02:03.450"},
	}
	for _, tt := range tests {
		if got := FormatMillis(tt.ms); got != tt.want {
			t.Errorf("FormatMillis(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestWriteChapterList(t *testing.T) {
	var buf bytes.Buffer
	WriteChapterList(&buf, []chapters.Range{
		{StartMs: 0, EndMs: 83000, Title: "Intro"},
		{StartMs: 83000, EndMs: 3723000, Title: "Setup"},
	})

	want := "1  0:00 - 1:23  Intro\n" +
		"2  1:23 - 1:02:03  Setup\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
