package chapters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_YouTubeStyleLines(t *testing.T) {
	in := "0:00 Intro\n1:23 - Setup\n2:34 | Deep dive\n3:45 — Wrap up\n4:00 – Outro"

	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantStarts := []int64{0, 83000, 154000, 225000, 240000}
	wantTitles := []string{"Intro", "Setup", "Deep dive", "Wrap up", "Outro"}
	if len(got) != len(wantStarts) {
		t.Fatalf("got %d chapters, want %d", len(got), len(wantStarts))
	}
	for i := range got {
		if got[i].StartMs != wantStarts[i] || got[i].Title != wantTitles[i] {
			t.Errorf("chapter %d = {%d %q}, want {%d %q}",
				i, got[i].StartMs, got[i].Title, wantStarts[i], wantTitles[i])
		}
	}
}

func TestParse_StripsEndTimestamp(t *testing.T) {
	in := strings.Join([]string{
		"0:01 - 5:13 Take Back The City",
		"5:14 - 8:33 Chocolate",
		"57:32 - 1:02:11 Just Say Yes",
	}, "\n")

	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Start{
		{1000, "Take Back The City"},
		{314000, "Chocolate"},
		{3452000, "Just Say Yes"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d chapters, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chapter %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_KeepsFileOrderAndSkipsBlankLines(t *testing.T) {
	in := "\n  \n2:00 Later\n\n0:30 Earlier\r\n\t\n"

	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Later" || got[1].Title != "Earlier" {
		t.Errorf("got %+v, want [Later Earlier] in file order", got)
	}
}

func TestParse_TimestampOnlyTitleIsKept(t *testing.T) {
	// A second timestamp with nothing after it is the title itself.
	got, err := Parse(strings.NewReader("0:00 5:13"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got[0].Title != "5:13" {
		t.Errorf("title = %q, want %q", got[0].Title, "5:13")
	}
}

func TestParse_UnparseableLine(t *testing.T) {
	_, err := Parse(strings.NewReader("0:00 Intro\nnot-a-timestamp title"))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if pe.Line != 2 || pe.Text != "not-a-timestamp title" {
		t.Errorf("ParseError = %+v, want line 2 with raw text", pe)
	}
	if !strings.Contains(err.Error(), "could not parse line 2") {
		t.Errorf("message %q missing line number", err.Error())
	}
}

func TestParse_OutOfRangeStartCarriesLine(t *testing.T) {
	_, err := Parse(strings.NewReader("0:00 Intro\n0:75 Bad"))

	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want RangeError", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("message %q should start with the line number", err.Error())
	}
}

func TestParse_OverflowingHoursRejected(t *testing.T) {
	_, err := Parse(strings.NewReader("3000000000000:00:00 Wrapped\n0:30 Real"))

	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want RangeError", err)
	}
	if !strings.HasPrefix(err.Error(), "line 1:") {
		t.Errorf("message %q should start with the line number", err.Error())
	}
}

func TestParse_LineEndings(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"lf", "0:00 A\n1:00 B\n"},
		{"crlf", "0:00 A\r\n1:00 B\r\n"},
		{"cr only", "0:00 A\r1:00 B\r"},
		{"cr only without trailing newline", "0:00 A\r1:00 B"},
		{"mixed", "0:00 A\r\n\r1:00 B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			want := []Start{{0, "A"}, {60000, "B"}}
			if len(got) != len(want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("chapter %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestParse_CROnlyLineNumbers(t *testing.T) {
	_, err := Parse(strings.NewReader("0:00 A\rnot a chapter\r"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if pe.Line != 2 || pe.Text != "not a chapter" {
		t.Errorf("ParseError = %+v", pe)
	}
}

func TestParse_VeryLongTitle(t *testing.T) {
	title := strings.Repeat("x", 70_000)
	got, err := Parse(strings.NewReader("0:00 " + title + "\n1:00 Next\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 || got[0].Title != title {
		t.Errorf("got %d chapters, first title length %d", len(got), len(got[0].Title))
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "\n\n   \n"} {
		if _, err := Parse(strings.NewReader(in)); !errors.Is(err, ErrNoChapters) {
			t.Errorf("Parse(%q) error = %v, want ErrNoChapters", in, err)
		}
	}
}

func TestParse_ByteOrderMarks(t *testing.T) {
	t.Run("utf-8", func(t *testing.T) {
		got, err := Parse(strings.NewReader("\ufeff0:00 Intro\n1:00 Next"))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got[0].StartMs != 0 || got[0].Title != "Intro" {
			t.Errorf("first chapter = %+v", got[0])
		}
	})

	t.Run("utf-16le", func(t *testing.T) {
		src := "0:00 Intro\n1:00 Ça va"
		buf := []byte{0xFF, 0xFE}
		for _, r := range src {
			buf = append(buf, byte(r), byte(r>>8))
		}
		got, err := Parse(strings.NewReader(string(buf)))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(got) != 2 || got[1].Title != "Ça va" || got[1].StartMs != 60000 {
			t.Errorf("got %+v", got)
		}
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chapters.txt")
	if err := os.WriteFile(path, []byte("0:00 Intro\n1:23 - Setup\n2:34 | Deep dive"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(got) != 3 || got[2].StartMs != 154000 || got[2].Title != "Deep dive" {
		t.Errorf("got %+v", got)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}
