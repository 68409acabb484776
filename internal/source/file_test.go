package source_test

import (
	"testing"

	"tassls/internal/source"
)

func TestNewFileNormalization(t *testing.T) {
	f := source.NewFile("a.asm", []byte("\xEF\xBB\xBFfirst\r\nsecond\r\nthird"), 0)
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if got := string(f.Content); got != "first\nsecond\nthird" {
		t.Errorf("content = %q", got)
	}
}

func TestFileLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{""}},
		{"single", "lda #0", []string{"lda #0"}},
		{"multi", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := source.NewVirtual("t.asm", tt.content)
			if got := f.LineCount(); got != len(tt.want) {
				t.Fatalf("LineCount = %d, want %d", got, len(tt.want))
			}
			for i, want := range tt.want {
				if got := f.Line(i); got != want {
					t.Errorf("Line(%d) = %q, want %q", i, got, want)
				}
			}
			lines := f.Lines()
			if len(lines) != len(tt.want) {
				t.Fatalf("Lines() len = %d, want %d", len(lines), len(tt.want))
			}
		})
	}
}

func TestFileLineOutOfRange(t *testing.T) {
	f := source.NewVirtual("t.asm", "only")
	if got := f.Line(-1); got != "" {
		t.Errorf("Line(-1) = %q", got)
	}
	if got := f.Line(5); got != "" {
		t.Errorf("Line(5) = %q", got)
	}
}

func TestSpanContains(t *testing.T) {
	sp := source.LineSpan(3, 4, 9)
	cases := []struct {
		pos  source.Pos
		want bool
	}{
		{source.Pos{Line: 3, Col: 4}, true},
		{source.Pos{Line: 3, Col: 8}, true},
		{source.Pos{Line: 3, Col: 9}, true}, // end inclusive for cursor hits
		{source.Pos{Line: 3, Col: 10}, false},
		{source.Pos{Line: 3, Col: 3}, false},
		{source.Pos{Line: 2, Col: 6}, false},
		{source.Pos{Line: 4, Col: 6}, false},
	}
	for _, c := range cases {
		if got := sp.Contains(c.pos); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}
