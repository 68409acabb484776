package ui_test

import (
	"strings"
	"testing"

	"tassls/internal/diag"
	"tassls/internal/source"
	"tassls/internal/ui"
)

func TestRenderPlain(t *testing.T) {
	lines := []string{"start lda #0", " jmp missing", "start rts"}
	r := ui.Renderer{
		Color: false,
		Line: func(doc string, n int) (string, bool) {
			if n < 0 || n >= len(lines) {
				return "", false
			}
			return lines[n], true
		},
	}
	items := []diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.DupLabel,
			Doc:      "/t/main.asm",
			Primary:  source.LineSpan(2, 0, 5),
			Message:  "duplicate label 'start'",
			Notes:    []diag.Note{{Doc: "/t/main.asm", Span: source.LineSpan(0, 0, 5), Msg: "first defined here"}},
		},
		{
			Severity: diag.SevWarning,
			Code:     diag.UndefinedSymbol,
			Doc:      "/t/main.asm",
			Primary:  source.LineSpan(1, 5, 12),
			Message:  "undefined symbol 'missing'",
		},
	}

	var b strings.Builder
	r.Render(&b, items)
	out := b.String()

	if !strings.Contains(out, "main.asm:3:1: error dup-label: duplicate label 'start'") {
		t.Errorf("headline missing:\n%s", out)
	}
	if !strings.Contains(out, "main.asm:2:6: warning undefined-symbol: undefined symbol 'missing'") {
		t.Errorf("warning headline missing:\n%s", out)
	}
	if !strings.Contains(out, "note: first defined here (main.asm:1:1)") {
		t.Errorf("note missing:\n%s", out)
	}
	// caret aligned under 'missing' (col 5, width 7)
	if !strings.Contains(out, "\n         ^~~~~~\n") {
		t.Errorf("caret row missing or misaligned:\n%s", out)
	}
}

func TestCaretUnderFirstColumn(t *testing.T) {
	r := ui.Renderer{Line: func(string, int) (string, bool) { return "start rts", true }}
	var b strings.Builder
	r.Render(&b, []diag.Diagnostic{{
		Code:    diag.DupLabel,
		Doc:     "/t/a.asm",
		Primary: source.LineSpan(0, 0, 5),
		Message: "x",
	}})
	if !strings.Contains(b.String(), "\n    ^~~~~\n") {
		t.Errorf("caret not at column 0:\n%s", b.String())
	}
}
