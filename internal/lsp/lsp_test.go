package lsp_test

import (
	"strings"
	"testing"

	"tassls/internal/diag"
	"tassls/internal/index"
	"tassls/internal/lsp"
	"tassls/internal/source"
)

type fakeStore struct {
	docs          map[string]*index.DocumentIndex
	caseSensitive bool
}

func (s *fakeStore) Get(doc string) *index.DocumentIndex { return s.docs[doc] }
func (s *fakeStore) CaseSensitive() bool                 { return s.caseSensitive }
func (s *fakeStore) Docs() []string {
	out := make([]string, 0, len(s.docs))
	for d := range s.docs {
		out = append(out, d)
	}
	return out
}

func storeWith(t *testing.T, texts map[string]string) (*fakeStore, string) {
	t.Helper()
	s := &fakeStore{docs: map[string]*index.DocumentIndex{}}
	opts := index.Options{Exists: func(string) bool { return false }}
	main := ""
	for path, text := range texts {
		f := source.NewVirtual(path, text)
		s.docs[f.Path] = index.Index(f, opts)
		if strings.HasSuffix(f.Path, "main.asm") {
			main = f.Path
		}
	}
	return s, main
}

func at(line, col int) source.Pos {
	return source.Pos{Line: uint32(line), Col: uint32(col)}
}

func TestWordAt(t *testing.T) {
	cases := []struct {
		line  string
		col   int
		word  string
		start int
	}{
		{" jsr math.add", 6, "math.add", 5},
		{" jsr math.add", 13, "math.add", 5}, // cursor just past the word
		{" lda #speed", 7, "speed", 6},
		{" .copy 1,2", 2, ".copy", 1},
		{" beq ++", 5, "++", 5},
		{" beq ++", 7, "++", 5},
		{"_loop", 0, "_loop", 0},
		{" lda #$FF", 5, "", 0}, // on the '#', nothing word-like either side
		{"", 0, "", 0},
	}
	for _, c := range cases {
		word, start := lsp.WordAt(c.line, c.col)
		if word != c.word || (word != "" && start != c.start) {
			t.Errorf("WordAt(%q, %d) = %q@%d, want %q@%d", c.line, c.col, word, start, c.word, c.start)
		}
	}
}

func TestDefinition(t *testing.T) {
	text := "main .proc\n jsr helper\n .pend\nhelper rts"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})

	loc, ok := lsp.Definition(s, main, at(1, 6))
	if !ok {
		t.Fatal("definition not found")
	}
	if loc.Range.Start.Line != 3 || loc.Range.Start.Character != 0 || loc.Range.End.Character != 6 {
		t.Errorf("definition range = %+v", loc.Range)
	}
	if !strings.HasSuffix(loc.URI, "main.asm") || !strings.HasPrefix(loc.URI, "file://") {
		t.Errorf("URI = %q", loc.URI)
	}
}

func TestDefinitionOfAnonymous(t *testing.T) {
	text := " beq +\n nop\n+"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})
	loc, ok := lsp.Definition(s, main, at(0, 5))
	if !ok || loc.Range.Start.Line != 2 {
		t.Errorf("anonymous definition = %+v ok=%v, want line 2", loc, ok)
	}
}

func TestDefinitionIgnoresComments(t *testing.T) {
	text := "speed = 1\n nop ; uses speed"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})
	if _, ok := lsp.Definition(s, main, at(1, 12)); ok {
		t.Error("a comment mention must not resolve")
	}
}

func TestReferences(t *testing.T) {
	text := "math .proc\nadd\n .pend\n jsr math.add"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})

	refs := lsp.References(s, main, at(1, 1))
	if len(refs) != 2 {
		t.Fatalf("references = %+v, want definition + one use", refs)
	}
	if refs[0].Range.Start.Line != 1 {
		t.Errorf("first = %+v, want the definition", refs[0])
	}
	// the dotted use reports only the leaf segment
	use := refs[1]
	if use.Range.Start.Line != 3 || use.Range.Start.Character != 10 || use.Range.End.Character != 13 {
		t.Errorf("dotted use = %+v, want cols 10-13", use.Range)
	}
}

func TestReferencesCrossDocument(t *testing.T) {
	s, main := storeWith(t, map[string]string{
		"/t/main.asm": " jsr helper",
		"/t/lib.asm":  "helper rts",
	})
	refs := lsp.References(s, main, at(0, 6))
	if len(refs) != 2 {
		t.Fatalf("references = %+v, want 2", refs)
	}
}

func TestHoverConstant(t *testing.T) {
	text := "; player speed\nspeed = 10\n lda #speed"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})

	h, ok := lsp.HoverAt(s, main, at(2, 7))
	if !ok {
		t.Fatal("no hover")
	}
	v := h.Contents.Value
	if !strings.Contains(v, "speed") {
		t.Errorf("hover %q missing name", v)
	}
	if !strings.Contains(v, "%1010, 10, $A") {
		t.Errorf("hover %q missing three-base value", v)
	}
	if !strings.Contains(v, "player speed") {
		t.Errorf("hover %q missing doc comment", v)
	}
}

func TestHoverScopePath(t *testing.T) {
	text := "main .proc\nloop lda #0\n jmp loop\n .pend"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})
	h, ok := lsp.HoverAt(s, main, at(2, 6))
	if !ok || !strings.Contains(h.Contents.Value, "`main`") {
		t.Errorf("hover = %+v ok=%v, want scope main", h, ok)
	}
}

func TestFoldingRanges(t *testing.T) {
	text := "main .proc\n .if 1\n nop\n .fi\n .pend\nbroken .proc"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})

	got := lsp.FoldingRanges(s, main)
	want := []lsp.FoldingRange{
		{StartLine: 0, EndLine: 4, Kind: "region"},
		{StartLine: 1, EndLine: 3, Kind: "region"},
	}
	if len(got) != len(want) {
		t.Fatalf("ranges = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRenameSeparatesCommentEdits(t *testing.T) {
	text := "speed = 10 ; default speed\n lda #speed\n sta speed"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})

	we, ok := lsp.Rename(s, main, at(1, 7), "velocity")
	if !ok {
		t.Fatal("rename failed")
	}
	if len(we.DocumentChanges) != 1 {
		t.Fatalf("documentChanges = %+v", we.DocumentChanges)
	}
	edits := we.DocumentChanges[0].Edits
	var plain, annotated int
	for _, e := range edits {
		if e.NewText != "velocity" {
			t.Errorf("edit text = %q", e.NewText)
		}
		if e.AnnotationID == "" {
			plain++
		} else {
			annotated++
		}
	}
	if plain != 3 || annotated != 1 {
		t.Errorf("plain=%d annotated=%d, want 3 code edits and 1 comment edit", plain, annotated)
	}
	ann, ok := we.ChangeAnnotations[lsp.CommentAnnotation]
	if !ok || !ann.NeedsConfirmation {
		t.Errorf("annotations = %+v, want a confirmation-required group", we.ChangeAnnotations)
	}
}

func TestRenameAnonymousRefused(t *testing.T) {
	text := "+\n bne -"
	s, main := storeWith(t, map[string]string{"/t/main.asm": text})
	if _, ok := lsp.Rename(s, main, at(0, 0), "x"); ok {
		t.Error("anonymous labels must not rename")
	}
}

func TestToDiagnostics(t *testing.T) {
	items := []diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.DupLabel,
			Doc:      "/t/main.asm",
			Primary:  source.LineSpan(2, 0, 5),
			Message:  "duplicate label 'start'",
		},
		{
			Severity: diag.SevWarning,
			Code:     diag.UndefinedSymbol,
			Doc:      "/t/main.asm",
			Primary:  source.LineSpan(4, 5, 12),
			Message:  "undefined symbol 'missing'",
		},
	}
	out := lsp.ToDiagnostics(items)
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].Severity != lsp.SeverityError || out[0].Code != "dup-label" || out[0].Source != "tassls" {
		t.Errorf("first = %+v", out[0])
	}
	if out[1].Severity != lsp.SeverityWarning || out[1].Range.Start.Line != 4 {
		t.Errorf("second = %+v", out[1])
	}
}

func TestURIRoundTrip(t *testing.T) {
	uri := lsp.PathToURI("/t/main file.asm")
	if !strings.HasPrefix(uri, "file://") {
		t.Fatalf("uri = %q", uri)
	}
	if got := lsp.URIToPath(uri); !strings.HasSuffix(got, "main file.asm") {
		t.Errorf("round trip = %q", got)
	}
	if lsp.URIToPath("https://example.com/x") != "" {
		t.Error("non-file scheme should yield empty")
	}
}
