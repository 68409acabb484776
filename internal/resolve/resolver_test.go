package resolve_test

import (
	"strings"
	"testing"

	"tassls/internal/index"
	"tassls/internal/resolve"
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

func storeWith(t *testing.T, caseSensitive bool, texts map[string]string) *fakeStore {
	t.Helper()
	s := &fakeStore{docs: map[string]*index.DocumentIndex{}, caseSensitive: caseSensitive}
	opts := index.Options{CaseSensitive: caseSensitive, Exists: func(string) bool { return false }}
	for path, text := range texts {
		f := source.NewVirtual(path, text)
		s.docs[f.Path] = index.Index(f, opts)
	}
	return s
}

func doc(s *fakeStore) string {
	for d := range s.docs {
		if strings.HasSuffix(d, "main.asm") {
			return d
		}
	}
	return ""
}

func TestCaseInsensitiveResolution(t *testing.T) {
	s := storeWith(t, false, map[string]string{"/t/main.asm": "MyLabel lda #0\n rts"})
	for _, q := range []string{"MyLabel", "mylabel", "MYLABEL"} {
		def, ok := resolve.FindSymbol(s, q, doc(s), 1)
		if !ok {
			t.Fatalf("FindSymbol(%q) not found", q)
		}
		if def.OriginalName != "MyLabel" {
			t.Errorf("FindSymbol(%q).OriginalName = %q", q, def.OriginalName)
		}
	}
}

func TestCaseSensitiveResolution(t *testing.T) {
	text := "MyLabel\nmylabel\nMYLABEL\n lda #0"
	s := storeWith(t, true, map[string]string{"/t/main.asm": text})
	for i, q := range []string{"MyLabel", "mylabel", "MYLABEL"} {
		def, ok := resolve.FindSymbol(s, q, doc(s), 3)
		if !ok {
			t.Fatalf("FindSymbol(%q) not found", q)
		}
		if def.OriginalName != q || int(def.Span.Start.Line) != i {
			t.Errorf("FindSymbol(%q) = %+v", q, def)
		}
	}
	if _, ok := resolve.FindSymbol(s, "MYLabel", doc(s), 3); ok {
		t.Error("differently-cased query must not resolve in sensitive mode")
	}
}

func TestScopeWidening(t *testing.T) {
	text := strings.Join([]string{
		"value = 1",   // 0: global
		"outer .proc", // 1
		"value = 2",   // 2: outer.value shadows global
		"inner .proc", // 3
		" lda value",  // 4: sees outer.value
		" .pend",      // 5
		" .pend",      // 6
		" lda value",  // 7: sees global
	}, "\n")
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	def, ok := resolve.FindSymbol(s, "value", doc(s), 4)
	if !ok || def.ScopePath != "outer" {
		t.Errorf("from inner: %+v ok=%v, want outer.value", def, ok)
	}
	def, ok = resolve.FindSymbol(s, "value", doc(s), 7)
	if !ok || def.ScopePath != "" {
		t.Errorf("from global: %+v ok=%v, want global value", def, ok)
	}
}

func TestDottedResolution(t *testing.T) {
	text := strings.Join([]string{
		"math .proc",
		"add",
		" .pend",
		"wrap .proc",
		"math2 .proc",
		"mul",
		" .pend",
		" .pend",
		" lda #0",
	}, "\n")
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	def, ok := resolve.FindSymbol(s, "math.add", doc(s), 8)
	if !ok || def.OriginalName != "add" {
		t.Errorf("math.add = %+v ok=%v", def, ok)
	}
	// a scope is addressable by its path tail, not only the full path
	def, ok = resolve.FindSymbol(s, "math2.mul", doc(s), 8)
	if !ok || def.OriginalName != "mul" || def.ScopePath != "wrap.math2" {
		t.Errorf("math2.mul = %+v ok=%v", def, ok)
	}
	if _, ok := resolve.FindSymbol(s, "math.missing", doc(s), 8); ok {
		t.Error("dotted lookup of missing leaf must fail")
	}
}

func TestMacroCallDotStripping(t *testing.T) {
	s := storeWith(t, false, map[string]string{"/t/main.asm": "copy .macro\n .endm\n .copy"})
	def, ok := resolve.FindSymbol(s, ".copy", doc(s), 2)
	if !ok || def.OriginalName != "copy" {
		t.Errorf(".copy = %+v ok=%v", def, ok)
	}
}

func TestLocalSymbolScoping(t *testing.T) {
	text := "a\n_x = 1\nb\n   lda #_x"
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	// from under local scope b, _x (defined under a) must not resolve
	if _, ok := resolve.FindSymbol(s, "_x", doc(s), 3); ok {
		t.Error("_x resolved across a local-scope boundary")
	}
	// from under local scope a it resolves
	def, ok := resolve.FindSymbol(s, "_x", doc(s), 1)
	if !ok || def.Value != "1" {
		t.Errorf("_x under a = %+v ok=%v", def, ok)
	}
}

func TestLocalSymbolNeverCrossesDocuments(t *testing.T) {
	s := storeWith(t, false, map[string]string{
		"/t/main.asm":  "a\n lda #_x",
		"/t/other.asm": "a\n_x = 1",
	})
	if _, ok := resolve.FindSymbol(s, "_x", doc(s), 1); ok {
		t.Error("_x resolved from another document")
	}
}

func TestAnonymousForward(t *testing.T) {
	text := "main\n+\n nop\n+\n rts"
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	def, ok := resolve.FindAnonymous(s, doc(s), 2, '+', 1)
	if !ok || def.Span.Start.Line != 3 {
		t.Errorf("forward 1 from line 2 = %+v ok=%v, want line 3", def, ok)
	}
	if _, ok := resolve.FindAnonymous(s, doc(s), 2, '+', 2); ok {
		t.Error("forward 2 from line 2 has only one candidate ahead, want not-found")
	}
}

func TestAnonymousDistance(t *testing.T) {
	text := " lda #0\n+\n+\n+\n rts"
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	def, ok := resolve.FindAnonymous(s, doc(s), 0, '+', 2)
	if !ok || def.Span.Start.Line != 2 {
		t.Errorf("distance 2 = %+v ok=%v, want line 2", def, ok)
	}
	if _, ok := resolve.FindAnonymous(s, doc(s), 0, '+', 4); ok {
		t.Error("distance beyond available count must be not-found")
	}
}

func TestAnonymousBackward(t *testing.T) {
	text := "-\n nop\n-\n beq -"
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	def, ok := resolve.FindAnonymous(s, doc(s), 3, '-', 1)
	if !ok || def.Span.Start.Line != 2 {
		t.Errorf("backward 1 = %+v ok=%v, want line 2", def, ok)
	}
	def, ok = resolve.FindAnonymous(s, doc(s), 3, '-', 2)
	if !ok || def.Span.Start.Line != 0 {
		t.Errorf("backward 2 = %+v ok=%v, want line 0", def, ok)
	}
}

func TestAnonymousDirectionAndScope(t *testing.T) {
	text := "main\n-\n lda #0\n sub .proc\n+\n .pend"
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	// '-' labels never satisfy forward searches
	if _, ok := resolve.FindAnonymous(s, doc(s), 0, '+', 1); ok {
		t.Error("forward search matched a backward label")
	}
}

func TestParameterShadowing(t *testing.T) {
	text := strings.Join([]string{
		"width = 40",
		"resize .macro width",
		" lda #width",
		" .endm",
	}, "\n")
	s := storeWith(t, false, map[string]string{"/t/main.asm": text})

	if _, ok := resolve.FindSymbol(s, "width", doc(s), 2); ok {
		t.Error("parameter must shadow the global constant inside the macro")
	}
	if !resolve.IsParameter(s, "width", doc(s), 2) {
		t.Error("IsParameter should see the macro parameter")
	}
	def, ok := resolve.FindSymbol(s, "width", doc(s), 0)
	if !ok || def.Value != "40" {
		t.Errorf("global width = %+v ok=%v", def, ok)
	}
}

func TestCrossDocumentResolution(t *testing.T) {
	s := storeWith(t, false, map[string]string{
		"/t/main.asm": " jsr helper",
		"/t/lib.asm":  "helper rts",
	})
	def, ok := resolve.FindSymbol(s, "helper", doc(s), 0)
	if !ok || !strings.HasSuffix(def.Doc, "lib.asm") {
		t.Errorf("helper = %+v ok=%v", def, ok)
	}
}

func TestNotFoundIsNotAnError(t *testing.T) {
	s := storeWith(t, false, map[string]string{"/t/main.asm": " nop"})
	if _, ok := resolve.FindSymbol(s, "ghost", doc(s), 0); ok {
		t.Error("ghost should not resolve")
	}
	if _, ok := resolve.FindSymbol(s, "", doc(s), 0); ok {
		t.Error("empty name should not resolve")
	}
	if _, ok := resolve.FindSymbol(s, "x", "/nope.asm", 0); ok {
		t.Error("unknown document should not resolve")
	}
}
