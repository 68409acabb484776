package workspace_test

import (
	"errors"
	"strings"
	"testing"

	"tassls/internal/resolve"
	"tassls/internal/source"
	"tassls/internal/workspace"
)

// fakeFS serves include targets from memory, keyed by normalized path.
type fakeFS map[string]string

func (fs fakeFS) options() workspace.Options {
	return workspace.Options{
		Exists: func(p string) bool {
			_, ok := fs[source.NormalizePath(p)]
			return ok
		},
		ReadFile: func(p string) (*source.File, error) {
			content, ok := fs[source.NormalizePath(p)]
			if !ok {
				return nil, errors.New("no such file")
			}
			return source.NewVirtual(p, content), nil
		},
		Logf: func(string, ...any) {},
	}
}

func TestIncludeTraversal(t *testing.T) {
	fs := fakeFS{
		"/p/lib.asm": " .include \"sub.asm\"\nhelper rts",
		"/p/sub.asm": "deep rts",
	}
	w := workspace.New(fs.options())
	w.IndexDocument("/p/main.asm", " .include \"lib.asm\"\n jsr helper\n jsr deep")

	if len(w.Docs()) != 3 {
		t.Fatalf("docs = %v, want 3 entries", w.Docs())
	}
	if _, ok := resolve.FindSymbol(w, "helper", "/p/main.asm", 1); !ok {
		t.Error("helper not visible from root")
	}
	if _, ok := resolve.FindSymbol(w, "deep", "/p/main.asm", 2); !ok {
		t.Error("transitively included symbol not visible")
	}
}

func TestIncludeCycleTerminates(t *testing.T) {
	fs := fakeFS{
		"/p/a.asm": " .include \"b.asm\"\na_sym",
		"/p/b.asm": " .include \"a.asm\"\nb_sym",
	}
	w := workspace.New(fs.options())
	w.IndexDocument("/p/main.asm", " .include \"a.asm\"")
	if len(w.Docs()) != 3 {
		t.Fatalf("docs = %v", w.Docs())
	}
}

func TestOrphanedIncludeEviction(t *testing.T) {
	fs := fakeFS{"/p/lib.asm": "helper rts"}
	w := workspace.New(fs.options())
	w.IndexDocument("/p/main.asm", " .include \"lib.asm\"")
	if w.Get("/p/lib.asm") == nil {
		t.Fatal("lib.asm should be indexed")
	}
	// the edit removed the include line
	w.IndexDocument("/p/main.asm", " nop")
	if w.Get("/p/lib.asm") != nil {
		t.Error("orphaned include survived re-index")
	}
	if _, ok := resolve.FindSymbol(w, "helper", "/p/main.asm", 0); ok {
		t.Error("stale include symbols leaked into resolution")
	}
}

func TestSharedIncludeRefCounting(t *testing.T) {
	fs := fakeFS{"/p/lib.asm": "helper rts"}
	w := workspace.New(fs.options())
	w.IndexDocument("/p/one.asm", " .include \"lib.asm\"")
	w.IndexDocument("/p/two.asm", " .include \"lib.asm\"")

	w.Close("/p/one.asm")
	if w.Get("/p/lib.asm") == nil {
		t.Fatal("lib.asm still referenced by two.asm, must survive")
	}
	w.Close("/p/two.asm")
	if w.Get("/p/lib.asm") != nil {
		t.Error("lib.asm unreferenced, must be evicted")
	}
	if len(w.Docs()) != 0 {
		t.Errorf("docs = %v, want empty", w.Docs())
	}
}

func TestUnreadableIncludeDegrades(t *testing.T) {
	var logged []string
	opts := workspace.Options{
		Exists:   func(string) bool { return true },
		ReadFile: func(string) (*source.File, error) { return nil, errors.New("permission denied") },
		Logf:     func(f string, a ...any) { logged = append(logged, f) },
	}
	w := workspace.New(opts)
	idx := w.IndexDocument("/p/main.asm", " .include \"secret.asm\"\nmain")
	if idx == nil {
		t.Fatal("root index must complete despite unreadable include")
	}
	if len(logged) == 0 {
		t.Error("unreadable include should be logged")
	}
	if _, ok := resolve.FindSymbol(w, "main", "/p/main.asm", 1); !ok {
		t.Error("root symbols must still resolve")
	}
}

func TestSetCaseSensitiveRebuilds(t *testing.T) {
	fs := fakeFS{}
	w := workspace.New(fs.options())
	w.IndexDocument("/p/main.asm", "MyLabel\n lda MYLABEL")

	if _, ok := resolve.FindSymbol(w, "MYLABEL", "/p/main.asm", 1); !ok {
		t.Fatal("insensitive mode should resolve any casing")
	}
	w.SetCaseSensitive(true)
	if !w.CaseSensitive() {
		t.Fatal("mode switch lost")
	}
	if _, ok := resolve.FindSymbol(w, "MYLABEL", "/p/main.asm", 1); ok {
		t.Error("sensitive mode must not resolve the wrong casing")
	}
	if _, ok := resolve.FindSymbol(w, "MyLabel", "/p/main.asm", 1); !ok {
		t.Error("sensitive mode should resolve the exact casing")
	}
}

func TestReplaceOnReindex(t *testing.T) {
	fs := fakeFS{}
	w := workspace.New(fs.options())
	first := w.IndexDocument("/p/main.asm", "one")
	second := w.IndexDocument("/p/main.asm", "two")
	if first == second {
		t.Error("re-index must replace, not mutate, the document index")
	}
	if got := w.Get("/p/main.asm"); got != second {
		t.Error("store should hold the latest index")
	}
	if !strings.Contains(second.Lines[0], "two") {
		t.Errorf("latest content = %q", second.Lines[0])
	}
}
