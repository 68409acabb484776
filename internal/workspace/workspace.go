// Package workspace maintains the working set of document indexes: one per
// open document plus every file reachable from them via includes. It owns
// the only piece of mutable shared state, a map from document identity to
// DocumentIndex, with replace-on-reindex semantics. Everything runs
// synchronously on the caller's goroutine; a re-index fully completes,
// include traversal included, before any query can observe it.
package workspace

import (
	"fmt"
	"os"
	"sort"

	"tassls/internal/cache"
	"tassls/internal/index"
	"tassls/internal/source"
)

// Options configure a workspace.
type Options struct {
	// CaseSensitive selects the symbol case mode (default insensitive).
	CaseSensitive bool
	// IncludeDirs are extra directories searched for include targets.
	IncludeDirs []string
	// Cache, when set, is consulted before indexing include files read
	// from disk.
	Cache *cache.Cache
	// Logf receives best-effort I/O degradation notices. Defaults to
	// stderr.
	Logf func(format string, args ...any)
	// ReadFile loads an include target. Defaults to source.Load; tests
	// substitute in-memory files.
	ReadFile func(path string) (*source.File, error)
	// Exists gates include resolution. Defaults to os.Stat.
	Exists func(path string) bool
}

// Workspace is the cross-document index manager.
type Workspace struct {
	opts Options
	docs map[string]*index.DocumentIndex
	open map[string]bool            // documents opened explicitly (roots)
	refs map[string]map[string]bool // included doc -> roots referencing it
	text map[string]string          // retained root text for mode switches
}

// New creates an empty workspace.
func New(opts Options) *Workspace {
	if opts.Logf == nil {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	if opts.ReadFile == nil {
		opts.ReadFile = source.Load
	}
	return &Workspace{
		opts: opts,
		docs: make(map[string]*index.DocumentIndex),
		open: make(map[string]bool),
		refs: make(map[string]map[string]bool),
		text: make(map[string]string),
	}
}

// Get implements resolve.Store.
func (w *Workspace) Get(doc string) *index.DocumentIndex {
	return w.docs[doc]
}

// Docs implements resolve.Store, in sorted order for determinism.
func (w *Workspace) Docs() []string {
	out := make([]string, 0, len(w.docs))
	for d := range w.docs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// CaseSensitive implements resolve.Store.
func (w *Workspace) CaseSensitive() bool {
	return w.opts.CaseSensitive
}

// Roots returns the explicitly opened documents, sorted.
func (w *Workspace) Roots() []string {
	out := make([]string, 0, len(w.open))
	for d := range w.open {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// IndexDocument (re)indexes a root document from the given text, then
// follows its includes. Prior include contributions of this root are
// cleared first; any include whose reference count drops to zero is
// evicted so stale symbols never leak into resolution.
func (w *Workspace) IndexDocument(path, text string) *index.DocumentIndex {
	file := source.NewVirtual(path, text)
	root := file.Path
	w.open[root] = true
	w.text[root] = text

	// clear this root's previous reference contributions
	for _, set := range w.refs {
		delete(set, root)
	}

	idx := index.Index(file, w.indexOptions())
	w.docs[root] = idx
	w.followIncludes(root, idx)
	w.evictOrphans()
	return idx
}

// OpenFile reads a root document from disk and indexes it.
func (w *Workspace) OpenFile(path string) (*index.DocumentIndex, error) {
	file, err := w.opts.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.IndexDocument(file.Path, string(file.Content)), nil
}

// Close removes a root document from the working set, evicting any
// includes only it referenced.
func (w *Workspace) Close(path string) {
	root := source.NormalizePath(path)
	if !w.open[root] {
		return
	}
	delete(w.open, root)
	delete(w.text, root)
	for _, set := range w.refs {
		delete(set, root)
	}
	if !w.referenced(root) {
		delete(w.docs, root)
	}
	w.evictOrphans()
}

// SetCaseSensitive switches the case mode and rebuilds every index, since
// normalization is baked into the stored names.
func (w *Workspace) SetCaseSensitive(cs bool) {
	if w.opts.CaseSensitive == cs {
		return
	}
	w.opts.CaseSensitive = cs
	w.docs = make(map[string]*index.DocumentIndex)
	w.refs = make(map[string]map[string]bool)
	for root, text := range w.text {
		idx := index.Index(source.NewVirtual(root, text), w.indexOptions())
		w.docs[root] = idx
		w.followIncludes(root, idx)
	}
	w.evictOrphans()
}

func (w *Workspace) indexOptions() index.Options {
	return index.Options{
		CaseSensitive: w.opts.CaseSensitive,
		IncludeDirs:   w.opts.IncludeDirs,
		Exists:        w.opts.Exists,
	}
}

// followIncludes walks the include graph of a root with an explicit
// worklist and a visited set, so include cycles terminate and pathological
// graphs cannot grow the call stack.
func (w *Workspace) followIncludes(root string, idx *index.DocumentIndex) {
	visited := map[string]bool{root: true}
	work := append([]string(nil), idx.Includes...)
	for len(work) > 0 {
		path := work[len(work)-1]
		work = work[:len(work)-1]
		if visited[path] {
			continue
		}
		visited[path] = true

		if w.refs[path] == nil {
			w.refs[path] = make(map[string]bool)
		}
		w.refs[path][root] = true

		inc, ok := w.docs[path]
		if !ok {
			inc = w.indexInclude(path)
			if inc == nil {
				continue
			}
			w.docs[path] = inc
		}
		work = append(work, inc.Includes...)
	}
}

// indexInclude reads and indexes one include target, consulting the cache
// first. Unreadable targets are logged and skipped, never fatal.
func (w *Workspace) indexInclude(path string) *index.DocumentIndex {
	file, err := w.opts.ReadFile(path)
	if err != nil {
		w.opts.Logf("tassls: cannot read include %s: %v", path, err)
		return nil
	}
	key := cache.Key(file.Path, file.Hash, w.opts.CaseSensitive)
	if idx, ok := w.opts.Cache.Get(key); ok {
		return idx
	}
	idx := index.Index(file, w.indexOptions())
	if err := w.opts.Cache.Put(key, idx); err != nil {
		w.opts.Logf("tassls: cannot cache index for %s: %v", path, err)
	}
	return idx
}

func (w *Workspace) referenced(doc string) bool {
	return len(w.refs[doc]) > 0
}

// evictOrphans drops every document that is neither open nor referenced by
// any root.
func (w *Workspace) evictOrphans() {
	for doc := range w.docs {
		if w.open[doc] || w.referenced(doc) {
			continue
		}
		delete(w.docs, doc)
		delete(w.refs, doc)
	}
}
