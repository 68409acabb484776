// Package resolve answers "what does this name, at this position, refer to"
// against the workspace's current index set, under the dialect's scoping
// rules. Resolution is total: absence is a normal not-found result, never an
// error, because undefined symbols are expected and diagnosed separately.
package resolve

import (
	"sort"
	"strings"

	"tassls/internal/index"
)

// Store is the read-only view of the workspace index set the resolver
// operates on. The workspace passes itself; tests use small fakes.
type Store interface {
	// Get returns the index for a document identity, or nil.
	Get(doc string) *index.DocumentIndex
	// Docs returns every indexed document identity.
	Docs() []string
	// CaseSensitive returns the active case mode.
	CaseSensitive() bool
}

// FindSymbol resolves a name as seen at fromDoc:fromLine to its defining
// label.
//
// Order of business: macro-call dot stripping, case normalization, dotted
// scope-path lookup, local-symbol lookup, then the widening walk from the
// current scope path up to global.
func FindSymbol(store Store, name, fromDoc string, fromLine int) (index.LabelDefinition, bool) {
	if store == nil || name == "" {
		return index.LabelDefinition{}, false
	}
	// ".foo" is macro-call sugar for "foo"
	if strings.HasPrefix(name, ".") && !strings.Contains(name[1:], ".") {
		name = name[1:]
	}
	norm := index.Normalize(name, store.CaseSensitive())
	if norm == "" {
		return index.LabelDefinition{}, false
	}
	if strings.Contains(norm, ".") {
		return findDotted(store, norm, fromDoc)
	}
	if strings.HasPrefix(norm, "_") {
		return findLocal(store, norm, fromDoc, fromLine)
	}
	return findPlain(store, norm, fromDoc, fromLine)
}

// findDotted treats the name as scopePath.leafName. A definition matches
// when its own scope path equals the prefix, or ends with ".prefix" so a
// scope can be referenced by its local tail. First match wins in document
// iteration order (origin first, then sorted) -- a documented heuristic,
// not full path resolution.
func findDotted(store Store, norm, fromDoc string) (index.LabelDefinition, bool) {
	cut := strings.LastIndexByte(norm, '.')
	prefix, leaf := norm[:cut], norm[cut+1:]
	if leaf == "" || prefix == "" {
		return index.LabelDefinition{}, false
	}
	for _, doc := range docsInOrder(store, fromDoc) {
		idx := store.Get(doc)
		if idx == nil {
			continue
		}
		for i := range idx.Labels {
			l := &idx.Labels[i]
			if l.Anonymous || l.Name != leaf {
				continue
			}
			if l.ScopePath == prefix || strings.HasSuffix(l.ScopePath, "."+prefix) {
				return *l, true
			}
		}
	}
	return index.LabelDefinition{}, false
}

// findLocal looks up a '_name' symbol. Local symbols only ever resolve
// inside the originating document, within the exact scope path and local
// scope recorded at the originating line.
func findLocal(store Store, norm, fromDoc string, fromLine int) (index.LabelDefinition, bool) {
	idx := store.Get(fromDoc)
	if idx == nil {
		return index.LabelDefinition{}, false
	}
	ctx := idx.ScopeAt(fromLine)
	for i := range idx.Labels {
		l := &idx.Labels[i]
		if l.Local && l.Name == norm && l.ScopePath == ctx.Path && l.LocalScope == ctx.Local {
			return *l, true
		}
	}
	return index.LabelDefinition{}, false
}

// findPlain searches in widening passes: the current scope path, then each
// enclosing path with the last segment stripped, down to global. The
// narrowest match wins. A name shadowed by a macro/function parameter of an
// enclosing scope resolves to nothing; parameters have no definition site.
func findPlain(store Store, norm, fromDoc string, fromLine int) (index.LabelDefinition, bool) {
	origin := store.Get(fromDoc)
	var path string
	if origin != nil {
		path = origin.ScopeAt(fromLine).Path
	}
	if isParameterAt(origin, norm, path) {
		return index.LabelDefinition{}, false
	}
	docs := docsInOrder(store, fromDoc)
	for {
		for _, doc := range docs {
			idx := store.Get(doc)
			if idx == nil {
				continue
			}
			for i := range idx.Labels {
				l := &idx.Labels[i]
				if !l.Anonymous && !l.Local && l.Name == norm && l.ScopePath == path {
					return *l, true
				}
			}
		}
		if path == "" {
			return index.LabelDefinition{}, false
		}
		if cut := strings.LastIndexByte(path, '.'); cut >= 0 {
			path = path[:cut]
		} else {
			path = ""
		}
	}
}

// FindAnonymous resolves a '+'/'-' reference by distance: the count-th
// anonymous label in the given direction from fromLine, within the same
// document, scope path and local scope. Running out of candidates yields
// not-found.
func FindAnonymous(store Store, fromDoc string, fromLine int, dir byte, count int) (index.LabelDefinition, bool) {
	if store == nil || count < 1 || (dir != '+' && dir != '-') {
		return index.LabelDefinition{}, false
	}
	idx := store.Get(fromDoc)
	if idx == nil {
		return index.LabelDefinition{}, false
	}
	ctx := idx.ScopeAt(fromLine)
	matches := func(l *index.LabelDefinition) bool {
		return l.Anonymous && l.AnonChar == dir &&
			l.ScopePath == ctx.Path && l.LocalScope == ctx.Local
	}
	seen := 0
	if dir == '+' {
		for i := range idx.Labels {
			l := &idx.Labels[i]
			if int(l.Span.Start.Line) <= fromLine || !matches(l) {
				continue
			}
			seen++
			if seen == count {
				return *l, true
			}
		}
	} else {
		for i := len(idx.Labels) - 1; i >= 0; i-- {
			l := &idx.Labels[i]
			if int(l.Span.Start.Line) >= fromLine || !matches(l) {
				continue
			}
			seen++
			if seen == count {
				return *l, true
			}
		}
	}
	return index.LabelDefinition{}, false
}

// IsParameter reports whether the name is a declared macro/function
// parameter of any scope enclosing fromDoc:fromLine. Used by diagnostics to
// suppress undefined-symbol findings inside macro bodies.
func IsParameter(store Store, name, fromDoc string, fromLine int) bool {
	if store == nil {
		return false
	}
	idx := store.Get(fromDoc)
	if idx == nil {
		return false
	}
	norm := index.Normalize(name, store.CaseSensitive())
	return isParameterAt(idx, norm, idx.ScopeAt(fromLine).Path)
}

func isParameterAt(idx *index.DocumentIndex, norm, path string) bool {
	if idx == nil {
		return false
	}
	for {
		for _, p := range idx.Params[path] {
			if p == norm {
				return true
			}
		}
		if path == "" {
			return false
		}
		if cut := strings.LastIndexByte(path, '.'); cut >= 0 {
			path = path[:cut]
		} else {
			path = ""
		}
	}
}

// docsInOrder yields the originating document first, then the remaining
// documents in sorted order, keeping cross-document iteration deterministic.
func docsInOrder(store Store, fromDoc string) []string {
	docs := store.Docs()
	sort.Strings(docs)
	out := make([]string, 0, len(docs))
	if store.Get(fromDoc) != nil {
		out = append(out, fromDoc)
	}
	for _, d := range docs {
		if d != fromDoc {
			out = append(out, d)
		}
	}
	return out
}
