package index

import (
	"os"
	"path/filepath"
	"strings"

	"tassls/internal/asm"
	"tassls/internal/scan"
	"tassls/internal/source"
)

// Options configure a single index pass.
type Options struct {
	// CaseSensitive selects the symbol case mode (default insensitive).
	CaseSensitive bool
	// IncludeDirs are extra directories searched for include targets after
	// the including document's own directory.
	IncludeDirs []string
	// Exists gates include resolution on filesystem existence. Defaults to
	// os.Stat; tests substitute their own.
	Exists func(path string) bool
}

func (o *Options) exists(path string) bool {
	if o.Exists != nil {
		return o.Exists(path)
	}
	_, err := os.Stat(path)
	return err == nil
}

// scopeFrame is one entry of the indexer's scope stack.
type scopeFrame struct {
	name      string // normalized, empty for anonymous frames
	display   string
	dir       *asm.Directive
	line      int
	subLabels []string // harvested while dir.Macro
}

// Index runs the single forward pass over a document and produces its
// DocumentIndex. It never fails: malformed lines simply match no rule.
func Index(file *source.File, opts Options) *DocumentIndex {
	lines := file.Lines()
	d := &DocumentIndex{
		Doc:            file.Path,
		CaseSensitive:  opts.CaseSensitive,
		Hash:           file.Hash,
		Lines:          lines,
		ScopeAtLine:    make([]LineScope, len(lines)),
		Params:         make(map[string][]string),
		MacroSubLabels: make(map[string][]string),
		LabelMacro:     make(map[string]string),
	}

	ix := &indexer{
		doc:         d,
		opts:        opts,
		lineComment: make([]string, len(lines)),
		commentOnly: make([]bool, len(lines)),
	}
	for i, line := range lines {
		code, commentCol := scan.SplitComment(line)
		if commentCol >= 0 {
			ix.lineComment[i] = strings.TrimSpace(strings.TrimLeft(line[commentCol:], "; "))
		}
		ix.commentOnly[i] = scan.IsBlank(line) && commentCol >= 0
		ix.codeLines = append(ix.codeLines, code)
	}

	for i := range lines {
		ix.scanLine(i)
	}
	// unclosed macros at EOF still contribute their harvested sub-labels
	for j := len(ix.stack) - 1; j >= 0; j-- {
		ix.finalizeMacro(&ix.stack[j])
	}
	return d
}

type indexer struct {
	doc         *DocumentIndex
	opts        Options
	codeLines   []string
	lineComment []string
	commentOnly []bool
	stack       []scopeFrame
	localScope  string // normalized name of the current local-scope label
}

func (ix *indexer) norm(name string) string {
	return Normalize(name, ix.opts.CaseSensitive)
}

// scopePath joins the named frames currently open; anonymous frames nest
// but contribute no segment.
func (ix *indexer) scopePath() string {
	var parts []string
	for i := range ix.stack {
		if ix.stack[i].name != "" {
			parts = append(parts, ix.stack[i].name)
		}
	}
	return strings.Join(parts, ".")
}

func (ix *indexer) scanLine(i int) {
	ix.doc.ScopeAtLine[i] = LineScope{Path: ix.scopePath(), Local: ix.localScope}

	code := ix.codeLines[i]
	if scan.IsBlank(ix.doc.Lines[i]) {
		return
	}
	ev, ok := MatchLine(code)
	if !ok {
		return
	}
	switch ev.Kind {
	case EventInclude:
		ix.resolveInclude(ev.Include)
	case EventCloseScope:
		ix.closeScope(ev.Directive)
	case EventOpenScope:
		ix.openScope(i, ev)
	case EventCodeLabel:
		ix.record(i, ev, LabelDefinition{})
		ix.localScope = ix.norm(ev.Name)
	case EventLocalSymbol:
		ix.record(i, ev, LabelDefinition{
			Local:      true,
			LocalScope: ix.localScope,
			Value:      ev.Value,
		})
	case EventAnonLabels:
		ix.recordAnon(i, ev)
	case EventDataLabel:
		ix.record(i, ev, LabelDefinition{})
	case EventMacroLabel:
		ix.record(i, ev, LabelDefinition{})
		ix.doc.LabelMacro[ix.norm(ev.Name)] = ix.norm(ev.Directive)
	case EventAssign:
		ix.record(i, ev, LabelDefinition{
			Local: strings.HasPrefix(ev.Name, "_"),
			Value: ev.Value,
		})
	}
}

// record finalizes the common fields of a definition and appends it. The
// template carries the event-specific fields (Local, LocalScope, Value).
func (ix *indexer) record(line int, ev LineEvent, def LabelDefinition) {
	def.Name = ix.norm(ev.Name)
	def.OriginalName = ev.Name
	def.Doc = ix.doc.Doc
	def.Span = source.LineSpan(line, ev.NameCol, ev.NameCol+len(ev.Name))
	def.ScopePath = ix.scopePath()
	if !def.Local {
		def.Local = strings.HasPrefix(ev.Name, "_")
	}
	def.Comment = ix.docComment(line)
	ix.doc.Labels = append(ix.doc.Labels, def)
	ix.harvest(def.Name)
}

func (ix *indexer) recordAnon(line int, ev LineEvent) {
	for k := 0; k < ev.AnonCount; k++ {
		ix.doc.Labels = append(ix.doc.Labels, LabelDefinition{
			Name:         ev.Name,
			OriginalName: ev.Name,
			Doc:          ix.doc.Doc,
			Span:         source.LineSpan(line, ev.NameCol+k, ev.NameCol+k+1),
			ScopePath:    ix.scopePath(),
			LocalScope:   ix.localScope,
			Anonymous:    true,
			AnonChar:     ev.AnonChar,
			AnonIndex:    k + 1,
		})
	}
}

func (ix *indexer) openScope(line int, ev LineEvent) {
	dir, ok := asm.Opener(ev.Directive)
	if !ok {
		return
	}
	frame := scopeFrame{dir: dir, line: line}
	if ev.Name != "" {
		// the scope's own name is a definition in the enclosing scope
		ix.record(line, ev, LabelDefinition{})
		frame.name = ix.norm(ev.Name)
		frame.display = ev.Name
	}
	ix.stack = append(ix.stack, frame)
	ix.localScope = ""
	if dir.Params && frame.name != "" {
		ix.doc.Params[ix.scopePath()] = ix.parseParams(ev.Args)
	}
}

// closeScope pops the innermost frame whose opener accepts the closer.
// Any frames opened above it were left unclosed; they are discarded so the
// scope path does not leak past the closer (diagnostics flag them later).
func (ix *indexer) closeScope(closer string) {
	for j := len(ix.stack) - 1; j >= 0; j-- {
		if !ix.stack[j].dir.Accepts(closer) {
			continue
		}
		for k := len(ix.stack) - 1; k >= j; k-- {
			ix.finalizeMacro(&ix.stack[k])
		}
		ix.stack = ix.stack[:j]
		ix.localScope = ""
		return
	}
	// no matching opener: the diagnostics pass reports the stray closer
}

// harvest records a label name into the innermost enclosing macro body.
func (ix *indexer) harvest(name string) {
	for j := len(ix.stack) - 1; j >= 0; j-- {
		if ix.stack[j].dir.Macro && ix.stack[j].name != "" {
			ix.stack[j].subLabels = append(ix.stack[j].subLabels, name)
			return
		}
	}
}

func (ix *indexer) finalizeMacro(f *scopeFrame) {
	if !f.dir.Macro || f.name == "" || len(f.subLabels) == 0 {
		return
	}
	seen := make(map[string]bool, len(f.subLabels))
	out := ix.doc.MacroSubLabels[f.name]
	for _, n := range f.subLabels {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	ix.doc.MacroSubLabels[f.name] = out
	f.subLabels = nil
}

// parseParams splits a macro/function argument list; a default value after
// '=' is not part of the parameter name.
func (ix *indexer) parseParams(args string) []string {
	if args == "" {
		return nil
	}
	var params []string
	for _, part := range strings.Split(args, ",") {
		name := strings.TrimSpace(part)
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = strings.TrimSpace(name[:i])
		}
		if name == "" {
			continue
		}
		params = append(params, ix.norm(name))
	}
	return params
}

// resolveInclude resolves an include target relative to the including
// document, then through the configured include directories. Targets that
// do not exist on disk are silently dropped.
func (ix *indexer) resolveInclude(target string) {
	dirs := append([]string{filepath.Dir(filepath.FromSlash(ix.doc.Doc))}, ix.opts.IncludeDirs...)
	for _, dir := range dirs {
		candidate := target
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(dir, candidate)
		}
		if ix.opts.exists(candidate) {
			ix.doc.Includes = append(ix.doc.Includes, source.NormalizePath(candidate))
			return
		}
		if filepath.IsAbs(target) {
			return
		}
	}
}

// docComment finds the documentation comment for a definition at a line:
// the trailing comment on the line itself, else the contiguous block of
// comment-only lines immediately above.
func (ix *indexer) docComment(line int) string {
	if c := ix.lineComment[line]; c != "" {
		return c
	}
	var block []string
	for j := line - 1; j >= 0 && ix.commentOnly[j]; j-- {
		block = append(block, ix.lineComment[j])
	}
	if len(block) == 0 {
		return ""
	}
	// collected bottom-up
	for l, r := 0, len(block)-1; l < r; l, r = l+1, r-1 {
		block[l], block[r] = block[r], block[l]
	}
	return strings.Join(block, "\n")
}
