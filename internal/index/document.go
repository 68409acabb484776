package index

// DocumentIndex is the derived artifact for one document. It is rebuilt
// wholesale on every content change or case-mode change and replaced, never
// mutated, in the workspace store.
type DocumentIndex struct {
	// Doc is the document identity (normalized path).
	Doc string
	// CaseSensitive records the mode the index was built under.
	CaseSensitive bool
	// Hash is the sha256 of the normalized content, used as the cache key.
	Hash [32]byte
	// Lines holds the raw source lines; diagnostics and reference scans
	// re-tokenize them with the same string-aware splitting.
	Lines []string
	// Labels lists every definition site in scan order.
	Labels []LabelDefinition
	// ScopeAtLine has exactly one entry per source line.
	ScopeAtLine []LineScope
	// Params maps a scope path to its declared parameter names
	// (macros and functions only), normalized.
	Params map[string][]string
	// MacroSubLabels maps a macro name to the label names defined inside
	// its body, normalized.
	MacroSubLabels map[string][]string
	// LabelMacro maps a label name to the macro whose invocation produced
	// it, for validating macro-generated sub-label references.
	LabelMacro map[string]string
	// Includes lists the resolved include targets, in order of appearance.
	Includes []string
}

// ScopeAt returns the scope context recorded at a line. Out-of-range lines
// yield the global context.
func (d *DocumentIndex) ScopeAt(line int) LineScope {
	if d == nil || line < 0 || line >= len(d.ScopeAtLine) {
		return LineScope{}
	}
	return d.ScopeAtLine[line]
}

// LineCount returns the number of indexed lines.
func (d *DocumentIndex) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Line returns the raw text of a line, or "" when out of range.
func (d *DocumentIndex) Line(n int) string {
	if d == nil || n < 0 || n >= len(d.Lines) {
		return ""
	}
	return d.Lines[n]
}
