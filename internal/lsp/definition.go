package lsp

import (
	"strings"

	"tassls/internal/index"
	"tassls/internal/resolve"
	"tassls/internal/scan"
	"tassls/internal/source"
)

// Definition resolves the word at a position to its defining label.
func Definition(store resolve.Store, doc string, pos source.Pos) (Location, bool) {
	def, _, ok := resolveAt(store, doc, pos)
	if !ok {
		return Location{}, false
	}
	return locationOf(def.Doc, def.Span), true
}

// resolveAt extracts the word under the position and resolves it:
// '+'/'-' runs through the anonymous distance search, everything else
// through the symbol resolver. Positions inside comments resolve to
// nothing; a comment mention is not a reference.
func resolveAt(store resolve.Store, doc string, pos source.Pos) (index.LabelDefinition, source.Span, bool) {
	idx := store.Get(doc)
	if idx == nil {
		return index.LabelDefinition{}, source.Span{}, false
	}
	line := intOf(pos.Line)
	code, _ := scan.SplitComment(idx.Line(line))
	word, start := WordAt(code, intOf(pos.Col))
	if word == "" {
		return index.LabelDefinition{}, source.Span{}, false
	}
	span := source.LineSpan(line, start, start+len(word))
	if word[0] == '+' || word[0] == '-' {
		def, ok := resolve.FindAnonymous(store, doc, line, word[0], len(word))
		return def, span, ok
	}
	word = strings.Trim(word, ".")
	if word == "" {
		return index.LabelDefinition{}, source.Span{}, false
	}
	def, ok := resolve.FindSymbol(store, word, doc, line)
	return def, span, ok
}
