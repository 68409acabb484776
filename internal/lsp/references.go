package lsp

import (
	"regexp"
	"sort"
	"strings"

	"tassls/internal/index"
	"tassls/internal/resolve"
	"tassls/internal/scan"
	"tassls/internal/source"
)

// occurrence is one resolved mention of a definition.
type occurrence struct {
	doc  string
	span source.Span
}

// wordTokRe matches a (possibly dotted) identifier token in code text.
var wordTokRe = regexp.MustCompile(`[A-Za-z_]\w*(?:\.\w+)*`)

// References finds every code occurrence resolving to the same
// definition as the word at the position, the definition site included.
// Anonymous labels report only their definition; comment mentions are
// never references (rename proposes them separately).
func References(store resolve.Store, doc string, pos source.Pos) []Location {
	target, _, ok := resolveAt(store, doc, pos)
	if !ok {
		return nil
	}
	occs := codeOccurrences(store, target)
	out := make([]Location, len(occs))
	for i, o := range occs {
		out[i] = locationOf(o.doc, o.span)
	}
	return out
}

// codeOccurrences re-tokenizes every indexed line and keeps the tokens
// that resolve to the target definition. For dotted tokens the reported
// span covers only the leaf segment, so a rename never rewrites the
// scope prefix.
func codeOccurrences(store resolve.Store, target index.LabelDefinition) []occurrence {
	if target.Anonymous {
		return []occurrence{{doc: target.Doc, span: target.Span}}
	}
	var out []occurrence
	docs := store.Docs()
	sort.Strings(docs)
	for _, doc := range docs {
		idx := store.Get(doc)
		if idx == nil {
			continue
		}
		for n := 0; n < idx.LineCount(); n++ {
			code, _ := scan.SplitComment(idx.Line(n))
			blanked := scan.BlankStrings(code)
			for _, m := range wordTokRe.FindAllStringIndex(blanked, -1) {
				s, e := m[0], m[1]
				if s > 0 && blanked[s-1] == '$' {
					continue
				}
				tok := blanked[s:e]
				if s > 0 && blanked[s-1] == '.' {
					tok = "." + tok
				}
				def, ok := resolve.FindSymbol(store, tok, doc, n)
				if !ok || def.Doc != target.Doc || def.Span != target.Span {
					continue
				}
				leafStart := s
				if cut := strings.LastIndexByte(blanked[s:e], '.'); cut >= 0 {
					leafStart = s + cut + 1
				}
				out = append(out, occurrence{doc: doc, span: source.LineSpan(n, leafStart, e)})
			}
		}
	}
	return out
}

// commentOccurrences finds whole-word mentions of the target's name
// inside comments, compared under the active case mode.
func commentOccurrences(store resolve.Store, target index.LabelDefinition) []occurrence {
	var out []occurrence
	docs := store.Docs()
	sort.Strings(docs)
	for _, doc := range docs {
		idx := store.Get(doc)
		if idx == nil {
			continue
		}
		for n := 0; n < idx.LineCount(); n++ {
			line := idx.Line(n)
			_, commentCol := scan.SplitComment(line)
			if commentCol < 0 {
				continue
			}
			comment := line[commentCol:]
			for _, m := range wordTokRe.FindAllStringIndex(comment, -1) {
				tok := comment[m[0]:m[1]]
				if index.Normalize(tok, store.CaseSensitive()) != target.Name {
					continue
				}
				s := commentCol + m[0]
				out = append(out, occurrence{doc: doc, span: source.LineSpan(n, s, s+len(tok))})
			}
		}
	}
	return out
}
