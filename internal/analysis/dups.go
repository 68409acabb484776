package analysis

import (
	"fmt"

	"tassls/internal/diag"
	"tassls/internal/index"
)

// reportDuplicates flags repeated definitions within one document.
// Definitions are grouped by scope path, local scope and normalized name;
// the second and later member of each group is an error carrying a note
// at the first. Anonymous labels repeat freely and are skipped.
func reportDuplicates(idx *index.DocumentIndex, r diag.Reporter) {
	type key struct {
		path, local, name string
	}
	first := make(map[key]*index.LabelDefinition, len(idx.Labels))
	for i := range idx.Labels {
		l := &idx.Labels[i]
		if l.Anonymous {
			continue
		}
		k := key{path: l.ScopePath, local: l.LocalScope, name: l.Name}
		prev, seen := first[k]
		if !seen {
			first[k] = l
			continue
		}
		diag.Report(r, diag.DupLabel, idx.Doc, l.Span,
			fmt.Sprintf("duplicate label '%s'", l.OriginalName),
			diag.Note{Doc: prev.Doc, Span: prev.Span, Msg: "first defined here"})
	}
}
