package lsp

import (
	"sort"

	"tassls/internal/resolve"
	"tassls/internal/source"
)

// CommentAnnotation identifies the opt-in edit group for comment
// mentions; editors must ask before applying edits carrying it.
const CommentAnnotation = "comment-occurrences"

// Rename builds the workspace edit renaming the symbol at a position:
// one edit at the definition plus one per resolved code reference.
// Mentions inside comments become a separately annotated group that is
// never applied silently. Anonymous labels have no name to rename.
func Rename(store resolve.Store, doc string, pos source.Pos, newName string) (WorkspaceEdit, bool) {
	if newName == "" {
		return WorkspaceEdit{}, false
	}
	target, _, ok := resolveAt(store, doc, pos)
	if !ok || target.Anonymous {
		return WorkspaceEdit{}, false
	}

	edits := make(map[string][]TextEdit)
	for _, o := range codeOccurrences(store, target) {
		edits[o.doc] = append(edits[o.doc], TextEdit{Range: ToRange(o.span), NewText: newName})
	}
	comments := commentOccurrences(store, target)
	for _, o := range comments {
		edits[o.doc] = append(edits[o.doc], TextEdit{
			Range:        ToRange(o.span),
			NewText:      newName,
			AnnotationID: CommentAnnotation,
		})
	}
	if len(edits) == 0 {
		return WorkspaceEdit{}, false
	}

	docs := make([]string, 0, len(edits))
	for d := range edits {
		docs = append(docs, d)
	}
	sort.Strings(docs)

	we := WorkspaceEdit{DocumentChanges: make([]DocumentEdits, 0, len(docs))}
	for _, d := range docs {
		list := edits[d]
		sort.Slice(list, func(i, j int) bool {
			if list[i].Range.Start.Line != list[j].Range.Start.Line {
				return list[i].Range.Start.Line < list[j].Range.Start.Line
			}
			return list[i].Range.Start.Character < list[j].Range.Start.Character
		})
		we.DocumentChanges = append(we.DocumentChanges, DocumentEdits{URI: PathToURI(d), Edits: list})
	}
	if len(comments) > 0 {
		we.ChangeAnnotations = map[string]ChangeAnnotation{
			CommentAnnotation: {
				Label:             "Rename mentions in comments",
				NeedsConfirmation: true,
				Description:       "Occurrences found inside comments; review before applying.",
			},
		}
	}
	return we, true
}
