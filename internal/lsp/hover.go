package lsp

import (
	"fmt"
	"strings"

	"tassls/internal/resolve"
	"tassls/internal/scan"
	"tassls/internal/source"
)

// HoverAt builds the hover payload for the word at a position: the
// display name, the enclosing scope path if any, a constant's value in
// all three bases, and the definition's comment.
func HoverAt(store resolve.Store, doc string, pos source.Pos) (Hover, bool) {
	def, span, ok := resolveAt(store, doc, pos)
	if !ok {
		return Hover{}, false
	}
	var b strings.Builder
	name := def.OriginalName
	if def.Anonymous {
		name = string(def.AnonChar)
	}
	fmt.Fprintf(&b, "```tass\n%s\n```", name)
	if def.ScopePath != "" {
		fmt.Fprintf(&b, "\n\nscope: `%s`", def.ScopePath)
	}
	if def.Value != "" {
		if v, numeric := scan.ParseNumeric(def.Value); numeric {
			fmt.Fprintf(&b, "\n\nvalue: `%s`", scan.FormatNumeric(v))
		} else {
			fmt.Fprintf(&b, "\n\nvalue: `%s`", def.Value)
		}
	}
	if def.Comment != "" {
		fmt.Fprintf(&b, "\n\n%s", def.Comment)
	}
	rng := ToRange(source.Span{Start: span.Start, End: span.End})
	return Hover{
		Contents: MarkupContent{Kind: "markdown", Value: b.String()},
		Range:    &rng,
	}, true
}
