// Package diag defines the diagnostic model shared by the analysis passes
// and their consumers: severities, stable codes, the Diagnostic value and
// the Bag/Reporter plumbing that collects them.
package diag

import (
	"tassls/internal/source"
)

// SourceTag identifies this tool in diagnostics handed to editors.
const SourceTag = "tassls"

// Note attaches a secondary location to a diagnostic, e.g. the first
// definition site of a duplicated label.
type Note struct {
	Doc  string
	Span source.Span
	Msg  string
}

// Diagnostic is one reported finding with a precise source range.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Doc      string
	Primary  source.Span
	Message  string
	Notes    []Note
}

// WithNote returns a copy of d with an extra note appended.
func (d Diagnostic) WithNote(doc string, span source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Doc: doc, Span: span, Msg: msg})
	return d
}
