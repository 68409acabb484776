// Package lsp is the editor-facing feature layer: it turns index and
// resolver results into the wire shapes editors consume (locations,
// hovers, folding ranges, workspace edits, diagnostics). The transport
// shell that carries these over JSON-RPC lives outside this module; the
// types here only fix the payload contract.
package lsp

// Position is a 0-based line/column pair, matching the internal
// convention of source.Pos.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open [Start, End) region of a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location points at a range inside a document.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// FoldingRange is one foldable block, start and end lines inclusive.
type FoldingRange struct {
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Kind      string `json:"kind,omitempty"`
}

// MarkupContent carries hover text.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Hover is the payload for a hover request.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// TextEdit replaces a range with new text. AnnotationID, when set, ties
// the edit to a ChangeAnnotation of the surrounding workspace edit.
type TextEdit struct {
	Range        Range  `json:"range"`
	NewText      string `json:"newText"`
	AnnotationID string `json:"annotationId,omitempty"`
}

// DocumentEdits groups the edits of one document.
type DocumentEdits struct {
	URI   string     `json:"uri"`
	Edits []TextEdit `json:"edits"`
}

// ChangeAnnotation describes an edit group the editor must surface for
// explicit confirmation instead of applying silently.
type ChangeAnnotation struct {
	Label             string `json:"label"`
	NeedsConfirmation bool   `json:"needsConfirmation"`
	Description       string `json:"description,omitempty"`
}

// WorkspaceEdit is the rename result: per-document edit lists plus the
// annotations referenced by annotated edits.
type WorkspaceEdit struct {
	DocumentChanges   []DocumentEdits             `json:"documentChanges"`
	ChangeAnnotations map[string]ChangeAnnotation `json:"changeAnnotations,omitempty"`
}

// Diagnostic severities on the wire.
const (
	SeverityError   = 1
	SeverityWarning = 2
	SeverityInfo    = 3
)

// Diagnostic is the published form of one finding.
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity"`
	Code     string `json:"code,omitempty"`
	Source   string `json:"source,omitempty"`
	Message  string `json:"message"`
}
