// Package index builds the per-document symbol table: a single forward pass
// over the lines of a document classifies each line through a fixed sequence
// of matchers and records every definition site with the scope context it
// was seen in.
package index

import (
	"tassls/internal/source"
)

// LabelDefinition is one symbol occurrence that counts as a definition site.
type LabelDefinition struct {
	// Name is the storage name, case-normalized per the active mode.
	Name string
	// OriginalName preserves the literal source spelling for display.
	OriginalName string
	// Doc is the owning document identity.
	Doc  string
	Span source.Span
	// ScopePath is the dot-joined chain of named enclosing directive
	// scopes, empty for global.
	ScopePath string
	// LocalScope is the nearest preceding code label for local symbols and
	// anonymous labels, empty otherwise.
	LocalScope string
	// Local marks names beginning with '_'.
	Local bool
	// Anonymous marks '+'/'-' labels; AnonChar holds the direction
	// character and AnonIndex the 1-based ordinal within the run.
	Anonymous bool
	AnonChar  byte
	AnonIndex int
	// Value holds the literal value text of a constant assignment.
	Value string
	// Comment is the documentation comment associated with the definition.
	Comment string
}

// LineScope is the scope context active at a line, recorded before any
// directive opened or closed on that line takes effect.
type LineScope struct {
	Path  string
	Local string
}
