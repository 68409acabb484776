package lsp

import (
	"fortio.org/safecast"

	"tassls/internal/source"
)

// ToRange converts an internal span to its wire form. Both sides are
// 0-based, so only the integer widths change.
func ToRange(s source.Span) Range {
	return Range{
		Start: toPosition(s.Start),
		End:   toPosition(s.End),
	}
}

// FromPosition converts a wire position to an internal one, clamping
// negatives to zero.
func FromPosition(p Position) source.Pos {
	return source.Pos{Line: clampU32(p.Line), Col: clampU32(p.Character)}
}

func toPosition(p source.Pos) Position {
	return Position{Line: intOf(p.Line), Character: intOf(p.Col)}
}

func locationOf(doc string, s source.Span) Location {
	return Location{URI: PathToURI(doc), Range: ToRange(s)}
}

func intOf(v uint32) int {
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0
	}
	return n
}

func clampU32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return ^uint32(0)
	}
	return v
}
