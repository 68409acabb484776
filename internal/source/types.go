package source

import (
	"fmt"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about how a source file was loaded.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (editor buffer, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// Pos is a position inside a document. Line and Col are 0-based; Col counts
// bytes from the start of the line, matching the line-oriented scanner.
type Pos struct {
	Line uint32
	Col  uint32
}

// Before reports whether p is strictly before q in document order.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a half-open range [Start, End) inside a single document.
type Span struct {
	Start Pos
	End   Pos
}

// LineSpan builds a span covering [startCol, endCol) on a single line.
func LineSpan(line, startCol, endCol int) Span {
	return Span{
		Start: Pos{Line: clampU32(line), Col: clampU32(startCol)},
		End:   Pos{Line: clampU32(line), Col: clampU32(endCol)},
	}
}

// Contains reports whether p falls inside the span. The end position is
// treated as inclusive so a cursor placed just after a word still hits it.
func (s Span) Contains(p Pos) bool {
	if p.Before(s.Start) {
		return false
	}
	return p.Before(s.End) || p == s.End
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
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
