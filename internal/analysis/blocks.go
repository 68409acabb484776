package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"tassls/internal/asm"
	"tassls/internal/diag"
	"tassls/internal/index"
	"tassls/internal/scan"
	"tassls/internal/source"
)

// Block is one matched opener/closer pair. Folding builds its ranges
// directly from these.
type Block struct {
	Directive *asm.Directive
	OpenLine  int
	OpenCol   int // column of the opener's dot
	CloseLine int
}

// directiveTokRe finds a dotted directive token not glued to an
// identifier, so "table.len" never reads as a directive.
var directiveTokRe = regexp.MustCompile(`(?:^|[^\w.])\.([A-Za-z_]\w*)`)

// MatchBlocks pairs block directives over the whole document with a
// stack of open frames. A closer pops the innermost frame that accepts
// its spelling; a closer with no open frame anywhere is an unmatched
// closer at that line. Frames still open at end of file are unclosed
// blocks at their opening line, unless the directive's closer is
// optional.
func MatchBlocks(idx *index.DocumentIndex, r diag.Reporter) []Block {
	type frame struct {
		d    *asm.Directive
		line int
		col  int
	}
	var stack []frame
	var blocks []Block

	for n := 0; n < idx.LineCount(); n++ {
		code, _ := scan.SplitComment(idx.Line(n))
		blanked := scan.BlankStrings(code)
		m := directiveTokRe.FindStringSubmatchIndex(blanked)
		if m == nil {
			continue
		}
		name := blanked[m[2]:m[3]]
		col := m[2] - 1
		if d, ok := asm.Opener(name); ok {
			stack = append(stack, frame{d: d, line: n, col: col})
			continue
		}
		if !asm.IsCloser(name) {
			continue
		}
		matched := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].d.Accepts(name) {
				matched = i
				break
			}
		}
		if matched < 0 {
			diag.Report(r, diag.UnmatchedCloser, idx.Doc,
				source.LineSpan(n, col, col+1+len(name)),
				fmt.Sprintf("'.%s' has no matching opener", strings.ToLower(name)))
			continue
		}
		f := stack[matched]
		blocks = append(blocks, Block{Directive: f.d, OpenLine: f.line, OpenCol: f.col, CloseLine: n})
		// frames above the match stay open; they are reported at EOF
		stack = append(stack[:matched], stack[matched+1:]...)
	}

	for _, f := range stack {
		if f.d.OptionalCloser {
			continue
		}
		diag.Report(r, diag.UnclosedBlock, idx.Doc,
			source.LineSpan(f.line, f.col, f.col+1+len(f.d.Name)),
			fmt.Sprintf("'.%s' is never closed (expected '.%s')", f.d.Name, f.d.Closers[0]))
	}
	return blocks
}
