package lsp

import (
	"sort"

	"tassls/internal/analysis"
	"tassls/internal/diag"
	"tassls/internal/resolve"
)

// FoldingRanges returns one range per matched opener/closer block, in
// document order. Unclosed blocks fold nothing.
func FoldingRanges(store resolve.Store, doc string) []FoldingRange {
	idx := store.Get(doc)
	if idx == nil {
		return nil
	}
	blocks := analysis.MatchBlocks(idx, diag.NopReporter{})
	ranges := make([]FoldingRange, 0, len(blocks))
	for _, b := range blocks {
		if b.OpenLine >= b.CloseLine {
			continue
		}
		ranges = append(ranges, FoldingRange{
			StartLine: b.OpenLine,
			EndLine:   b.CloseLine,
			Kind:      "region",
		})
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine != ranges[j].StartLine {
			return ranges[i].StartLine < ranges[j].StartLine
		}
		return ranges[i].EndLine < ranges[j].EndLine
	})
	return ranges
}
