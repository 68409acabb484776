// Package analysis derives diagnostics from a document index: block
// matching over directive pairs, duplicate-label detection, and the
// reference scans for undefined symbols, undefined macros, missing
// operators in data value lists and unresolvable anonymous references.
//
// Every pass is total over its input. Malformed source produces
// diagnostics, never a failed analysis, and the passes run against a
// completed index so they never observe a document mid-update.
package analysis

import (
	"tassls/internal/diag"
	"tassls/internal/resolve"
)

// Analyze runs every diagnostic pass for one document and emits the
// findings through the reporter. Unknown documents produce nothing.
func Analyze(store resolve.Store, doc string, r diag.Reporter) {
	idx := store.Get(doc)
	if idx == nil {
		return
	}
	MatchBlocks(idx, r)
	reportDuplicates(idx, r)
	scanReferences(store, idx, r)
}

// Run collects the diagnostics of one document into a sorted bag capped
// at max entries (0 means the default cap).
func Run(store resolve.Store, doc string, max int) *diag.Bag {
	bag := diag.NewBag(max)
	Analyze(store, doc, diag.BagReporter{Bag: bag})
	bag.Sort()
	return bag
}
