package index

import "golang.org/x/text/cases"

// Normalize folds a symbol name for storage and comparison. In the default
// case-insensitive mode names are case-folded; in case-sensitive mode they
// are kept as spelled. Both the indexer and the resolver normalize through
// this one function so they agree by construction.
func Normalize(name string, caseSensitive bool) string {
	if caseSensitive {
		return name
	}
	return cases.Fold().String(name)
}
