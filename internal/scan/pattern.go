package scan

import "regexp"

// EscapePattern escapes a literal string for safe embedding inside a
// dynamically constructed regular expression.
func EscapePattern(s string) string {
	return regexp.QuoteMeta(s)
}
