// Package scan holds the line-level lexical helpers shared by the indexer,
// the resolver and the diagnostics passes: comment/string aware splitting,
// numeric literal parsing and formatting, and pattern escaping.
//
// The string rule of the dialect applies everywhere a line is inspected:
// both " and ' delimit string literals, and a doubled delimiter inside a
// string is an escaped literal delimiter, not a terminator. There are no
// backslash escapes. An unterminated string fails open: scanning reaches the
// end of line still "in string" and no comment is recognized on that line.
package scan

// CommentChar introduces a line comment outside of string literals.
const CommentChar = ';'

// SplitComment splits a line into the code portion before any comment and
// the column of the comment character. commentCol is -1 when the line has
// no comment.
func SplitComment(line string) (code string, commentCol int) {
	inString := false
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inString {
			if c != quote {
				continue
			}
			if i+1 < len(line) && line[i+1] == quote {
				i++ // doubled delimiter, stays inside the string
				continue
			}
			inString = false
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case CommentChar:
			return line[:i], i
		}
	}
	return line, -1
}

// BlankStrings returns a copy of s with every string literal (delimiters
// included) replaced by spaces. All character offsets are preserved, so the
// result can be tokenized positionally without seeing string contents.
func BlankStrings(s string) string {
	out := []byte(s)
	inString := false
	var quote byte
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inString {
			if c == quote {
				if i+1 < len(out) && out[i+1] == quote {
					out[i] = ' '
					out[i+1] = ' '
					i++
					continue
				}
				inString = false
			}
			out[i] = ' '
			continue
		}
		if c == '"' || c == '\'' {
			inString = true
			quote = c
			out[i] = ' '
		}
	}
	return string(out)
}

// IsBlank reports whether the line holds no code: empty, whitespace only,
// or comment only.
func IsBlank(line string) bool {
	code, _ := SplitComment(line)
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}
