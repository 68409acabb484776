package main

import (
	"fmt"
	"strconv"
	"strings"

	"tassls/internal/source"
)

// parsePosition splits a "file:line:col" argument. Line and column are
// 1-based on the command line and converted to the 0-based internal
// convention. Splitting happens from the right so paths containing
// colons survive.
func parsePosition(arg string) (string, source.Pos, error) {
	rest, colStr, ok := cutLast(arg, ':')
	if !ok {
		return "", source.Pos{}, fmt.Errorf("expected file:line:col, got %q", arg)
	}
	file, lineStr, ok := cutLast(rest, ':')
	if !ok {
		return "", source.Pos{}, fmt.Errorf("expected file:line:col, got %q", arg)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return "", source.Pos{}, fmt.Errorf("bad line number %q in %q", lineStr, arg)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return "", source.Pos{}, fmt.Errorf("bad column number %q in %q", colStr, arg)
	}
	return file, source.Pos{Line: uint32(line - 1), Col: uint32(col - 1)}, nil
}

func cutLast(s string, sep byte) (before, after string, ok bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
