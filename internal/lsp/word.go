package lsp

// WordAt extracts the query token touching a column: the longest run of
// letters, digits, underscores and dots, so dotted paths and macro-call
// spellings come out whole. A column on or just after a '+'/'-' run
// yields the run instead, for anonymous references. start is the column
// the word begins at; a miss returns "".
func WordAt(line string, col int) (word string, start int) {
	if col < 0 || col > len(line) {
		return "", 0
	}
	at := func(i int) byte {
		if i < 0 || i >= len(line) {
			return 0
		}
		return line[i]
	}
	c := at(col)
	if !isWordByte(c) && !isAnonByte(c) {
		// a cursor sitting just past the word still hits it
		col--
		c = at(col)
		if !isWordByte(c) && !isAnonByte(c) {
			return "", 0
		}
	}
	if isAnonByte(c) {
		s := col
		for s > 0 && line[s-1] == c {
			s--
		}
		e := col + 1
		for e < len(line) && line[e] == c {
			e++
		}
		return line[s:e], s
	}
	s := col
	for s > 0 && isWordByte(line[s-1]) {
		s--
	}
	e := col + 1
	for e < len(line) && isWordByte(line[e]) {
		e++
	}
	return line[s:e], s
}

func isWordByte(c byte) bool {
	return c == '_' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isAnonByte(c byte) bool {
	return c == '+' || c == '-'
}
