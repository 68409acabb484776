package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"tassls/internal/asm"
	"tassls/internal/diag"
	"tassls/internal/index"
	"tassls/internal/resolve"
	"tassls/internal/scan"
	"tassls/internal/source"
)

var (
	// macroCallRe finds ".name" uses not glued to an identifier or a
	// dotted path, so "table.len" and "1.5" never read as macro calls.
	macroCallRe = regexp.MustCompile(`(?:^|[^\w.])\.([A-Za-z_]\w*)`)

	// identTokRe matches a (possibly dotted) identifier token.
	identTokRe = regexp.MustCompile(`[A-Za-z_]\w*(?:\.\w+)*`)

	anonHeadRe = regexp.MustCompile(`^(?:\++|-+)`)
)

// operand is the value portion of an instruction or data-directive line.
// blank has string literals blanked with offsets preserved; raw keeps
// them for value tokenization.
type operand struct {
	start int // column where the operand begins
	blank string
	raw   string
	data  bool // data-directive operand, not an opcode one
}

// scanReferences runs the per-line reference checks: macro calls,
// operand identifiers, operator adjacency in data value lists, and
// anonymous references at the start of opcode operands.
//
// The scanner is approximate; everything it cannot prove defined is a
// warning, never an error.
func scanReferences(store resolve.Store, idx *index.DocumentIndex, r diag.Reporter) {
	for n := 0; n < idx.LineCount(); n++ {
		line := idx.Line(n)
		if scan.IsBlank(line) {
			continue
		}
		code, _ := scan.SplitComment(line)
		blanked := scan.BlankStrings(code)

		scanMacroCalls(store, idx, n, blanked, r)

		op, ok := operandOf(code, blanked)
		if !ok {
			continue
		}
		if op.data {
			checkOperators(idx, n, op, r)
		} else {
			checkAnonRef(store, idx, n, op, r)
		}
		scanIdentifiers(store, idx, n, op, r)
	}
}

// operandOf parses the head of a code line (optional label or anonymous
// run, then an opcode or data directive) and returns the operand region.
// Lines headed by anything else carry no scannable operand: assignment
// values, macro-call arguments and directive parameters are not checked.
func operandOf(code, blanked string) (operand, bool) {
	i := 0
	if len(blanked) > 0 {
		switch c := blanked[0]; {
		case c == '+' || c == '-':
			for i < len(blanked) && blanked[i] == c {
				i++
			}
		case isIdentStart(c):
			e := identEnd(blanked, 0)
			if asm.IsOpcode(blanked[:e]) {
				// unindented instruction, no label
				return operandAfter(code, blanked, e, false)
			}
			i = e
			if i < len(blanked) && blanked[i] == ':' {
				i++
			}
		}
	}
	i = skipSpace(blanked, i)
	if i >= len(blanked) {
		return operand{}, false
	}
	if blanked[i] == '.' {
		e := identEnd(blanked, i+1)
		if e == i+1 || !asm.IsDataDirective(blanked[i+1:e]) {
			return operand{}, false
		}
		return operandAfter(code, blanked, e, true)
	}
	e := identEnd(blanked, i)
	if e == i || !asm.IsOpcode(blanked[i:e]) {
		return operand{}, false
	}
	return operandAfter(code, blanked, e, false)
}

func operandAfter(code, blanked string, from int, data bool) (operand, bool) {
	k := skipSpace(blanked, from)
	if k >= len(blanked) || strings.TrimSpace(code[k:]) == "" {
		return operand{}, false
	}
	return operand{
		start: k,
		blank: strings.TrimRight(blanked[k:], " \t\r"),
		raw:   strings.TrimRight(code[k:], " \t\r"),
		data:  data,
	}, true
}

// scanMacroCalls flags ".name" uses that are neither a built-in
// directive nor resolvable to a definition.
func scanMacroCalls(store resolve.Store, idx *index.DocumentIndex, n int, blanked string, r diag.Reporter) {
	for _, m := range macroCallRe.FindAllStringSubmatchIndex(blanked, -1) {
		s, e := m[2], m[3]
		name := blanked[s:e]
		if asm.IsKnownDirective(name) {
			continue
		}
		if _, ok := resolve.FindSymbol(store, name, idx.Doc, n); ok {
			continue
		}
		diag.Report(r, diag.UndefinedMacro, idx.Doc,
			source.LineSpan(n, s-1, e),
			fmt.Sprintf("undefined macro '.%s'", name))
	}
}

// scanIdentifiers resolves every identifier token of the operand and
// warns on the ones nothing defines. Hex digits after '$', built-ins,
// mnemonics and in-scope parameters are exempt; dotted tokens are also
// accepted when the parent is a parameter or a macro-produced label
// whose macro defines the suffix.
func scanIdentifiers(store resolve.Store, idx *index.DocumentIndex, n int, op operand, r diag.Reporter) {
	for _, m := range identTokRe.FindAllStringIndex(op.blank, -1) {
		s, e := m[0], m[1]
		if s > 0 {
			if p := op.blank[s-1]; p == '$' || p == '.' || isIdentChar(p) {
				continue
			}
		}
		tok := op.blank[s:e]
		parent, suffix := tok, ""
		if cut := strings.IndexByte(tok, '.'); cut >= 0 {
			parent, suffix = tok[:cut], tok[cut+1:]
		}
		if suffix == "" {
			if asm.IsOpcode(tok) || asm.IsBuiltin(tok) {
				continue
			}
			if resolve.IsParameter(store, tok, idx.Doc, n) {
				continue
			}
		} else {
			if resolve.IsParameter(store, parent, idx.Doc, n) {
				continue
			}
			if macroGenerated(store, parent, suffix) {
				continue
			}
		}
		if _, ok := resolve.FindSymbol(store, tok, idx.Doc, n); ok {
			continue
		}
		col := op.start + s
		diag.Report(r, diag.UndefinedSymbol, idx.Doc,
			source.LineSpan(n, col, col+len(tok)),
			fmt.Sprintf("undefined symbol '%s'", tok))
	}
}

// macroGenerated reports whether parent.suffix refers to a sub-label a
// macro invocation produced: parent was defined by invoking macro X and
// X's body defines suffix.
func macroGenerated(store resolve.Store, parent, suffix string) bool {
	pn := index.Normalize(parent, store.CaseSensitive())
	sn := index.Normalize(suffix, store.CaseSensitive())
	var mac string
	for _, doc := range store.Docs() {
		d := store.Get(doc)
		if d == nil {
			continue
		}
		if m, ok := d.LabelMacro[pn]; ok {
			mac = m
			break
		}
	}
	if mac == "" {
		return false
	}
	for _, doc := range store.Docs() {
		d := store.Get(doc)
		if d == nil {
			continue
		}
		for _, sub := range d.MacroSubLabels[mac] {
			if sub == sn {
				return true
			}
		}
	}
	return false
}

// checkAnonRef treats a '+'/'-' run at the very start of an opcode
// operand, not glued to anything alphanumeric, as an anonymous-label
// reference and warns when the distance search finds no target. Data
// directives never get this check; '+' and '-' there are arithmetic.
func checkAnonRef(store resolve.Store, idx *index.DocumentIndex, n int, op operand, r diag.Reporter) {
	run := anonHeadRe.FindString(op.blank)
	if run == "" {
		return
	}
	if len(run) < len(op.blank) && isIdentChar(op.blank[len(run)]) {
		return
	}
	if _, ok := resolve.FindAnonymous(store, idx.Doc, n, run[0], len(run)); ok {
		return
	}
	dir := "after"
	if run[0] == '-' {
		dir = "before"
	}
	diag.Report(r, diag.UnresolvedAnon, idx.Doc,
		source.LineSpan(n, op.start, op.start+len(run)),
		fmt.Sprintf("no anonymous label '%s' %s this line", run, dir))
}

// checkOperators tokenizes a data-directive operand into values and
// operators and reports the first pair of adjacent values, the usual
// missing-comma typo. Strings count as values, so the raw text is
// walked here, not the blanked one.
func checkOperators(idx *index.DocumentIndex, n int, op operand, r diag.Reporter) {
	raw := op.raw
	prevValue := false
	value := func(s, e int) bool {
		if prevValue {
			diag.Report(r, diag.MissingOperator, idx.Doc,
				source.LineSpan(n, op.start+s, op.start+e),
				fmt.Sprintf("operator expected before '%s'", raw[s:e]))
			return true
		}
		prevValue = true
		return false
	}
	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '"' || c == '\'':
			j := endOfString(raw, i)
			if value(i, j) {
				return
			}
			i = j
		case isIdentStart(c) || (c >= '0' && c <= '9'):
			j := i
			for j < len(raw) && (isIdentChar(raw[j]) || raw[j] == '.') {
				j++
			}
			if value(i, j) {
				return
			}
			i = j
		case c == '$':
			j := i + 1
			for j < len(raw) && isHexDigit(raw[j]) {
				j++
			}
			if value(i, j) {
				return
			}
			i = j
		case c == '%' && !prevValue && i+1 < len(raw) && (raw[i+1] == '0' || raw[i+1] == '1'):
			j := i + 1
			for j < len(raw) && (raw[j] == '0' || raw[j] == '1') {
				j++
			}
			if value(i, j) {
				return
			}
			i = j
		case c == '(' || c == '[':
			prevValue = false
			i++
		case c == ')' || c == ']':
			prevValue = true
			i++
		default:
			// any other punctuation is an operator
			prevValue = false
			i++
		}
	}
}

// endOfString scans past a string literal starting at i, honoring
// doubled-delimiter escapes. Unterminated strings run to end of line.
func endOfString(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		if s[j] != q {
			continue
		}
		if j+1 < len(s) && s[j+1] == q {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func identEnd(s string, i int) int {
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	return i
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
