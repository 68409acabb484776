package index

import (
	"regexp"
	"strings"

	"tassls/internal/asm"
)

// EventKind classifies what a line turned out to be.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventInclude
	EventCloseScope
	EventOpenScope
	EventCodeLabel
	EventLocalSymbol
	EventAnonLabels
	EventDataLabel
	EventMacroLabel
	EventAssign
)

func (k EventKind) String() string {
	switch k {
	case EventInclude:
		return "include"
	case EventCloseScope:
		return "close-scope"
	case EventOpenScope:
		return "open-scope"
	case EventCodeLabel:
		return "code-label"
	case EventLocalSymbol:
		return "local-symbol"
	case EventAnonLabels:
		return "anon-labels"
	case EventDataLabel:
		return "data-label"
	case EventMacroLabel:
		return "macro-label"
	case EventAssign:
		return "assign"
	}
	return "none"
}

// LineEvent is the structured result of classifying one line of code
// (comment already stripped).
type LineEvent struct {
	Kind      EventKind
	Name      string // label/symbol as spelled in the source
	NameCol   int
	Directive string // directive spelling, lower-case, without the dot
	Args      string // text following the directive
	Value     string // literal value text of an assignment
	Include   string // include target as written
	AnonChar  byte
	AnonCount int
}

// Matcher classifies one line shape. Matchers are tried in the fixed order
// of the Matchers list; the first match wins.
type Matcher struct {
	Name  string
	Match func(code string) (LineEvent, bool)
}

// Matchers is the classification order of the indexer, by decreasing
// structural significance: include, scope-closing, scope-opening, plain
// code label, local symbol, anonymous labels, data-directive label,
// macro-invocation label, constant assignment.
var Matchers = []Matcher{
	{Name: "include", Match: matchInclude},
	{Name: "close-scope", Match: matchCloseScope},
	{Name: "open-scope", Match: matchOpenScope},
	{Name: "code-label", Match: matchCodeLabel},
	{Name: "local-symbol", Match: matchLocalSymbol},
	{Name: "anon-labels", Match: matchAnonLabels},
	{Name: "data-label", Match: matchDataLabel},
	{Name: "macro-label", Match: matchMacroLabel},
	{Name: "assign", Match: matchAssign},
}

// MatchLine runs the matchers in order and returns the first event.
func MatchLine(code string) (LineEvent, bool) {
	for _, m := range Matchers {
		if ev, ok := m.Match(code); ok {
			return ev, true
		}
	}
	return LineEvent{}, false
}

var (
	includeRe = regexp.MustCompile(`(?i)^\s*\.include\s+(?:"((?:[^"]|"")*)"|'((?:[^']|'')*)')`)

	closeScopeRe = regexp.MustCompile(`(?i)^\s*(?:[a-z_]\w*\s+)?\.(` +
		strings.Join(asm.ScopedCloserNames(), "|") + `)\b`)

	openNamedRe = regexp.MustCompile(`(?i)^([a-z_]\w*)\s+\.(` +
		strings.Join(asm.ScopedOpenerNames(), "|") + `)\b[ \t]*(.*)$`)

	openAnonRe = regexp.MustCompile(`(?i)^\s*\.(` +
		strings.Join(asm.ScopedOpenerNames(), "|") + `)\b[ \t]*(.*)$`)

	codeLabelRe = regexp.MustCompile(`^([A-Za-z]\w*):?[ \t]*(.*)$`)

	localSymRe = regexp.MustCompile(`^[ \t]*(_\w+)`)

	anonRe = regexp.MustCompile(`^(\++|-+)([ \t].*)?$`)

	labelDirectiveRe = regexp.MustCompile(`(?i)^([a-z]\w*):?[ \t]+\.([a-z]\w*)\b[ \t]*(.*)$`)

	assignRe = regexp.MustCompile(`^[ \t]*([A-Za-z_]\w*)[ \t]*:?=[ \t]*(.+?)[ \t]*$`)
)

func matchInclude(code string) (LineEvent, bool) {
	m := includeRe.FindStringSubmatch(code)
	if m == nil {
		return LineEvent{}, false
	}
	target := m[1]
	quote := `"`
	if m[1] == "" && m[2] != "" {
		target = m[2]
		quote = `'`
	}
	target = strings.ReplaceAll(target, quote+quote, quote)
	if target == "" {
		return LineEvent{}, false
	}
	return LineEvent{Kind: EventInclude, Include: target}, true
}

func matchCloseScope(code string) (LineEvent, bool) {
	m := closeScopeRe.FindStringSubmatch(code)
	if m == nil {
		return LineEvent{}, false
	}
	return LineEvent{Kind: EventCloseScope, Directive: strings.ToLower(m[1])}, true
}

func matchOpenScope(code string) (LineEvent, bool) {
	if m := openNamedRe.FindStringSubmatchIndex(code); m != nil {
		return LineEvent{
			Kind:      EventOpenScope,
			Name:      code[m[2]:m[3]],
			NameCol:   m[2],
			Directive: strings.ToLower(code[m[4]:m[5]]),
			Args:      strings.TrimSpace(code[m[6]:m[7]]),
		}, true
	}
	if m := openAnonRe.FindStringSubmatch(code); m != nil {
		return LineEvent{
			Kind:      EventOpenScope,
			Directive: strings.ToLower(m[1]),
			Args:      strings.TrimSpace(m[2]),
		}, true
	}
	return LineEvent{}, false
}

// matchCodeLabel accepts "name", "name:" and "name <opcode> ...". A name
// followed by anything other than a recognized mnemonic is left for the
// later matchers.
func matchCodeLabel(code string) (LineEvent, bool) {
	m := codeLabelRe.FindStringSubmatch(code)
	if m == nil {
		return LineEvent{}, false
	}
	if asm.IsOpcode(m[1]) {
		// an unindented instruction, not a label; mnemonics are reserved
		return LineEvent{}, false
	}
	rest := strings.TrimSpace(m[2])
	if rest != "" {
		op := rest
		if i := strings.IndexAny(op, " \t"); i >= 0 {
			op = op[:i]
		}
		if !asm.IsOpcode(op) {
			return LineEvent{}, false
		}
	}
	return LineEvent{Kind: EventCodeLabel, Name: m[1], NameCol: 0, Args: rest}, true
}

// matchLocalSymbol accepts a leading-underscore name at any indentation,
// terminated by ':', '=', ':=', whitespace or end of line. An '='/':='
// terminator captures the assigned value text.
func matchLocalSymbol(code string) (LineEvent, bool) {
	m := localSymRe.FindStringSubmatchIndex(code)
	if m == nil {
		return LineEvent{}, false
	}
	name := code[m[2]:m[3]]
	rest := code[m[3]:]
	ev := LineEvent{Kind: EventLocalSymbol, Name: name, NameCol: m[2]}
	trimmed := strings.TrimLeft(rest, " \t")
	switch {
	case rest == "":
		return ev, true
	case strings.HasPrefix(trimmed, ":="):
		ev.Value = strings.TrimSpace(trimmed[2:])
		return ev, true
	case strings.HasPrefix(trimmed, "="):
		ev.Value = strings.TrimSpace(trimmed[1:])
		return ev, true
	case strings.HasPrefix(rest, ":"), strings.HasPrefix(rest, " "), strings.HasPrefix(rest, "\t"):
		return ev, true
	}
	return LineEvent{}, false
}

// matchAnonLabels accepts a run of '+' or '-' at the start of the line.
// Mixed runs are invalid and rejected.
func matchAnonLabels(code string) (LineEvent, bool) {
	m := anonRe.FindStringSubmatch(code)
	if m == nil {
		return LineEvent{}, false
	}
	run := m[1]
	return LineEvent{
		Kind:      EventAnonLabels,
		Name:      run,
		NameCol:   0,
		AnonChar:  run[0],
		AnonCount: len(run),
		Args:      strings.TrimSpace(m[2]),
	}, true
}

func matchDataLabel(code string) (LineEvent, bool) {
	m := labelDirectiveRe.FindStringSubmatch(code)
	if m == nil || !asm.IsDataDirective(m[2]) {
		return LineEvent{}, false
	}
	return LineEvent{
		Kind:      EventDataLabel,
		Name:      m[1],
		NameCol:   0,
		Directive: strings.ToLower(m[2]),
		Args:      strings.TrimSpace(m[3]),
	}, true
}

// matchMacroLabel accepts "name .something args". A known built-in
// directive still defines the label but records no macro use; anything
// unknown is treated as a macro invocation producing the label.
func matchMacroLabel(code string) (LineEvent, bool) {
	m := labelDirectiveRe.FindStringSubmatch(code)
	if m == nil {
		return LineEvent{}, false
	}
	if asm.IsKnownDirective(m[2]) {
		return LineEvent{Kind: EventCodeLabel, Name: m[1], NameCol: 0, Args: strings.TrimSpace(m[3])}, true
	}
	return LineEvent{
		Kind:      EventMacroLabel,
		Name:      m[1],
		NameCol:   0,
		Directive: strings.ToLower(m[2]),
		Args:      strings.TrimSpace(m[3]),
	}, true
}

func matchAssign(code string) (LineEvent, bool) {
	m := assignRe.FindStringSubmatchIndex(code)
	if m == nil {
		return LineEvent{}, false
	}
	return LineEvent{
		Kind:    EventAssign,
		Name:    code[m[2]:m[3]],
		NameCol: m[2],
		Value:   code[m[4]:m[5]],
	}, true
}
