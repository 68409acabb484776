// Package asm holds the static tables of the assembly dialect: block and
// scope directives with their accepted closer spellings, data directives,
// opcode mnemonics and built-in names. Everything is keyed by lower-case
// spelling; directive names in source are case-insensitive regardless of the
// symbol case-sensitivity mode.
package asm

import "strings"

// Directive describes a block-introducing directive.
type Directive struct {
	Name           string   // opener spelling without the leading dot
	Closers        []string // accepted closer spellings without the dot
	Scoped         bool     // contributes a segment to the scope path when named
	Params         bool     // parses a trailing comma-separated parameter list
	Macro          bool     // body sub-labels are harvested for macro validation
	OptionalCloser bool     // reaching EOF unclosed is not an error
}

// Directives lists every block directive of the dialect. The scoped entries
// are the ones the indexer tracks on its scope stack; the rest participate
// only in block matching and folding.
var Directives = []Directive{
	{Name: "proc", Closers: []string{"pend", "endproc"}, Scoped: true},
	{Name: "block", Closers: []string{"bend", "endblock"}, Scoped: true},
	{Name: "macro", Closers: []string{"endm", "endmacro"}, Scoped: true, Params: true, Macro: true},
	{Name: "function", Closers: []string{"endf", "endfunction"}, Scoped: true, Params: true},
	{Name: "struct", Closers: []string{"ends", "endstruct"}, Scoped: true},
	{Name: "union", Closers: []string{"endu", "endunion"}, Scoped: true},
	{Name: "namespace", Closers: []string{"endn", "endnamespace"}, Scoped: true},

	{Name: "section", Closers: []string{"send", "endsection"}},
	{Name: "page", Closers: []string{"endp", "endpage"}},
	{Name: "logical", Closers: []string{"here", "endlogical"}, OptionalCloser: true},
	{Name: "if", Closers: []string{"fi", "endif"}},
	{Name: "for", Closers: []string{"next", "endfor"}},
	{Name: "rept", Closers: []string{"next", "endrept"}},
	{Name: "while", Closers: []string{"endwhile"}},
	{Name: "comment", Closers: []string{"endc"}, OptionalCloser: true},
}

// DataDirectives name the directives whose operands are a value list.
var DataDirectives = map[string]bool{
	"byte": true, "char": true, "word": true, "sint": true,
	"dword": true, "dint": true, "long": true, "lint": true,
	"addr": true, "rta": true, "text": true, "ptext": true,
	"shift": true, "shiftl": true, "null": true, "fill": true,
	"align": true, "binary": true, "dstruct": true, "dunion": true,
}

// MiscDirectives are built-in directives that never define a macro
// invocation even though they follow a label, e.g. "start .org $1000".
var MiscDirectives = map[string]bool{
	"include": true, "binclude": true, "org": true, "cpu": true, "enc": true,
	"cerror": true, "cwarn": true, "error": true, "warn": true, "end": true,
	"eor": true, "seed": true, "databank": true, "dpage": true, "option": true,
	"pron": true, "proff": true, "offs": true, "var": true, "al": true,
	"as": true, "xl": true, "xs": true, "assert": true, "check": true,
	"break": true, "continue": true, "case": true, "default": true,
	"elsif": true, "else": true, "ifne": true, "ifeq": true, "ifpl": true,
	"ifmi": true, "switch": true, "endswitch": true, "goto": true,
	"lbl": true, "elif": true,
}

var (
	openerByName   = map[string]*Directive{}
	openersByClose = map[string][]*Directive{}
	scopedNames    []string
	scopedClosers  []string
)

func init() {
	for i := range Directives {
		d := &Directives[i]
		openerByName[d.Name] = d
		for _, c := range d.Closers {
			openersByClose[c] = append(openersByClose[c], d)
		}
		if d.Scoped {
			scopedNames = append(scopedNames, d.Name)
			scopedClosers = append(scopedClosers, d.Closers...)
		}
	}
}

// Opener returns the directive opened by the given spelling (without dot).
func Opener(name string) (*Directive, bool) {
	d, ok := openerByName[strings.ToLower(name)]
	return d, ok
}

// ClosedBy returns the directives a closer spelling can close.
func ClosedBy(name string) []*Directive {
	return openersByClose[strings.ToLower(name)]
}

// IsCloser reports whether the spelling closes any block directive.
func IsCloser(name string) bool {
	return len(openersByClose[strings.ToLower(name)]) > 0
}

// Accepts reports whether closer is a valid closer spelling for d.
func (d *Directive) Accepts(closer string) bool {
	closer = strings.ToLower(closer)
	for _, c := range d.Closers {
		if c == closer {
			return true
		}
	}
	return false
}

// ScopedOpenerNames returns the opener spellings that contribute to the
// scope path, for building the indexer's line matchers.
func ScopedOpenerNames() []string { return scopedNames }

// ScopedCloserNames returns every closer spelling of the scoped directives.
func ScopedCloserNames() []string { return scopedClosers }

// IsDataDirective reports whether the spelling (without dot) is a data
// directive.
func IsDataDirective(name string) bool {
	return DataDirectives[strings.ToLower(name)]
}

// IsKnownDirective reports whether the spelling (without dot) is any
// built-in directive of the dialect: block opener, closer, data or misc.
func IsKnownDirective(name string) bool {
	name = strings.ToLower(name)
	if _, ok := openerByName[name]; ok {
		return true
	}
	if len(openersByClose[name]) > 0 {
		return true
	}
	return DataDirectives[name] || MiscDirectives[name]
}
