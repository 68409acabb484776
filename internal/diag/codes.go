package diag

// Code is a stable identifier for a diagnostic category. Severities are
// fixed per code: structural and syntactic-local findings are errors,
// referential findings are warnings because the scanner is approximate.
type Code uint16

const (
	UnknownCode Code = 0

	// Structural
	DupLabel        Code = 1001
	UnmatchedCloser Code = 1002
	UnclosedBlock   Code = 1003

	// Syntactic-local
	MissingOperator Code = 2001

	// Referential
	UndefinedSymbol Code = 3001
	UndefinedMacro  Code = 3002
	UnresolvedAnon  Code = 3003
)

func (c Code) String() string {
	switch c {
	case DupLabel:
		return "dup-label"
	case UnmatchedCloser:
		return "unmatched-closer"
	case UnclosedBlock:
		return "unclosed-block"
	case MissingOperator:
		return "missing-operator"
	case UndefinedSymbol:
		return "undefined-symbol"
	case UndefinedMacro:
		return "undefined-macro"
	case UnresolvedAnon:
		return "unresolved-anon"
	}
	return "unknown"
}

// DefaultSeverity returns the fixed severity for a code.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case DupLabel, UnmatchedCloser, UnclosedBlock, MissingOperator:
		return SevError
	case UndefinedSymbol, UndefinedMacro, UnresolvedAnon:
		return SevWarning
	}
	return SevInfo
}
