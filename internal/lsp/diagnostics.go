package lsp

import "tassls/internal/diag"

// ToDiagnostics converts analysis findings to their published wire form.
func ToDiagnostics(items []diag.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(items))
	for _, d := range items {
		out = append(out, Diagnostic{
			Range:    ToRange(d.Primary),
			Severity: wireSeverity(d.Severity),
			Code:     d.Code.String(),
			Source:   diag.SourceTag,
			Message:  d.Message,
		})
	}
	return out
}

func wireSeverity(s diag.Severity) int {
	switch s {
	case diag.SevError:
		return SeverityError
	case diag.SevWarning:
		return SeverityWarning
	}
	return SeverityInfo
}
