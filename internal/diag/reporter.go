package diag

import "tassls/internal/source"

// Reporter is the minimal contract the analysis passes emit through.
// Implementations: BagReporter (collects into a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, doc string, primary source.Span, msg string, notes []Note)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, doc string, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Doc:      doc,
		Primary:  primary,
		Message:  msg,
		Notes:    notes,
	})
}

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, string, source.Span, string, []Note) {}

// Report emits a diagnostic with its code's default severity.
func Report(r Reporter, code Code, doc string, primary source.Span, msg string, notes ...Note) {
	if r == nil {
		return
	}
	r.Report(code, code.DefaultSeverity(), doc, primary, msg, notes)
}
