// Package ui renders diagnostics for terminals: one headline per
// finding, the offending source line, and a caret aligned under the
// reported span. Styling is lipgloss; caret alignment is computed with
// display widths so wide runes and tabs do not skew it.
package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tassls/internal/diag"
	"tassls/internal/source"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	posStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Renderer prints diagnostics in source order. Items are expected
// pre-sorted (diag.Bag.Sort).
type Renderer struct {
	// Color toggles styling; off produces plain text for pipes.
	Color bool
	// Line fetches a source line for context. nil skips context lines.
	Line func(doc string, line int) (string, bool)
}

// Render writes every diagnostic with its context and notes.
func (r Renderer) Render(w io.Writer, items []diag.Diagnostic) {
	for i := range items {
		r.renderOne(w, &items[i])
	}
}

func (r Renderer) renderOne(w io.Writer, d *diag.Diagnostic) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		r.paint(posStyle, r.position(d.Doc, int(d.Primary.Start.Line), int(d.Primary.Start.Col))),
		r.severity(d.Severity),
		r.paint(codeStyle, d.Code.String()),
		d.Message)
	r.context(w, d.Doc, d.Primary)
	for _, n := range d.Notes {
		fmt.Fprintf(w, "  %s %s (%s)\n",
			r.paint(noteStyle, "note:"), n.Msg,
			r.position(n.Doc, int(n.Span.Start.Line), int(n.Span.Start.Col)))
	}
}

// context prints the offending line and a caret row underneath it.
// Multi-line spans underline from the start column to the end of the
// first line.
func (r Renderer) context(w io.Writer, doc string, span source.Span) {
	if r.Line == nil {
		return
	}
	lineNo := int(span.Start.Line)
	line, ok := r.Line(doc, lineNo)
	if !ok {
		return
	}
	startCol := int(span.Start.Col)
	endCol := len(line)
	if span.End.Line == span.Start.Line {
		endCol = int(span.End.Col)
	}
	fmt.Fprintf(w, "    %s\n", expandTabs(line))
	fmt.Fprintf(w, "    %s\n", r.paint(caretStyle, caretRow(line, startCol, endCol)))
}

func (r Renderer) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return r.paint(errorStyle, "error")
	case diag.SevWarning:
		return r.paint(warningStyle, "warning")
	}
	return r.paint(infoStyle, "info")
}

func (r Renderer) position(doc string, line, col int) string {
	return fmt.Sprintf("%s:%d:%d", filepath.Base(doc), line+1, col+1)
}

func (r Renderer) paint(st lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return st.Render(s)
}

func caretRow(line string, startCol, endCol int) string {
	if startCol < 0 {
		startCol = 0
	}
	if startCol > len(line) {
		startCol = len(line)
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}
	if endCol > len(line) {
		endCol = len(line)
		if endCol <= startCol {
			endCol = startCol + 1
		}
	}
	pad := runewidth.StringWidth(expandTabs(line[:startCol]))
	width := runewidth.StringWidth(line[startCol:min(endCol, len(line))])
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
