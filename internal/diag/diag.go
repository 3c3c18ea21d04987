// Package diag formats source-context diagnostics for the Lucent front-end.
// It is a pure formatting utility: whether parsing continues after a warning
// or stops after a fatal error is decided by the caller.
package diag

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Severity int

const (
	Warning Severity = iota
	Fatal
)

// Styles
var (
	dimStyle   = lipgloss.NewStyle().Faint(true)
	fatalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Diagnostic is one reported error or warning. Line is the 0-indexed source
// line; Column is the caret offset within it.
type Diagnostic struct {
	Message  string
	Line     int
	Column   int
	Severity Severity
}

// Error implements the error interface, so a fatal Diagnostic can travel as
// the error result of a parse.
func (d *Diagnostic) Error() string {
	return d.Message
}

// Render formats the diagnostic against the source, split into lines: the
// line before the error (dimmed, or a blank gutter on line 0), the error line
// itself, a caret line carrying the styled message, and the line after
// (dimmed, or a blank gutter at end of source).
func (d *Diagnostic) Render(lines []string) string {
	line := d.Line
	if line >= len(lines) {
		line = len(lines) - 1
	}
	if line < 0 {
		line = 0
	}

	gutter := strings.Repeat(" ", len(fmt.Sprint(line)))
	style := fatalStyle
	if d.Severity == Warning {
		style = warnStyle
	}

	var b strings.Builder
	if line > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d | %s", line-1, lines[line-1])))
	} else {
		b.WriteString(dimStyle.Render(gutter + " |"))
	}
	b.WriteByte('\n')

	b.WriteString(fmt.Sprintf("%d %s %s", line, dimStyle.Render("|"), lines[line]))
	b.WriteByte('\n')

	b.WriteString(fmt.Sprintf("%s %s %s^ %s",
		gutter,
		dimStyle.Render("|"),
		strings.Repeat(" ", d.Column),
		style.Render(d.Message)))
	b.WriteByte('\n')

	if line+1 < len(lines) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d | %s", line+1, lines[line+1])))
	} else {
		b.WriteString(dimStyle.Render(gutter + " |"))
	}
	b.WriteByte('\n')

	return b.String()
}
