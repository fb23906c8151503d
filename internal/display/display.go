// Package display provides terminal output helpers for the repoaudit
// commands: per-file warnings for unreadable files and a progress indicator
// for multi-file operations.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message.
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for _, f := range w.Files {
			b.WriteString("      - ")
			b.WriteString(f)
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, color.YellowString("%s", b.String()))
}

// ProgressIndicator manages multi-step progress display.
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
}

// NewProgressIndicator creates a progress indicator for total items.
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{writer: w, total: total}
}

// Step displays progress for the current item: [N/Total] name.
func (p *ProgressIndicator) Step(name string) {
	p.current++
	fmt.Fprintf(p.writer, "%s\n", color.CyanString("  [%d/%d] %s", p.current, p.total, name))
}

// Complete displays a green success message.
func (p *ProgressIndicator) Complete(message string) {
	fmt.Fprintf(p.writer, "%s %s\n", color.GreenString("✓"), message)
}
