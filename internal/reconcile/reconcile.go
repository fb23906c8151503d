// Package reconcile diffs the scanned path set against the documented path
// set and formats the result as a user-facing report.
package reconcile

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

// Report holds the outcome of comparing the actual project structure with
// the documented one.
type Report struct {
	ActualCount     int
	DocumentedCount int

	// MissingInDoc are paths present on disk but absent from structure.md.
	MissingInDoc []string
	// MissingOnDisk are documented paths that do not exist in the project.
	MissingOnDisk []string
}

// Diff computes the two difference lists, sorted for deterministic output.
func Diff(actual, documented map[string]struct{}) *Report {
	report := &Report{
		ActualCount:     len(actual),
		DocumentedCount: len(documented),
	}

	for p := range actual {
		if _, ok := documented[p]; !ok {
			report.MissingInDoc = append(report.MissingInDoc, p)
		}
	}
	for p := range documented {
		if _, ok := actual[p]; !ok {
			report.MissingOnDisk = append(report.MissingOnDisk, p)
		}
	}

	sort.Strings(report.MissingInDoc)
	sort.Strings(report.MissingOnDisk)
	return report
}

// InSync reports whether the project and its documentation agree.
func (r *Report) InSync() bool {
	return len(r.MissingInDoc) == 0 && len(r.MissingOnDisk) == 0
}

// Write prints the report. Differences are communicated through the printed
// text only; callers terminate normally either way.
func (r *Report) Write(out io.Writer) {
	fmt.Fprintf(out, "Found %d files/folders for verification (after filtering).\n", r.ActualCount)
	fmt.Fprintf(out, "Found %d files/folders documented (after filtering ignores/wildcards/extensions).\n", r.DocumentedCount)

	if r.InSync() {
		fmt.Fprintf(out, "\n%s Project structure matches structure.md (ignoring specified extensions/files/dirs).\n", color.GreenString("✓"))
		return
	}

	if len(r.MissingInDoc) > 0 {
		fmt.Fprintf(out, "\n✗ Files/Folders found in project but MISSING in structure.md:\n")
		for _, p := range r.MissingInDoc {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}
	if len(r.MissingOnDisk) > 0 {
		fmt.Fprintf(out, "\n✗ Files/Folders documented in structure.md but NOT FOUND in project:\n")
		for _, p := range r.MissingOnDisk {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}
	fmt.Fprintf(out, "\nFound %d discrepancy(ies).\n", len(r.MissingInDoc)+len(r.MissingOnDisk))
}
