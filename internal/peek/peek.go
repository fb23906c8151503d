// Package peek prints the first N lines of every non-ignored file under a
// project root, for quickly eyeballing an unfamiliar codebase.
package peek

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/repoaudit/internal/display"
	"github.com/harrison/repoaudit/internal/ignore"
	"github.com/harrison/repoaudit/internal/scanner"
)

// Files peeks into every non-ignored file under root, printing the first
// numLines lines of each. It returns the number of files processed.
// Unreadable files produce a warning and are skipped.
func Files(root string, numLines int, rules ignore.Rules, out io.Writer) (int, error) {
	result, err := scanner.Scan(root, rules)
	if err != nil {
		return 0, err
	}

	files := make([]string, 0, len(result.Paths))
	for p := range result.Paths {
		if !strings.HasSuffix(p, "/") {
			files = append(files, p)
		}
	}
	sort.Strings(files)

	count := 0
	for _, rel := range files {
		if err := File(filepath.Join(root, filepath.FromSlash(rel)), rel, numLines, out); err != nil {
			display.Warning{
				Title:   "Could not read file",
				Message: err.Error(),
				Files:   []string{rel},
			}.Display(out)
			continue
		}
		count++
	}

	fmt.Fprintf(out, "\nProcessed %d files.\n", count)
	return count, nil
}

// File prints the first numLines lines of the file at path, labeled with its
// relative path. A file shorter than numLines is marked with [EOF].
func File(path, rel string, numLines int, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(out, "\n--- Peeking into: %s (%d lines) ---\n", rel, numLines)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	read := 0
	for read < numLines && sc.Scan() {
		fmt.Fprintln(out, sc.Text())
		read++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if read > 0 && read < numLines {
		fmt.Fprintln(out, "[EOF]")
	}
	fmt.Fprintln(out, strings.Repeat("-", len(rel)+25))
	return nil
}
