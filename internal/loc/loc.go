// Package loc estimates lines of code across a project's source files and
// keeps an optional history of counts in a local sqlite database.
package loc

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options configures a line count.
type Options struct {
	// Extensions is the set of source extensions to include (with leading dot)
	Extensions map[string]struct{}
	// ExcludeDirs are directory names pruned before descent
	ExcludeDirs map[string]struct{}
	// ExcludeFiles are exact file names skipped
	ExcludeFiles map[string]struct{}
}

// Summary is the outcome of a count run.
type Summary struct {
	TotalLines int
	FileCount  int
	// Errors lists files that could not be read; counting continues past them
	Errors []error
}

// singleLineCommentMarkers is the simple heuristic used to avoid counting
// comment lines as code. Multi-line comments are not handled.
var singleLineCommentMarkers = []string{"#", "//"}

// DefaultOptions returns the built-in extension and exclusion sets for the
// web application codebase these utilities target. The extras slice adds
// extensions from configuration.
func DefaultOptions(extras []string) Options {
	exts := []string{
		".py", ".ts", ".tsx", ".js", ".jsx",
		".html", ".css", ".scss", ".less",
		".md", ".sql", ".sh", ".yml", ".yaml",
	}
	opts := Options{
		Extensions:   make(map[string]struct{}),
		ExcludeDirs:  make(map[string]struct{}),
		ExcludeFiles: make(map[string]struct{}),
	}
	for _, e := range append(exts, extras...) {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		opts.Extensions[strings.ToLower(e)] = struct{}{}
	}
	for _, d := range []string{
		".git", "node_modules", "public", "dist", "build", "__pycache__",
		".venv", "venv", ".vscode", ".idea", ".next", ".nuxt",
		"coverage", "cache", ".cache",
	} {
		opts.ExcludeDirs[d] = struct{}{}
	}
	for _, f := range []string{
		"bun.lockb", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
		".gitignore", ".env",
	} {
		opts.ExcludeFiles[f] = struct{}{}
	}
	return opts
}

// Count walks root and totals non-empty, non-comment lines across matching
// source files. Unreadable files are collected as errors and skipped.
func Count(root string, opts Options) (*Summary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	summary := &Summary{}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, excluded := opts.ExcludeDirs[d.Name()]; excluded {
				return filepath.SkipDir
			}
			return nil
		}

		if _, excluded := opts.ExcludeFiles[d.Name()]; excluded {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if _, included := opts.Extensions[ext]; !included {
			return nil
		}

		lines, err := countFile(path)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Errorf("error reading %s: %w", path, err))
			return nil
		}
		summary.TotalLines += lines
		summary.FileCount++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return summary, nil
}

// countFile counts the non-empty lines of one file that do not start with a
// single-line comment marker.
func countFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		comment := false
		for _, marker := range singleLineCommentMarkers {
			if strings.HasPrefix(line, marker) {
				comment = true
				break
			}
		}
		if !comment {
			count++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
