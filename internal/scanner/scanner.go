// Package scanner walks a project root and produces the set of relative
// paths that the structure documentation is expected to describe.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/harrison/repoaudit/internal/ignore"
)

// Result contains the outcome of a directory scan. Paths holds every
// surviving relative path, forward-slash normalized, with directories
// suffixed by "/". Errors collects non-fatal problems encountered while
// walking (unreadable subtrees are skipped, not fatal).
type Result struct {
	Paths  map[string]struct{}
	Errors []error
}

// Sorted returns the scanned paths as a sorted slice for deterministic output.
func (r *Result) Sorted() []string {
	out := make([]string, 0, len(r.Paths))
	for p := range r.Paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Scan recursively descends from root applying the ignore rules:
// ignored directories are pruned before descent, ignored file names and
// extensions are dropped, and files whose relative path matches an ignore
// pattern are dropped. The root itself is never emitted.
func Scan(root string, rules ignore.Rules) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	result := &Result{Paths: make(map[string]struct{})}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // best-effort: keep walking
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve %s: %w", path, err))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rules.Dir(d.Name()) {
				return filepath.SkipDir
			}
			result.Paths[rel+"/"] = struct{}{}
			return nil
		}

		if rules.File(d.Name()) || rules.Ext(d.Name()) || rules.Path(rel) {
			return nil
		}

		result.Paths[rel] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}
