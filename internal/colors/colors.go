// Package colors greps frontend source files for red color usages, both
// Tailwind utility classes and raw hex values.
package colors

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Match is one line containing a red color usage.
type Match struct {
	Path string // relative, forward-slash normalized
	Line int
	Text string
}

// patterns identify red color usages.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`bg-red-\d+`),
	regexp.MustCompile(`text-red-\d+`),
	regexp.MustCompile(`border-red-\d+`),
	regexp.MustCompile(`ring-red-\d+`),
	regexp.MustCompile(`#[Ff]{2}[0]{4}`), // #FF0000
	regexp.MustCompile(`#([Ff0]{3})`),    // #F00 and friends
}

// includeExts are the frontend source extensions worth scanning.
var includeExts = map[string]struct{}{
	".tsx": {}, ".ts": {}, ".jsx": {}, ".js": {},
	".css": {}, ".scss": {}, ".html": {},
}

// Find scans root for red color usages. node_modules subtrees are skipped;
// unreadable files are collected as errors and skipped.
func Find(root string) ([]Match, []error, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("search root %s does not exist: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("search root %s is not a directory", root)
	}

	var matches []Match
	var errs []error

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := includeExts[strings.ToLower(filepath.Ext(d.Name()))]; !ok {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		fileMatches, scanErr := scanFile(path, rel)
		if scanErr != nil {
			errs = append(errs, fmt.Errorf("error reading %s: %w", rel, scanErr))
			return nil
		}
		matches = append(matches, fileMatches...)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return matches, errs, nil
}

// scanFile collects at most one match per line, against all patterns.
func scanFile(path, rel string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []Match
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		for _, pat := range patterns {
			if pat.MatchString(line) {
				matches = append(matches, Match{
					Path: rel,
					Line: lineno,
					Text: strings.TrimRight(line, " \t"),
				})
				break // one match per line
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
