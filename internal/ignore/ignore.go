// Package ignore holds the fixed exclusion rules shared by the filesystem
// scanner and the tree-diagram parser. The rules are compiled into the
// program and immutable for the lifetime of a run, so both consumers can be
// tested independently against the same value.
package ignore

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Rules is an immutable set of exclusion rules. Use New or Default to
// construct one; the zero value excludes nothing.
type Rules struct {
	dirs     map[string]struct{}
	files    map[string]struct{}
	exts     map[string]struct{}
	patterns []*regexp.Regexp
}

// New compiles a rule set from its four categories. Extensions are
// normalized to a leading dot and lower case. Patterns are anchored at the
// start of the relative path; a pattern that fails to compile is an error.
func New(dirs, files, exts, patterns []string) (Rules, error) {
	r := Rules{
		dirs:  make(map[string]struct{}, len(dirs)),
		files: make(map[string]struct{}, len(files)),
		exts:  make(map[string]struct{}, len(exts)),
	}
	for _, d := range dirs {
		r.dirs[d] = struct{}{}
	}
	for _, f := range files {
		r.files[f] = struct{}{}
	}
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		r.exts[strings.ToLower(e)] = struct{}{}
	}
	for _, p := range patterns {
		re, err := regexp.Compile(`\A(?:` + p + `)`)
		if err != nil {
			return Rules{}, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, re)
	}
	return r, nil
}

// Default returns the rule set used by the structure tooling.
func Default() Rules {
	r, err := New(
		[]string{".git", "node_modules", ".vscode", ".idea", "__pycache__"},
		[]string{"structure.md", "bun.lockb", "package-lock.json", ".DS_Store"},
		[]string{".png", ".sql", ".svg", ".ico", ".lockb"},
		[]string{`.*\.pyc$`, `.*\.log$`},
	)
	if err != nil {
		panic(err) // built-in patterns, cannot fail
	}
	return r
}

// Dir reports whether name is an ignored directory name.
func (r Rules) Dir(name string) bool {
	_, ok := r.dirs[name]
	return ok
}

// File reports whether name is an ignored file name.
func (r Rules) File(name string) bool {
	_, ok := r.files[name]
	return ok
}

// Ext reports whether the file name carries an ignored extension.
// The comparison is case-insensitive and includes the leading dot.
func (r Rules) Ext(name string) bool {
	_, ok := r.exts[strings.ToLower(path.Ext(name))]
	return ok
}

// Path reports whether the forward-slash relative path matches any ignore
// pattern. Matching is root-anchored.
func (r Rules) Path(rel string) bool {
	for _, re := range r.patterns {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}

// HasIgnoredComponent reports whether any path component of rel is an
// ignored directory name. A trailing slash is tolerated.
func (r Rules) HasIgnoredComponent(rel string) bool {
	for _, part := range strings.Split(strings.Trim(rel, "/"), "/") {
		if r.Dir(part) {
			return true
		}
	}
	return false
}
