// Package structdoc parses and renders the ASCII tree diagrams kept inside
// structure.md's fenced code block. The parser reconstructs the set of
// relative paths a diagram encodes; the renderer is its inverse, used to
// regenerate a diagram from a scanned path set.
package structdoc

import (
	"path"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harrison/repoaudit/internal/ignore"
)

// nodeLine splits a diagram line into its decoration prefix (box-drawing
// glyphs and whitespace) and the node token, with any trailing inline
// comment stripped.
var nodeLine = regexp.MustCompile(`^([│├└─\s]*)(.*?)(?:\s*#.*)?$`)

type stackEntry struct {
	path   string
	indent int
}

// Parse extracts the first fenced code block from the documentation source
// and returns the set of relative paths its tree diagram encodes, filtered
// through the ignore rules. Directories carry a trailing slash.
func Parse(source []byte, rules ignore.Rules) (map[string]struct{}, error) {
	block, err := ExtractCodeBlock(source)
	if err != nil {
		return nil, err
	}
	return ParseTree(block, rules), nil
}

// ParseTree reconstructs the path set from the raw content of a tree-diagram
// code block. Hierarchy depth is the rune length of each line's decoration
// prefix; an explicit stack of (path, indent) pairs tracks the open
// ancestry. Lines with no node token are skipped, as are wildcard
// placeholders. A directory whose own name is an ignored directory name is
// never pushed onto the stack; every other directory is pushed even when its
// path is excluded from the result for another reason.
func ParseTree(block string, rules ignore.Rules) map[string]struct{} {
	paths := make(map[string]struct{})
	var stack []stackEntry

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "." {
			continue
		}

		m := nodeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		node := strings.TrimSpace(m[2])
		if node == "" {
			continue
		}
		// Wildcard placeholders (*.log etc.) are not literal paths.
		if strings.Contains(node, "*") {
			continue
		}

		indent := utf8.RuneCountInString(m[1])
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}

		current := node
		if len(stack) > 0 {
			current = stack[len(stack)-1].path + "/" + node
		}

		isDir := strings.HasSuffix(node, "/")
		clean := strings.TrimSuffix(current, "/")
		name := path.Base(clean)

		if isDir && !rules.Dir(name) {
			stack = append(stack, stackEntry{path: clean, indent: indent})
		}

		if rules.Dir(name) || rules.File(name) {
			continue
		}
		if !isDir && rules.Ext(name) {
			continue
		}
		if rules.HasIgnoredComponent(clean) {
			continue
		}

		if isDir {
			paths[clean+"/"] = struct{}{}
		} else {
			paths[clean] = struct{}{}
		}
	}

	return paths
}

// RenderTree serializes a path set into a two-space-indented tree diagram
// that ParseTree reproduces exactly. Entries are sorted, which places every
// parent directly before its descendants.
func RenderTree(paths []string) string {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(".\n")
	for _, p := range sorted {
		isDir := strings.HasSuffix(p, "/")
		trimmed := strings.TrimSuffix(p, "/")
		depth := strings.Count(trimmed, "/")

		name := path.Base(trimmed)
		if isDir {
			name += "/"
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}
