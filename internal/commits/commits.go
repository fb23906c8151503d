// Package commits cross-references commit hashes flagged as noteworthy in a
// review file (potential.md) against the detailed push log (pushes.md),
// extracting the matching log sections.
package commits

import (
	"regexp"
	"strings"
)

// keywords identify lines in the review file whose commits are worth pulling
// out of the push log.
var keywords = []string{
	"Medium probability",
	"High probability",
	"Very High probability",
}

// hashRe matches a backticked 7-character short hash.
var hashRe = regexp.MustCompile("`([a-f0-9]{7})`")

// sectionDelimiter separates entries in the push log.
const sectionDelimiter = "\n---\n"

// FlaggedHashes returns the set of short hashes on keyword-flagged lines of
// the review file content.
func FlaggedHashes(reviewContent string) map[string]struct{} {
	hashes := make(map[string]struct{})
	for _, line := range strings.Split(reviewContent, "\n") {
		flagged := false
		for _, kw := range keywords {
			if strings.Contains(line, kw) {
				flagged = true
				break
			}
		}
		if !flagged {
			continue
		}
		if m := hashRe.FindStringSubmatch(line); m != nil {
			hashes[m[1]] = struct{}{}
		}
	}
	return hashes
}

// MatchSections returns the sections of the push log (separated by "---"
// lines) that mention any of the given backticked hashes, in log order.
func MatchSections(logContent string, hashes map[string]struct{}) []string {
	var matched []string
	for _, section := range strings.Split(logContent, sectionDelimiter) {
		for hash := range hashes {
			if strings.Contains(section, "`"+hash+"`") {
				matched = append(matched, strings.TrimSpace(section))
				break
			}
		}
	}
	return matched
}

// Extract runs the full cross-reference: flagged hashes from the review
// content, then their sections from the log content, joined back with the
// section delimiter. The second return reports whether any hash was flagged
// at all (as opposed to flagged but unmatched).
func Extract(reviewContent, logContent string) (string, bool) {
	hashes := FlaggedHashes(reviewContent)
	if len(hashes) == 0 {
		return "", false
	}
	sections := MatchSections(logContent, hashes)
	return strings.Join(sections, sectionDelimiter), true
}
