package commits

import (
	"strings"
	"testing"
)

const review = `# Potential regressions

- ` + "`abc1234`" + ` Low probability: formatting only
- ` + "`def5678`" + ` High probability: touched auth flow
- ` + "`0a1b2c3`" + ` Very High probability: rewrote uploader
- no hash here, Medium probability mention
`

const pushLog = `## Push 1

Commit ` + "`abc1234`" + ` changed formatting.

---

## Push 2

Commit ` + "`def5678`" + ` reworked login.

---

## Push 3

Commit ` + "`0a1b2c3`" + ` replaced the uploader.
`

func TestFlaggedHashes(t *testing.T) {
	hashes := FlaggedHashes(review)

	if len(hashes) != 2 {
		t.Fatalf("expected 2 flagged hashes, got %d: %v", len(hashes), hashes)
	}
	for _, want := range []string{"def5678", "0a1b2c3"} {
		if _, ok := hashes[want]; !ok {
			t.Errorf("missing flagged hash %s", want)
		}
	}
	if _, ok := hashes["abc1234"]; ok {
		t.Error("low-probability hash should not be flagged")
	}
}

func TestMatchSections(t *testing.T) {
	sections := MatchSections(pushLog, map[string]struct{}{"def5678": {}})

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if !strings.Contains(sections[0], "reworked login") {
		t.Errorf("wrong section matched: %s", sections[0])
	}
}

func TestExtract(t *testing.T) {
	out, found := Extract(review, pushLog)
	if !found {
		t.Fatal("expected flagged hashes to be found")
	}
	if !strings.Contains(out, "reworked login") || !strings.Contains(out, "replaced the uploader") {
		t.Errorf("missing expected sections:\n%s", out)
	}
	if strings.Contains(out, "changed formatting") {
		t.Errorf("low-probability section leaked in:\n%s", out)
	}
}

func TestExtract_NoFlaggedCommits(t *testing.T) {
	_, found := Extract("- `abc1234` Low probability: nothing\n", pushLog)
	if found {
		t.Error("expected no flagged hashes")
	}
}

func TestExtract_FlaggedButUnmatched(t *testing.T) {
	out, found := Extract("- `9999999` High probability: mystery\n", pushLog)
	if !found {
		t.Fatal("hash was flagged, found should be true")
	}
	if out != "" {
		t.Errorf("expected no matched sections, got %q", out)
	}
}
