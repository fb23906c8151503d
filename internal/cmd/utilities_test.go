package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPeekCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.ts"), []byte("a\nb\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "peek", "--root", dir, "-n", "2")
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	if !strings.Contains(out, "Peeking into: app.ts (2 lines)") {
		t.Errorf("missing peek header:\n%s", out)
	}
	if strings.Contains(out, "\nc\n") {
		t.Errorf("printed beyond requested lines:\n%s", out)
	}
}

func TestPeekCommand_RejectsNonPositiveLines(t *testing.T) {
	if _, err := executeCommand(t, "peek", "--root", t.TempDir(), "-n", "0"); err == nil {
		t.Fatal("expected error for non-positive line count")
	}
}

func TestCommitsCommand(t *testing.T) {
	dir := t.TempDir()
	review := filepath.Join(dir, "potential.md")
	pushes := filepath.Join(dir, "pushes.md")

	if err := os.WriteFile(review, []byte("- `abc1234` High probability: auth change\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pushes, []byte("## Push 1\n\nCommit `abc1234` login rework.\n\n---\n\n## Push 2\n\nCommit `fff0000` noise.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "commits", "--review", review, "--log", pushes)
	if err != nil {
		t.Fatalf("commits failed: %v", err)
	}
	if !strings.Contains(out, "login rework") {
		t.Errorf("expected matching section:\n%s", out)
	}
	if strings.Contains(out, "noise") {
		t.Errorf("unmatched section leaked:\n%s", out)
	}
}

func TestCommitsCommand_NoFlagged(t *testing.T) {
	dir := t.TempDir()
	review := filepath.Join(dir, "potential.md")
	pushes := filepath.Join(dir, "pushes.md")
	if err := os.WriteFile(review, []byte("- `abc1234` Low probability\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pushes, []byte("## Push\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "commits", "--review", review, "--log", pushes)
	if err != nil {
		t.Fatalf("commits failed: %v", err)
	}
	if !strings.Contains(out, "No medium or high potential commits") {
		t.Errorf("expected no-flagged message:\n%s", out)
	}
}

func TestCommitsCommand_MissingFile(t *testing.T) {
	if _, err := executeCommand(t, "commits", "--review", filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Fatal("expected error for missing review file")
	}
}

func TestColorsCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Alert.tsx"), []byte(`<div className="text-red-600" />`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "colors", dir)
	if err != nil {
		t.Fatalf("colors failed: %v", err)
	}
	if !strings.Contains(out, "Alert.tsx:1:") {
		t.Errorf("expected match line:\n%s", out)
	}
	if !strings.Contains(out, "Total matches found: 1") {
		t.Errorf("expected total line:\n%s", out)
	}
}

func TestAuthDocCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "auth-files-documentation.md")

	out, err := executeCommand(t, "authdoc", "--root", dir, "--output", output)
	if err != nil {
		t.Fatalf("authdoc failed: %v", err)
	}
	if !strings.Contains(out, "Documentation has been saved to") {
		t.Errorf("missing completion message:\n%s", out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	doc := string(data)
	if !strings.Contains(doc, "# Authentication Files Documentation") {
		t.Errorf("missing document title:\n%s", doc[:min(len(doc), 200)])
	}
	// No project files exist, so every entry documents its read error.
	if !strings.Contains(doc, "Error reading file") {
		t.Error("expected read errors for missing auth files")
	}
}
