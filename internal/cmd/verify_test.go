package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand runs the root command with args and returns captured output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCommand()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeProject creates a small project tree plus a structure.md documenting
// the given diagram.
func writeProject(t *testing.T, files []string, diagram string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		full := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	doc := filepath.Join(dir, "structure.md")
	content := "# Project Structure\n\n```\n" + diagram + "```\n"
	if err := os.WriteFile(doc, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, doc
}

func TestVerifyCommand_InSync(t *testing.T) {
	dir, doc := writeProject(t,
		[]string{"src/utils.ts", "src/components/Button.tsx"},
		"src/\n  components/\n    Button.tsx\n  utils.ts\n",
	)

	out, err := executeCommand(t, "verify", "--root", dir, "--doc", doc)
	if err != nil {
		t.Fatalf("verify failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "matches structure.md") {
		t.Errorf("expected success message:\n%s", out)
	}
}

func TestVerifyCommand_Mismatch(t *testing.T) {
	dir, doc := writeProject(t,
		[]string{"src/utils.ts", "src/extra.ts"},
		"src/\n  utils.ts\n  stale.ts\n",
	)

	out, err := executeCommand(t, "verify", "--root", dir, "--doc", doc)
	if err != nil {
		t.Fatalf("mismatch must not be a command error, got: %v", err)
	}
	if !strings.Contains(out, "MISSING in structure.md") || !strings.Contains(out, "src/extra.ts") {
		t.Errorf("expected undocumented list with src/extra.ts:\n%s", out)
	}
	if !strings.Contains(out, "NOT FOUND in project") || !strings.Contains(out, "src/stale.ts") {
		t.Errorf("expected stale list with src/stale.ts:\n%s", out)
	}
}

func TestVerifyCommand_MissingDoc(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, "verify", "--root", dir, "--doc", filepath.Join(dir, "structure.md"))
	if err == nil {
		t.Fatal("expected error for missing documentation file")
	}
}

func TestVerifyCommand_NoCodeBlock(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "structure.md")
	if err := os.WriteFile(doc, []byte("# Structure\n\nNo diagram.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := executeCommand(t, "verify", "--root", dir, "--doc", doc)
	if err == nil || !strings.Contains(err.Error(), "no fenced code block") {
		t.Fatalf("expected missing code block error, got: %v", err)
	}
}

func TestVerifyCommand_IgnoredEntriesExcluded(t *testing.T) {
	dir, doc := writeProject(t,
		[]string{"src/app.ts", "node_modules/react/index.js", "assets/logo.png"},
		"src/\n  app.ts\nassets/\n",
	)

	out, err := executeCommand(t, "verify", "--root", dir, "--doc", doc)
	if err != nil {
		t.Fatalf("verify failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "matches structure.md") {
		t.Errorf("ignored entries should not cause mismatches:\n%s", out)
	}
}
