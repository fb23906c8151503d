package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/harrison/repoaudit/internal/ignore"
)

// writeTree creates files under dir; entries ending in "/" become directories.
func writeTree(t *testing.T, dir string, entries []string) {
	t.Helper()
	for _, e := range entries {
		full := filepath.Join(dir, filepath.FromSlash(e))
		if e[len(e)-1] == '/' {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("mkdir %s: %v", e, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir parent of %s: %v", e, err)
		}
		if err := os.WriteFile(full, []byte("x\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", e, err)
		}
	}
}

func TestScan_Basic(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{
		"src/utils.ts",
		"src/components/Button.tsx",
		"README.md",
	})

	result, err := Scan(dir, ignore.Default())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []string{
		"README.md",
		"src/",
		"src/components/",
		"src/components/Button.tsx",
		"src/utils.ts",
	}
	if got := result.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Scan returned %v, want %v", got, want)
	}
}

func TestScan_PrunesIgnoredDirs(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{
		"node_modules/react/index.js",
		".git/config",
		"src/app.ts",
	})

	result, err := Scan(dir, ignore.Default())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	for p := range result.Paths {
		if ignore.Default().HasIgnoredComponent(p) {
			t.Errorf("ignored directory component leaked into result: %q", p)
		}
	}
	if _, ok := result.Paths["node_modules/"]; ok {
		t.Error("ignored directory itself should not be emitted")
	}
	if _, ok := result.Paths["src/app.ts"]; !ok {
		t.Error("expected src/app.ts in result")
	}
}

func TestScan_IgnoredFilesExtensionsPatterns(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{
		"package-lock.json",
		"assets/logo.png",
		"assets/logo.SVG",
		"server/debug.log",
		"server/main.ts",
	})

	result, err := Scan(dir, ignore.Default())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	excluded := []string{"package-lock.json", "assets/logo.png", "assets/logo.SVG", "server/debug.log"}
	for _, p := range excluded {
		if _, ok := result.Paths[p]; ok {
			t.Errorf("expected %q to be excluded", p)
		}
	}
	if _, ok := result.Paths["server/main.ts"]; !ok {
		t.Error("expected server/main.ts in result")
	}
	// The directory containing only excluded files still appears.
	if _, ok := result.Paths["assets/"]; !ok {
		t.Error("expected assets/ in result")
	}
}

func TestScan_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"a/b/c.ts", "a/d.ts", "e.md"})

	first, err := Scan(dir, ignore.Default())
	if err != nil {
		t.Fatalf("first Scan failed: %v", err)
	}
	second, err := Scan(dir, ignore.Default())
	if err != nil {
		t.Fatalf("second Scan failed: %v", err)
	}
	if !reflect.DeepEqual(first.Sorted(), second.Sorted()) {
		t.Errorf("scans of unchanged tree differ: %v vs %v", first.Sorted(), second.Sorted())
	}
}

func TestScan_RootNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Scan(file, ignore.Default()); err == nil {
		t.Fatal("expected error scanning a file as root")
	}
	if _, err := Scan(filepath.Join(dir, "missing"), ignore.Default()); err == nil {
		t.Fatal("expected error scanning missing root")
	}
}
