package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic_CreatesDirectories(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "match", "a-vs-b", "20231114", "index.html")

	if err := WriteFileAtomic(path, []byte("<html>ok</html>")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "<html>ok</html>" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFileAtomic_ReplacesExisting(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "index.html")

	if err := WriteFileAtomic(path, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("new")); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want new", data)
	}
}

func TestWriteFileAtomic_NoTempLeftovers(t *testing.T) {
	root := t.TempDir()
	if err := WriteFileAtomic(filepath.Join(root, "page.html"), []byte("x")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestClearDirs(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"home/2023-11-14.html", "match/a/20231114/index.html", "keep/index.html"} {
		if err := WriteFileAtomic(filepath.Join(root, p), []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	if err := ClearDirs(root, "home", "match", "channel"); err != nil {
		t.Fatalf("ClearDirs: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "home")); !os.IsNotExist(err) {
		t.Error("home/ should be removed")
	}
	if _, err := os.Stat(filepath.Join(root, "keep", "index.html")); err != nil {
		t.Error("keep/ should be untouched")
	}
}
