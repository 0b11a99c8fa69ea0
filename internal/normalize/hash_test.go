package normalize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Errorf("FileHash = %q, want %q", got, want)
	}
}

func TestFileHashMissing(t *testing.T) {
	if _, err := FileHash(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("FileHash should fail on a missing file")
	}
}
