package fsops

import (
	"testing"
)

func TestMemReadWriteRoundTrip(t *testing.T) {
	fsys := NewMem()
	if err := fsys.WriteFile("dir/file.txt", []byte("payload"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := fsys.ReadFile("dir/file.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("expected payload, got %q", data)
	}
}

func TestFileExists(t *testing.T) {
	fsys := NewMem()
	if FileExists(fsys, "missing.txt") {
		t.Fatalf("expected missing file to not exist")
	}
	if err := fsys.WriteFile("present.txt", nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !FileExists(fsys, "present.txt") {
		t.Fatalf("expected file to exist")
	}
}

func TestEnsureParentDir(t *testing.T) {
	fsys := NewMem()
	if err := EnsureParentDir(fsys, "a/b/c/file.txt"); err != nil {
		t.Fatalf("EnsureParentDir: %v", err)
	}
	if err := fsys.WriteFile("a/b/c/file.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile after EnsureParentDir: %v", err)
	}
	info, err := fsys.Stat("a/b/c")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected a/b/c to be a directory")
	}
}
