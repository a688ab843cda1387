package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEditorOpenStripsCRAndSelectsSyntax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	if err := os.WriteFile(path, []byte("package main\r\nfunc main() {}\r\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newEditorConfig(24, 80)
	if err := editorOpen(e, path); err != nil {
		t.Fatalf("editorOpen: %v", err)
	}

	if e.numRows() != 2 {
		t.Fatalf("numRows = %d, want 2", e.numRows())
	}
	if got := string(e.row(0).chars); got != "package main" {
		t.Errorf("row 0 = %q, want %q", got, "package main")
	}
	if e.syntax == nil || e.syntax.filetype != "go" {
		t.Errorf("syntax = %v, want go", e.syntax)
	}
	if e.dirty != 0 {
		t.Errorf("dirty = %d, want 0 right after open", e.dirty)
	}
}

func TestEditorSaveWritesExactByteCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	e := newEditorConfig(24, 80)
	e.filename = path
	e.insertRow(0, []byte("abcd"))
	e.insertRow(1, []byte("ef"))
	e.dirty = 2

	editorSave(e, nil)

	if e.dirty != 0 {
		t.Errorf("dirty = %d, want 0 after save", e.dirty)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "abcd\nef\n"
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
}

func TestEditorSaveTruncatesShorterContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shrink.txt")
	if err := os.WriteFile(path, []byte("this was a much longer first version\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newEditorConfig(24, 80)
	e.filename = path
	e.insertRow(0, []byte("short"))

	editorSave(e, nil)

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "short\n" {
		t.Fatalf("file contents = %q, want %q (no leftover bytes from the longer original)", got, "short\n")
	}
}
