package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("./test.ax", []byte("var a = 1;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.ax", []byte("var a = 2;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	if fs.Get(id2).Path != "test.ax" {
		t.Errorf("path not cleaned: %q", fs.Get(id2).Path)
	}
	if got := fs.Get(id1).Text(); got != "var a = 1;" {
		t.Errorf("first version lost: %q", got)
	}
	if fs.Get(99) != nil {
		t.Errorf("unknown id must return nil")
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.ax", []byte("a\nb\n")))

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
	if file.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", file.LineCount())
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("lines.ax", []byte("first\n\tsecond\n\nlast")))

	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "\tsecond",
		3: "",
		4: "last",
		5: "",
	}
	for line, want := range cases {
		if got := file.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.ax")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var cafe\u0301 = 1;\r\nx;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if want := "var caf\u00e9 = 1;\nx;\n"; file.Text() != want {
		t.Errorf("content = %q, want %q", file.Text(), want)
	}
	for _, flag := range []FileFlags{FileHadBOM, FileNormalizedCRLF, FileNormalizedNFC} {
		if file.Flags&flag == 0 {
			t.Errorf("flag %b not set (flags=%b)", flag, file.Flags)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.ax")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanOrderingAndClamp(t *testing.T) {
	a := NewSpan(0, 2, 5, 3)
	b := NewSpan(0, 2, 9, 1)
	if !a.Less(b) || b.Less(a) {
		t.Errorf("ordering broken: %v %v", a, b)
	}
	if a.EndCol() != 8 {
		t.Errorf("EndCol() = %d, want 8", a.EndCol())
	}
	neg := NewSpan(0, -1, -4, -2)
	if neg.IsValid() || !neg.Empty() {
		t.Errorf("negative input must clamp to an invalid empty span: %+v", neg)
	}
}
