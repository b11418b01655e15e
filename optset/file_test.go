package optset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileOptionReadsContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.txt")
	if err := os.WriteFile(path, []byte("key=value\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	s.File("--config", "Config file")

	result, err := s.ParseWithHandler([]string{"prog", "--config", path}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := result.GetFile("--config")
	if !ok {
		t.Fatal("expected file value")
	}
	if f.Path != path {
		t.Errorf("expected path %q, got %q", path, f.Path)
	}
	if f.String() != "key=value\n" {
		t.Errorf("expected eager contents, got %q", f.String())
	}
}

func TestFileOptionUnreadable(t *testing.T) {
	s := New()
	s.File("--config", "Config file")

	var errs []*ParseError
	_, err := s.ParseWithHandler(
		[]string{"prog", "--config", filepath.Join(t.TempDir(), "missing.txt")},
		collecting(&errs), nil,
	)
	if err == nil {
		t.Fatal("expected a conversion error for an unreadable file")
	}
	if len(errs) != 1 || errs[0].Type != ErrorTypeConversion {
		t.Fatalf("expected one conversion error, got %v", errs)
	}
}

func TestMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, data := range []string{"one", "two"} {
		p := filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	s := New()
	s.File("--input", "Input files").Multiple()

	result, err := s.ParseWithHandler(
		[]string{"prog", "--input", paths[0], "--input", paths[1]},
		nil, nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	files := result.GetFileSlice("--input")
	if len(files) != 2 || files[0].String() != "one" || files[1].String() != "two" {
		t.Errorf("expected both files in order, got %v", files)
	}
}
