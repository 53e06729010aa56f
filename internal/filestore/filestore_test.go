package filestore

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestStore_SaveOpenRemove(t *testing.T) {
	s, err := New(t.TempDir() + "/files")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	storedPath, fileName, err := s.Save("surat undangan.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if fileName != "surat undangan.pdf" {
		t.Errorf("Save() fileName = %q", fileName)
	}
	if !strings.HasSuffix(storedPath, "_surat undangan.pdf") {
		t.Errorf("Save() storedPath = %q, want uuid prefix + original name", storedPath)
	}

	rc, err := s.Open(storedPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "content" {
		t.Errorf("Open() content = %q", data)
	}

	if err := s.Remove(storedPath); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	// Already gone: not an error.
	if err := s.Remove(storedPath); err != nil {
		t.Errorf("Remove() of missing file error = %v, want nil", err)
	}
}

func TestStore_SaveStripsDirectoryComponents(t *testing.T) {
	s, err := New(t.TempDir() + "/files")
	if err != nil {
		t.Fatal(err)
	}

	_, fileName, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if fileName != "passwd" {
		t.Errorf("Save() fileName = %q, want base name only", fileName)
	}
}

func TestStore_RemoveRejectsTraversal(t *testing.T) {
	s, err := New(t.TempDir() + "/files")
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"", "../outside", "/abs/path"} {
		if err := s.Remove(p); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Remove(%q) error = %v, want ErrInvalidPath", p, err)
		}
	}
}
