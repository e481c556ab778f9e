package server

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"contactos.xlsx", "contactos.xlsx"},
		{"mis contactos (1).xlsx", "mis contactos (1).xlsx"},
		{"lista[2024].csv", "lista[2024].csv"},
		{"año*nuevo?.xlsx", "a_o_nuevo_.xlsx"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\ana\datos.xlsx`, "datos.xlsx"},
	}

	for _, tt := range tests {
		if got := sanitizeName(tt.input); got != tt.expected {
			t.Errorf("sanitizeName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	s.now = func() time.Time { return time.UnixMilli(42) }

	name, err := s.Save("datos.csv", strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if name != "42_datos.csv" {
		t.Errorf("Expected '42_datos.csv', got %q", name)
	}
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	files, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 1 || files[0].Name != name || files[0].Size != 4 {
		t.Errorf("Unexpected listing %+v", files)
	}

	for _, bad := range []string{"", ".", "..", "../x", "missing.csv"} {
		if _, err := s.Path(bad); !errors.Is(err, ErrNotFound) {
			t.Errorf("Path(%q) error = %v, expected ErrNotFound", bad, err)
		}
	}

	if err := s.Delete(name); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(name); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
