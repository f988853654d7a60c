package vtcore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTypescriptRecorderWritesHeaderAndData(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewTypescriptRecorder(dir, "session", false, nil)
	if err != nil {
		t.Fatalf("NewTypescriptRecorder: %v", err)
	}
	rec.Write([]byte("hello"))
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "session"))
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}
	if !contains(string(data), "hello") {
		t.Fatalf("data file missing written content: %q", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "session.timing")); err != nil {
		t.Fatalf("timing file missing: %v", err)
	}
}

func TestTypescriptRecorderAvoidsNameCollision(t *testing.T) {
	dir := t.TempDir()
	first, err := NewTypescriptRecorder(dir, "session", false, nil)
	if err != nil {
		t.Fatalf("first NewTypescriptRecorder: %v", err)
	}
	defer first.Close()

	second, err := NewTypescriptRecorder(dir, "session", false, nil)
	if err != nil {
		t.Fatalf("second NewTypescriptRecorder: %v", err)
	}
	defer second.Close()

	if _, err := os.Stat(filepath.Join(dir, "session.1")); err != nil {
		t.Fatalf("expected collision-suffixed file session.1: %v", err)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
