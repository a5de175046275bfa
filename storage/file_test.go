package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_GetMissingKey(t *testing.T) {
	f := NewFile(t.TempDir())
	_, err := f.Get("pokerSessions")
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("Get() on a missing key = %v, want ErrNotExist", err)
	}
}

func TestFile_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := NewFile(dir)

	want := []byte(`[{"id":"1"}]`)
	if err := f.Set("pokerSessions", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := f.Get("pokerSessions")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get() = %s, want %s", got, want)
	}

	// The key maps to a readable json file.
	if _, err := os.Stat(filepath.Join(dir, "pokerSessions.json")); err != nil {
		t.Errorf("expected a pokerSessions.json file: %v", err)
	}
}

func TestFile_SetOverwrites(t *testing.T) {
	f := NewFile(t.TempDir())
	if err := f.Set("k", []byte("old")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := f.Set("k", []byte("new")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := f.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Get() = %s, want %s", got, "new")
	}
}
