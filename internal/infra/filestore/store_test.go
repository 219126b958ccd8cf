package filestore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_ExistsBeforeAndAfterWrite(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "tasks.json"))

	if store.Exists() {
		t.Error("Exists() = true before first write")
	}

	if err := store.Write("[]"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !store.Exists() {
		t.Error("Exists() = false after write")
	}
}

func TestStore_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "tasks.json"))

	content := `[{"id": "1", "title": "Test", "completed": false}]`
	if err := store.Write(content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != content {
		t.Errorf("Read() = %q, want %q", got, content)
	}
}

func TestStore_WriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "tasks.json"))

	if err := store.Write("first"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := store.Write("second"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Read() = %q, want %q", got, "second")
	}
}

func TestStore_WriteCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "tasks.json")
	store := New(path)

	if err := store.Write("[]"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestStore_WriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	store := New(path)

	if err := store.Write("[]"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Write()")
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "tasks.json"))

	if _, err := store.Read(); err == nil {
		t.Error("Read() of missing file returned nil error")
	}
}
