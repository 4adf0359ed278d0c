package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"mdpresent/deck"
)

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.md")
	if err := os.WriteFile(path, []byte("# T\r\n## A\r\nbody\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	document, err := readDocument(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if document != "# T\n## A\nbody\n" {
		t.Errorf("expected normalized line endings, got %q", document)
	}
}

func TestReadDocument_Missing(t *testing.T) {
	_, err := readDocument(filepath.Join(t.TempDir(), "missing.md"))

	var readErr *deck.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected a ReadError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the cause to be kept, got %v", err)
	}
}

func TestLoadPages_NoHeadings(t *testing.T) {
	_, err := loadPages("notes.md", "just some text\n#### too deep\n")
	if !errors.Is(err, deck.ErrNoPages) {
		t.Errorf("expected ErrNoPages, got %v", err)
	}
}

func TestLoadPages_Readme(t *testing.T) {
	pages, err := loadPages("README.md", readmeContent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pages[0].Kind != deck.KindTitle || pages[0].Title != "mdpresent" {
		t.Errorf("expected the README title page first, got %+v", pages[0])
	}
}

func TestOpenLogger_Discard(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeLog()

	logger.Info("dropped")
}

func TestOpenLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeLog, err := openLogger(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("navigate", "from", 0, "to", 1)
	closeLog()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) == 0 {
		t.Error("expected a log entry")
	}
}
