// Package catalogue holds the book data model and the scanner that
// discovers books on disk.
package catalogue

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/dustin/go-humanize"

	"github.com/damalga/funkhunt/internal/errors"
)

// metadataSentinel is shown in the details pane when the file cannot
// be statted. It is rendered as ordinary output, never raised.
const metadataSentinel = "Error reading metadata"

// Book is one catalogued e-book file. Identity is the Path; two books
// with the same path are the same book.
type Book struct {
	Name string
	Path string
}

// NewBook creates a Book from a display name and a filesystem path
func NewBook(name, path string) Book {
	return Book{Name: name, Path: path}
}

// Describe returns the human-readable details block for the book:
// title, path and size. A stat failure degrades to a fixed sentinel
// string instead of an error.
func (b Book) Describe() string {
	info, err := os.Stat(b.Path)
	if err != nil {
		return metadataSentinel
	}
	return fmt.Sprintf(
		"Title: %s\n\nPath: %s\n\nSize: %s\n\nPress enter to open in the external reader",
		b.Name, b.Path, humanize.Bytes(uint64(info.Size())),
	)
}

// Open launches the platform default viewer for the book and does not
// wait for it to exit. viewerCommand overrides the platform default
// when non-empty. Callers are expected to treat the returned error as
// ignorable.
func (b Book) Open(viewerCommand string) error {
	name, args := openCommand(b.Path, viewerCommand)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.NewViewerError("failed to launch viewer", b.Path, err)
	}
	// Reap the viewer once it exits so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(path, override string) (string, []string) {
	if override != "" {
		return override, []string{path}
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/C", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}
