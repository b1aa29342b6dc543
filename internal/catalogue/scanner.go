package catalogue

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/damalga/funkhunt/internal/errors"
	"github.com/damalga/funkhunt/internal/log"
)

// DefaultFormats is the format list used when the config names none
var DefaultFormats = []string{"*.epub"}

// Scanner finds catalogue-eligible files under a root directory.
// Eligibility is defined by glob patterns matched case-insensitively
// against the file's base name.
type Scanner struct {
	patterns []glob.Glob
}

// NewScanner compiles the given format patterns. An empty list falls
// back to DefaultFormats.
func NewScanner(formats []string) (*Scanner, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	patterns := make([]glob.Glob, 0, len(formats))
	for _, f := range formats {
		g, err := glob.Compile(strings.ToLower(f))
		if err != nil {
			return nil, errors.NewPatternError("invalid format pattern", f, err)
		}
		patterns = append(patterns, g)
	}
	return &Scanner{patterns: patterns}, nil
}

// Matches reports whether the file at path is catalogue-eligible.
// Only the base name participates in the match.
func (s *Scanner) Matches(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, g := range s.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Scan recursively enumerates eligible files under root and returns
// them sorted by name, then path. A missing or unreadable root yields
// an empty result; unreadable subtrees are skipped. Scan never fails.
func (s *Scanner) Scan(root string) []Book {
	books := []Book{}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.LogWithFields(log.F("path", path), log.F("error", walkErr)).Debug("skipping unreadable entry")
			return nil
		}
		if d.IsDir() || !s.Matches(d.Name()) {
			return nil
		}
		books = append(books, NewBook(d.Name(), path))
		return nil
	})
	sort.Slice(books, func(i, j int) bool {
		if books[i].Name != books[j].Name {
			return books[i].Name < books[j].Name
		}
		return books[i].Path < books[j].Path
	})
	log.LogWithFields(log.F("root", root), log.F("count", len(books))).Debug("scan finished")
	return books
}
