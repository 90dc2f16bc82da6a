// Package state persists the sets of already-processed identifiers that
// make the crawl resumable across restarts.
package state

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// FileSet is a flat-file ProcessedSet: one identifier per line, loaded
// fully into memory at open, appended to durably on every Add. Semantics
// are at-least-once: an entity interrupted after partial extraction but
// before Add is redone in full on the next run, which can duplicate sink
// rows (a declared limitation, tolerated by the downstream loader's
// id-based merge).
type FileSet struct {
	path string
	file *os.File
	seen map[string]struct{}
}

// OpenFileSet loads (or creates) the set backed by path.
func OpenFileSet(path string) (*FileSet, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open state file %s: %w", path, err)
	}
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id != "" {
			seen[id] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		closeErr := f.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("read state file %s: %w (close: %v)", path, err, closeErr)
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}
	return &FileSet{path: path, file: f, seen: seen}, nil
}

// Contains answers from memory only.
func (s *FileSet) Contains(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Add records the id in memory and appends it to the file immediately,
// syncing before returning so a crash after Add never forgets the id.
func (s *FileSet) Add(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := s.seen[id]; ok {
		return nil
	}
	if _, err := s.file.WriteString(id + "\n"); err != nil {
		return fmt.Errorf("append id to %s: %w", s.path, err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", s.path, err)
	}
	s.seen[id] = struct{}{}
	return nil
}

// Len reports how many identifiers are marked processed.
func (s *FileSet) Len() int {
	return len(s.seen)
}

// Close releases the underlying file handle.
func (s *FileSet) Close() error {
	return s.file.Close()
}
