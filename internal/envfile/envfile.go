// Package envfile loads KEY=VALUE declarations from .env files into an
// ordered in-memory Store.
//
// The file format is simple: one KEY=VALUE per line, # comments, blank lines ignored.
// Values may be wrapped in one layer of single or double quotes and may contain
// the escapes \n, \r, \t, \\, \" and \'. Any other \X yields X.
// Lines without '=' are skipped, not rejected.
//
// Keys are not deduplicated. Lookups return the first entry loaded for a key.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// maxLineSize bounds a single line; longer lines fail the load.
const maxLineSize = 1 << 20

// Entry is one parsed declaration.
type Entry struct {
	Key   string
	Value string
}

// Store holds entries in load order. A Store is not safe for concurrent
// use; callers must serialize Load, Get, Release and injection.
type Store struct {
	entries    []Entry
	maxEntries int
	log        *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger that receives skipped-line diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxEntries caps the number of entries the store will hold.
// Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *Store) { s.maxEntries = n }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads path and appends every declaration it contains to the store.
// Entries from earlier loads are kept. On failure, entries appended
// before the failing line remain in the store.
func (s *Store) Load(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrIO)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	added := 0
	for scanner.Scan() {
		lineNo++
		e, ok, reason := parseLine(scanner.Text())
		if !ok {
			if reason != "" {
				s.log.Debug("skipping line", "path", path, "line", lineNo, "reason", reason)
			}
			continue
		}

		if s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
			return fmt.Errorf("%w: %s:%d: store is full (%d entries)", ErrAllocation, path, lineNo, s.maxEntries)
		}
		s.entries = append(s.entries, e)
		added++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s:%d: %w", ErrIO, path, lineNo+1, err)
	}

	s.log.Debug("loaded env file", "path", path, "entries", added, "total", len(s.entries))
	return nil
}

// Get returns the value of the first entry whose key equals key.
func (s *Store) Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, e := range s.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Entries returns a copy of the store's entries in load order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of entries, duplicates included.
func (s *Store) Len() int {
	return len(s.entries)
}

// Values returns the store as a map holding the first value loaded for each key.
func (s *Store) Values() map[string]string {
	result := make(map[string]string, len(s.entries))
	for _, e := range s.entries {
		if _, seen := result[e.Key]; !seen {
			result[e.Key] = e.Value
		}
	}
	return result
}

// Release drops every entry. The store can be loaded again afterwards.
func (s *Store) Release() {
	s.entries = nil
}

// Delete removes the env file from disk. Returns nil if the file does not exist.
func Delete(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
