// Package jsonfile persists like counters as a flat JSON object
// {"word::candidate": count} in a single file.
//
// Every call loads the file fresh; every like rewrites the whole file.
// There is no locking: concurrent writers can lose updates.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// Store is a file-backed feedback store.
type Store struct {
	path string
}

// New returns a Store at path. The file is created on the first like.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// RecordLike increments the counter for (word, candidate) by one.
func (s *Store) RecordLike(_ context.Context, word, candidate string) error {
	counts, err := s.load()
	if err != nil {
		return fmt.Errorf("jsonfile: record like: %w", err)
	}
	counts[domain.FeedbackKey(word, candidate)]++
	if err := s.save(counts); err != nil {
		return fmt.Errorf("jsonfile: record like: %w", err)
	}
	return nil
}

// GetLikes returns the counter for (word, candidate), 0 if absent.
func (s *Store) GetLikes(_ context.Context, word, candidate string) (int, error) {
	counts, err := s.load()
	if err != nil {
		return 0, fmt.Errorf("jsonfile: get likes: %w", err)
	}
	return counts[domain.FeedbackKey(word, candidate)], nil
}

// Ping checks that the file is absent or readable.
func (s *Store) Ping(_ context.Context) error {
	_, err := s.load()
	return err
}

// load reads the store. A missing or empty file is an empty store.
func (s *Store) load() (map[string]int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]int{}, nil
	}

	counts := map[string]int{}
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return counts, nil
}

const defaultFileMode fs.FileMode = 0o644

// fileMode keeps the permissions of an existing file across rewrites.
func (s *Store) fileMode() fs.FileMode {
	if info, err := os.Stat(s.path); err == nil {
		return info.Mode().Perm()
	}
	return defaultFileMode
}

// save rewrites the whole file through a temp file and rename.
func (s *Store) save(counts map[string]int) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(s.fileMode()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
