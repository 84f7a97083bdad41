// Package store persists whole JSON documents on disk, one file per store.
//
// Every operation on the platform follows the same pattern: load the full
// document, mutate it in memory, save the full document back. The store
// assumes a single active process; there is no file locking, and with two
// concurrent instances the later Save silently overwrites the earlier one.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/uniaodigital/learnhub/internal/logging"
)

// Store is a file-backed JSON document of type T.
type Store[T any] struct {
	path string
	log  logging.Logger
}

// New returns a store backed by the file at path. The file and its parent
// directory are created lazily on first Load.
func New[T any](path string, log logging.Logger) *Store[T] {
	return &Store[T]{path: path, log: log}
}

// Path returns the location of the backing file.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the document. A missing file is created and initialized with
// def. A file that exists but does not parse also yields def: the corrupt
// content is treated as unrecoverable rather than fatal, and the next Save
// overwrites it. Operators should take the logged warning seriously: the
// old content is lost at that point.
func (s *Store[T]) Load(ctx context.Context, def T) (T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return def, fmt.Errorf("read %s: %w", s.path, err)
		}
		if err := s.Save(ctx, def); err != nil {
			return def, err
		}
		return def, nil
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn(ctx, "document is corrupt, falling back to default", "path", s.path, "error", err)
		return def, nil
	}
	// A file containing "null" is well-formed JSON but decodes a map
	// document to a nil map, which callers write into. Treat it like
	// corrupt content.
	if v := reflect.ValueOf(doc); v.Kind() == reflect.Map && v.IsNil() {
		s.log.Warn(ctx, "document is null, falling back to default", "path", s.path)
		return def, nil
	}
	return doc, nil
}

// Save writes the document, fully replacing the previous content.
func (s *Store[T]) Save(ctx context.Context, doc T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o770); err != nil {
		return fmt.Errorf("mkdir for %s: %w", s.path, err)
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	s.log.Debug(ctx, "document saved", "path", s.path)
	return nil
}
