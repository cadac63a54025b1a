// Package registry records generated files nested under their stylesheet source.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// NestedFile is a generated file registered under a source document.
type NestedFile struct {
	Path   string `json:"path"`
	Action string `json:"action"`
}

// Record lists the files nested under one source document.
// Paths are slash-separated and relative to the workspace root.
type Record struct {
	Parent   string       `json:"parent"`
	Children []NestedFile `json:"children"`
}

// Store implements ports.OutputRegistrar with one JSON record per source document,
// kept below <workspace>/.sassy/nesting.
type Store struct {
	mu     sync.Mutex
	loader ports.ConfigLoader
}

// NewStore creates a Store. loader locates the workspace root of a source.
func NewStore(loader ports.ConfigLoader) *Store {
	return &Store{loader: loader}
}

// AddNestedFile nests child under parent, updating the build action when child is already nested.
func (s *Store) AddNestedFile(ctx context.Context, parent, child string, action domain.BuildAction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root := s.root(parent)

	rec, err := s.get(root, parent)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &Record{Parent: relPath(root, parent)}
	}

	entry := NestedFile{Path: relPath(root, child), Action: action.String()}
	idx := slices.IndexFunc(rec.Children, func(f NestedFile) bool { return f.Path == entry.Path })
	if idx >= 0 {
		rec.Children[idx] = entry
	} else {
		rec.Children = append(rec.Children, entry)
		slices.SortFunc(rec.Children, func(a, b NestedFile) int { return strings.Compare(a.Path, b.Path) })
	}

	return s.put(root, parent, rec)
}

// Get returns the record of parent, or nil when nothing is nested under it.
func (s *Store) Get(parent string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(s.root(parent), parent)
}

func (s *Store) get(root, parent string) (*Record, error) {
	filename := recordFilename(root, parent)
	//nolint:gosec // Path is constructed from the workspace root and a hashed file name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryUnmarshalFailed.Error()), "record", filename)
	}
	return &rec, nil
}

func (s *Store) put(root, parent string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	filename := recordFilename(root, parent)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	//nolint:gosec // Path is constructed from the workspace root and a hashed file name
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	return nil
}

// root returns the workspace root of source, falling back to its directory.
func (s *Store) root(source string) string {
	dir := filepath.Dir(source)
	if s.loader != nil {
		if root, err := s.loader.DiscoverRoot(dir); err == nil {
			return root
		}
	}
	return dir
}

func recordFilename(root, parent string) string {
	key := strconv.FormatUint(xxhash.Sum64String(relPath(root, parent)), 16)
	return filepath.Join(domain.DefaultRegistryPath(root), key+".json")
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
