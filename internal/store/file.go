package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

const (
	aliasesFile = "aliases.json"
	optionsFile = "options.json"
)

// FileStore keeps aliases and options in two independent JSON files under a
// directory. Writes go through a temp file and rename so a crashed write
// never leaves a half-written snapshot.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore opens (creating if needed) a file store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrStore, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

// ReadAliases returns the current snapshot, empty when absent.
func (s *FileStore) ReadAliases() (alias.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var table alias.Table
	if err := s.readJSON(aliasesFile, &table); err != nil {
		return nil, err
	}
	if table == nil {
		table = alias.Table{}
	}
	return table, nil
}

// WriteAliases replaces the entire stored collection in one write.
func (s *FileStore) WriteAliases(table alias.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(aliasesFile, table)
}

// ReadOptions returns stored options with defaults filled in for a missing
// file.
func (s *FileStore) ReadOptions() (Options, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := DefaultOptions()
	path := filepath.Join(s.dir, optionsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("%w: reading %s: %v", ErrStore, path, err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("%w: parsing %s: %v", ErrStore, path, err)
	}
	return opts, nil
}

// WriteOptions replaces the stored options record.
func (s *FileStore) WriteOptions(opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(optionsFile, opts)
}

func (s *FileStore) readJSON(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrStore, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrStore, path, err)
	}
	return nil
}

func (s *FileStore) writeJSON(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStore, name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %v", ErrStore, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %v", ErrStore, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %v", ErrStore, path, err)
	}
	return nil
}
