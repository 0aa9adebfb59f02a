// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"

	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/util"
)

// FileName is the base name of the configuration file, without extension.
const FileName = "linear"

// FileEnv names an explicit configuration file. When set, the candidate
// search is skipped.
const FileEnv = "LINEAR_CONFIG"

// ErrNoSavePath is returned by Save when no file path was ever determined.
var ErrNoSavePath = errors.New("no configuration file path to save to")

// Store holds the one configuration document active for the process. It is
// loaded once and then mutated only through Set and Unset.
type Store struct {
	doc    Table
	source string
	path   string
	dirty  bool
	loaded bool

	workDir  string
	repoRoot func(ctx context.Context, dir string) (string, bool)
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithWorkDir sets the directory searched first and used for the default
// save path. It defaults to the process working directory.
func WithWorkDir(dir string) StoreOption {
	return func(s *Store) {
		s.workDir = dir
	}
}

// WithRepoRoot replaces git work tree detection.
func WithRepoRoot(fn func(ctx context.Context, dir string) (string, bool)) StoreOption {
	return func(s *Store) {
		s.repoRoot = fn
	}
}

// NewStore returns an unloaded Store holding an empty document.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		doc:      Table{},
		repoRoot: util.RepoRoot,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workDir == "" {
		s.workDir, _ = os.Getwd()
	}
	return s
}

// Candidates returns the ordered list of paths Load considers: the work
// directory first, then the repository root and its .config directory when
// the work directory is inside a git work tree.
func (s *Store) Candidates(ctx context.Context) []string {
	names := []string{FileName + ".toml", "." + FileName + ".toml"}

	paths := []string{
		filepath.Join(s.workDir, names[0]),
		filepath.Join(s.workDir, names[1]),
	}

	if root, ok := s.repoRoot(ctx, s.workDir); ok {
		paths = append(paths,
			filepath.Join(root, names[0]),
			filepath.Join(root, names[1]),
			filepath.Join(root, ".config", names[0]),
			filepath.Join(root, ".config", names[1]),
		)
	}

	return paths
}

// Load parses the first candidate file that exists. Unreadable or
// unparsable files are skipped. When nothing is found the document stays
// empty and Save will write to ./.linear.toml. Load is a no-op after the
// first successful call.
func (s *Store) Load(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	if explicit := os.Getenv(FileEnv); explicit != "" {
		fi, err := os.Stat(explicit)
		if err != nil {
			return fmt.Errorf("config file not found at %s path: %s", FileEnv, explicit)
		}
		if fi.IsDir() {
			return fmt.Errorf("%s points to a directory: %s", FileEnv, explicit)
		}
		doc, err := decodeFile(explicit)
		if err != nil {
			return err
		}
		s.adopt(explicit, doc)
		return nil
	}

	for _, candidate := range s.Candidates(ctx) {
		if !util.Exists(candidate) {
			continue
		}
		doc, err := decodeFile(candidate)
		if err != nil {
			log.WithError(err).Warnf("skipping config file %s", candidate)
			continue
		}
		s.adopt(candidate, doc)
		return nil
	}

	s.doc = Table{}
	s.path = filepath.Join(s.workDir, "."+FileName+".toml")
	s.loaded = true
	log.Debugf("no config file found, default save path: %s", s.path)
	return nil
}

func (s *Store) adopt(path string, doc Table) {
	s.doc = doc
	s.source = path
	s.path = path
	s.loaded = true
	log.Debugf("using config file: %s", path)
}

func decodeFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	raw := map[string]any{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	v, _ := FromNative(raw)
	return v.(Table), nil
}

// Get returns the value at the dot-path or false when absent.
func (s *Store) Get(path string) (Value, bool) {
	return s.doc.Lookup(path)
}

// Section returns the table at the dot-path or false when absent or not a
// table.
func (s *Store) Section(path string) (Table, bool) {
	v, ok := s.doc.Lookup(path)
	if !ok {
		return nil, false
	}
	t, ok := v.(Table)
	return t, ok
}

// Set stores v at path and marks the document dirty. See Table.Assign for
// how existing scalars along the path are treated.
func (s *Store) Set(path string, v Value) error {
	if err := s.doc.Assign(path, v); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Unset removes the value at path. It reports whether anything changed.
func (s *Store) Unset(path string) bool {
	if !s.doc.Delete(path) {
		return false
	}
	s.dirty = true
	return true
}

// Document returns the live document.
func (s *Store) Document() Table {
	return s.doc
}

// Source is the file the document was loaded from, or "" if none.
func (s *Store) Source() string {
	return s.source
}

// Path is the file Save writes to.
func (s *Store) Path() string {
	return s.path
}

// Dirty reports whether Set or Unset changed the document since the last
// load or save.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save writes the full document back to its path atomically.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoSavePath
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Native(s.doc)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}

	s.dirty = false
	s.source = s.path
	log.Debugf("saved config file: %s", s.path)
	return nil
}
