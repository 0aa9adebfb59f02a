// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/lnctl/lnctl/internal/log"
)

// TTL is how long an entry stays valid after it is written.
const TTL = 24 * time.Hour

// DirEnv overrides the cache directory.
const DirEnv = "LINEAR_CACHE_DIR"

const ext = ".json"

// Entry is the on-disk shape of one cache file.
type Entry[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"`
}

// envelope is Entry with the payload left undecoded. A missing timestamp
// marks a corrupt file.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp *int64          `json:"timestamp"`
}

// Dir resolves the base cache directory.
// Precedence:
//  1. LINEAR_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/linear
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv(DirEnv); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "linear"), true
	}
	return "", false
}

// BoolResolver is the slice of the option resolver the cache needs.
type BoolResolver interface {
	Bool(name string, override ...bool) (bool, bool)
}

// EnabledFrom reports caching as enabled unless cache_enabled resolves to
// false. An unset option means enabled.
func EnabledFrom(r BoolResolver) func() bool {
	return func() bool {
		v, ok := r.Bool("cache_enabled")
		return !ok || v
	}
}

// Cache is a directory of JSON entries, one file per key. Every failure is
// absorbed: a read that cannot be served is a miss and a write that cannot
// be stored is logged and dropped.
type Cache struct {
	dir     string
	enabled func() bool
	now     func() time.Time
}

// Option customizes a Cache.
type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New returns a Cache rooted at dir. enabled is consulted on every call; nil
// means always enabled. An empty dir disables the cache.
func New(dir string, enabled func() bool, opts ...Option) *Cache {
	c := &Cache{dir: dir, enabled: enabled, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether reads and writes are served.
func (c *Cache) Enabled() bool {
	if c == nil || c.dir == "" {
		return false
	}
	return c.enabled == nil || c.enabled()
}

// Dir is the directory holding the entries.
func (c *Cache) Dir() string {
	return c.dir
}

// EntryPath returns the file path for key and whether a file exists there.
// Keys that would escape the cache directory have no path.
func (c *Cache) EntryPath(key string) (string, bool) {
	if !validKey(key) || c.dir == "" {
		return "", false
	}
	p := filepath.Join(c.dir, key+ext)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}

// Read returns the data stored under key. Missing, corrupt and expired
// entries are misses; corrupt and expired files are removed.
func Read[T any](c *Cache, key string) (T, bool) {
	var zero T
	if !c.Enabled() {
		return zero, false
	}

	p, ok := c.EntryPath(key)
	if !ok {
		return zero, false
	}

	b, err := os.ReadFile(p)
	if err != nil {
		return zero, false
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil || env.Timestamp == nil {
		log.Debugf("cache corrupt: key=%s", key)
		c.remove(p)
		return zero, false
	}

	written := time.UnixMilli(*env.Timestamp)
	if c.now().Sub(written) >= TTL {
		log.Debugf("cache expired: key=%s written=%s", key, written.Format(time.RFC3339))
		c.remove(p)
		return zero, false
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		log.Debugf("cache payload mismatch: key=%s err=%v", key, err)
		c.remove(p)
		return zero, false
	}

	log.Debugf("cache hit: key=%s", key)
	return data, true
}

// Write stores data under key with the current time. It never fails the
// caller; problems are logged.
func Write[T any](c *Cache, key string, data T) {
	if !c.Enabled() {
		return
	}

	p, _ := c.EntryPath(key)
	if p == "" {
		log.Warnf("cache write skipped, invalid key: %q", key)
		return
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil { //nolint:mnd
		log.WithError(err).Warn("failed to create cache directory")
		return
	}

	b, err := json.Marshal(Entry[T]{Data: data, Timestamp: c.now().UnixMilli()})
	if err != nil {
		log.WithError(err).Warnf("failed to encode cache entry %s", key)
		return
	}

	if err := atomic.WriteFile(p, bytes.NewReader(b)); err != nil {
		log.WithError(err).Warnf("failed to write cache entry %s", key)
		return
	}

	log.Debugf("cache write: key=%s", key)
}

// Clear removes the entry for key. A missing entry is not an error.
func (c *Cache) Clear(key string) {
	if p, ok := c.EntryPath(key); ok {
		c.remove(p)
	}
}

// ClearAll removes the whole cache directory.
func (c *Cache) ClearAll() {
	if c.dir == "" {
		return
	}
	if err := os.RemoveAll(c.dir); err != nil {
		log.WithError(err).Warnf("failed to remove cache directory %s", c.dir)
	}
}

// Info describes one entry on disk.
type Info struct {
	Key     string
	Path    string
	Size    int64
	Written time.Time
	Expired bool
}

// List returns every entry in the cache directory sorted by key. Corrupt
// entries are listed with a zero Written time and as expired.
func (c *Cache) List() []Info {
	if c.dir == "" {
		return nil
	}

	dirents, err := os.ReadDir(c.dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warnf("failed to list cache directory %s", c.dir)
		}
		return nil
	}

	var infos []Info
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}

		info := Info{Key: strings.TrimSuffix(name, ext), Path: filepath.Join(c.dir, name), Expired: true}
		if fi, err := d.Info(); err == nil {
			info.Size = fi.Size()
		}

		if b, err := os.ReadFile(info.Path); err == nil {
			var env envelope
			if json.Unmarshal(b, &env) == nil && env.Timestamp != nil {
				info.Written = time.UnixMilli(*env.Timestamp)
				info.Expired = c.now().Sub(info.Written) >= TTL
			}
		}

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// Purge removes every expired or corrupt entry and returns how many were
// removed.
func (c *Cache) Purge() int {
	n := 0
	for _, info := range c.List() {
		if !info.Expired {
			continue
		}
		if c.remove(info.Path) {
			n++
		}
	}
	return n
}

func (c *Cache) remove(p string) bool {
	if err := os.Remove(p); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warnf("failed to remove cache file %s", p)
		}
		return false
	}
	log.Debugf("removed cache file %s", p)
	return true
}

func validKey(key string) bool {
	return key != "" && key != "." && key != ".." &&
		!strings.ContainsAny(key, `/\`) && !strings.Contains(key, "..")
}
