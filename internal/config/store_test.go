// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a Store rooted at a temp work dir with an optional
// fake repository root.
func newTestStore(t *testing.T, workDir, repoRoot string) *Store {
	t.Helper()
	t.Setenv(FileEnv, "")

	return NewStore(
		WithWorkDir(workDir),
		WithRepoRoot(func(context.Context, string) (string, bool) {
			return repoRoot, repoRoot != ""
		}),
	)
}

// copyTestdata copies a testdata file to dst, creating parent directories.
func copyTestdata(t *testing.T, name, dst string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
	require.NoError(t, os.WriteFile(dst, data, 0o600))
}

func TestCandidates(t *testing.T) {
	work := t.TempDir()

	t.Run("outside repository", func(t *testing.T) {
		s := newTestStore(t, work, "")
		assert.Equal(t, []string{
			filepath.Join(work, "linear.toml"),
			filepath.Join(work, ".linear.toml"),
		}, s.Candidates(context.Background()))
	})

	t.Run("inside repository", func(t *testing.T) {
		s := newTestStore(t, work, "/repo")
		assert.Equal(t, []string{
			filepath.Join(work, "linear.toml"),
			filepath.Join(work, ".linear.toml"),
			filepath.Join("/repo", "linear.toml"),
			filepath.Join("/repo", ".linear.toml"),
			filepath.Join("/repo", ".config", "linear.toml"),
			filepath.Join("/repo", ".config", ".linear.toml"),
		}, s.Candidates(context.Background()))
	})
}

// TestLoad_NoFile verifies an empty document and the hidden default save
// path when no candidate exists.
func TestLoad_NoFile(t *testing.T) {
	work := t.TempDir()
	s := newTestStore(t, work, "")

	require.NoError(t, s.Load(context.Background()))

	assert.Empty(t, s.Document())
	assert.Empty(t, s.Source())
	assert.Equal(t, filepath.Join(work, ".linear.toml"), s.Path())
	assert.False(t, s.Dirty())
}

// TestLoad_FirstMatchWins verifies the visible name beats the hidden name in
// the work dir and the work dir beats the repository root.
func TestLoad_FirstMatchWins(t *testing.T) {
	work := t.TempDir()
	repo := t.TempDir()
	copyTestdata(t, "legacy.toml", filepath.Join(work, ".linear.toml"))
	copyTestdata(t, "nested.toml", filepath.Join(work, "linear.toml"))
	copyTestdata(t, "mixed.toml", filepath.Join(repo, "linear.toml"))

	s := newTestStore(t, work, repo)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, filepath.Join(work, "linear.toml"), s.Source())
	v, ok := s.Get("team_id")
	assert.True(t, ok)
	assert.Equal(t, String("ENG"), v)
}

func TestLoad_RepoConfigDir(t *testing.T) {
	work := t.TempDir()
	repo := t.TempDir()
	path := filepath.Join(repo, ".config", ".linear.toml")
	copyTestdata(t, "nested.toml", path)

	s := newTestStore(t, work, repo)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, path, s.Source())
	assert.Equal(t, path, s.Path())
}

// TestLoad_SkipsBrokenFile verifies an unparsable file is treated as absent
// and the search continues.
func TestLoad_SkipsBrokenFile(t *testing.T) {
	work := t.TempDir()
	repo := t.TempDir()
	copyTestdata(t, "broken.toml", filepath.Join(work, "linear.toml"))
	copyTestdata(t, "nested.toml", filepath.Join(repo, ".linear.toml"))

	s := newTestStore(t, work, repo)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, filepath.Join(repo, ".linear.toml"), s.Source())
}

func TestLoad_MixedTypes(t *testing.T) {
	work := t.TempDir()
	copyTestdata(t, "mixed.toml", filepath.Join(work, "linear.toml"))

	s := newTestStore(t, work, "")
	require.NoError(t, s.Load(context.Background()))

	doc := s.Document()
	assert.Equal(t, String("project"), doc["name"])
	assert.Equal(t, Int(1), doc["version"])
	assert.Equal(t, Float(30.5), doc["timeout"])
	assert.Equal(t, Bool(true), doc["enabled"])
	assert.Equal(t, List{String("a"), String("b")}, doc["tags"])
	assert.Equal(t, String("2024-01-02T03:04:05Z"), doc["created"])
	assert.Equal(t, List{Table{"name": String("origin")}}, doc["remotes"])
}

// TestLoad_Once verifies a second Load does not replace the document.
func TestLoad_Once(t *testing.T) {
	work := t.TempDir()
	s := newTestStore(t, work, "")
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Set("team_id", String("OPS")))

	copyTestdata(t, "nested.toml", filepath.Join(work, "linear.toml"))
	require.NoError(t, s.Load(context.Background()))

	v, _ := s.Get("team_id")
	assert.Equal(t, String("OPS"), v)
	assert.Empty(t, s.Source())
}

func TestLoad_ExplicitFile(t *testing.T) {
	work := t.TempDir()
	path := filepath.Join(t.TempDir(), "custom.toml")
	copyTestdata(t, "nested.toml", path)

	s := newTestStore(t, work, "")
	t.Setenv(FileEnv, path)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, path, s.Source())
}

func TestLoad_ExplicitFileErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		s := newTestStore(t, t.TempDir(), "")
		t.Setenv(FileEnv, "/nonexistent/linear.toml")

		err := s.Load(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file not found")
	})

	t.Run("directory", func(t *testing.T) {
		s := newTestStore(t, t.TempDir(), "")
		t.Setenv(FileEnv, t.TempDir())

		err := s.Load(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "points to a directory")
	})
}

func TestSection(t *testing.T) {
	work := t.TempDir()
	copyTestdata(t, "nested.toml", filepath.Join(work, "linear.toml"))

	s := newTestStore(t, work, "")
	require.NoError(t, s.Load(context.Background()))

	section, ok := s.Section("cache")
	assert.True(t, ok)
	assert.Equal(t, Table{"enabled": Bool(false)}, section)

	_, ok = s.Section("team_id")
	assert.False(t, ok, "scalar is not a section")

	_, ok = s.Section("missing")
	assert.False(t, ok)
}

// TestSave_RoundTrip verifies Set marks the store dirty and Save persists a
// document a fresh store can load.
func TestSave_RoundTrip(t *testing.T) {
	work := t.TempDir()
	s := newTestStore(t, work, "")
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Set("team_id", String("ENG")))
	require.NoError(t, s.Set("cache.enabled", Bool(false)))
	assert.True(t, s.Dirty())

	require.NoError(t, s.Save())
	assert.False(t, s.Dirty())
	assert.FileExists(t, filepath.Join(work, ".linear.toml"))

	fresh := newTestStore(t, work, "")
	require.NoError(t, fresh.Load(context.Background()))

	v, ok := fresh.Get("cache.enabled")
	assert.True(t, ok)
	assert.Equal(t, Bool(false), v)
	v, _ = fresh.Get("team_id")
	assert.Equal(t, String("ENG"), v)
}

func TestSave_NoPath(t *testing.T) {
	s := newTestStore(t, t.TempDir(), "")

	assert.ErrorIs(t, s.Save(), ErrNoSavePath)
}

func TestUnset(t *testing.T) {
	s := newTestStore(t, t.TempDir(), "")
	require.NoError(t, s.Load(context.Background()))

	assert.False(t, s.Unset("team_id"))
	assert.False(t, s.Dirty())

	require.NoError(t, s.Set("team_id", String("ENG")))
	require.NoError(t, s.Save())

	assert.True(t, s.Unset("team_id"))
	assert.True(t, s.Dirty())
	_, ok := s.Get("team_id")
	assert.False(t, ok)
}
