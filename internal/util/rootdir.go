// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/lnctl/lnctl/internal/log"
)

// gitBinary is the executable used for work tree detection. Tests point it at
// a missing binary to exercise the not-in-a-repository path.
var gitBinary = "git"

// RepoRoot returns the top level directory of the git work tree containing
// dir. Any failure to run git, including git not being installed or dir not
// being inside a work tree, is reported as ("", false) and never as an error.
func RepoRoot(ctx context.Context, dir string) (string, bool) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = cwd
	}

	cmd := exec.CommandContext(ctx, gitBinary, "rev-parse", "--show-toplevel")
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		log.Debugf("not in a git work tree: dir=%s err=%v", dir, err)
		return "", false
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", false
	}

	return filepath.Clean(root), true
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}
