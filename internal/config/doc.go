// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads lnctl's TOML configuration document and resolves
// option values.
//
// The document is the first of these files that exists:
//   - ./linear.toml, ./.linear.toml
//   - <repo>/linear.toml, <repo>/.linear.toml
//   - <repo>/.config/linear.toml, <repo>/.config/.linear.toml
//
// where <repo> is the top of the enclosing git work tree, if any. LINEAR_CONFIG
// names a file directly and skips the search.
//
// Option values resolve through an explicit override, then LINEAR_<NAME>
// environment variables, then the document, then compiled-in defaults.
package config
