// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cacheutil is a best-effort, file-backed cache for remote lookup
// tables. Each key is stored as <dir>/<key>.json holding
// {"data": ..., "timestamp": <epoch-ms>} and is valid for 24 hours. Caching
// can never fail a command: errors degrade to cache misses.
package cacheutil
