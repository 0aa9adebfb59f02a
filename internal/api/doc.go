// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package api is a small GraphQL client for the Linear API. It implements
// free-text search for reference resolution and serves the team and
// workspace lookup tables (workflow states, project statuses, users)
// through the on-disk cache.
package api
