// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"strings"

	"github.com/lnctl/lnctl/internal/log"
)

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeTeam
	scopeWorkspace
)

// Scope partitions entries of the same resource. The zero Scope means the
// resource is not partitioned.
type Scope struct {
	kind scopeKind
	team string
}

// TeamScope partitions by team key.
func TeamScope(teamKey string) Scope {
	return Scope{kind: scopeTeam, team: teamKey}
}

// WorkspaceScope marks workspace-wide data.
func WorkspaceScope() Scope {
	return Scope{kind: scopeWorkspace}
}

// Key composes the cache key for resource in scope:
// "<resource>-team-<teamKey>", "<resource>-workspace" or "<resource>".
//
// A resource name containing "-team-" or ending in "-team" or "-workspace"
// could collide with a scoped key of another resource, so Key returns "" for
// it. The cache treats an empty key as a miss and drops writes to it.
func Key(resource string, scope Scope) string {
	if !validResource(resource) {
		log.Warnf("cache key rejected, ambiguous resource name: %q", resource)
		return ""
	}

	switch scope.kind {
	case scopeTeam:
		return resource + "-team-" + scope.team
	case scopeWorkspace:
		return resource + "-workspace"
	default:
		return resource
	}
}

func validResource(resource string) bool {
	return resource != "" &&
		!strings.Contains(resource, "-team-") &&
		!strings.HasSuffix(resource, "-team") &&
		!strings.HasSuffix(resource, "-workspace")
}
