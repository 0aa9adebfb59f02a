// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Host is the product domain permalinks live on.
const Host = "linear.app"

// Kind is the type of resource a reference names.
type Kind string

const (
	KindIssue    Kind = "issue"
	KindProject  Kind = "project"
	KindDocument Kind = "document"
)

// Kinds lists every resolvable kind.
var Kinds = []Kind{KindIssue, KindProject, KindDocument}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == strings.ToLower(s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown resource kind %q: must be one of %v", s, Kinds)
}

// Reference is a canonical pointer to one remote resource. ID is an
// upper-cased short identifier for issues and a UUID otherwise.
type Reference struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	ID   string `json:"id" yaml:"id"`
}

func (r Reference) String() string {
	return string(r.Kind) + ":" + r.ID
}

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrNoDefaultTeam is returned for a bare issue number when no team is
	// configured to prefix it with.
	ErrNoDefaultTeam = errors.New("no default team configured")
)

// NotFoundError reports input that matched no resource.
type NotFoundError struct {
	Kind  Kind
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Input)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z0-9]+-[1-9][0-9]*$`)
	numberRe     = regexp.MustCompile(`^[0-9]+$`)
)

// IsIdentifier reports whether s is a short issue identifier such as
// ENG-123. Numbers with leading zeros are not identifiers.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

// IsUUID reports whether s is a canonical 8-4-4-4-12 hexadecimal UUID.
func IsUUID(s string) bool {
	if len(s) != 36 { //nolint:mnd
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// isNumber reports a bare issue number with no team prefix.
func isNumber(s string) bool {
	return numberRe.MatchString(s)
}

// FromURL extracts a reference of kind from a permalink of the form
// https://linear.app/<workspace>/<kind>/<id>[/<slug>]. Anything else,
// including a permalink for a different kind, is no match.
func FromURL(kind Kind, raw string) (Reference, bool) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Reference{}, false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return Reference{}, false
	}
	if !strings.EqualFold(u.Hostname(), Host) {
		return Reference{}, false
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 3 || Kind(segments[1]) != kind { //nolint:mnd
		return Reference{}, false
	}

	id := segments[2]
	if kind == KindIssue {
		if !IsIdentifier(id) {
			return Reference{}, false
		}
		id = strings.ToUpper(id)
	}

	return Reference{Kind: kind, ID: id}, true
}

// FromIdentifier accepts an input that directly names a resource: a short
// identifier for issues, a UUID for projects and documents.
func FromIdentifier(kind Kind, s string) (Reference, bool) {
	switch kind {
	case KindIssue:
		if IsIdentifier(s) {
			return Reference{Kind: kind, ID: strings.ToUpper(s)}, true
		}
	case KindProject, KindDocument:
		if IsUUID(s) {
			return Reference{Kind: kind, ID: s}, true
		}
	}
	return Reference{}, false
}
