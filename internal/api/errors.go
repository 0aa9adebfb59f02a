// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lnctl/lnctl/internal/config"
)

var (
	// ErrNoAPIKey is returned before any request when no key is configured.
	ErrNoAPIKey = errors.New("no API key configured")

	// ErrUnauthorized is matched by rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is matched by a 404 and by GraphQL errors reporting a
	// missing entity.
	ErrNotFound = errors.New("not found")

	// ErrNoTeam is returned by team scoped lookups without a team.
	ErrNoTeam = errors.New("no team given")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// GraphQLError carries the messages of a response "errors" member.
type GraphQLError struct {
	Messages []string
	Codes    []string
}

func (e *GraphQLError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// graphQLCodes maps extensions.code values onto sentinels.
var graphQLCodes = map[string]error{
	"AUTHENTICATION_ERROR": ErrUnauthorized,
	"FORBIDDEN":            ErrUnauthorized,
	"ENTITY_NOT_FOUND":     ErrNotFound,
	"NOT_FOUND":            ErrNotFound,
}

func (e *GraphQLError) Is(target error) bool {
	for _, code := range e.Codes {
		if graphQLCodes[code] == target {
			return true
		}
	}
	return false
}

// checkResponse maps HTTP status and GraphQL errors to Go errors. GraphQL
// reports most failures with a 200 or 400 status and an "errors" array, so
// that array is inspected first.
func checkResponse(status int, body []byte) error {
	if errs := gjson.GetBytes(body, "errors"); errs.Exists() && len(errs.Array()) > 0 {
		gqlErr := &GraphQLError{}
		for _, e := range errs.Array() {
			gqlErr.Messages = append(gqlErr.Messages, e.Get("message").String())
			if code := e.Get("extensions.code").String(); code != "" {
				gqlErr.Codes = append(gqlErr.Codes, code)
			}
		}
		return gqlErr
	}

	if status < 200 || status > 299 {
		snippet := string(body)
		if len(snippet) > 200 { //nolint:mnd
			snippet = snippet[:200]
		}
		return &StatusError{StatusCode: status, Body: snippet}
	}

	return nil
}

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Operation string // e.g. "search issues", "list workflow states"
	Team      string
}

// Friendly wraps an API error with a contextual, user-friendly message while
// preserving the original error for errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	op := nonEmpty(ctx.Operation, "request")

	switch {
	case errors.Is(err, ErrNoAPIKey):
		return fmt.Errorf("%s: %w. Set %s or api_key in linear.toml", op, err, config.EnvName("api_key"))

	case errors.Is(err, ErrUnauthorized):
		return fmt.Errorf("%s: authentication failed, check %s: %w", op, config.EnvName("api_key"), err)

	case errors.Is(err, ErrNotFound):
		if ctx.Team != "" {
			return fmt.Errorf("%s: nothing found for team %q, check the team key: %w", op, ctx.Team, err)
		}
		return fmt.Errorf("%s: nothing found, check %s and the workspace: %w", op, config.EnvName("api_url"), err)
	}

	if ctx.Team != "" {
		return fmt.Errorf("%s for team %q: %w", op, ctx.Team, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
