// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/lnctl/lnctl/internal/log"
)

// SearchLimit caps how many candidates a free-text search returns.
const SearchLimit = 10

// Candidate is one search hit. Identifier and Title are set for issues,
// Name for projects and Title for documents.
type Candidate struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier,omitempty"`
	Title      string `json:"title,omitempty"`
	Name       string `json:"name,omitempty"`
}

// Label is the text shown when choosing between candidates.
func (c Candidate) Label() string {
	if c.Identifier != "" {
		return c.Identifier + ": " + c.Title
	}
	if c.Name != "" {
		return c.Name
	}
	return c.Title
}

// Reference converts the candidate into a reference of kind.
func (c Candidate) Reference(kind Kind) Reference {
	if kind == KindIssue && c.Identifier != "" {
		return Reference{Kind: kind, ID: strings.ToUpper(c.Identifier)}
	}
	return Reference{Kind: kind, ID: c.ID}
}

// SearchOptions narrows a search.
type SearchOptions struct {
	Team  string
	Limit int
}

// Searcher runs a free-text search against the remote API.
type Searcher interface {
	Search(ctx context.Context, kind Kind, term string, opts SearchOptions) ([]Candidate, error)
}

// Chooser asks the user to pick one of labels and returns its index.
type Chooser func(ctx context.Context, prompt string, labels []string) (int, error)

// TeamFunc returns the team used to complete a bare issue number. The
// argument is the caller's explicit team, if any.
type TeamFunc func(explicit string) (string, bool)

// Options control a single resolution.
type Options struct {
	// Team scopes searches and completes bare issue numbers. When empty the
	// resolver's TeamFunc supplies the default team.
	Team string
	// Interactive lets the Chooser settle ambiguous searches. Otherwise the
	// first result wins.
	Interactive bool
}

// Resolver turns loosely typed user input into a Reference.
type Resolver struct {
	searcher Searcher
	chooser  Chooser
	team     TeamFunc
}

// NewResolver returns a Resolver. chooser may be nil, in which case
// interactive resolution falls back to the first result. team may be nil,
// in which case only an explicit team completes bare numbers.
func NewResolver(searcher Searcher, chooser Chooser, team TeamFunc) *Resolver {
	if team == nil {
		team = func(explicit string) (string, bool) { return explicit, explicit != "" }
	}
	return &Resolver{searcher: searcher, chooser: chooser, team: team}
}

// Issue resolves input as an issue.
func (r *Resolver) Issue(ctx context.Context, input string, opts Options) (Reference, error) {
	return r.Resolve(ctx, KindIssue, input, opts)
}

// Project resolves input as a project.
func (r *Resolver) Project(ctx context.Context, input string, opts Options) (Reference, error) {
	return r.Resolve(ctx, KindProject, input, opts)
}

// Document resolves input as a document.
func (r *Resolver) Document(ctx context.Context, input string, opts Options) (Reference, error) {
	return r.Resolve(ctx, KindDocument, input, opts)
}

// Resolve tries, in order, a permalink URL, a direct identifier and finally a
// free-text search. A search with no hits returns a *NotFoundError.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, input string, opts Options) (Reference, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Reference{}, &NotFoundError{Kind: kind, Input: input}
	}

	if ref, ok := FromURL(kind, input); ok {
		log.Debugf("resolved %s from url: %s", kind, ref.ID)
		return ref, nil
	}

	if ref, ok := FromIdentifier(kind, input); ok {
		log.Debugf("resolved %s directly: %s", kind, ref.ID)
		return ref, nil
	}

	if kind == KindIssue && isNumber(input) {
		team, ok := r.team(opts.Team)
		if !ok || team == "" {
			return Reference{}, fmt.Errorf("%w: cannot resolve issue number %s, set team_id or pass a team", ErrNoDefaultTeam, input)
		}
		if ref, ok := FromIdentifier(kind, team+"-"+input); ok {
			log.Debugf("resolved issue number with team %s: %s", team, ref.ID)
			return ref, nil
		}
	}

	return r.search(ctx, kind, input, opts)
}

func (r *Resolver) search(ctx context.Context, kind Kind, term string, opts Options) (Reference, error) {
	if r.searcher == nil {
		return Reference{}, &NotFoundError{Kind: kind, Input: term}
	}

	team := opts.Team
	if t, ok := r.team(opts.Team); ok && t != "" {
		team = t
	}

	candidates, err := r.searcher.Search(ctx, kind, term, SearchOptions{Team: team, Limit: SearchLimit})
	if err != nil {
		return Reference{}, fmt.Errorf("failed to search %ss for %q: %w", kind, term, err)
	}
	if len(candidates) > SearchLimit {
		candidates = candidates[:SearchLimit]
	}

	log.Debugf("search %s %q: %d candidates", kind, term, len(candidates))

	switch {
	case len(candidates) == 0:
		return Reference{}, &NotFoundError{Kind: kind, Input: term}
	case len(candidates) == 1 || !opts.Interactive:
		return candidates[0].Reference(kind), nil
	case r.chooser == nil:
		log.Debugf("no chooser available, taking first %s candidate", kind)
		return candidates[0].Reference(kind), nil
	}

	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label()
	}

	idx, err := r.chooser(ctx, fmt.Sprintf("Which %s did you mean?", kind), labels)
	if err != nil {
		return Reference{}, err
	}
	if idx < 0 || idx >= len(candidates) {
		return Reference{}, fmt.Errorf("choice %d out of range for %d candidates", idx, len(candidates))
	}

	return candidates[idx].Reference(kind), nil
}
