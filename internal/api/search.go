// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/reference"
)

const searchIssuesQuery = `query SearchIssues($term: String!, $first: Int, $filter: IssueFilter) {
  searchIssues(term: $term, first: $first, filter: $filter) {
    nodes { id identifier title }
  }
}`

const searchProjectsQuery = `query SearchProjects($first: Int, $filter: ProjectFilter) {
  projects(first: $first, filter: $filter) {
    nodes { id name }
  }
}`

const searchDocumentsQuery = `query SearchDocuments($term: String!, $first: Int) {
  searchDocuments(term: $term, first: $first) {
    nodes { id title }
  }
}`

// Search implements reference.Searcher. Results keep the order the API
// returns them in.
func (c *Client) Search(ctx context.Context, kind reference.Kind, term string, opts reference.SearchOptions) ([]reference.Candidate, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = reference.SearchLimit
	}

	var (
		query string
		path  string
		vars  = map[string]any{"first": limit}
	)

	switch kind {
	case reference.KindIssue:
		query, path = searchIssuesQuery, "searchIssues.nodes"
		vars["term"] = term
		if opts.Team != "" {
			vars["filter"] = map[string]any{"team": keyEq(opts.Team)}
		}
	case reference.KindProject:
		query, path = searchProjectsQuery, "projects.nodes"
		filter := map[string]any{"name": map[string]any{"containsIgnoreCase": term}}
		if opts.Team != "" {
			filter["accessibleTeams"] = map[string]any{"some": keyEq(opts.Team)}
		}
		vars["filter"] = filter
	case reference.KindDocument:
		query, path = searchDocumentsQuery, "searchDocuments.nodes"
		vars["term"] = term
		if opts.Team != "" {
			log.Debugf("document search ignores team scope %s", opts.Team)
		}
	default:
		return nil, fmt.Errorf("unsupported kind %q", kind)
	}

	data, err := c.Query(ctx, query, vars)
	if err != nil {
		return nil, Friendly(err, ErrorContext{Operation: "search " + string(kind) + "s", Team: opts.Team})
	}

	var out []reference.Candidate
	data.Get(path).ForEach(func(_, node gjson.Result) bool {
		out = append(out, reference.Candidate{
			ID:         node.Get("id").String(),
			Identifier: node.Get("identifier").String(),
			Title:      node.Get("title").String(),
			Name:       node.Get("name").String(),
		})
		return len(out) < limit
	})

	return out, nil
}

func keyEq(team string) map[string]any {
	return map[string]any{"key": map[string]any{"eq": team}}
}
