// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lnctl/lnctl/internal/cacheutil"
)

// Status is a workflow state of a team or a project status of the
// workspace.
type Status struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

// User is a workspace member.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Active      bool   `json:"active"`
}

const workflowStatesQuery = `query WorkflowStates($team: String!) {
  workflowStates(first: 250, filter: { team: { key: { eq: $team } } }) {
    nodes { id name type color position }
  }
}`

const projectStatusesQuery = `query ProjectStatuses {
  projectStatuses(first: 250) {
    nodes { id name type color position }
  }
}`

const usersQuery = `query Users {
  users(first: 250) {
    nodes { id name displayName email active }
  }
}`

// WorkflowStates returns the workflow states of team ordered by position.
func (c *Client) WorkflowStates(ctx context.Context, team string) ([]Status, error) {
	if team == "" {
		return nil, Friendly(ErrNoTeam, ErrorContext{Operation: "list workflow states"})
	}
	team = strings.ToUpper(team)

	key := cacheutil.Key("workflow-states", cacheutil.TeamScope(team))
	return readThrough(c, key, func() ([]Status, error) {
		data, err := c.Query(ctx, workflowStatesQuery, map[string]any{"team": team})
		if err != nil {
			return nil, Friendly(err, ErrorContext{Operation: "list workflow states", Team: team})
		}
		return parseStatuses(data.Get("workflowStates.nodes")), nil
	})
}

// ProjectStatuses returns the workspace project statuses ordered by
// position.
func (c *Client) ProjectStatuses(ctx context.Context) ([]Status, error) {
	key := cacheutil.Key("project-statuses", cacheutil.WorkspaceScope())
	return readThrough(c, key, func() ([]Status, error) {
		data, err := c.Query(ctx, projectStatusesQuery, nil)
		if err != nil {
			return nil, Friendly(err, ErrorContext{Operation: "list project statuses"})
		}
		return parseStatuses(data.Get("projectStatuses.nodes")), nil
	})
}

// Users returns the workspace members ordered by name.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	key := cacheutil.Key("users", cacheutil.WorkspaceScope())
	return readThrough(c, key, func() ([]User, error) {
		data, err := c.Query(ctx, usersQuery, nil)
		if err != nil {
			return nil, Friendly(err, ErrorContext{Operation: "list users"})
		}

		var users []User
		data.Get("users.nodes").ForEach(func(_, n gjson.Result) bool {
			users = append(users, User{
				ID:          n.Get("id").String(),
				Name:        n.Get("name").String(),
				DisplayName: n.Get("displayName").String(),
				Email:       n.Get("email").String(),
				Active:      n.Get("active").Bool(),
			})
			return true
		})
		sort.SliceStable(users, func(i, j int) bool { return users[i].Name < users[j].Name })
		return users, nil
	})
}

func parseStatuses(nodes gjson.Result) []Status {
	var out []Status
	nodes.ForEach(func(_, n gjson.Result) bool {
		out = append(out, Status{
			ID:       n.Get("id").String(),
			Name:     n.Get("name").String(),
			Type:     n.Get("type").String(),
			Color:    n.Get("color").String(),
			Position: n.Get("position").Float(),
		})
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// readThrough serves key from the cache, falling back to fetch and storing
// its result on a miss. Fetch errors are never cached.
func readThrough[T any](c *Client, key string, fetch func() (T, error)) (T, error) {
	if v, ok := cacheutil.Read[T](c.cache, key); ok {
		return v, nil
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	cacheutil.Write(c.cache, key, v)
	return v, nil
}
