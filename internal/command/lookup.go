// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/api"
	"github.com/lnctl/lnctl/internal/meta"
	"github.com/lnctl/lnctl/internal/output"
)

var statusColumns = []output.Column{
	{Title: "name", Path: "name"},
	{Title: "type", Path: "type"},
	{Title: "color", Path: "color"},
	{Title: "id", Path: "id"},
}

var userColumns = []output.Column{
	{Title: "name", Path: "name"},
	{Title: "display", Path: "displayName"},
	{Title: "email", Path: "email"},
	{Title: "active", Path: "active"},
	{Title: "id", Path: "id"},
}

func statesCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner("states", statusColumns,
		func(ctx context.Context, cmd *cli.Command, m *meta.Meta) ([]api.Status, error) {
			team, _ := m.Team(cmd.String("team"))
			return m.Client.WorkflowStates(ctx, team)
		},
	).Run(ctx, cmd)
}

func statusesCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner("statuses", statusColumns,
		func(ctx context.Context, _ *cli.Command, m *meta.Meta) ([]api.Status, error) {
			return m.Client.ProjectStatuses(ctx)
		},
	).Run(ctx, cmd)
}

func usersCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner("users", userColumns,
		func(ctx context.Context, _ *cli.Command, m *meta.Meta) ([]api.User, error) {
			return m.Client.Users(ctx)
		},
	).Run(ctx, cmd)
}

func statesCommandBuilder(m *meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "states",
		Usage:     "list the workflow states of a team",
		UsageText: "lnctl states [--team KEY] [options]",
		Action:    statesCommandAction,
		Meta:      m,
	}).Build()
}

func statusesCommandBuilder(m *meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "statuses",
		Usage:     "list the project statuses of the workspace",
		UsageText: "lnctl statuses [options]",
		Action:    statusesCommandAction,
		Meta:      m,
	}).Build()
}

func usersCommandBuilder(m *meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "users",
		Usage:     "list the members of the workspace",
		UsageText: "lnctl users [options]",
		Action:    usersCommandAction,
		Meta:      m,
	}).Build()
}
