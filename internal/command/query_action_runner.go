// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/meta"
	"github.com/lnctl/lnctl/internal/output"
)

// QueryActionRunner[T] encapsulates the common lookup action pattern. It
// handles the meta, tldr and output steps, with data fetching provided by
// FetchFn.
type QueryActionRunner[T any] struct {
	CommandName string
	Columns     []output.Column
	FetchFn     func(context.Context, *cli.Command, *meta.Meta) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}

	results, err := qar.FetchFn(ctx, cmd, m)
	if err != nil {
		return err
	}
	log.Debugf("%s: %d results", qar.CommandName, len(results))

	if results == nil {
		results = []T{}
	}
	return emit(cmd, m, results, qar.Columns)
}

// NewQueryActionRunner creates a QueryActionRunner with the provided
// configuration.
func NewQueryActionRunner[T any](
	commandName string,
	columns []output.Column,
	fetchFn func(context.Context, *cli.Command, *meta.Meta) ([]T, error),
) *QueryActionRunner[T] {
	return &QueryActionRunner[T]{
		CommandName: commandName,
		Columns:     columns,
		FetchFn:     fetchFn,
	}
}
