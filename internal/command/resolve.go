// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/meta"
	"github.com/lnctl/lnctl/internal/reference"
)

// resolveAction returns the action resolving the command's arguments as a
// reference of kind. Multiple arguments are joined into one search term.
func resolveAction(kind reference.Kind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		m, err := actionMeta(cmd)
		if err != nil {
			return err
		}

		input := strings.Join(cmd.Args().Slice(), " ")
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("missing %s url, identifier or search text", kind)
		}

		ref, err := m.Refs.Resolve(ctx, kind, input, refOptions(cmd, m))
		if err != nil {
			return err
		}

		if cmd.String("output") == "text" {
			return emit(cmd, m, ref.ID, nil)
		}
		return emit(cmd, m, ref, nil)
	}
}

func resolveCommandBuilder(m *meta.Meta) *cli.Command {
	var cmds []*cli.Command
	for _, kind := range reference.Kinds {
		cmds = append(cmds, &cli.Command{
			Name:      string(kind),
			Usage:     fmt.Sprintf("resolve a %s url, identifier or search text", kind),
			ArgsUsage: "INPUT",
			Before:    validateGlobalFlags,
			Action:    resolveAction(kind),
		})
	}

	return &cli.Command{
		Name:  "resolve",
		Usage: "turn a url, identifier or search text into a canonical reference",
		Metadata: map[string]any{
			"meta": m,
		},
		Commands: cmds,
	}
}
