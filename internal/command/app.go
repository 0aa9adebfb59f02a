// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/config"
	"github.com/lnctl/lnctl/internal/meta"
)

// InitApp loads the configuration and builds the command tree. The args are
// kept on the shared meta for logging.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	m, err := meta.NewFromCwd(ctx, args)
	if err != nil {
		return nil, err
	}
	return NewApp(m), nil
}

// NewApp builds the command tree around an existing meta.
func NewApp(m *meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "lnctl",
		Usage: "Linear Control",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(NewGlobalFlags(),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "lnctl version info",
				HideDefault: true,
			},
		),
	}

	app.Commands = append(app.Commands,
		cacheCommandBuilder(m),
		configCommandBuilder(m),
		resolveCommandBuilder(m),
		statesCommandBuilder(m),
		statusesCommandBuilder(m),
		usersCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}

func optionNames() []string {
	names := make([]string, 0, len(config.Options))
	for _, o := range config.Options {
		names = append(names, o.Name)
	}
	return names
}
