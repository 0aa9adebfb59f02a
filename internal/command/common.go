// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/meta"
	"github.com/lnctl/lnctl/internal/output"
	"github.com/lnctl/lnctl/internal/reference"
)

// GetMeta returns the meta.Meta stored in the Metadata of cmd or its
// nearest ancestor. It returns nil when none is found.
func GetMeta(cmd *cli.Command) *meta.Meta {
	if cmd == nil {
		return nil
	}
	for _, c := range cmd.Lineage() {
		if c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(*meta.Meta); ok {
			return m
		}
	}
	return nil
}

// actionMeta is GetMeta plus the per-invocation switches taken from the
// global flags.
func actionMeta(cmd *cli.Command) (*meta.Meta, error) {
	m := GetMeta(cmd)
	if m == nil {
		return nil, fmt.Errorf("command %s has no runtime metadata", cmd.Name)
	}
	m.NoCache = cmd.Bool("no-cache")
	log.Debugf("Executing action for %v", m.Args[min(1, len(m.Args)):])
	return m, nil
}

// outputOptions maps the global output flags onto output.Options.
func outputOptions(cmd *cli.Command, m *meta.Meta) output.Options {
	opts := output.Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
		Sort:   cmd.String("sort"),
		Filter: cmd.String("filter"),
	}
	if m != nil && m.Store != nil {
		opts.Colors = m.Store
	}
	return opts
}

// emit writes data to the command's writer in the requested format.
func emit(cmd *cli.Command, m *meta.Meta, data any, cols []output.Column) error {
	return output.Spit(cmd.Root().Writer, data, cols, outputOptions(cmd, m))
}

// refOptions builds the reference resolution options for cmd.
func refOptions(cmd *cli.Command, m *meta.Meta) reference.Options {
	return reference.Options{
		Team:        cmd.String("team"),
		Interactive: m.Interactive(),
	}
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr lnctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "lnctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
