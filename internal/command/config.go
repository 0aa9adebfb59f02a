// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/config"
	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/meta"
	"github.com/lnctl/lnctl/internal/output"
	"github.com/lnctl/lnctl/internal/util"
)

// secretOptions are masked unless --reveal is given.
var secretOptions = map[string]bool{"api_key": true}

type optionRow struct {
	Name   string        `json:"name"`
	Value  any           `json:"value"`
	Source config.Source `json:"source"`
	Env    string        `json:"env"`
}

var optionColumns = []output.Column{
	{Title: "name", Path: "name"},
	{Title: "value", Path: "value"},
	{Title: "source", Path: "source"},
	{Title: "env", Path: "env"},
}

type pathRow struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func explainOption(m *meta.Meta, name string, reveal bool) optionRow {
	v, src := m.Options.Explain(name, nil)
	row := optionRow{Name: name, Source: src, Env: config.EnvName(name)}
	if v != nil {
		row.Value = config.Native(v)
		if secretOptions[name] && !reveal {
			row.Value = mask(v.String())
		}
	}
	return row
}

// mask keeps the last four characters of a secret.
func mask(s string) string {
	const keep = 4
	if len(s) <= keep {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-keep) + s[len(s)-keep:]
}

// canonicalPath maps an option name to its document path. Anything else is
// taken as a literal dot-path.
func canonicalPath(key string) (string, config.Option, bool) {
	if opt, ok := config.Lookup(key); ok {
		return opt.Path, opt, true
	}
	return key, config.Option{}, false
}

func configGetAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}
	key := cmd.Args().First()
	if key == "" {
		return fmt.Errorf("missing option name or path")
	}

	if _, ok := config.Lookup(key); ok {
		row := explainOption(m, key, cmd.Bool("reveal"))
		if row.Source == config.SourceNone {
			return fmt.Errorf("option %s is not set", key)
		}
		if cmd.String("output") == "text" {
			return emit(cmd, m, output.InterfaceToString(row.Value), nil)
		}
		return emit(cmd, m, row, optionColumns)
	}

	v, ok := m.Store.Get(key)
	if !ok {
		return fmt.Errorf("%s is not set in %s", key, nonEmpty(m.Store.Source(), "any config file"))
	}
	if cmd.String("output") == "text" {
		return emit(cmd, m, v.String(), nil)
	}
	return emit(cmd, m, config.Native(v), nil)
}

func configSetAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() != 2 { //nolint:mnd
		return fmt.Errorf("usage: lnctl config set KEY VALUE")
	}

	path, opt, known := canonicalPath(cmd.Args().Get(0))
	v := config.ParseValue(cmd.Args().Get(1))

	if known && opt.Kind == config.KindBool {
		b, err := config.ParseBool(cmd.Args().Get(1))
		if err != nil {
			return fmt.Errorf("%s expects a bool: %w", opt.Name, err)
		}
		v = config.Bool(b)
	}
	if known && opt.Kind == config.KindString {
		v = config.String(cmd.Args().Get(1))
	}

	if err := m.Store.Set(path, v); err != nil {
		return err
	}
	if err := m.Store.Save(); err != nil {
		return err
	}

	log.Infof("set %s in %s", path, m.Store.Path())
	return nil
}

func configUnsetAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}
	key := cmd.Args().First()
	if key == "" {
		return fmt.Errorf("missing option name or path")
	}

	paths := []string{key}
	if _, opt, ok := canonicalPath(key); ok {
		paths = append([]string{opt.Path}, opt.Legacy...)
	}

	for _, p := range paths {
		m.Store.Unset(p)
	}

	if !m.Store.Dirty() {
		log.Infof("%s was not set", key)
		return nil
	}
	return m.Store.Save()
}

func configListAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}

	rows := make([]optionRow, 0, len(config.Options))
	for _, o := range config.Options {
		row := explainOption(m, o.Name, cmd.Bool("reveal"))
		if row.Source == config.SourceNone && !cmd.Bool("all") {
			continue
		}
		rows = append(rows, row)
	}
	return emit(cmd, m, rows, optionColumns)
}

func configPathAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}

	row := pathRow{Path: m.Store.Path(), Exists: util.Exists(m.Store.Path())}
	if cmd.String("output") == "text" {
		return emit(cmd, m, row.Path, nil)
	}
	return emit(cmd, m, row, nil)
}

func configCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "inspect and edit the configuration file",
		Metadata: map[string]any{
			"meta": m,
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print the effective value of an option or a raw path",
				ArgsUsage: "KEY",
				Flags:     []cli.Flag{newRevealFlag()},
				Before:    validateGlobalFlags,
				Action:    configGetAction,
			},
			{
				Name:      "set",
				Usage:     "store a value in the configuration file",
				ArgsUsage: "KEY VALUE",
				Before:    validateGlobalFlags,
				Action:    configSetAction,
			},
			{
				Name:      "unset",
				Usage:     "remove a value from the configuration file",
				ArgsUsage: "KEY",
				Before:    validateGlobalFlags,
				Action:    configUnsetAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "list options with their effective values and sources",
				Flags: []cli.Flag{
					newRevealFlag(),
					newAllFlag(),
				},
				Before: validateGlobalFlags,
				Action: configListAction,
			},
			{
				Name:   "path",
				Usage:  "print the configuration file path",
				Before: validateGlobalFlags,
				Action: configPathAction,
			},
		},
	}
}

func newRevealFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "reveal",
		Usage: "show secret values in full",
	}
}

func newAllFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "include unset options",
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
