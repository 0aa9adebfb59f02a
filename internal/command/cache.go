// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/meta"
	"github.com/lnctl/lnctl/internal/output"
)

type cacheRow struct {
	Key     string     `json:"key"`
	Path    string     `json:"path"`
	Size    int64      `json:"size"`
	Written *time.Time `json:"written"`
	Expired bool       `json:"expired"`
}

// cacheTextRow is cacheRow with human readable size and age.
type cacheTextRow struct {
	Key     string `json:"key"`
	Size    string `json:"size"`
	Age     string `json:"age"`
	Expired bool   `json:"expired"`
}

var cacheColumns = []output.Column{
	{Title: "key", Path: "key"},
	{Title: "size", Path: "size"},
	{Title: "age", Path: "age"},
	{Title: "expired", Path: "expired"},
}

func cacheListAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}

	infos := m.Cache.List()

	if cmd.String("output") == "text" {
		rows := make([]cacheTextRow, 0, len(infos))
		for _, i := range infos {
			age := "corrupt"
			if !i.Written.IsZero() {
				age = humanize.Time(i.Written)
			}
			rows = append(rows, cacheTextRow{
				Key:     i.Key,
				Size:    humanize.Bytes(uint64(i.Size)), //nolint:gosec
				Age:     age,
				Expired: i.Expired,
			})
		}
		return emit(cmd, m, rows, cacheColumns)
	}

	rows := make([]cacheRow, 0, len(infos))
	for _, i := range infos {
		row := cacheRow{Key: i.Key, Path: i.Path, Size: i.Size, Expired: i.Expired}
		if !i.Written.IsZero() {
			w := i.Written.UTC()
			row.Written = &w
		}
		rows = append(rows, row)
	}
	return emit(cmd, m, rows, nil)
}

func cacheClearAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}

	keys := cmd.Args().Slice()
	if len(keys) == 0 {
		m.Cache.ClearAll()
		log.Infof("cleared cache %s", m.Cache.Dir())
		return nil
	}

	for _, k := range keys {
		m.Cache.Clear(k)
	}
	return nil
}

func cachePurgeAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}

	n := m.Cache.Purge()
	return emit(cmd, m, fmt.Sprintf("removed %d stale %s", n, pluralize(n, "entry", "entries")), nil)
}

func cachePathAction(ctx context.Context, cmd *cli.Command) error {
	m, err := actionMeta(cmd)
	if err != nil {
		return err
	}
	if m.Cache.Dir() == "" {
		return fmt.Errorf("no cache directory available, set LINEAR_CACHE_DIR")
	}
	return emit(cmd, m, m.Cache.Dir(), nil)
}

func cacheCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "inspect and clear the lookup cache",
		Metadata: map[string]any{
			"meta": m,
		},
		Commands: []*cli.Command{
			{
				Name:    "ls",
				Aliases: []string{"list"},
				Usage:   "list cache entries",
				Before:  validateGlobalFlags,
				Action:  cacheListAction,
			},
			{
				Name:      "clear",
				Usage:     "remove the given entries, or the whole cache",
				ArgsUsage: "[KEY...]",
				Before:    validateGlobalFlags,
				Action:    cacheClearAction,
			},
			{
				Name:   "purge",
				Usage:  "remove expired and corrupt entries",
				Before: validateGlobalFlags,
				Action: cachePurgeAction,
			},
			{
				Name:   "path",
				Usage:  "print the cache directory",
				Before: validateGlobalFlags,
				Action: cachePathAction,
			},
		},
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
