// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"fmt"
	"os"

	"github.com/lnctl/lnctl/internal/api"
	"github.com/lnctl/lnctl/internal/cacheutil"
	"github.com/lnctl/lnctl/internal/config"
	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/prompt"
	"github.com/lnctl/lnctl/internal/reference"
)

// Meta contains runtime state shared by commands. It is built once per
// process and carries CLI arguments, the loaded configuration, the option
// resolver, the lookup cache, the API client and the reference resolver.
type Meta struct {
	Args        []string
	Context     context.Context
	StartingDir string

	Store   *config.Store
	Options *config.Resolver
	Cache   *cacheutil.Cache
	Client  *api.Client
	Refs    *reference.Resolver

	// NoCache disables the cache for this process regardless of
	// configuration.
	NoCache bool
}

// New loads the configuration for dir and wires everything that depends on
// it. Nothing talks to the network here.
func New(ctx context.Context, args []string, dir string) (*Meta, error) {
	m := &Meta{
		Args:        args,
		Context:     ctx,
		StartingDir: dir,
	}

	m.Store = config.NewStore(config.WithWorkDir(dir))
	if err := m.Store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	m.Options = config.NewResolver(m.Store)

	cacheDir, ok := cacheutil.Dir()
	if !ok {
		log.Debug("no cache directory available, caching disabled")
	}
	enabled := cacheutil.EnabledFrom(m.Options)
	m.Cache = cacheutil.New(cacheDir, func() bool { return !m.NoCache && enabled() })

	endpoint, _ := m.Options.String("api_url")
	key, _ := m.Options.String("api_key")
	m.Client = api.NewClient(endpoint, key, api.WithCache(m.Cache))

	m.Refs = reference.NewResolver(m.Client, prompt.Choose, m.Team)

	return m, nil
}

// NewFromCwd is New rooted at the process working directory.
func NewFromCwd(ctx context.Context, args []string) (*Meta, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return New(ctx, args, dir)
}

// Team resolves team_id with explicit as the override.
func (m *Meta) Team(explicit string) (string, bool) {
	return m.Options.String("team_id", explicit)
}

// Interactive reports whether ambiguous lookups may prompt the user.
func (m *Meta) Interactive() bool {
	return prompt.IsInteractive()
}
