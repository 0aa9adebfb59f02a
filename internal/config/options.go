// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lnctl/lnctl/internal/log"
)

// EnvPrefix namespaces the environment variable of every option.
const EnvPrefix = "LINEAR"

// Kind is the value kind of an option.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

func (k Kind) String() string {
	if k == KindBool {
		return "bool"
	}
	return "string"
}

// Option describes one resolvable setting: the canonical name, where it
// lives in the document, its kind and an optional compiled-in default.
// Legacy lists older flat paths still honored when Path is absent.
type Option struct {
	Name    string
	Path    string
	Legacy  []string
	Kind    Kind
	Default Value
	Usage   string
}

// Options is the descriptor table. Every resolvable name appears exactly
// once.
var Options = []Option{
	{Name: "api_key", Path: "api_key", Usage: "personal API key"},
	{Name: "api_url", Path: "api.url", Legacy: []string{"api_url"}, Default: String("https://api.linear.app/graphql"), Usage: "GraphQL endpoint"},
	{Name: "cache_enabled", Path: "cache.enabled", Legacy: []string{"cache_enabled"}, Kind: KindBool, Usage: "enable the lookup cache"},
	{Name: "download_images", Path: "download_images", Kind: KindBool, Default: Bool(true), Usage: "download images referenced by issues"},
	{Name: "hyperlink_format", Path: "hyperlink_format", Usage: "terminal hyperlink template"},
	{Name: "issue_sort", Path: "issue_sort", Default: String("manual"), Usage: "issue list sort order"},
	{Name: "team_id", Path: "team_id", Usage: "default team key"},
	{Name: "vcs", Path: "vcs", Default: String("git"), Usage: "version control system"},
	{Name: "workspace", Path: "workspace", Usage: "workspace url key"},
}

// Lookup returns the descriptor for name.
func Lookup(name string) (Option, bool) {
	for _, o := range Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// EnvName returns the environment variable consulted for the option name,
// e.g. cache_enabled -> LINEAR_CACHE_ENABLED.
func EnvName(name string) string {
	return EnvPrefix + "_" + strings.ToUpper(name)
}

// Source tells which layer produced a resolved value.
type Source string

const (
	SourceNone     Source = ""
	SourceOverride Source = "override"
	SourceEnv      Source = "env"
	SourceFile     Source = "file"
	SourceDefault  Source = "default"
)

// Getter is the read side of the configuration document.
type Getter interface {
	Get(path string) (Value, bool)
}

// EnvFunc looks up an environment variable.
type EnvFunc func(key string) (string, bool)

// Resolver determines effective option values. Nothing is memoized: every
// call reads the current environment and document.
type Resolver struct {
	doc       Getter
	lookupEnv EnvFunc
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithEnv replaces os.LookupEnv.
func WithEnv(fn EnvFunc) ResolverOption {
	return func(r *Resolver) {
		r.lookupEnv = fn
	}
}

// NewResolver returns a Resolver reading through doc. A nil doc behaves as an
// empty document.
func NewResolver(doc Getter, opts ...ResolverOption) *Resolver {
	r := &Resolver{doc: doc, lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Explain resolves name and reports which layer won. Precedence is the
// explicit override, then the environment, then the document, then the
// compiled-in default. A nil override means none was given.
func (r *Resolver) Explain(name string, override Value) (Value, Source) {
	opt, ok := Lookup(name)
	if !ok {
		log.Debugf("unknown option: %s", name)
		return nil, SourceNone
	}

	if override != nil {
		return override, SourceOverride
	}

	if raw, ok := r.lookupEnv(EnvName(name)); ok && raw != "" {
		if opt.Kind == KindBool {
			return Bool(parseBool(raw)), SourceEnv
		}
		return String(raw), SourceEnv
	}

	if r.doc != nil {
		for _, path := range append([]string{opt.Path}, opt.Legacy...) {
			if v, ok := r.doc.Get(path); ok {
				if opt.Kind == KindBool {
					return coerceBool(v), SourceFile
				}
				return v, SourceFile
			}
		}
	}

	if opt.Default != nil {
		return opt.Default, SourceDefault
	}

	return nil, SourceNone
}

// Resolve returns the effective value of name, or false when no layer
// defines it.
func (r *Resolver) Resolve(name string, override Value) (Value, bool) {
	v, src := r.Explain(name, override)
	return v, src != SourceNone
}

// String resolves name as a string. A single override may be given; an
// empty override counts as not given.
func (r *Resolver) String(name string, override ...string) (string, bool) {
	var o Value
	if len(override) == 1 && override[0] != "" {
		o = String(override[0])
	}
	v, ok := r.Resolve(name, o)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Bool resolves name as a bool. A single override may be given.
func (r *Resolver) Bool(name string, override ...bool) (bool, bool) {
	var o Value
	if len(override) == 1 {
		o = Bool(override[0])
	}
	v, ok := r.Resolve(name, o)
	if !ok {
		return false, false
	}
	return bool(coerceBool(v)), true
}

// parseBool accepts "true" (any case) and "1"; everything else is false.
func parseBool(raw string) bool {
	return strings.EqualFold(raw, "true") || raw == "1"
}

// ParseBool is the strict form of the bool grammar used when writing a bool
// option: "true" and "1" are true, "false" and "0" are false, in any case.
func ParseBool(raw string) (bool, error) {
	switch {
	case parseBool(raw):
		return true, nil
	case strings.EqualFold(raw, "false") || raw == "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool %q: expected true, false, 1 or 0", raw)
}

func coerceBool(v Value) Bool {
	switch v := v.(type) {
	case Bool:
		return v
	case String:
		return Bool(parseBool(string(v)))
	case Int:
		return v == 1
	default:
		return false
	}
}
