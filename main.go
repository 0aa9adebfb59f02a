// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/lnctl/lnctl/internal/command"
	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// deduplicateFlags drops repeated flags so the last occurrence wins. A flag
// without "=" takes the following token as its value unless that token is
// another flag or the flag is one of boolFlags. Positional arguments and
// everything after "--" are kept as given.
func deduplicateFlags(args []string, boolFlags ...string) []string {
	if len(args) <= 1 {
		return args
	}

	type unit struct {
		key    string
		tokens []string
	}

	var units []unit
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if tok == "--" {
			units = append(units, unit{tokens: rest[i:]})
			break
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			units = append(units, unit{tokens: []string{tok}})
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		u := unit{key: name, tokens: []string{tok}}
		if !hasValue && !slices.Contains(boolFlags, name) &&
			i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			u.tokens = append(u.tokens, rest[i+1])
			i++
		}
		units = append(units, u)
	}

	last := map[string]int{}
	for i, u := range units {
		if u.key != "" {
			last[u.key] = i
		}
	}

	out := []string{args[0]}
	for i, u := range units {
		if u.key != "" && last[u.key] != i {
			continue
		}
		out = append(out, u.tokens...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, os.Stdout) {
		return 0
	}

	args = handleNakedCommand(args)

	// Completion scripts take plain positional arguments.
	if len(args) < 2 || args[1] != "completion" {
		args = deduplicateFlags(args, command.BoolFlagNames()...)
		log.Debugf("args after dedup: args=%v", args)
	}

	return initAndRunApp(args)
}
