// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	"github.com/urfave/cli/v3"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

// NewGlobalFlags returns the flags every command accepts. They are declared
// once on the root command and inherited by subcommands.
func NewGlobalFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "bypass the lookup cache for this invocation",
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LINEAR_OUTPUT"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
		},
		&cli.StringFlag{
			Name:  "team",
			Usage: "team key. Overrides team_id",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// pathHas checks if target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}

// BoolFlagNames lists every name and alias of the boolean flags so argument
// preprocessing knows they take no value.
func BoolFlagNames() []string {
	flags := append(NewGlobalFlags(), tldrFlag, newRevealFlag(), newAllFlag())

	var names []string
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			names = append(names, f.Names()...)
		}
	}
	return append(names, "version", "v", "help", "h")
}
