// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks the combination of global flags before an
// action runs.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.String("output") != "text" && (c.Bool("titles") || c.Bool("color")) {
		return fmt.Errorf("--titles and --color only apply to text output")
	}
	return nil
}

// validateGlobalFlags is the Before hook of every leaf command.
func validateGlobalFlags(ctx context.Context, c *cli.Command) (context.Context, error) {
	return ctx, GlobalFlagsValidator(ctx, c)
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}
