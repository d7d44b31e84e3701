// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/nmlctl/nmlctl/internal/config"
	"github.com/nmlctl/nmlctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load() //nolint
	m := meta.Meta{
		Args:    args,
		Config:  cfg2,
		Context: ctx,
		Stdout:  os.Stdout,
	}

	app := tabCommandBuilder(m)
	app.Commands = []*cli.Command{
		completionCommandBuilder(m),
	}
	app.Flags = append(app.Flags,
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "nmlctl version info",
			HideDefault: true,
		},
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
