// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli/v3"

	"github.com/nmlctl/nmlctl/internal/config"
	"github.com/nmlctl/nmlctl/internal/namelist"
)

var (
	diffFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "diff",
		Aliases: []string{"d"},
		Usage:   "only show semantic differences (default: show all)",
		Value:   false,
	}

	pruneFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "prune",
		Aliases: []string{"p"},
		Usage:   "ignore all but the first in any sequence of files with semantically identical content",
		Value:   false,
	}

	ignoreCountersFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "ignore-counters",
		Aliases: []string{"i"},
		Usage:   "when pruning, ignore differences in timestep counters etc in CICE and MATM namelists, and hide them from output (except markdown)",
		Value:   false,
	}

	tidyOverwriteFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:  "tidy-overwrite",
		Usage: "OVERWRITE files with only their parsed contents, consistently formatted and sorted. All other options are ignored. USE WITH CARE!",
		Value: false,
	}

	ignoreFlag *cli.StringFlag = &cli.StringFlag{
		Name:  "ignore",
		Usage: "variables to ignore when pruning: a JSON object of name arrays or comma-separated group.variable pairs",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NMLCTL_IGNORE"),
		),
	}
)

// NewFormatFlag constructs a cli.StringFlag for the "format" flag, optionally
// namespaced to a command and config file. params[1] is the config file.
func NewFormatFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"F"},
		Usage:   "report format: plain, text, text-tight, markdown, latex or latex-complete",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NMLCTL_FORMAT"),
		),
		Value: "plain",
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewKeepFlag constructs a cli.StringFlag for the "keep" flag, optionally
// namespaced to a command and config file. params[1] is the config file.
func NewKeepFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "keep",
		Aliases: []string{"k"},
		Usage:   "variable to always keep in diff, unless it's the only one in a group, e.g. 'use_this_module'",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NMLCTL_KEEP"),
		),
		Value: "",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewURLFlag constructs a cli.StringFlag for the "url" flag, optionally
// namespaced to a command and config file. params[1] is the config file.
func NewURLFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "url",
		Aliases: []string{"u"},
		Usage:   "link variable and group names in latex-complete output to this URL followed by the name, e.g. https://github.com/COSIMA/libaccessom2/search?q=",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NMLCTL_URL"),
		),
		Value: "",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewMasterSwitchFlag constructs a cli.StringFlag for the "masterswitch"
// flag, optionally namespaced to a command and config file. params[1] is the
// config file.
func NewMasterSwitchFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "masterswitch",
		Usage: "variable that disables its group when false; latex output greys the group's other values",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NMLCTL_MASTERSWITCH"),
		),
		Value: "use_this_module",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewColumnWidthFlag constructs the column-width flag, defaulting from the
// config file's column_width key when present.
func NewColumnWidthFlag() *cli.IntFlag {
	width, _ := config.GetInt("column_width", namelist.DefaultColumnWidth)
	return &cli.IntFlag{
		Name:  "column-width",
		Usage: "wrap value lists at this column with --tidy-overwrite",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NMLCTL_COLUMN_WIDTH"),
		),
		Value: int64(width),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := altsrc.YAML(ns+"."+flag.Name, path)
	flag.Sources.Chain = append(flag.Sources.Chain, src.Chain...)

	src = altsrc.YAML(flag.Name, path)
	flag.Sources.Chain = append(flag.Sources.Chain, src.Chain...)

	return flag
}
