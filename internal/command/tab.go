// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/nmlctl/nmlctl/internal/config"
	"github.com/nmlctl/nmlctl/internal/differ"
	"github.com/nmlctl/nmlctl/internal/filters"
	"github.com/nmlctl/nmlctl/internal/meta"
	"github.com/nmlctl/nmlctl/internal/namelist"
	"github.com/nmlctl/nmlctl/internal/output"
	"github.com/nmlctl/nmlctl/internal/source"
	"github.com/nmlctl/nmlctl/internal/tidy"
)

// ErrDifferencesFound reports that diff mode produced output. main maps it to
// exit code 1.
var ErrDifferencesFound = errors.New("differences found")

// tabCommandAction is the action handler for the root command. It loads the
// namelist files, applies tidy, diff and prune modes, and emits the
// tabulation per common flags.
func tabCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "tab"

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one namelist file is required")
	}

	diff := cmd.Bool("diff")
	prune := cmd.Bool("prune")
	tidyMode := cmd.Bool("tidy-overwrite")

	ignored, err := resolveIgnored(cmd, prune)
	if err != nil {
		return err
	}

	// Byte-identical neighbors can be dropped before parsing. Tidy mode
	// rewrites every file, so it never pre-filters.
	if prune && !tidyMode {
		paths = source.PrunePaths(log.Log, paths)
	}

	ds, err := source.Load(log.Log, paths)
	if err != nil {
		return err
	}

	if tidyMode {
		count := tidy.Overwrite(log.Log, ds, cmd.Int("column-width"))
		log.Debugf("tidied %d of %d sources", count, ds.Len())
		return nil
	}

	if diff {
		differ.Diff(ds, cmd.String("keep"))
	}
	if prune {
		differ.Prune(ds, ignored)
	}

	opts := output.Options{
		Format:       cmd.String("format"),
		MasterSwitch: cmd.String("masterswitch"),
		Hide:         ignored,
	}
	if strings.EqualFold(opts.Format, "latex-complete") {
		opts.Heading = headingFor(diff)
		opts.URL = cmd.String("url")
	}

	out := output.Render(ds, opts)
	if out == "" {
		return nil
	}

	fmt.Fprint(m.Stdout, out)

	if diff {
		return ErrDifferencesFound
	}

	return nil
}

// tabCommandBuilder constructs the root cli.Command, wiring metadata, flags,
// and action/validator handlers.
func tabCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "nmlctl",
		Usage:     "semantically tabulate, diff and consolidate Fortran namelist files",
		UsageText: "nmlctl [options] file [file ...]",
		ArgsUsage: "file [file ...]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			diffFlag,
			pruneFlag,
			ignoreCountersFlag,
			ignoreFlag,
			tidyOverwriteFlag,
			NewFormatFlag("tab", meta.Config.Source),
			NewKeepFlag("tab", meta.Config.Source),
			NewURLFlag("tab", meta.Config.Source),
			NewMasterSwitchFlag("tab", meta.Config.Source),
			NewColumnWidthFlag(),
		},
		Action: tabCommandAction,
	}
}

// resolveIgnored returns the variables to ignore while pruning. An explicit
// --ignore spec wins; otherwise -i selects the ignore table from the config
// file, falling back to the built-in counter set. Without --prune nothing is
// ignored.
func resolveIgnored(cmd *cli.Command, prune bool) (namelist.VarSet, error) {
	if !prune {
		return namelist.VarSet{}, nil
	}

	if spec := cmd.String("ignore"); spec != "" {
		return filters.ParseSpec(spec)
	}

	if !cmd.Bool("ignore-counters") {
		return namelist.VarSet{}, nil
	}

	if groups, err := config.GetGroupVars("ignore"); err == nil {
		vs := namelist.VarSet{}
		for group, variables := range groups {
			for _, variable := range variables {
				vs.Add(strings.ToLower(group), strings.ToLower(variable))
			}
		}
		return vs, nil
	}

	return filters.Counters(), nil
}

// headingFor returns the latex-complete heading that defines the \nmldiffer
// macro. Diff mode leaves differing variables plain since everything shown
// is a difference; otherwise they are highlighted.
func headingFor(diff bool) string {
	if diff {
		return "\n" +
			"\\newcommand{\\nmldiffer}[1]{#1} % no special display of differing variables\n" +
			"\\noindent Only differences are shown.\n" +
			"\\ignored{Greyed values} are ignored.\n"
	}
	return "\n" +
		"\\definecolor{hilite}{cmyk}{0, 0, 0.9, 0}\\newcommand{\\nmldiffer}[1]{\\colorbox{hilite}{#1}}\\setlength{\\fboxsep}{0pt}\n" +
		"\\noindent Variables that differ between the namelists are \\nmldiffer{\\textcolor{link}{highlighted}}.\n" +
		"\\ignored{Greyed values} are ignored.\n"
}
