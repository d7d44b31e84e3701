// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters parses ignore specifications into sets of namelist
// variables.
//
// An ignore specification names group/variable pairs that pruning should
// disregard when judging whether two namelist files are effectively
// identical, and that the report renderers hide. Two forms are accepted:
//
//   - JSON object form, for anything nontrivial:
//     {"setup_nml": ["istep0"], "coupling": ["inidate", "runtime"]}
//     Each key is a group name and each value an array of variable names
//     within that group.
//
//   - Dotted pair form, for quick command lines:
//     setup_nml.istep0,coupling.inidate
//     Comma-separated group.variable pairs; blank entries are skipped.
//
// Group and variable names are lowercased in both forms, matching the case
// folding the parser applies to namelist input.
//
// When no specification is given, callers typically fall back to Counters,
// the built-in set of per-run counter variables (time steps, start dates)
// that legitimately differ between otherwise identical model runs.
package filters
