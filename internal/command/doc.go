// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI for nmlctl. It wires flags, validators,
// and the actions for the root tabulation command and the completion
// subcommand.
package command
