// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output tabulates namelist document sets as plain, text, markdown
// or latex reports.
package output
