// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ builds supersets of namelist document sets and reduces them
// to their semantic differences.
package differ
