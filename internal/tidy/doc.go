// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tidy rewrites namelist files in place in a sorted canonical form.
package tidy
