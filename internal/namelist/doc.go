// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package namelist models Fortran namelist documents and parses and writes
// their on-disk representation.
package namelist
