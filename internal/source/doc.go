// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves namelist file paths into parsed document sets and
// pre-filters runs of byte-identical files.
package source
