// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrunePaths_CollapsesRunsOfIdenticalContent verifies the
// compare-against-last-kept chain: X X Y X keeps the first X, the Y, and the
// trailing X.
func TestPrunePaths_CollapsesRunsOfIdenticalContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r1 := writeFile(t, dir, "r1.nml", "&g\n x = 1\n/\n")
	r2 := writeFile(t, dir, "r2.nml", "&g\n x = 1\n/\n")
	r3 := writeFile(t, dir, "r3.nml", "&g\n x = 2\n/\n")
	r4 := writeFile(t, dir, "r4.nml", "&g\n x = 1\n/\n")

	logger, _ := newTestLogger()
	got := PrunePaths(logger, []string{r1, r2, r3, r4})

	assert.Equal(t, []string{r1, r3, r4}, got)
}

// TestPrunePaths_DropsUnreadablePaths verifies that missing files and
// directories are dropped without affecting the chain.
func TestPrunePaths_DropsUnreadablePaths(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r1 := writeFile(t, dir, "r1.nml", "&g\n x = 1\n/\n")
	missing := filepath.Join(dir, "missing.nml")
	r2 := writeFile(t, dir, "r2.nml", "&g\n x = 1\n/\n")

	logger, _ := newTestLogger()
	got := PrunePaths(logger, []string{r1, missing, dir, r2})

	// r2 still compares against r1, the last kept file.
	assert.Equal(t, []string{r1}, got)
}

// TestPrunePaths_ComparesBytesNotSemantics verifies that reformatted copies
// survive the byte-level filter.
func TestPrunePaths_ComparesBytesNotSemantics(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r1 := writeFile(t, dir, "r1.nml", "&g\n x = 1\n/\n")
	r2 := writeFile(t, dir, "r2.nml", "&g\n x=1\n/\n")

	logger, _ := newTestLogger()
	got := PrunePaths(logger, []string{r1, r2})

	assert.Equal(t, []string{r1, r2}, got)
}

// TestPrunePaths_SmallInputs verifies the trivial cases.
func TestPrunePaths_SmallInputs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r1 := writeFile(t, dir, "r1.nml", "&g\n x = 1\n/\n")

	logger, _ := newTestLogger()
	assert.Empty(t, PrunePaths(logger, nil))
	assert.Equal(t, []string{r1}, PrunePaths(logger, []string{r1}))
}
