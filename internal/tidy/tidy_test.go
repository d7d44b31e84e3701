// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tidy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmlctl/nmlctl/internal/namelist"
)

// loadFixture writes content to name under dir, parses it and registers it in
// ds under its path.
func loadFixture(t *testing.T, ds *namelist.DocumentSet, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	doc, _, err := namelist.ParseString(content)
	require.NoError(t, err)
	ds.Set(path, doc)
	return path
}

func newTestLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

func TestOverwrite_RewritesSortedCanonicalForm(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ds := namelist.NewDocumentSet()
	path := loadFixture(t, ds, dir, "messy.nml",
		"! header comment\n&zz\n B = 2\n  a=1\n/\n&aa\n c = 'x'\n/\n")

	count := Overwrite(newDiscardLogger(), ds, 0)
	assert.Equal(t, 1, count)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "&aa\n" +
		"    c = 'x'\n" +
		"/\n" +
		"\n" +
		"&zz\n" +
		"    a = 1\n" +
		"    b = 2\n" +
		"/\n"
	assert.Equal(t, want, string(got))

	// No temporary file is left behind.
	_, err = os.Stat(path + "-tmp")
	assert.True(t, os.IsNotExist(err))

	// The rewritten file parses back.
	_, _, err = namelist.ParseString(string(got))
	assert.NoError(t, err)
}

func TestOverwrite_SkipsSourcesWithoutData(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ds := namelist.NewDocumentSet()
	content := "no namelist data in this file\n"
	path := loadFixture(t, ds, dir, "empty.nml", content)

	count := Overwrite(newDiscardLogger(), ds, 0)
	assert.Equal(t, 0, count)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestOverwrite_FailureWarnsAndContinues(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ds := namelist.NewDocumentSet()

	blockedContent := "&zz\n b = 2\n/\n"
	blocked := loadFixture(t, ds, dir, "blocked.nml", blockedContent)
	fine := loadFixture(t, ds, dir, "fine.nml", "&aa\n a = 1\n/\n")

	// A directory at the temporary path makes the first write fail.
	require.NoError(t, os.Mkdir(blocked+"-tmp", 0o755))

	logger, h := newTestLogger()
	count := Overwrite(logger, ds, 0)
	assert.Equal(t, 1, count)

	// The blocked original is untouched and the warning names both paths.
	got, err := os.ReadFile(blocked)
	require.NoError(t, err)
	assert.Equal(t, blockedContent, string(got))

	var warned string
	for _, e := range h.Entries {
		if e.Level == log.WarnLevel {
			warned = e.Message
		}
	}
	assert.Contains(t, warned, blocked)
	assert.Contains(t, warned, blocked+"-tmp")
	assert.Contains(t, warned, "file left untouched")

	// The second file was still rewritten.
	got, err = os.ReadFile(fine)
	require.NoError(t, err)
	assert.Equal(t, "&aa\n    a = 1\n/\n", string(got))
}

func TestOverwrite_HonorsColumnWidth(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ds := namelist.NewDocumentSet()
	path := loadFixture(t, ds, dir, "wide.nml", "&g\n x = 11111, 22222, 33333\n/\n")

	count := Overwrite(newDiscardLogger(), ds, 20)
	assert.Equal(t, 1, count)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "&g\n    x = 11111, 22222,\n        33333\n/\n", string(got))
}

func newDiscardLogger() *log.Logger {
	return &log.Logger{Handler: memory.New(), Level: log.ErrorLevel}
}
