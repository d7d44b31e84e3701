// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tidy

import (
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/nmlctl/nmlctl/internal/namelist"
)

// Overwrite rewrites every source file of ds in canonical form: groups and
// variables sorted alphabetically, one assignment per line, long lists
// wrapped at columnWidth (zero means the default width). Each file is
// written to a '-tmp' sibling first and only replaces the original once the
// write succeeds; on failure the original is left untouched, a warning names
// the leftover temporary, and the remaining files are still processed.
// Sources with no namelist data are skipped. Returns the number of files
// rewritten.
func Overwrite(logger log.Interface, ds *namelist.DocumentSet, columnWidth int) int {
	count := 0
	for _, src := range ds.Sources() {
		doc, _ := ds.Get(src)
		if doc.Len() == 0 {
			logger.Debugf("skipping %s: no namelist data", src)
			continue
		}

		tmp := src + "-tmp"
		if err := writeCanonical(tmp, doc, columnWidth); err != nil {
			warnLeftover(logger, err, src, tmp)
			continue
		}
		if err := os.Rename(tmp, src); err != nil {
			warnLeftover(logger, err, src, tmp)
			continue
		}

		count++
		if info, err := os.Stat(src); err == nil {
			logger.Debugf("tidied %s (%s)", src, humanize.Bytes(uint64(info.Size())))
		}
	}
	return count
}

func warnLeftover(logger log.Interface, err error, src, tmp string) {
	logger.Warnf("error %v tidying '%s'; file left untouched. Delete part-converted file '%s' before trying again.",
		err, src, tmp)
}

func writeCanonical(path string, doc *namelist.Document, columnWidth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := namelist.WriteOptions{SortByName: true, ColumnWidth: columnWidth}
	if err := namelist.Write(f, doc, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
