// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/nmlctl/nmlctl/internal/namelist"
)

// Load reads and parses every path into a document set keyed by path, in
// argument order. A path given more than once is loaded only the first time.
// Repeated groups within a file and files with no namelist data are reported
// on logger as warnings; an unreadable or unparseable file aborts the whole
// load.
func Load(logger log.Interface, paths []string) (*namelist.DocumentSet, error) {
	ds := namelist.NewDocumentSet()

	for _, path := range paths {
		if ds.Has(path) {
			logger.Debugf("skipping repeated path %s", path)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		logger.Debugf("read %s (%s)", path, humanize.Bytes(uint64(len(data))))

		doc, repeats, err := namelist.ParseString(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, r := range repeats {
			logger.Warnf("&%s occurs %d times in %s. Using only the first instance of this group.",
				r.Name, r.Count, path)
		}
		if doc.Len() == 0 {
			logger.Warnf("%s does not contain any namelist data", path)
		}

		ds.Set(path, doc)
	}

	return ds, nil
}
