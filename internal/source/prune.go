// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// PrunePaths drops every path whose file content is byte-identical to the
// most recently kept file, so runs of exact copies collapse to their first
// member before any parsing happens. Unreadable paths are dropped silently.
// The comparison is content equality, not semantic equality; reformatted
// copies survive and are left to the semantic prune.
func PrunePaths(logger log.Interface, paths []string) []string {
	kept := make([]string, 0, len(paths))
	var lastKept []byte

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Debugf("skipping %s: %v", path, err)
			continue
		}

		if len(kept) > 0 && bytes.Equal(data, lastKept) {
			logger.Debugf("dropping %s: identical to %s", path, kept[len(kept)-1])
			continue
		}

		logger.Debugf("keeping %s (%s)", path, humanize.Bytes(uint64(len(data))))
		kept = append(kept, path)
		lastKept = data
	}

	return kept
}
