// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package namelist

import (
	"io"
	"strings"
)

// DefaultColumnWidth is the line width Write aims for when WriteOptions
// leaves ColumnWidth zero.
const DefaultColumnWidth = 72

// WriteOptions controls Write.
type WriteOptions struct {
	// SortByName orders groups and variables alphabetically instead of by
	// document order.
	SortByName bool

	// ColumnWidth is the target line width for wrapping list values.
	// Zero means DefaultColumnWidth. Single values are never split.
	ColumnWidth int
}

const indent = "    "

// Write serializes doc as Fortran namelist text. Groups are separated by a
// blank line; each variable is written as one assignment, with long lists
// wrapped onto continuation lines aligned under the first value. The output
// parses back to an equal document.
func Write(w io.Writer, doc *Document, opts WriteOptions) error {
	width := opts.ColumnWidth
	if width <= 0 {
		width = DefaultColumnWidth
	}

	groups := doc.Names()
	if opts.SortByName {
		groups = doc.SortedNames()
	}

	var sb strings.Builder
	for i, gname := range groups {
		if i > 0 {
			sb.WriteByte('\n')
		}
		group, _ := doc.Get(gname)
		sb.WriteString("&")
		sb.WriteString(gname)
		sb.WriteString("\n")

		vars := group.Names()
		if opts.SortByName {
			vars = group.SortedNames()
		}
		for _, vname := range vars {
			val, _ := group.Get(vname)
			writeVariable(&sb, vname, val, width)
		}
		sb.WriteString("/\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeVariable(sb *strings.Builder, name string, val Value, width int) {
	prefix := indent + name + " = "

	list, ok := val.(List)
	if !ok {
		sb.WriteString(prefix)
		sb.WriteString(val.String())
		sb.WriteString("\n")
		return
	}

	cont := strings.Repeat(" ", len(prefix))
	line := prefix
	for i, v := range list {
		piece := v.String()
		if i > 0 {
			if len(line)+len(", ")+len(piece) > width {
				sb.WriteString(line)
				sb.WriteString(",\n")
				line = cont
			} else {
				line += ", "
			}
		}
		line += piece
	}
	sb.WriteString(line)
	sb.WriteString("\n")
}
