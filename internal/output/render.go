// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"
	"unicode/utf8"

	"github.com/nmlctl/nmlctl/internal/differ"
	"github.com/nmlctl/nmlctl/internal/namelist"
)

// Options controls Render.
type Options struct {
	// Format selects the report layout: plain (the default), text,
	// text-tight, markdown (alias md), latex or latex-complete. Unknown
	// values fall back to plain.
	Format string

	// MasterSwitch names a per-group logical that, when present and false,
	// greys out the other variables of that group in latex output.
	MasterSwitch string

	// Hide lists variables to omit from the report. Markdown ignores it.
	Hide namelist.VarSet

	// Heading is written above the table in latex-complete output.
	Heading string

	// URL, when set, turns variables into weblinks by prefixing it to the
	// variable name in latex-complete output.
	URL string
}

// Render tabulates a document set as a report string. Groups and variables
// are listed alphabetically; file columns keep document-set order. Variables
// whose values differ across the set are flagged per format. Rendering is
// read-only and deterministic, and an empty superset renders as the empty
// string for every format.
func Render(ds *namelist.DocumentSet, opts Options) string {
	format := strings.ToLower(opts.Format)

	ss := differ.Superset(ds)
	diffed := ds.Copy()
	differ.Diff(diffed, "")
	dss := differ.Superset(diffed)

	colwidth := 0
	for _, fn := range ds.Sources() {
		colwidth = max(colwidth, runeLen(fn))
	}

	switch {
	case format == "md" || format == "markdown":
		return renderMarkdown(ds, ss, colwidth)
	case strings.HasPrefix(format, "latex"):
		return renderLatex(ds, ss, dss, format, opts)
	case strings.HasPrefix(format, "text"):
		return renderText(ds, ss, dss, format == "text", opts.Hide)
	default:
		return renderPlain(ds, ss, colwidth, opts.Hide)
	}
}

// renderPlain writes one group/variable stanza per superset entry, with one
// line per file and undefined variables shown blank.
func renderPlain(ds *namelist.DocumentSet, ss *namelist.Document, colwidth int, hide namelist.VarSet) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", colwidth+2)

	for _, group := range ss.SortedNames() {
		sgroup, _ := ss.Get(group)
		for _, vname := range sgroup.SortedNames() {
			if hide.Has(group, vname) {
				continue
			}
			sb.WriteString(pad + "&" + group + "\n")
			sb.WriteString(pad + " " + vname + "\n")
			for _, fn := range ds.Sources() {
				sb.WriteString(ljust(fn, colwidth) + " : ")
				if val, ok := lookup(ds, fn, group, vname); ok {
					sb.WriteString(val.String())
				}
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// renderText writes one line per file and superset variable, prefixed with
// "* " where values differ across the set. aligned pads groups, variables
// and values into columns; text-tight leaves them ragged.
func renderText(ds *namelist.DocumentSet, ss, dss *namelist.Document, aligned bool, hide namelist.VarSet) string {
	gwidth, vwidth, dwidth := 0, 0, 0
	if aligned {
		for _, group := range ss.Names() {
			gwidth = max(gwidth, runeLen(group))
			sgroup, _ := ss.Get(group)
			for _, vname := range sgroup.Names() {
				vwidth = max(vwidth, runeLen(vname))
			}
		}
		// Value width covers the actual values, not the representatives.
		for _, fn := range ds.Sources() {
			doc, _ := ds.Get(fn)
			for _, group := range doc.Names() {
				g, _ := doc.Get(group)
				for _, vname := range g.Names() {
					val, _ := g.Get(vname)
					dwidth = max(dwidth, runeLen(val.String()))
				}
			}
		}
	}

	var sb strings.Builder
	for _, group := range ss.SortedNames() {
		sgroup, _ := ss.Get(group)
		for _, vname := range sgroup.SortedNames() {
			if hide.Has(group, vname) {
				continue
			}
			marker := "  "
			if documentHas(dss, group, vname) {
				marker = "* "
			}
			for _, fn := range ds.Sources() {
				dstr := ""
				if val, ok := lookup(ds, fn, group, vname); ok {
					dstr = val.String()
				}
				sb.WriteString(marker + "&" + ljust(group, gwidth) + "  " +
					ljust(vname, vwidth) + "  " + ljust(dstr, dwidth) + "  " + fn + "\n")
			}
		}
	}
	return sb.String()
}

// renderMarkdown writes one wide table with a column per superset variable
// and a row per file. Hidden variables are not honored here; every superset
// variable gets a column.
func renderMarkdown(ds *namelist.DocumentSet, ss *namelist.Document, colwidth int) string {
	if ss.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("| " + ljust("File", colwidth) + " | ")
	nvar := 0
	for _, group := range ss.SortedNames() {
		sgroup, _ := ss.Get(group)
		for _, vname := range sgroup.SortedNames() {
			sb.WriteString("&" + group + "<br>" + vname + " | ")
			nvar++
		}
	}
	sb.WriteString("\n|-" + strings.Repeat("-", colwidth) + ":|" + strings.Repeat("--:|", nvar))

	for _, fn := range ds.Sources() {
		sb.WriteString("\n| " + fn + " | ")
		for _, group := range ss.SortedNames() {
			sgroup, _ := ss.Get(group)
			for _, vname := range sgroup.SortedNames() {
				if val, ok := lookup(ds, fn, group, vname); ok {
					sb.WriteString(val.String())
				}
				sb.WriteString(" | ")
			}
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// lookup fetches src/group/name from the set.
func lookup(ds *namelist.DocumentSet, src, group, name string) (namelist.Value, bool) {
	doc, ok := ds.Get(src)
	if !ok {
		return nil, false
	}
	g, ok := doc.Get(group)
	if !ok {
		return nil, false
	}
	return g.Get(name)
}

func documentHas(doc *namelist.Document, group, name string) bool {
	g, ok := doc.Get(group)
	return ok && g.Has(name)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func ljust(s string, width int) string {
	if n := runeLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
