// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/apex/log"

	"github.com/nmlctl/nmlctl/internal/namelist"
)

// Superset returns a new document containing every group and variable that
// appears in any document of ds. Group and variable order follow first
// appearance, scanning the documents in set order. When several documents
// define the same variable the representative value is taken from the last
// one in set order. ds is not modified.
func Superset(ds *namelist.DocumentSet) *namelist.Document {
	out := namelist.NewDocument()
	for _, src := range ds.Sources() {
		doc, _ := ds.Get(src)
		for _, gname := range doc.Names() {
			group, _ := doc.Get(gname)
			target, ok := out.Get(gname)
			if !ok {
				target = namelist.NewGroup()
				out.Set(gname, target)
			}
			for _, vname := range group.Names() {
				val, _ := group.Get(vname)
				target.Set(vname, val.Copy())
			}
		}
	}
	return out
}

// Diff removes, in place, every group and variable that is identical across
// all documents of ds. A variable is removed only when it is present in every
// document and equal everywhere; a group whose membership differs between
// documents is retained whole. A group left empty in every document is
// removed. keep names a variable to retain even when identical, unless it
// would be the only content left in its group everywhere; an empty keep
// matches nothing. Diffing a diff changes nothing further.
func Diff(ds *namelist.DocumentSet, keep string) {
	log.Debugf(">> Diff() %d sources", ds.Len())

	ss := Superset(ds)
	sources := ds.Sources()

	for _, gname := range ss.Names() {
		sgroup, _ := ss.Get(gname)

		deleteGroup := true
		for _, src := range sources {
			doc, _ := ds.Get(src)
			if !doc.Has(gname) {
				deleteGroup = false
				break
			}
		}
		if !deleteGroup {
			continue
		}

		varKept := false
		for _, vname := range sgroup.Names() {
			rep, _ := sgroup.Get(vname)

			deleteVar := true
			for _, src := range sources {
				doc, _ := ds.Get(src)
				group, _ := doc.Get(gname)
				val, ok := group.Get(vname)
				if !ok || !val.Equal(rep) {
					deleteVar = false
					break
				}
			}
			if !deleteVar {
				continue
			}

			if vname == keep {
				varKept = true
				continue
			}
			for _, src := range sources {
				doc, _ := ds.Get(src)
				group, _ := doc.Get(gname)
				group.Delete(vname)
			}
		}

		// The group goes when nothing is left anywhere, or when the kept
		// variable is the only thing left anywhere.
		onlyVarKept := false
		if varKept {
			onlyVarKept = true
			for _, src := range sources {
				doc, _ := ds.Get(src)
				group, _ := doc.Get(gname)
				if group.Len() >= 2 {
					onlyVarKept = false
				}
				if onlyVarKept && group.Len() == 1 {
					onlyVarKept = group.Names()[0] == keep
				}
			}
		}
		if onlyVarKept {
			deleteGroup = true
		} else {
			maxLen := 0
			for _, src := range sources {
				doc, _ := ds.Get(src)
				group, _ := doc.Get(gname)
				if group.Len() > maxLen {
					maxLen = group.Len()
				}
			}
			deleteGroup = maxLen == 0
		}

		if deleteGroup {
			for _, src := range sources {
				doc, _ := ds.Get(src)
				doc.Delete(gname)
			}
		}
	}
}

// Prune removes, in place, every document that is semantically identical to
// its predecessor among the survivors, so runs of equal documents collapse to
// their first member. Variables listed in ignore are disregarded when judging
// redundancy but are untouched in the surviving documents. Sets of one or
// zero documents are returned unchanged.
func Prune(ds *namelist.DocumentSet, ignore namelist.VarSet) {
	log.Debugf(">> Prune() %d sources", ds.Len())

	if ds.Len() <= 1 {
		return
	}

	idx := 0
	for {
		sources := ds.Sources()

		// Diff a scratch copy of the adjacent pair with the ignored
		// variables masked out.
		pair := namelist.NewDocumentSet()
		for _, src := range sources[idx : idx+2] {
			doc, _ := ds.Get(src)
			pair.Set(src, doc.Copy())
		}
		for _, src := range pair.Sources() {
			doc, _ := pair.Get(src)
			for gname, vars := range ignore {
				group, ok := doc.Get(gname)
				if !ok {
					continue
				}
				for _, vname := range vars {
					group.Delete(vname)
				}
			}
		}
		Diff(pair, "")

		redundant := true
		for _, src := range pair.Sources() {
			doc, _ := pair.Get(src)
			if doc.Len() > 0 {
				redundant = false
				break
			}
		}

		if redundant {
			log.Debugf("pruning %s", sources[idx+1])
			ds.Delete(sources[idx+1])
		} else {
			idx++
		}

		if idx > ds.Len()-2 {
			break
		}
	}
}
