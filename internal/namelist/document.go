// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package namelist

import "sort"

// Group is an ordered mapping from variable name to Value. Insertion order is
// preserved for serialization; it has no effect on comparison. Variable names
// are unique within a group and matched exactly (the parser lowercases them,
// the model itself never folds case).
type Group struct {
	names []string
	vars  map[string]Value
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{vars: make(map[string]Value)}
}

// Set inserts or overwrites a variable. A new name is appended; an existing
// name keeps its original position.
func (g *Group) Set(name string, value Value) {
	if _, ok := g.vars[name]; !ok {
		g.names = append(g.names, name)
	}
	g.vars[name] = value
}

// Get returns the value for name and whether it is defined.
func (g *Group) Get(name string) (Value, bool) {
	v, ok := g.vars[name]
	return v, ok
}

// Has reports whether name is defined in the group.
func (g *Group) Has(name string) bool {
	_, ok := g.vars[name]
	return ok
}

// Delete removes a variable. Deleting an undefined name is a no-op.
func (g *Group) Delete(name string) {
	if _, ok := g.vars[name]; !ok {
		return
	}
	delete(g.vars, name)
	for i, n := range g.names {
		if n == name {
			g.names = append(g.names[:i], g.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of variables in the group.
func (g *Group) Len() int { return len(g.names) }

// Names returns the variable names in insertion order.
func (g *Group) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// SortedNames returns the variable names in lexicographic order.
func (g *Group) SortedNames() []string {
	out := g.Names()
	sort.Strings(out)
	return out
}

// Copy returns a deep copy sharing no mutable state with the receiver.
func (g *Group) Copy() *Group {
	out := NewGroup()
	for _, name := range g.names {
		out.Set(name, g.vars[name].Copy())
	}
	return out
}

// Document is an ordered mapping from group name to Group, representing one
// parsed source. Group names are unique; when a source repeats a group name
// only the first occurrence is retained (see Parse).
type Document struct {
	names  []string
	groups map[string]*Group
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{groups: make(map[string]*Group)}
}

// Set inserts or replaces a group. A new name is appended; an existing name
// keeps its original position.
func (d *Document) Set(name string, group *Group) {
	if _, ok := d.groups[name]; !ok {
		d.names = append(d.names, name)
	}
	d.groups[name] = group
}

// Get returns the group for name and whether it is present.
func (d *Document) Get(name string) (*Group, bool) {
	g, ok := d.groups[name]
	return g, ok
}

// Has reports whether the document contains the named group.
func (d *Document) Has(name string) bool {
	_, ok := d.groups[name]
	return ok
}

// Delete removes a group. Deleting an absent name is a no-op.
func (d *Document) Delete(name string) {
	if _, ok := d.groups[name]; !ok {
		return
	}
	delete(d.groups, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of groups in the document.
func (d *Document) Len() int { return len(d.names) }

// Names returns the group names in insertion order.
func (d *Document) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// SortedNames returns the group names in lexicographic order.
func (d *Document) SortedNames() []string {
	out := d.Names()
	sort.Strings(out)
	return out
}

// Copy returns a deep copy sharing no mutable state with the receiver.
func (d *Document) Copy() *Document {
	out := NewDocument()
	for _, name := range d.names {
		out.Set(name, d.groups[name].Copy())
	}
	return out
}

// DocumentSet is an ordered mapping from source identifier (typically a file
// path) to Document, in caller-supplied order. Source order is significant
// for rendering columns and for Prune's adjacency rule, never for comparison.
// A set with zero entries, or whose documents are all empty, is valid.
type DocumentSet struct {
	sources []string
	docs    map[string]*Document
}

// NewDocumentSet returns an empty document set.
func NewDocumentSet() *DocumentSet {
	return &DocumentSet{docs: make(map[string]*Document)}
}

// Set inserts or replaces the document for a source identifier. A repeated
// source is silently collapsed onto the existing entry, keeping its original
// position.
func (ds *DocumentSet) Set(source string, doc *Document) {
	if _, ok := ds.docs[source]; !ok {
		ds.sources = append(ds.sources, source)
	}
	ds.docs[source] = doc
}

// Get returns the document for source and whether it is present.
func (ds *DocumentSet) Get(source string) (*Document, bool) {
	d, ok := ds.docs[source]
	return d, ok
}

// Has reports whether the set contains the source.
func (ds *DocumentSet) Has(source string) bool {
	_, ok := ds.docs[source]
	return ok
}

// Delete removes a source and its document. Deleting an absent source is a
// no-op.
func (ds *DocumentSet) Delete(source string) {
	if _, ok := ds.docs[source]; !ok {
		return
	}
	delete(ds.docs, source)
	for i, s := range ds.sources {
		if s == source {
			ds.sources = append(ds.sources[:i], ds.sources[i+1:]...)
			break
		}
	}
}

// Len returns the number of sources in the set.
func (ds *DocumentSet) Len() int { return len(ds.sources) }

// Sources returns the source identifiers in set order.
func (ds *DocumentSet) Sources() []string {
	out := make([]string, len(ds.sources))
	copy(out, ds.sources)
	return out
}

// Copy returns a deep copy sharing no mutable state with the receiver.
// Destructive operations (Diff, Prune) mutate a set in place; callers that
// still need the prior view must copy first.
func (ds *DocumentSet) Copy() *DocumentSet {
	out := NewDocumentSet()
	for _, src := range ds.sources {
		out.Set(src, ds.docs[src].Copy())
	}
	return out
}

// VarSet names variables by group, the shape shared by ignore and hide lists:
// the key is a group name, the value the variable names within that group.
type VarSet map[string][]string

// Has reports whether the set names the (group, variable) pair.
func (vs VarSet) Has(group, variable string) bool {
	for _, v := range vs[group] {
		if v == variable {
			return true
		}
	}
	return false
}

// Add records variables under a group, skipping ones already present.
func (vs VarSet) Add(group string, variables ...string) {
	for _, v := range variables {
		if !vs.Has(group, v) {
			vs[group] = append(vs[group], v)
		}
	}
}
