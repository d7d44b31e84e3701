// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package namelist

import (
	"strconv"
	"strings"
)

// Value is one setting value in a namelist group. The set of kinds is closed:
// Bool, Int, Float, String and List. Equality is structural and per kind;
// floats compare with native == and no tolerance. String() renders the value
// in Fortran namelist syntax, which is also what the serializer writes.
type Value interface {
	// Equal reports whether other has the same kind and the same content.
	Equal(other Value) bool
	// Copy returns a value that shares no mutable state with the receiver.
	Copy() Value
	// String renders the value in Fortran namelist syntax.
	String() string

	value()
}

// Bool is a Fortran logical.
type Bool bool

// Int is a Fortran integer.
type Int int64

// Float is a Fortran real.
type Float float64

// String is a Fortran character value.
type String string

// List is an ordered sequence of values, as produced by array assignments.
type List []Value

func (Bool) value()   {}
func (Int) value()    {}
func (Float) value()  {}
func (String) value() {}
func (List) value()   {}

// Equal reports kind-and-content equality. An Int never equals a Float even
// when numerically identical; the kinds are part of the value.
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}

func (f Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && f == o
}

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (b Bool) Copy() Value   { return b }
func (i Int) Copy() Value    { return i }
func (f Float) Copy() Value  { return f }
func (s String) Copy() Value { return s }

func (l List) Copy() Value {
	out := make(List, len(l))
	for i := range l {
		out[i] = l[i].Copy()
	}
	return out
}

func (b Bool) String() string {
	if b {
		return ".true."
	}
	return ".false."
}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// String renders the shortest representation that round-trips through the
// parser as a real. Integral floats keep a trailing ".0" so a rewritten file
// never silently turns a real into an integer.
func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String renders the value single-quoted, with embedded single quotes doubled.
func (s String) String() string {
	return "'" + strings.ReplaceAll(string(s), "'", "''") + "'"
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i := range l {
		parts[i] = l[i].String()
	}
	return strings.Join(parts, ", ")
}
