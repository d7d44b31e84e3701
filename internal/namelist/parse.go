// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package namelist

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ParseError describes malformed namelist input. Parsing stops at the first
// error and no partial document is produced.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// GroupRepeat reports a group name that occurred more than once in one
// source. Count is the total number of occurrences; only the first
// occurrence's contents are retained. The caller decides how to warn.
type GroupRepeat struct {
	Name  string
	Count int
}

// Parse reads a namelist document from r. Group and variable names are
// lowercased (Fortran is case-insensitive); content outside groups is treated
// as comment text and ignored. A group repeated within the source keeps only
// its first occurrence, with the repetition reported in the second return
// value. Malformed input fails with a *ParseError.
func Parse(r io.Reader) (*Document, []GroupRepeat, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return ParseString(string(data))
}

// ParseString parses a namelist document from a string.
func ParseString(src string) (*Document, []GroupRepeat, error) {
	p := &parser{lx: newLexer(src)}
	doc := NewDocument()
	counts := make(map[string]int)
	var order []string

	for {
		name, ok := p.lx.nextGroupStart()
		if !ok {
			break
		}
		group, err := p.parseGroup(name)
		if err != nil {
			return nil, nil, err
		}
		counts[name]++
		if counts[name] == 1 {
			order = append(order, name)
			doc.Set(name, group)
		}
	}

	var repeats []GroupRepeat
	for _, name := range order {
		if counts[name] > 1 {
			repeats = append(repeats, GroupRepeat{Name: name, Count: counts[name]})
		}
	}
	return doc, repeats, nil
}

type parser struct {
	lx *lexer
}

// parseGroup consumes statements up to the group terminator ('/', '&end' or
// '$end').
func (p *parser) parseGroup(name string) (*Group, error) {
	g := NewGroup()
	for {
		tok, err := p.lx.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokEnd:
			return g, nil
		case tokEOF:
			return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("group &%s is not terminated", name)}
		case tokAmp:
			return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("group &%s is not terminated before &%s", name, tok.text)}
		case tokName:
			if err := p.parseAssignment(g, tok); err != nil {
				return nil, err
			}
		default:
			return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("unexpected %q in group &%s", tok.text, name)}
		}
	}
}

var nameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// parseAssignment consumes "name = value[, value…]" starting from an already
// read name token.
func (p *parser) parseAssignment(g *Group, nameTok token) error {
	name := strings.ToLower(nameTok.text)
	if !nameRegexp.MatchString(name) {
		if strings.ContainsAny(nameTok.text, "()") {
			return &ParseError{Line: nameTok.line, Msg: fmt.Sprintf("array element assignment %q is not supported", nameTok.text)}
		}
		return &ParseError{Line: nameTok.line, Msg: fmt.Sprintf("invalid variable name %q", nameTok.text)}
	}

	eq, err := p.lx.next()
	if err != nil {
		return err
	}
	if eq.kind != tokEquals {
		return &ParseError{Line: eq.line, Msg: fmt.Sprintf("expected '=' after %q", name)}
	}

	values, err := p.parseValues(name)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return &ParseError{Line: eq.line, Msg: fmt.Sprintf("null value for %q is not supported", name)}
	}
	if len(values) == 1 {
		g.Set(name, values[0])
	} else {
		g.Set(name, List(values))
	}
	return nil
}

// parseValues collects value atoms until the group terminator or the start of
// the next assignment. Commas are optional separators; a trailing comma is
// tolerated, an interior null entry is not.
func (p *parser) parseValues(name string) ([]Value, error) {
	var values []Value
	pendingSep := false
	for {
		tok, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokEnd, tokEOF, tokAmp:
			return values, nil
		case tokComma:
			if len(values) == 0 || pendingSep {
				return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("null value for %q is not supported", name)}
			}
			pendingSep = true
			if _, err := p.lx.next(); err != nil {
				return nil, err
			}
		case tokString:
			if _, err := p.lx.next(); err != nil {
				return nil, err
			}
			values = append(values, String(tok.text))
			pendingSep = false
		case tokName:
			// A name followed by '=' is the next assignment.
			after, err := p.lx.peekN(2)
			if err != nil {
				return nil, err
			}
			if after.kind == tokEquals {
				return values, nil
			}
			if _, err := p.lx.next(); err != nil {
				return nil, err
			}
			atoms, err := p.parseAtom(tok)
			if err != nil {
				return nil, err
			}
			values = append(values, atoms...)
			pendingSep = false
		default:
			return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("unexpected %q in value of %q", tok.text, name)}
		}
	}
}

var repeatRegexp = regexp.MustCompile(`^(\d+)\*(.*)$`)

// parseAtom turns a bare token into one or more scalar values, expanding the
// Fortran repetition form r*value.
func (p *parser) parseAtom(tok token) ([]Value, error) {
	m := repeatRegexp.FindStringSubmatch(tok.text)
	if m == nil {
		v, err := parseScalar(tok.text, tok.line)
		if err != nil {
			return nil, err
		}
		return []Value{v}, nil
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("invalid repeat count in %q", tok.text)}
	}

	var scalar Value
	if m[2] != "" {
		scalar, err = parseScalar(m[2], tok.line)
		if err != nil {
			return nil, err
		}
	} else {
		// The repeated value is the next token, as in 3*'abc'.
		next, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		switch next.kind {
		case tokString:
			scalar = String(next.text)
		case tokName:
			after, err := p.lx.peekN(2)
			if err != nil {
				return nil, err
			}
			if after.kind == tokEquals {
				return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("repeat count %q without a value", tok.text)}
			}
			scalar, err = parseScalar(next.text, next.line)
			if err != nil {
				return nil, err
			}
		default:
			return nil, &ParseError{Line: tok.line, Msg: fmt.Sprintf("repeat count %q without a value", tok.text)}
		}
		if _, err := p.lx.next(); err != nil {
			return nil, err
		}
	}

	out := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, scalar.Copy())
	}
	return out, nil
}

var intRegexp = regexp.MustCompile(`^[+-]?[0-9]+$`)

// parseScalar interprets one unquoted atom as a logical, integer or real.
func parseScalar(text string, line int) (Value, error) {
	switch strings.ToLower(text) {
	case ".true.", ".t.", "t":
		return Bool(true), nil
	case ".false.", ".f.", "f":
		return Bool(false), nil
	}

	if intRegexp.MatchString(text) {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(n), nil
		}
		// Out of int64 range: fall through to the real parse.
	}

	// Fortran reals may use a d/D exponent marker.
	norm := strings.ReplaceAll(strings.ReplaceAll(text, "d", "e"), "D", "e")
	if f, err := strconv.ParseFloat(norm, 64); err == nil {
		return Float(f), nil
	}

	return nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid value %q", text)}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokEnd
	tokAmp
	tokName
	tokEquals
	tokComma
	tokString
)

type token struct {
	kind tokenKind
	text string
	line int
}

// lexer tokenizes namelist source. Outside groups it only scans for a group
// sentinel ('&' or '$' followed by a name); inside groups it produces the
// token stream the parser consumes, with one line of pushback for lookahead.
type lexer struct {
	src  string
	pos  int
	line int
	buf  []token
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

// nextGroupStart scans forward to the next group sentinel and returns the
// lowercased group name. Comment text to end of line and stray '&end'/'$end'
// debris between groups are skipped.
func (lx *lexer) nextGroupStart() (string, bool) {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\n' {
			lx.line++
			lx.pos++
			continue
		}
		if c == '!' {
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
			continue
		}
		if (c == '&' || c == '$') && lx.pos+1 < len(lx.src) && isLetter(lx.src[lx.pos+1]) {
			lx.pos++
			name := strings.ToLower(lx.scanNameWord())
			if name == "end" {
				continue
			}
			return name, true
		}
		lx.pos++
	}
	return "", false
}

func (lx *lexer) next() (token, error) {
	if len(lx.buf) > 0 {
		t := lx.buf[0]
		lx.buf = lx.buf[1:]
		return t, nil
	}
	return lx.scan()
}

func (lx *lexer) peek() (token, error) {
	return lx.peekN(1)
}

func (lx *lexer) peekN(n int) (token, error) {
	for len(lx.buf) < n {
		t, err := lx.scan()
		if err != nil {
			return token{}, err
		}
		lx.buf = append(lx.buf, t)
	}
	return lx.buf[n-1], nil
}

func (lx *lexer) scan() (token, error) {
	lx.skipSpace()
	line := lx.line
	if lx.pos >= len(lx.src) {
		return token{kind: tokEOF, line: line}, nil
	}

	c := lx.src[lx.pos]
	switch {
	case c == '/':
		lx.pos++
		return token{kind: tokEnd, text: "/", line: line}, nil
	case c == '=':
		lx.pos++
		return token{kind: tokEquals, text: "=", line: line}, nil
	case c == ',':
		lx.pos++
		return token{kind: tokComma, text: ",", line: line}, nil
	case c == '\'' || c == '"':
		return lx.scanString(c)
	case c == '&' || c == '$':
		lx.pos++
		if lx.pos >= len(lx.src) || !isLetter(lx.src[lx.pos]) {
			return token{}, &ParseError{Line: line, Msg: fmt.Sprintf("unexpected %q", string(c))}
		}
		name := strings.ToLower(lx.scanNameWord())
		if name == "end" {
			return token{kind: tokEnd, text: name, line: line}, nil
		}
		return token{kind: tokAmp, text: name, line: line}, nil
	default:
		start := lx.pos
		for lx.pos < len(lx.src) && !isDelim(lx.src[lx.pos]) {
			lx.pos++
		}
		return token{kind: tokName, text: lx.src[start:lx.pos], line: line}, nil
	}
}

// scanString consumes a quoted literal with doubled-quote escaping. Strings
// do not span lines.
func (lx *lexer) scanString(quote byte) (token, error) {
	line := lx.line
	lx.pos++
	var sb strings.Builder
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\n' {
			break
		}
		if c == quote {
			if lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == quote {
				sb.WriteByte(quote)
				lx.pos += 2
				continue
			}
			lx.pos++
			return token{kind: tokString, text: sb.String(), line: line}, nil
		}
		sb.WriteByte(c)
		lx.pos++
	}
	return token{}, &ParseError{Line: line, Msg: "unterminated string"}
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '\n':
			lx.line++
			lx.pos++
		case c == ' ' || c == '\t' || c == '\r':
			lx.pos++
		case c == '!':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
		default:
			return
		}
	}
}

func (lx *lexer) scanNameWord() string {
	start := lx.pos
	for lx.pos < len(lx.src) && isNameChar(lx.src[lx.pos]) {
		lx.pos++
	}
	return lx.src[start:lx.pos]
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', '=', '/', '!', '\'', '"', '&', '$':
		return true
	}
	return false
}
