// Package acfp parses an INI-like configuration text into a three-level
// lookup table (section, subsection, field) with typed access on read.
//
// Scope:
// - Line-oriented grammar: [section], [section subsection], key = value
// - Quoted names and values with a single enclosing quote layer
// - '#' and '//' trailing comments
// - Raw string storage; bool/int/float coercion deferred to access time
// - Deterministic, line-numbered errors; a malformed line fails the whole parse
//
// Non-goals (by design):
// - Writing the table back out as config text
// - Nesting deeper than section + subsection
// - Streaming or partial parses
//
// The table stores strings only; the same field may be read as bool, int, or
// float by different callers. See FieldAs and ParseScalar.
package acfp

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse consumes r line by line and builds the full table before returning.
// Any malformed line aborts with a ParseError naming the 1-based line; no
// partial table is returned. Read errors from r propagate unchanged.
func Parse(r io.Reader) (Table, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		table:   make(Table),
	}
	// Fields above the first header land in the anonymous section.
	p.cur = p.table.section("").subsection("")

	for p.scanner.Scan() {
		p.lineNo++
		line := trimEnds(p.scanner.Text(), defaultCutset)
		line = trimComment(line)
		if line == "" {
			continue
		}
		if line[0] == '[' {
			if err := p.enterSection(line); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.setField(line); err != nil {
			return nil, err
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}

	return p.table, nil
}

// ParseString parses config text held in a string. See Parse.
func ParseString(s string) (Table, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses its contents. Open and read failures are
// returned as-is. See Parse.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

type parser struct {
	scanner *bufio.Scanner
	table   Table
	cur     Section
	lineNo  int
}

// enterSection handles a "[name]" or "[name subname]" header line and moves
// the cursor, creating table entries on demand.
func (p *parser) enterSection(line string) error {
	inner, err := unquote(line, p.lineNo, '[', ']')
	if err != nil {
		return err
	}

	sep := indexUnquoted(inner, ' ')
	if sep < 0 {
		name, err := p.cleanName(inner)
		if err != nil {
			return err
		}
		p.cur = p.table.section(name).subsection("")
		return nil
	}

	name, err := p.cleanName(inner[:sep])
	if err != nil {
		return err
	}
	subname, err := p.cleanName(inner[sep+1:])
	if err != nil {
		return err
	}
	p.cur = p.table.section(name).subsection(subname)
	return nil
}

// setField handles a "key = value" line, overwriting any previous value.
func (p *parser) setField(line string) error {
	eq := indexUnquoted(line, '=')
	if eq < 0 {
		return &ParseError{Line: p.lineNo, Text: line, Err: ErrMalformedLine}
	}
	key, err := p.cleanName(line[:eq])
	if err != nil {
		return err
	}
	value, err := p.cleanName(line[eq+1:])
	if err != nil {
		return err
	}
	p.cur.SetField(key, value)
	return nil
}

// cleanName trims a span and strips one layer of double quotes.
func (p *parser) cleanName(s string) (string, error) {
	return unquote(trimEnds(s, defaultCutset), p.lineNo, '"', '"')
}
