// SPDX-License-Identifier: GPL-3.0-or-later

// Package source extracts key/value pairs from device state dumps. Each
// dump format registers its own Parser, so new formats slot in without
// touching normalization or comparison.
package source

import (
	"bufio"
	"fmt"
	"io"
)

// Entry is one extracted key/value pair, value still raw.
type Entry struct {
	Key   string
	Value string
}

// Parser extracts a key/value pair from one line of a dump.
type Parser interface {
	// Name returns the format name the parser is registered under.
	Name() string

	// ParseLine reports the key/value pair found on the line.
	// ok is false for lines that carry no pair; that is not an error.
	ParseLine(line string) (key, value string, ok bool)
}

var registry = map[string]Parser{}

// Register adds the parser to the format registry.
func Register(p Parser) {
	if _, ok := registry[p.Name()]; ok {
		panic(fmt.Sprintf("source: duplicate parser registration: %s", p.Name()))
	}
	registry[p.Name()] = p
}

// Lookup returns the parser registered under name.
func Lookup(name string) (Parser, bool) {
	p, ok := registry[name]
	return p, ok
}

// ParseReader scans r line by line through p. Lines without a pair are
// skipped.
func ParseReader(r io.Reader, p Parser) ([]Entry, error) {
	sc := bufio.NewScanner(r)

	var entries []Entry

	for sc.Scan() {
		if key, value, ok := p.ParseLine(sc.Text()); ok {
			entries = append(entries, Entry{Key: key, Value: value})
		}
	}

	return entries, sc.Err()
}
