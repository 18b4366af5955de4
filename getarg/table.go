// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getarg

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bitmark-inc/logger"
)

// Entry - the resolved state of one option
type Entry struct {
	Value     string `json:"value"`
	HasValue  bool   `json:"has_value"`
	IsSet     bool   `json:"set"`
	IsNegated bool   `json:"negated"`
}

// String - printable form of an entry for logging
func (e Entry) String() string {
	switch {
	case !e.IsSet:
		return "<unset>"
	case e.IsNegated:
		return "<negated>"
	case !e.HasValue:
		return "<flag>"
	default:
		return strconv.Quote(e.Value)
	}
}

// Table - resolved options, keyed by canonical name
//
// a nil table is valid and behaves as an empty table
type Table struct {
	entries map[string]Entry
}

// ParseOS - parse the options from the OS command-line
func ParseOS() (program string, table *Table) {
	if 0 == len(os.Args) {
		return "", Parse(nil)
	}
	return filepath.Base(os.Args[0]), Parse(os.Args)
}

// Parse - build a table from an argument vector
//
// arguments[0] is the program name and is skipped
func Parse(arguments []string) *Table {
	if len(arguments) <= 1 {
		return Build(nil)
	}
	return Build(Tokenise(arguments[1:]))
}

// Build - fold a token sequence into a table
func Build(tokens []Token) *Table {

	entries := make(map[string]Entry, len(tokens))

	// first pass: positives, last one wins
	positive := make(map[string]struct{})
	for _, token := range tokens {
		if token.Negated {
			continue
		}
		positive[token.Name] = struct{}{}
		entries[token.Name] = Entry{
			Value:    token.Value,
			HasValue: token.HasValue,
			IsSet:    true,
		}
	}

	// second pass: negatives for names never given positively, last one wins
	for _, token := range tokens {
		if !token.Negated {
			continue
		}
		if _, ok := positive[token.Name]; ok {
			continue
		}
		entries[token.Name] = negatedEntry(token)
	}

	return &Table{
		entries: entries,
	}
}

// -nofoo=0 is the same as -foo=1
func negatedEntry(token Token) Entry {
	if token.HasValue && !CoerceBool(token.Value) {
		return Entry{
			Value:    "1",
			HasValue: true,
			IsSet:    true,
		}
	}
	return Entry{
		IsSet:     true,
		IsNegated: true,
	}
}

// Lookup - fetch the entry for an option
func (t *Table) Lookup(name string) (Entry, bool) {
	return t.get(CanonicalName(name))
}

// Len - number of options in the table
func (t *Table) Len() int {
	if nil == t {
		return 0
	}
	return len(t.entries)
}

// Names - sorted list of canonical option names
func (t *Table) Names() []string {
	names := make([]string, 0, t.Len())
	if nil == t {
		return names
	}
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries - copy of the resolved options
func (t *Table) Entries() map[string]Entry {
	entries := make(map[string]Entry, t.Len())
	if nil == t {
		return entries
	}
	for name, e := range t.entries {
		entries[name] = e
	}
	return entries
}

// SoftSet - return a table with the option set to value, unless it
// is already set in which case the receiver is returned unchanged
func (t *Table) SoftSet(name string, value string) (*Table, bool) {
	key := CanonicalName(name)
	if _, ok := t.get(key); ok {
		return t, false
	}
	n := t.clone(1)
	n.entries[key] = Entry{
		Value:    value,
		HasValue: true,
		IsSet:    true,
	}
	return n, true
}

// SoftSetBool - SoftSet with a boolean value
func (t *Table) SoftSetBool(name string, value bool) (*Table, bool) {
	if value {
		return t.SoftSet(name, "1")
	}
	return t.SoftSet(name, "0")
}

// WithFallback - return a table with all options of t plus the
// options of fallback that t does not set
func (t *Table) WithFallback(fallback *Table) *Table {
	n := t.clone(fallback.Len())
	if nil == fallback {
		return n
	}
	for name, e := range fallback.entries {
		if _, ok := n.entries[name]; !ok {
			n.entries[name] = e
		}
	}
	return n
}

// Log - write the resolved options to a logger channel
func (t *Table) Log(log *logger.L) {
	if nil == log {
		return
	}
	log.Debugf("options: %d", t.Len())
	for _, name := range t.Names() {
		log.Debugf("option: %q = %s", name, t.entries[name])
	}
}

// lookup using an already canonical key
func (t *Table) get(key string) (Entry, bool) {
	if nil == t {
		return Entry{}, false
	}
	e, ok := t.entries[key]
	return e, ok
}

// copy the table leaving room for extra entries
func (t *Table) clone(extra int) *Table {
	entries := make(map[string]Entry, t.Len()+extra)
	if nil != t {
		for name, e := range t.entries {
			entries[name] = e
		}
	}
	return &Table{
		entries: entries,
	}
}
