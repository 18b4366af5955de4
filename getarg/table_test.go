// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getarg_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/getarg/getarg"
)

func TestParseSkipsProgramName(t *testing.T) {
	table := getarg.Parse([]string{"-HOE"})
	assert.False(t, table.IsSet("-HOE"), "program name must not be parsed")
	assert.Equal(t, 0, table.Len(), "table must be empty")

	table = getarg.Parse(nil)
	assert.Equal(t, 0, table.Len(), "nil arguments")
}

func TestParseIgnoresPositional(t *testing.T) {
	table := resetArgs("first -HOE=1 second -bar third")
	assert.Equal(t, []string{"HOE", "bar"}, table.Names(), "positional arguments in table")
}

func TestBuild(t *testing.T) {
	expected := []struct {
		arguments string
		entries   map[string]getarg.Entry
	}{
		{
			arguments: "",
			entries:   map[string]getarg.Entry{},
		},
		{
			arguments: "-a -b=2 -noc",
			entries: map[string]getarg.Entry{
				"a": {IsSet: true},
				"b": {Value: "2", HasValue: true, IsSet: true},
				"c": {IsSet: true, IsNegated: true},
			},
		},
		{
			arguments: "-a=1 -a=2 -a=3",
			entries: map[string]getarg.Entry{
				"a": {Value: "3", HasValue: true, IsSet: true},
			},
		},
		{
			arguments: "-a=1 -noa -a=2 -noa",
			entries: map[string]getarg.Entry{
				"a": {Value: "2", HasValue: true, IsSet: true},
			},
		},
		{
			arguments: "-noa=0 -noa",
			entries: map[string]getarg.Entry{
				"a": {IsSet: true, IsNegated: true},
			},
		},
		{
			arguments: "-noa -noa=0",
			entries: map[string]getarg.Entry{
				"a": {Value: "1", HasValue: true, IsSet: true},
			},
		},
		{
			arguments: "-a=0 -noa=0",
			entries: map[string]getarg.Entry{
				"a": {Value: "0", HasValue: true, IsSet: true},
			},
		},
		{
			arguments: "- -- -=x",
			entries: map[string]getarg.Entry{
				"": {Value: "x", HasValue: true, IsSet: true},
			},
		},
	}

	for i, item := range expected {
		table := resetArgs(item.arguments)
		assert.Equal(t, item.entries, table.Entries(), "%d: %q", i, item.arguments)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	table := resetArgs("-HOE=1")
	entries := table.Entries()
	entries["HOE"] = getarg.Entry{IsSet: true, IsNegated: true}
	assert.True(t, table.GetBool("-HOE"), "table was modified through Entries")
}

func TestSoftSet(t *testing.T) {
	table := resetArgs("-HOE=1")

	n, ok := table.SoftSet("-HOE", "2")
	assert.False(t, ok, "existing option must not be replaced")
	assert.Equal(t, "1", n.GetString("-HOE", ""), "existing value")

	n, ok = table.SoftSet("-bar", "eleven")
	assert.True(t, ok, "new option must be set")
	assert.Equal(t, "eleven", n.GetString("-bar", ""), "new value")
	assert.False(t, table.IsSet("-bar"), "receiver was modified")

	n, ok = n.SoftSetBool("--baz", false)
	assert.True(t, ok, "new bool option must be set")
	assert.False(t, n.GetBool("-baz", true), "new bool value")

	negated := resetArgs("-nobar")
	_, ok = negated.SoftSetBool("-bar", true)
	assert.False(t, ok, "negated option is already set")

	var empty *getarg.Table
	n, ok = empty.SoftSetBool("-bar", true)
	assert.True(t, ok, "nil table soft set")
	assert.True(t, n.GetBool("-bar"), "nil table soft set value")
}

func TestWithFallback(t *testing.T) {
	commandLine := resetArgs("-HOE=1 -nobar")
	configFile := resetArgs("-HOE=2 -bar=3 -baz=4")

	table := commandLine.WithFallback(configFile)
	assert.Equal(t, "1", table.GetString("-HOE", ""), "command line must win")
	assert.False(t, table.GetBool("-bar", true), "command line negation must win")
	assert.Equal(t, int64(4), table.GetInt("-baz", 0), "fallback must fill in")
	assert.False(t, commandLine.IsSet("-baz"), "receiver was modified")

	assert.Equal(t, commandLine.Entries(), commandLine.WithFallback(nil).Entries(), "nil fallback")

	var empty *getarg.Table
	assert.Equal(t, configFile.Entries(), empty.WithFallback(configFile).Entries(), "nil receiver")
}

func TestParseOS(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	os.Args = []string{"/usr/local/bin/program", "-HOE=eleven"}
	program, table := getarg.ParseOS()
	assert.Equal(t, "program", program, "wrong program name")
	assert.Equal(t, "eleven", table.GetString("-HOE", ""), "wrong value")

	os.Args = nil
	program, table = getarg.ParseOS()
	assert.Equal(t, "", program, "empty program name")
	assert.Equal(t, 0, table.Len(), "empty table")
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "<unset>", getarg.Entry{}.String(), "unset")
	assert.Equal(t, "<negated>", getarg.Entry{IsSet: true, IsNegated: true}.String(), "negated")
	assert.Equal(t, "<flag>", getarg.Entry{IsSet: true}.String(), "flag")
	assert.Equal(t, `"x"`, getarg.Entry{IsSet: true, HasValue: true, Value: "x"}.String(), "value")
}

func TestLog(t *testing.T) {
	table := resetArgs("-HOE=1 -nobar")
	table.Log(logger.New("test"))
	table.Log(nil)
}
