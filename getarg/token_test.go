// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getarg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/getarg/getarg"
)

func TestNormalise(t *testing.T) {
	expected := []struct {
		in    string
		token getarg.Token
		ok    bool
	}{
		{"-HOE", getarg.Token{Name: "HOE"}, true},
		{"--HOE", getarg.Token{Name: "HOE"}, true},
		{"---HOE", getarg.Token{Name: "-HOE"}, true},
		{"-HOE=1", getarg.Token{Name: "HOE", Value: "1", HasValue: true}, true},
		{"-HOE=", getarg.Token{Name: "HOE", Value: "", HasValue: true}, true},
		{"-HOE=a=b", getarg.Token{Name: "HOE", Value: "a=b", HasValue: true}, true},
		{"-noHOE", getarg.Token{Name: "HOE", Negated: true}, true},
		{"--noHOE=0", getarg.Token{Name: "HOE", Value: "0", HasValue: true, Negated: true}, true},
		{"-no", getarg.Token{Name: "no"}, true},
		{"-no=1", getarg.Token{Name: "no", Value: "1", HasValue: true}, true},
		{"-nox", getarg.Token{Name: "x", Negated: true}, true},
		{"-NOx", getarg.Token{Name: "NOx"}, true},
		{"-", getarg.Token{Name: ""}, true},
		{"--", getarg.Token{Name: ""}, true},
		{"-=value", getarg.Token{Name: "", Value: "value", HasValue: true}, true},
		{"HOE", getarg.Token{}, false},
		{"", getarg.Token{}, false},
		{"x-HOE", getarg.Token{}, false},
	}

	for i, item := range expected {
		token, ok := getarg.Normalise(item.in)
		assert.Equal(t, item.ok, ok, "%d: %q is option", i, item.in)
		assert.Equal(t, item.token, token, "%d: %q token", i, item.in)
	}
}

func TestTokenise(t *testing.T) {
	tokens := getarg.Tokenise([]string{"-a", "positional", "--b=2", "", "-noc"})
	expected := []getarg.Token{
		{Name: "a"},
		{Name: "b", Value: "2", HasValue: true},
		{Name: "c", Negated: true},
	}
	assert.Equal(t, expected, tokens, "wrong tokens")
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "HOE", getarg.CanonicalName("-HOE"), "single dash")
	assert.Equal(t, "HOE", getarg.CanonicalName("--HOE"), "double dash")
	assert.Equal(t, "HOE", getarg.CanonicalName("HOE"), "no dash")
	assert.Equal(t, "-HOE", getarg.CanonicalName("---HOE"), "triple dash")
}
