// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getarg

import (
	"strings"
)

const (
	optionPrefix   = "-"
	negationPrefix = "no"
	maximumDashes  = 2
)

// Token - a single normalised command-line option
//
// Name never includes dashes or the negation prefix
type Token struct {
	Name     string
	Value    string
	HasValue bool
	Negated  bool
}

// Normalise - convert one raw argument into a token
//
// returns false if the argument is not an option
func Normalise(argument string) (Token, bool) {
	if !strings.HasPrefix(argument, optionPrefix) {
		return Token{}, false
	}

	item := stripDashes(argument)
	token := Token{
		Name: item,
	}

	s := strings.SplitN(item, "=", 2)
	if 2 == len(s) {
		token.Name = s[0]
		token.Value = s[1]
		token.HasValue = true
	}

	// "-no" on its own is an option called "no"
	if len(token.Name) > len(negationPrefix) && strings.HasPrefix(token.Name, negationPrefix) {
		token.Name = token.Name[len(negationPrefix):]
		token.Negated = true
	}

	return token, true
}

// Tokenise - normalise a list of arguments, dropping non-options
func Tokenise(arguments []string) []Token {
	tokens := make([]Token, 0, len(arguments))
	for _, argument := range arguments {
		if token, ok := Normalise(argument); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// CanonicalName - convert a lookup key like "-name" to the table key
func CanonicalName(name string) string {
	return stripDashes(name)
}

// remove at most two leading dashes
func stripDashes(item string) string {
	for i := 0; i < maximumDashes && strings.HasPrefix(item, optionPrefix); i += 1 {
		item = item[len(optionPrefix):]
	}
	return item
}
