// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getarg

import (
	"strconv"
	"strings"
)

// Number - result of converting option text to an integer
//
// Valid is false when the text has no leading integer; the value is
// then zero
type Number struct {
	Value int64
	Valid bool
}

// Int - the integer value, zero for an invalid number
func (n Number) Int() int64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// CoerceInt - convert the leading integer portion of a string
//
// accepts optional leading white space, an optional sign and
// decimal digits; anything after the digits is ignored. Out of range
// values saturate.
func CoerceInt(s string) Number {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	i := 0
	if i < len(s) && ('+' == s[i] || '-' == s[i]) {
		i += 1
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i += 1
	}
	if i == start {
		return Number{}
	}

	// on ErrRange ParseInt already returns the saturated value
	n, _ := strconv.ParseInt(s[:i], 10, 64)

	return Number{
		Value: n,
		Valid: true,
	}
}

// CoerceBool - only "0" is false, any other text including empty is true
func CoerceBool(s string) bool {
	return "0" != s
}
