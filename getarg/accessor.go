// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getarg

// GetString - string value of an option
//
// returns defaultValue if the option is absent or negated, and the
// empty string for an option given without a value
func (t *Table) GetString(name string, defaultValue string) string {
	e, ok := t.Lookup(name)
	if !ok || e.IsNegated {
		return defaultValue
	}
	return e.Value
}

// GetArg - same as GetString
func (t *Table) GetArg(name string, defaultValue string) string {
	return t.GetString(name, defaultValue)
}

// GetBool - boolean value of an option
//
// the default is false if not supplied; a negated option is always
// false and an option without a value is always true
func (t *Table) GetBool(name string, defaultValue ...bool) bool {
	e, ok := t.Lookup(name)
	if !ok {
		return len(defaultValue) > 0 && defaultValue[0]
	}
	if e.IsNegated {
		return false
	}
	if !e.HasValue {
		return true
	}
	return CoerceBool(e.Value)
}

// GetBoolArg - same as GetBool
func (t *Table) GetBoolArg(name string, defaultValue ...bool) bool {
	return t.GetBool(name, defaultValue...)
}

// GetInt - integer value of an option
//
// an absent option gives defaultValue, but a negated option or text
// that is not a number gives zero
func (t *Table) GetInt(name string, defaultValue int64) int64 {
	e, ok := t.Lookup(name)
	if !ok {
		return defaultValue
	}
	if e.IsNegated {
		return 0
	}
	return CoerceInt(e.Value).Int()
}

// IsSet - true if the option occurred at all, positive or negated
func (t *Table) IsSet(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// IsNegated - true if the option was only given in negated form
func (t *Table) IsNegated(name string) bool {
	e, ok := t.Lookup(name)
	return ok && e.IsNegated
}
