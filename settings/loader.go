// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settings

import (
	"github.com/bitmark-inc/getarg/configuration"
)

//go:generate mockgen -destination=mocks/loader.go -package=mocks github.com/bitmark-inc/getarg/settings Loader

// Loader - read the options of a configuration file as command-line
// style arguments, without a program name
type Loader interface {
	Load(fileName string) ([]string, error)
}

// LuaLoader - load options from a Lua configuration file
type LuaLoader struct{}

// Load - implement Loader
func (LuaLoader) Load(fileName string) ([]string, error) {
	c, err := configuration.GetConfiguration(fileName)
	if nil != err {
		return nil, err
	}
	return c.Arguments()
}
