// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/getarg/configuration"
)

const (
	cacheSubdirectory = "getarg"
)

// logging comes from the configuration file if there is one,
// otherwise it goes to the user's cache directory
func loggingConfiguration(configFile string) (logger.Configuration, error) {
	if "" != configFile {
		c, err := configuration.GetConfiguration(configFile)
		if nil != err {
			return logger.Configuration{}, err
		}
		return c.Logging, nil
	}

	cache, err := os.UserCacheDir()
	if nil != err {
		return logger.Configuration{}, err
	}

	logging := configuration.DefaultLogging(filepath.Join(cache, cacheSubdirectory))
	if err := os.MkdirAll(logging.Directory, 0o700); nil != err {
		return logger.Configuration{}, err
	}
	return logging, nil
}
