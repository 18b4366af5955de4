// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/getarg/getarg"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "getarg.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the contents of a configuration file
type Configuration struct {
	DataDirectory string                 `gluamapper:"data_directory" json:"data_directory"`
	Logging       logger.Configuration   `gluamapper:"logging" json:"logging"`
	Options       map[string]interface{} `gluamapper:"options" json:"options"`
}

// DefaultLogging - log settings used when there is no configuration
// file, directory is relative to dataDirectory
func DefaultLogging(dataDirectory string) logger.Configuration {
	return logger.Configuration{
		Directory: ensureAbsolute(dataDirectory, defaultLogDirectory),
		File:      defaultLogFile,
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); os.IsNotExist(err) {
		return nil, fault.ErrConfigurationFileNotFound
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
		Options: map[string]interface{}{},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	return options, nil
}

// Arguments - convert the options into command-line arguments
//
// the result is sorted by option name, argument zero is not included
func (c *Configuration) Arguments() ([]string, error) {

	names := make([]string, 0, len(c.Options))
	for name := range c.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	arguments := make([]string, 0, len(names))
	for _, name := range names {
		canonical := getarg.CanonicalName(name)
		if "" == canonical || strings.ContainsAny(canonical, "= \t\n") {
			return nil, fmt.Errorf("option: %q: %w", name, fault.ErrInvalidOptionName)
		}

		value, err := optionText(c.Options[name])
		if nil != err {
			return nil, fmt.Errorf("option: %q: %w", name, err)
		}
		arguments = append(arguments, "-"+canonical+"="+value)
	}
	return arguments, nil
}

// convert a decoded Lua value into option text
func optionText(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fault.ErrInvalidOptionValue
	}
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
