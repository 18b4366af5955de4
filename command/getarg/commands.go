// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/getarg/background"
	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/getarg/getarg"
	"github.com/bitmark-inc/getarg/settings"
)

const (
	terminator = "--"
)

func runDump(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	store, err := newStore(c, m, c.Args())
	if nil != err {
		return err
	}

	return printJson(m.w, store.Table().Entries())
}

func runBool(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, table, err := optionTable(c, m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%t\n", table.GetBool(name, c.Bool("default")))
	return nil
}

func runString(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, table, err := optionTable(c, m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", table.GetString(name, c.String("default")))
	return nil
}

func runInt(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, table, err := optionTable(c, m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%d\n", table.GetInt(name, c.Int64("default")))
	return nil
}

func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if "" == m.configFile {
		return fault.ErrMissingConfigurationFile
	}

	store, err := newStore(c, m, c.Args())
	if nil != err {
		return err
	}

	watcher, err := settings.NewWatcher(logger.New("watcher"), store)
	if nil != err {
		return err
	}

	processes := background.Start(background.Processes{watcher}, nil)
	defer processes.Stop()

	interrupt := m.interrupt
	if nil == interrupt {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)
		interrupt = ch
	}

	if err := printJson(m.w, store.Table().Entries()); nil != err {
		return err
	}

	for {
		select {
		case sig := <-interrupt:
			m.log.Infof("received signal: %v", sig)
			return nil

		case generation := <-store.Changes():
			fmt.Fprintf(m.w, "generation: %d\n", generation)
			if err := printJson(m.w, store.Table().Entries()); nil != err {
				return err
			}
		}
	}
}

// first argument is the option name, the rest are parsed
func optionTable(c *cli.Context, m *metadata) (string, *getarg.Table, error) {
	args := c.Args()
	if 0 == len(args) {
		return "", nil, fault.ErrMissingOptionName
	}

	store, err := newStore(c, m, args[1:])
	if nil != err {
		return "", nil, err
	}
	return args.First(), store.Table(), nil
}

func newStore(c *cli.Context, m *metadata, arguments []string) (*settings.Store, error) {
	argv := append([]string{c.App.Name}, withoutTerminator(arguments)...)
	return settings.New(m.log, argv, m.configFile, nil)
}

// drop the first "--" which only separates the tool's flags from the
// arguments to parse
func withoutTerminator(arguments []string) []string {
	for i, argument := range arguments {
		if terminator == argument {
			result := make([]string, 0, len(arguments)-1)
			result = append(result, arguments[:i]...)
			return append(result, arguments[i+1:]...)
		}
	}
	return arguments
}
