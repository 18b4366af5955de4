// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// external connections of the application
type environment struct {
	w          io.Writer
	e          io.Writer
	initialise func(logger.Configuration) error
	finalise   func()
	interrupt  <-chan os.Signal // nil to use the process signals
}

type metadata struct {
	configFile string
	verbose    bool
	log        *logger.L
	w          io.Writer
	e          io.Writer
	interrupt  <-chan os.Signal
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(environment{
		w:          os.Stdout,
		e:          os.Stderr,
		initialise: logger.Initialise,
		finalise:   logger.Finalise,
	})

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(env environment) *cli.App {

	app := cli.NewApp()
	app.Name = "getarg"
	app.Usage = "resolve command-line options"
	app.Version = version
	app.HideVersion = true

	app.Writer = env.w
	app.ErrWriter = env.e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " also log to the console",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE` supplying fallback options",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:            "dump",
			Usage:           "print the resolved options as JSON",
			ArgsUsage:       "ARGUMENTS...",
			SkipFlagParsing: true,
			Action:          runDump,
		},
		{
			Name:           "bool",
			Usage:          "print the boolean value of an option",
			ArgsUsage:      "NAME [--] ARGUMENTS...",
			SkipArgReorder: true,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "default, d",
					Usage: " value when the option is absent",
				},
			},
			Action: runBool,
		},
		{
			Name:           "string",
			Usage:          "print the string value of an option",
			ArgsUsage:      "NAME [--] ARGUMENTS...",
			SkipArgReorder: true,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "default, d",
					Value: "",
					Usage: " `VALUE` when the option is absent or negated",
				},
			},
			Action: runString,
		},
		{
			Name:           "int",
			Usage:          "print the integer value of an option",
			ArgsUsage:      "NAME [--] ARGUMENTS...",
			SkipArgReorder: true,
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "default, d",
					Value: 0,
					Usage: " `NUMBER` when the option is absent",
				},
			},
			Action: runInt,
		},
		{
			Name:            "watch",
			Usage:           "print the resolved options each time the configuration file changes",
			ArgsUsage:       "ARGUMENTS...",
			SkipFlagParsing: true,
			Action:          runWatch,
		},
		{
			Name:  "version",
			Usage: "display getarg version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// start logging
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			configFile: c.GlobalString("config-file"),
			verbose:    c.GlobalBool("verbose"),
			w:          c.App.Writer,
			e:          c.App.ErrWriter,
			interrupt:  env.interrupt,
		}
		c.App.Metadata["config"] = m

		// to suppress logging for certain commands
		switch c.Args().Get(0) {
		case "", "help", "h", "version":
			return nil
		}

		logging, err := loggingConfiguration(m.configFile)
		if nil != err {
			return err
		}
		logging.Console = m.verbose

		if m.verbose {
			fmt.Fprintf(m.e, "log directory: %q\n", logging.Directory)
		}

		if err := env.initialise(logging); nil != err {
			return err
		}

		m.log = logger.New("main")
		m.log.Infof("version: %s", version)
		m.log.Infof("configuration file: %q", m.configFile)
		return nil
	}

	// flush logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		m.log.Info("finished")
		env.finalise()
		return nil
	}

	return app
}
