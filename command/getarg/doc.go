// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// getarg - resolve command-line options
//
// Shows how a program would see a set of command-line options,
// optionally with a Lua configuration file supplying fallbacks.
//
//   getarg dump -HOE=1 -noHOE -bar
//   getarg bool --default HOE -- -noHOE
//   getarg string --default=eleven HOE -- -HOE
//   getarg int --default=11 HOE -- -HOE=NaN
//   getarg --config-file=options.conf watch -HOE=1
//
// The option name follows the command's own flags, everything after
// it (or after "--") is parsed as the program's arguments.
package main
