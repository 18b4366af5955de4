// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settings - the current option table of a running program
//
// The table is built from the command-line arguments, with the
// options of a configuration file filling in anything the command
// line does not set.  When the configuration file changes a complete
// new table is built and swapped in, readers always see either the
// old or the new table.
package settings
