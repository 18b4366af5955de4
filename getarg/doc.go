// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package getarg - command-line options processing
//
// Parses options of the forms:
//   -option               - set option, no value
//   -option=value         - set value (value may be empty)
//   --option              - same as -option
//   --option=value        - same as -option=value
//   -nooption             - negate option
//   -nooption=0           - double negative, same as -option=1
//
// Resolution:
//   A positive occurrence of an option anywhere in the arguments
//   always beats any number of negated occurrences.  Among
//   occurrences of the same polarity the last one wins.
//
// Note:
//   Arguments not starting with "-" are ignored.  The first
//   argument is the program name and is always skipped.
//
// Access:
//   table := getarg.Parse(os.Args)
//   verbose := table.GetBool("-verbose")
//   port := table.GetInt("-port", 2136)
//   name := table.GetString("-name", "default")
//
// The table is immutable; operations that add options return a new
// table.
package getarg
