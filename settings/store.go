// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settings

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/getarg/getarg"
)

// Store - holds the current option table
type Store struct {
	generation uint64 // first for 64 bit atomic alignment

	sync.Mutex // serialises Refresh

	log       *logger.L
	arguments []string
	fileName  string
	loader    Loader

	current atomic.Value // *getarg.Table
	changes chan uint64
}

// New - create a store from a full argument vector (including the
// program name) and an optional configuration file
//
// a nil loader reads Lua configuration files
func New(log *logger.L, arguments []string, fileName string, loader Loader) (*Store, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == loader {
		loader = LuaLoader{}
	}

	s := &Store{
		log:       log,
		arguments: append([]string(nil), arguments...),
		fileName:  fileName,
		loader:    loader,
		changes:   make(chan uint64, 1),
	}

	table, err := s.build()
	if nil != err {
		log.Errorf("configuration: %q  error: %s", fileName, err)
		return nil, err
	}
	s.current.Store(table)

	log.Infof("initial options: %d", table.Len())
	table.Log(log)

	return s, nil
}

// Table - the current option table
func (s *Store) Table() *getarg.Table {
	return s.current.Load().(*getarg.Table)
}

// FileName - the configuration file, empty if none
func (s *Store) FileName() string {
	return s.fileName
}

// Generation - number of successful refreshes
func (s *Store) Generation() uint64 {
	return atomic.LoadUint64(&s.generation)
}

// Changes - receives the generation after each successful refresh,
// only the newest unread generation is kept
func (s *Store) Changes() <-chan uint64 {
	return s.changes
}

// Refresh - re-read the configuration file and swap in a new table
//
// on error the current table is kept
func (s *Store) Refresh() error {
	if "" == s.fileName {
		return fault.ErrMissingConfigurationFile
	}

	s.Lock()
	defer s.Unlock()

	table, err := s.build()
	if nil != err {
		s.log.Errorf("refresh: %q  error: %s", s.fileName, err)
		return err
	}

	s.current.Store(table)
	generation := atomic.AddUint64(&s.generation, 1)

	s.log.Infof("refresh: generation: %d  options: %d", generation, table.Len())
	table.Log(s.log)

	s.notify(generation)
	return nil
}

// command line first, configuration file options as fallback
func (s *Store) build() (*getarg.Table, error) {
	table := getarg.Parse(s.arguments)
	if "" == s.fileName {
		return table, nil
	}

	arguments, err := s.loader.Load(s.fileName)
	if nil != err {
		return nil, err
	}

	return table.WithFallback(getarg.Build(getarg.Tokenise(arguments))), nil
}

// replace any unread generation with the newest one
func (s *Store) notify(generation uint64) {
	select {
	case <-s.changes:
	default:
	}
	select {
	case s.changes <- generation:
	default:
		s.log.Warnf("change channel full, discard generation: %d", generation)
	}
}
