// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settings

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/getarg/fault"
)

// Watcher - refresh a store whenever its configuration file changes
type Watcher struct {
	log      *logger.L
	store    *Store
	watcher  *fsnotify.Watcher
	filePath string
}

// NewWatcher - create a watcher for the store's configuration file
//
// the returned watcher is a background.Process
func NewWatcher(log *logger.L, store *Store) (*Watcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if "" == store.FileName() {
		return nil, fault.ErrMissingConfigurationFile
	}

	filePath, err := filepath.Abs(filepath.Clean(store.FileName()))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrConfigurationFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	// watch the directory so that a file replaced by an editor is
	// still seen
	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		log.Errorf("watcher add: %q  error: %s", filePath, err)
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		store:    store,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Run - wait for file events until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.process(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	w.log.Info("stopped")
}

func (w *Watcher) process(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.filePath {
		return
	}

	w.log.Debugf("file event: %v", event)

	switch {
	case watcherEventFileRemove(event):
		w.log.Warnf("file: %q removed, keeping current options", w.filePath)

	case watcherEventFileChange(event):
		// error already logged by the store
		_ = w.store.Refresh()
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
