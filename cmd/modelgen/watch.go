// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/albertocavalcante/modelgen/internal/load"
)

// debounce groups the burst of events an editor save produces.
const debounce = 150 * time.Millisecond

// watchDirs returns the directories to watch for the schema paths: each
// directory and its non-hidden subdirectories, and the parent of each
// file. URLs and stdin cannot be watched and are skipped.
func watchDirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}

	for _, p := range paths {
		if p == load.Stdin || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Dir(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if path != p && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(dirs)
	return dirs, nil
}

// isSchemaEvent reports whether ev changes a schema file.
func isSchemaEvent(ev fsnotify.Event) bool {
	if !slices.Contains(load.Extensions, filepath.Ext(ev.Name)) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// watchSchema calls rebuild after every settled change to the schema
// files until ctx is done. Rebuild failures are logged and watching
// continues.
func watchSchema(ctx context.Context, paths []string, log logrus.FieldLogger, rebuild func() error) error {
	dirs, err := watchDirs(paths)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("watch: no local schema paths")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}
	log.WithField("dirs", dirs).Info("watching for schema changes")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isSchemaEvent(ev) {
				log.WithFields(logrus.Fields{"file": ev.Name, "op": ev.Op.String()}).Debug("schema changed")
				timer.Reset(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		case <-timer.C:
			if err := rebuild(); err != nil {
				log.WithError(err).Error("regenerate failed")
				continue
			}
			log.Info("regenerated")
		}
	}
}
