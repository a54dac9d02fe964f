// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"slices"
	"sync"
)

// Output collects rendered documents by file name. Hosts running several
// targets concurrently share one Output; Add is safe for concurrent use.
type Output struct {
	mu    sync.Mutex
	files map[string]string
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{files: make(map[string]string)}
}

// Add stores content under name, replacing any earlier document.
func (o *Output) Add(name, content string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files[name] = content
}

// Get returns the document stored under name.
func (o *Output) Get(name string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, ok := o.files[name]
	return s, ok
}

// Names returns the stored file names, sorted.
func (o *Output) Names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, 0, len(o.files))
	for name := range o.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
