// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the contract between the traversal driver and
// the target emitters.
//
// A [Visitor] turns one schema document into a resolved [model.Registry];
// an [Emitter] turns that registry into the text of one target.
package generator

import "github.com/albertocavalcante/modelgen/model"

// Emitter renders the resolved entities of one schema for one target.
//
// Accept is called once per entity in registry order, after relationship
// resolution has completed. Generate is called once, after the last
// Accept, and returns the whole document.
type Emitter interface {
	// Metadata returns information about this emitter.
	Metadata() Metadata

	// Accept takes one resolved entity.
	Accept(e *model.Entity) error

	// Generate renders the full output.
	Generate() (string, error)
}

// Metadata describes an emitter.
type Metadata struct {
	// Target is the configuration value selecting this emitter.
	Target Target

	// Version is the emitter version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".swift"]).
	FileExtensions []string

	// URL is the documentation URL of the generated runtime (optional).
	URL string
}
