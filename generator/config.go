// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/modelgen/model"

// Generation modes understood by Config.Generate. Each emitter documents
// which ones it supports.
const (
	GenerateCode        = "code"
	GenerateMetadata    = "metadata"
	GenerateLoader      = "loader"
	GenerateDeclaration = "declaration"
)

// Config is the configuration record of one generation run.
type Config struct {
	// Target selects the emitter (swift, java, metadata, typescript,
	// javascript, dart, introspection).
	Target string `yaml:"target"`

	// SelectedType restricts emission to one entity (optional).
	SelectedType string `yaml:"selectedType,omitempty"`

	// Generate is the emission mode (optional, defaults to "code").
	Generate string `yaml:"generate,omitempty"`

	// Options contains target-specific options.
	Options map[string]string `yaml:"options,omitempty"`
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// Mode returns the generation mode, "code" when unset.
func (c Config) Mode() string {
	if c.Generate == "" {
		return GenerateCode
	}
	return c.Generate
}

// Selected reports whether e passes the SelectedType filter.
func (c Config) Selected(e *model.Entity) bool {
	return c.SelectedType == "" || c.SelectedType == e.Name
}
