// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/modelgen/model"

// ResolveDeps expands a selection of entity names to include every
// entity they transitively reference: field types, relationship targets
// and join models. Returns nil if filter is nil (meaning "all entities").
func ResolveDeps(reg *model.Registry, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(reg, name, expanded)
	}
	return expanded
}

// collectDeps recursively collects all entities referenced by name.
func collectDeps(reg *model.Registry, name string, visited map[string]bool) {
	if visited[name] {
		return // Already processed or cycle
	}
	e := reg.Get(name)
	if e == nil {
		return
	}
	visited[name] = true

	for _, f := range e.Fields {
		switch f.Type.Kind {
		case model.TypeEnum, model.TypeModel, model.TypeEmbedded:
			collectDeps(reg, f.Type.Name, visited)
		}
		if rel := f.Relationship; rel != nil && rel.JoinEntity != "" {
			collectDeps(reg, rel.JoinEntity, visited)
		}
	}
}

// Selection returns the entity names a SelectedType run covers, including
// dependencies, or nil when every entity is selected.
func (c Config) Selection(reg *model.Registry) map[string]bool {
	if c.SelectedType == "" {
		return nil
	}
	return ResolveDeps(reg, map[string]bool{c.SelectedType: true})
}
