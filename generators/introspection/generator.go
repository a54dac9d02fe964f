// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package introspection renders the model introspection document: a
// versioned JSON description of every model, enum and non-model type that
// runtime client libraries load directly.
package introspection

import (
	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/schemajson"
	"github.com/albertocavalcante/modelgen/model"
)

// Generator implements [generator.Emitter] for model introspection.
type Generator struct {
	reg       *model.Registry
	selection map[string]bool
	entities  []*model.Entity
}

// NewGenerator creates an introspection emitter over a resolved registry.
// A SelectedType narrows the document to that type and the types it
// references.
func NewGenerator(reg *model.Registry, cfg generator.Config) *Generator {
	return &Generator{reg: reg, selection: cfg.Selection(reg)}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Target:         generator.TargetIntrospection,
		Version:        "1.0.0",
		Description:    "Generate the model introspection schema",
		FileExtensions: []string{".json"},
	}
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	g.entities = append(g.entities, e)
	return nil
}

// Generate renders the introspection JSON.
func (g *Generator) Generate() (string, error) {
	doc, err := schemajson.Build(g.reg, g.entities, g.selection)
	if err != nil {
		return "", err
	}
	return schemajson.Marshal(doc.Introspection())
}
