// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package metadata renders the JSON model schema as a JavaScript or
// TypeScript module for the DataStore runtime.
package metadata

import (
	"fmt"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/schemajson"
	"github.com/albertocavalcante/modelgen/model"
)

// Module flavours selected by the metadataTarget option.
const (
	TargetJavaScript      = "javascript"
	TargetTypeScript      = "typescript"
	TargetTypeDeclaration = "typeDeclaration"
)

// Generator implements [generator.Emitter] for the schema module.
type Generator struct {
	reg      *model.Registry
	target   string
	entities []*model.Entity
}

// NewGenerator creates a metadata emitter over a resolved registry.
func NewGenerator(reg *model.Registry, cfg generator.Config) *Generator {
	return &Generator{
		reg:    reg,
		target: cfg.Option("metadataTarget", TargetJavaScript),
	}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Target:         generator.TargetMetadata,
		Version:        "1.0.0",
		Description:    "Generate the DataStore schema module",
		FileExtensions: []string{".js", ".ts", ".d.ts"},
	}
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	g.entities = append(g.entities, e)
	return nil
}

// Generate renders the schema module.
func (g *Generator) Generate() (string, error) {
	header := "// Code generated by modelgen. DO NOT EDIT.\n"
	if g.target == TargetTypeDeclaration {
		return header + "import { Schema } from '@aws-amplify/datastore';\n\nexport declare const schema: Schema;\n", nil
	}

	doc, err := schemajson.Build(g.reg, g.entities, nil)
	if err != nil {
		return "", err
	}
	body, err := schemajson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("metadata: %w", err)
	}
	switch g.target {
	case TargetJavaScript:
		return header + "export const schema = " + body + ";\n", nil
	case TargetTypeScript:
		return header + "import { Schema } from \"@aws-amplify/datastore\";\n\nexport const schema: Schema = " + body + ";\n", nil
	}
	return "", fmt.Errorf("metadata: unsupported metadataTarget %q", g.target)
}
