// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

import (
	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/model"
)

// Generator implements [generator.Emitter] for TypeScript model generation.
type Generator struct {
	cg *Codegen
}

// NewGenerator creates a TypeScript emitter over a resolved registry.
func NewGenerator(reg *model.Registry, cfg generator.Config) *Generator {
	return &Generator{cg: New(reg, Config{
		Mode:         cfg.Mode(),
		SchemaImport: cfg.Option("schemaImport", "./schema"),
		Indent:       cfg.Option("indent", "  "),
	})}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Target:         generator.TargetTypeScript,
		Version:        "1.0.0",
		Description:    "Generate Amplify DataStore TypeScript models",
		FileExtensions: []string{".ts"},
		URL:            "https://docs.amplify.aws/javascript/",
	}
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	return g.cg.Accept(e)
}

// Generate renders the TypeScript document.
func (g *Generator) Generate() (string, error) {
	out, err := g.cg.Generate()
	if err != nil {
		return "", err
	}
	return string(out.TypeScript), nil
}
