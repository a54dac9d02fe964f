// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package swift

import (
	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/model"
)

// Generator implements [generator.Emitter] for Swift model generation.
type Generator struct {
	cg *Codegen
}

// NewGenerator creates a Swift emitter over a resolved registry.
func NewGenerator(reg *model.Registry, cfg generator.Config) *Generator {
	return &Generator{cg: New(reg, Config{
		Mode:         cfg.Mode(),
		SelectedType: cfg.SelectedType,
		Indent:       cfg.Option("indent", "  "),
	})}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Target:         generator.TargetSwift,
		Version:        "1.0.0",
		Description:    "Generate Amplify Swift models",
		FileExtensions: []string{".swift"},
		URL:            "https://docs.amplify.aws/swift/",
	}
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	return g.cg.Accept(e)
}

// Generate renders the Swift document.
func (g *Generator) Generate() (string, error) {
	out, err := g.cg.Generate()
	if err != nil {
		return "", err
	}
	return string(out.Swift), nil
}
