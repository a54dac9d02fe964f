// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dart

import (
	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/model"
)

// Generator implements [generator.Emitter] for Dart model generation.
type Generator struct {
	cg *Codegen
}

// NewGenerator creates a Dart emitter over a resolved registry.
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
		Target:         generator.TargetDart,
		Version:        "1.0.0",
		Description:    "Generate Amplify Flutter models",
		FileExtensions: []string{".dart"},
		URL:            "https://docs.amplify.aws/flutter/",
	}
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	return g.cg.Accept(e)
}

// Generate renders the Dart document.
func (g *Generator) Generate() (string, error) {
	out, err := g.cg.Generate()
	if err != nil {
		return "", err
	}
	return string(out.Dart), nil
}
