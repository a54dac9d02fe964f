// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/model"
)

// DefaultPackage is the package Amplify Android loads generated models from.
const DefaultPackage = "com.amplifyframework.datastore.generated.model"

// Generator implements [generator.Emitter] for Java model generation.
type Generator struct {
	cg *Codegen
}

// NewGenerator creates a Java emitter over a resolved registry.
func NewGenerator(reg *model.Registry, cfg generator.Config) *Generator {
	return &Generator{cg: New(reg, Config{
		Mode:         cfg.Mode(),
		SelectedType: cfg.SelectedType,
		Package:      cfg.Option("package", DefaultPackage),
		Indent:       cfg.Option("indent", "  "),
	})}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Target:         generator.TargetJava,
		Version:        "1.0.0",
		Description:    "Generate Amplify Android Java models",
		FileExtensions: []string{".java"},
		URL:            "https://docs.amplify.aws/android/",
	}
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	return g.cg.Accept(e)
}

// Generate renders the Java document.
func (g *Generator) Generate() (string, error) {
	out, err := g.cg.Generate()
	if err != nil {
		return "", err
	}
	return string(out.Java), nil
}
