// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package javascript generates the Amplify DataStore JavaScript module.
//
// Code mode renders index.js, which binds the model constructors with
// initSchema and exports them with the enum objects. Declaration mode
// renders the matching index.d.ts through the TypeScript generator.
package javascript

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/generators/typescript"
	"github.com/albertocavalcante/modelgen/model"
)

// Generator implements [generator.Emitter] for JavaScript.
type Generator struct {
	mode         string
	schemaImport string
	indent       string

	entities []*model.Entity
	decl     *typescript.Codegen
}

// NewGenerator creates a JavaScript emitter over a resolved registry.
func NewGenerator(reg *model.Registry, cfg generator.Config) *Generator {
	g := &Generator{
		mode:         cfg.Mode(),
		schemaImport: cfg.Option("schemaImport", "./schema"),
		indent:       cfg.Option("indent", "  "),
	}
	if g.mode == generator.GenerateDeclaration {
		g.decl = typescript.New(reg, typescript.Config{
			Mode:   generator.GenerateDeclaration,
			Indent: g.indent,
		})
	}
	return g
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Target:         generator.TargetJavaScript,
		Version:        "1.0.0",
		Description:    "Generate the Amplify DataStore JavaScript module",
		FileExtensions: []string{".js", ".d.ts"},
		URL:            "https://docs.amplify.aws/javascript/",
	}
}

func (g *Generator) checkMode() error {
	switch g.mode {
	case generator.GenerateCode, generator.GenerateDeclaration:
		return nil
	}
	return fmt.Errorf("javascript: unsupported generate mode %q", g.mode)
}

// Accept takes one resolved entity.
func (g *Generator) Accept(e *model.Entity) error {
	if err := g.checkMode(); err != nil {
		return err
	}
	if g.decl != nil {
		return g.decl.Accept(e)
	}
	g.entities = append(g.entities, e)
	return nil
}

// Generate renders index.js or index.d.ts.
func (g *Generator) Generate() (string, error) {
	if err := g.checkMode(); err != nil {
		return "", err
	}
	if g.decl != nil {
		out, err := g.decl.Generate()
		if err != nil {
			return "", err
		}
		return string(out.TypeScript), nil
	}
	return string(g.module()), nil
}

func (g *Generator) module() []byte {
	in := g.indent
	var buf bytes.Buffer
	buf.WriteString("// @ts-check\n")
	buf.WriteString("// Code generated by modelgen. DO NOT EDIT.\n")
	buf.WriteString("import { initSchema } from '@aws-amplify/datastore';\n")
	fmt.Fprintf(&buf, "import { schema } from '%s';\n", g.schemaImport)

	var bound, exports []string
	for _, e := range g.entities {
		if e.Kind != model.KindEnum {
			bound = append(bound, e.Name)
			continue
		}
		values := make([]string, len(e.Values))
		for i, v := range e.Values {
			values[i] = fmt.Sprintf("%s%q: %q", in, v, v)
		}
		fmt.Fprintf(&buf, "\nconst %s = {\n%s\n};\n", e.Name, strings.Join(values, ",\n"))
	}
	for _, e := range g.entities {
		exports = append(exports, in+e.Name)
	}

	fmt.Fprintf(&buf, "\nconst { %s } = initSchema(schema);\n", strings.Join(bound, ", "))
	fmt.Fprintf(&buf, "\nexport {\n%s\n};\n", strings.Join(exports, ",\n"))
	return buf.Bytes()
}
