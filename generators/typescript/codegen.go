// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typescript generates Amplify DataStore model declarations.
//
// Every object type is declared twice, as an Eager shape with plain
// related values and a Lazy shape with AsyncItem and AsyncCollection
// accessors; the exported type picks one through LazyLoading. In code mode
// the module also binds the model constructors with initSchema.
package typescript

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// Codegen generates TypeScript source from resolved entities.
type Codegen struct {
	reg    *model.Registry
	config Config

	entities []*model.Entity
	types    *model.OrderedMap[string]
}

// Output contains the generated TypeScript content.
type Output struct {
	TypeScript []byte
}

// New creates a new TypeScript Codegen.
func New(reg *model.Registry, cfg Config) *Codegen {
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	if cfg.SchemaImport == "" {
		cfg.SchemaImport = "./schema"
	}
	return &Codegen{
		reg:    reg,
		config: cfg,
		types:  model.NewOrderedMap[string](),
	}
}

func (g *Codegen) checkMode() error {
	switch g.config.Mode {
	case generator.GenerateCode, generator.GenerateDeclaration:
		return nil
	}
	return fmt.Errorf("typescript: unsupported generate mode %q", g.config.Mode)
}

// Accept renders the declarations of one entity.
func (g *Codegen) Accept(e *model.Entity) error {
	if err := g.checkMode(); err != nil {
		return err
	}
	g.entities = append(g.entities, e)

	var buf bytes.Buffer
	if e.Kind == model.KindEnum {
		g.generateEnum(&buf, e)
	} else if err := g.generateType(&buf, e); err != nil {
		return err
	}
	g.types.Set(e.Name, buf.String())
	return nil
}

// Generate produces the TypeScript source.
func (g *Codegen) Generate() (*Output, error) {
	if err := g.checkMode(); err != nil {
		return nil, err
	}
	if g.config.Mode == generator.GenerateCode {
		var buf bytes.Buffer
		g.generateInit(&buf)
		g.types.Set("initSchema", buf.String())
	}
	return &Output{TypeScript: g.emit()}, nil
}

// typeName is the declared name of an entity. Code mode suffixes object
// types with "Model" so the initSchema constructors can take the plain
// names.
func (g *Codegen) typeName(name string) string {
	if g.config.Mode == generator.GenerateCode && g.reg.Classify(name) != model.TypeEnum {
		return name + "Model"
	}
	return name
}

// ── Enums ───────────────────────────────────────────────────────────

func (g *Codegen) generateEnum(buf *bytes.Buffer, e *model.Entity) {
	fmt.Fprintf(buf, "export enum %s {\n", e.Name)
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = fmt.Sprintf("%s%s = %q", g.config.Indent, v, v)
	}
	buf.WriteString(strings.Join(values, ",\n"))
	buf.WriteString("\n}\n")
}

// ── Object types ────────────────────────────────────────────────────

func (g *Codegen) generateType(buf *bytes.Buffer, e *model.Entity) error {
	name := g.typeName(e.Name)
	for _, lazy := range []bool{false, true} {
		prefix := "Eager"
		if lazy {
			prefix = "Lazy"
		}
		fmt.Fprintf(buf, "type %s%s = {\n", prefix, name)
		if e.IsModel() {
			g.writeMeta(buf, e)
		}
		for _, f := range e.Fields {
			line, err := g.field(e, f, lazy)
			if err != nil {
				return err
			}
			fmt.Fprintf(buf, "%s%s\n", g.config.Indent, line)
		}
		buf.WriteString("}\n\n")
	}

	fmt.Fprintf(buf, "export declare type %s = LazyLoading extends LazyLoadingDisabled ? Eager%s : Lazy%s\n\n", name, name, name)
	if !e.IsModel() {
		fmt.Fprintf(buf, "export declare const %s: (new (init: ModelInit<%s>) => %s)\n", name, name, name)
		return nil
	}
	fmt.Fprintf(buf, "export declare const %s: (new (init: ModelInit<%s>) => %s) & {\n", name, name, name)
	fmt.Fprintf(buf, "%scopyOf(source: %s, mutator: (draft: MutableModel<%s>) => MutableModel<%s> | void): %s;\n",
		g.config.Indent, name, name, name, name)
	buf.WriteString("}\n")
	return nil
}

func (g *Codegen) writeMeta(buf *bytes.Buffer, e *model.Entity) {
	in := g.config.Indent
	name := g.typeName(e.Name)
	pk := e.PrimaryKey().Fields

	var identifier string
	switch {
	case !e.HasCustomPrimaryKey():
		identifier = fmt.Sprintf("ManagedIdentifier<%s, 'id'>", name)
	case len(pk) == 1:
		identifier = fmt.Sprintf("CustomIdentifier<%s, '%s'>", name, pk[0])
	default:
		q := make([]string, len(pk))
		for i, f := range pk {
			q[i] = "'" + f + "'"
		}
		identifier = fmt.Sprintf("CompositeIdentifier<%s, [%s]>", name, strings.Join(q, ", "))
	}

	var readOnly []string
	for _, f := range e.Fields {
		if f.ReadOnly {
			readOnly = append(readOnly, "'"+f.Name+"'")
		}
	}

	fmt.Fprintf(buf, "%sreadonly [__modelMeta__]: {\n", in)
	fmt.Fprintf(buf, "%s%sidentifier: %s;\n", in, in, identifier)
	if len(readOnly) > 0 {
		fmt.Fprintf(buf, "%s%sreadOnlyFields: %s;\n", in, in, strings.Join(readOnly, " | "))
	}
	fmt.Fprintf(buf, "%s};\n", in)
}

// field renders one property line of the Eager or Lazy shape.
func (g *Codegen) field(e *model.Entity, f *model.Field, lazy bool) (string, error) {
	t := f.EffectiveType()
	if t.IsReference() {
		t.Name = g.typeName(t.Name)
	}

	if lazy && f.Relationship != nil && t.Kind == model.TypeModel {
		if t.IsList {
			return fmt.Sprintf("readonly %s: AsyncCollection<%s>;", f.Name, t.Name), nil
		}
		item := t.Name
		if t.Nullable() {
			item += " | undefined"
		}
		return fmt.Sprintf("readonly %s: AsyncItem<%s>;", f.Name, item), nil
	}

	s, err := typemap.Map(t, typemap.TypeScript)
	if err != nil {
		return "", typemap.WithContext(err, e, f)
	}
	if t.Kind == model.TypeEnum && !t.IsList {
		s = strings.Replace(s, t.Name, t.Name+" | keyof typeof "+t.Name, 1)
	}
	optional := ""
	if t.Nullable() {
		optional = "?"
	}
	return fmt.Sprintf("readonly %s%s: %s;", f.Name, optional, s), nil
}

// ── initSchema ──────────────────────────────────────────────────────

func (g *Codegen) generateInit(buf *bytes.Buffer) {
	in := g.config.Indent
	var bound, constructors, exports []string
	for _, e := range g.entities {
		switch e.Kind {
		case model.KindModel:
			bound = append(bound, e.Name)
			constructors = append(constructors, fmt.Sprintf("%s%s: PersistentModelConstructor<%s>;", in, e.Name, g.typeName(e.Name)))
		case model.KindEmbedded:
			bound = append(bound, e.Name)
			constructors = append(constructors, fmt.Sprintf("%s%s: NonModelTypeConstructor<%s>;", in, e.Name, g.typeName(e.Name)))
		}
		if e.Kind != model.KindEnum {
			exports = append(exports, in+e.Name)
		}
	}
	fmt.Fprintf(buf, "const { %s } = initSchema(schema) as {\n%s\n};\n\n", strings.Join(bound, ", "), strings.Join(constructors, "\n"))
	fmt.Fprintf(buf, "export {\n%s\n};\n", strings.Join(exports, ",\n"))
}

// ── Emit final file ─────────────────────────────────────────────────

func (g *Codegen) emit() []byte {
	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	if g.config.Mode == generator.GenerateCode {
		buf.WriteString("import { ModelInit, MutableModel, PersistentModelConstructor, NonModelTypeConstructor, __modelMeta__, ManagedIdentifier, CustomIdentifier, CompositeIdentifier } from \"@aws-amplify/datastore\";\n")
	} else {
		buf.WriteString("import { ModelInit, MutableModel, __modelMeta__, ManagedIdentifier, CustomIdentifier, CompositeIdentifier } from \"@aws-amplify/datastore\";\n")
	}
	buf.WriteString("// @ts-ignore\n")
	buf.WriteString("import { LazyLoading, LazyLoadingDisabled, AsyncItem, AsyncCollection } from \"@aws-amplify/datastore\";\n")
	if g.config.Mode == generator.GenerateCode {
		buf.WriteString("import { initSchema } from \"@aws-amplify/datastore\";\n\n")
		fmt.Fprintf(&buf, "import { schema } from %q;\n", g.config.SchemaImport)
	}
	for _, name := range g.types.Keys() {
		buf.WriteString("\n")
		buf.WriteString(g.types.Get(name))
	}
	return buf.Bytes()
}

func (g *Codegen) fileHeader() string {
	return "// Code generated by modelgen. DO NOT EDIT.\n"
}
