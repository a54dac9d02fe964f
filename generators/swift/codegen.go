// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package swift generates Amplify Swift data models.
//
// The generated code follows the Amplify DataStore conventions:
//   - struct conforming to Model for @model types, Embeddable otherwise
//   - enum with String raw values conforming to EnumPersistable
//   - an extension per type with CodingKeys and a defineSchema block
//   - AmplifyModels, registering every model type
package swift

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/schemajson"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// Codegen generates Swift source from resolved entities.
type Codegen struct {
	reg    *model.Registry
	config Config

	entities []*model.Entity
	types    *model.OrderedMap[string]
}

// Output contains the generated Swift content.
type Output struct {
	Swift []byte
}

// New creates a new Swift Codegen.
func New(reg *model.Registry, cfg Config) *Codegen {
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	return &Codegen{
		reg:    reg,
		config: cfg,
		types:  model.NewOrderedMap[string](),
	}
}

func (g *Codegen) checkMode() error {
	switch g.config.Mode {
	case generator.GenerateCode, generator.GenerateMetadata, generator.GenerateLoader:
		return nil
	}
	return fmt.Errorf("swift: unsupported generate mode %q", g.config.Mode)
}

// Accept renders the fragment of one entity.
func (g *Codegen) Accept(e *model.Entity) error {
	if err := g.checkMode(); err != nil {
		return err
	}
	g.entities = append(g.entities, e)
	if g.config.SelectedType != "" && g.config.SelectedType != e.Name {
		return nil
	}

	var buf bytes.Buffer
	var err error
	switch g.config.Mode {
	case generator.GenerateCode:
		switch e.Kind {
		case model.KindEnum:
			g.generateEnum(&buf, e)
		case model.KindModel:
			err = g.generateStruct(&buf, e, "Model")
		default:
			err = g.generateStruct(&buf, e, "Embeddable")
		}
	case generator.GenerateMetadata:
		if e.Kind != model.KindEnum {
			err = g.generateSchema(&buf, e)
		}
	}
	if err != nil {
		return err
	}
	if buf.Len() > 0 {
		g.types.Set(e.Name, buf.String())
	}
	return nil
}

// Generate produces the Swift source file.
func (g *Codegen) Generate() (*Output, error) {
	if err := g.checkMode(); err != nil {
		return nil, err
	}
	if g.config.Mode == generator.GenerateLoader {
		var buf bytes.Buffer
		if err := g.generateLoader(&buf); err != nil {
			return nil, err
		}
		g.types.Set("AmplifyModels", buf.String())
	}
	return &Output{Swift: g.emit()}, nil
}

// ── Structs ─────────────────────────────────────────────────────────

func (g *Codegen) generateStruct(buf *bytes.Buffer, e *model.Entity, conformance string) error {
	in := g.config.Indent
	fields := e.ExposedFields()

	types := make([]string, len(fields))
	for i, f := range fields {
		t, err := fieldType(e, f)
		if err != nil {
			return err
		}
		types[i] = t
	}

	fmt.Fprintf(buf, "public struct %s: %s {\n", e.Name, conformance)
	for i, f := range fields {
		if e.IsModel() {
			decl := "var"
			if f.Name == "id" {
				decl = "let"
			}
			fmt.Fprintf(buf, "%spublic %s %s: %s\n", in, decl, identifier(f.Name), types[i])
		} else {
			fmt.Fprintf(buf, "%svar %s: %s\n", in, identifier(f.Name), types[i])
		}
	}
	if !e.IsModel() {
		buf.WriteString("}\n")
		return nil
	}

	var writable []int
	hasReadOnly := false
	for i, f := range fields {
		if f.ReadOnly {
			hasReadOnly = true
			continue
		}
		writable = append(writable, i)
	}

	all := make([]int, len(fields))
	for i := range fields {
		all[i] = i
	}

	buf.WriteString(in + "\n")
	if hasReadOnly {
		params, err := g.params(e, fields, types, writable)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%spublic init(%s) {\n", in, params)
		args := make([]string, len(fields))
		for i, f := range fields {
			if f.ReadOnly {
				args[i] = identifier(f.Name) + ": nil"
			} else {
				args[i] = identifier(f.Name) + ": " + identifier(f.Name)
			}
		}
		fmt.Fprintf(buf, "%s%sself.init(%s)\n", in, in, strings.Join(args, ",\n"+in+in+in))
		fmt.Fprintf(buf, "%s}\n", in)
	}

	params, err := g.params(e, fields, types, all)
	if err != nil {
		return err
	}
	visibility := "public"
	if hasReadOnly {
		visibility = "internal"
	}
	fmt.Fprintf(buf, "%s%s init(%s) {\n", in, visibility, params)
	for _, f := range fields {
		fmt.Fprintf(buf, "%s%sself.%s = %s\n", in, in, f.Name, identifier(f.Name))
	}
	fmt.Fprintf(buf, "%s}\n", in)
	buf.WriteString("}\n")
	return nil
}

func (g *Codegen) params(e *model.Entity, fields []*model.Field, types []string, idx []int) (string, error) {
	in := g.config.Indent
	parts := make([]string, 0, len(idx))
	for _, i := range idx {
		p := identifier(fields[i].Name) + ": " + types[i]
		def, err := defaultValue(e, fields[i])
		if err != nil {
			return "", err
		}
		if def != "" {
			p += " = " + def
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ",\n"+in+in+in), nil
}

// ── Enums ───────────────────────────────────────────────────────────

func (g *Codegen) generateEnum(buf *bytes.Buffer, e *model.Entity) {
	fmt.Fprintf(buf, "public enum %s: String, EnumPersistable {\n", e.Name)
	for _, v := range e.Values {
		fmt.Fprintf(buf, "%scase %s = %q\n", g.config.Indent, identifier(names.EnumCase(v)), v)
	}
	buf.WriteString("}\n")
}

// ── Schema extensions ───────────────────────────────────────────────

func (g *Codegen) generateSchema(buf *bytes.Buffer, e *model.Entity) error {
	in := g.config.Indent
	fields := e.ExposedFields()
	keys := keysVar(e)

	fmt.Fprintf(buf, "extension %s {\n", e.Name)
	fmt.Fprintf(buf, "%s// MARK: - CodingKeys\n", in)
	fmt.Fprintf(buf, "%spublic enum CodingKeys: String, ModelKey {\n", in)
	for _, f := range fields {
		fmt.Fprintf(buf, "%s%scase %s\n", in, in, identifier(f.Name))
	}
	fmt.Fprintf(buf, "%s}\n\n", in)
	fmt.Fprintf(buf, "%spublic static let keys = CodingKeys.self\n", in)
	fmt.Fprintf(buf, "%s// MARK: - ModelSchema\n\n", in)
	fmt.Fprintf(buf, "%spublic static let schema = defineSchema { model in\n", in)
	fmt.Fprintf(buf, "%s%slet %s = %s.keys\n\n", in, in, keys, e.Name)

	if len(e.AuthRules) > 0 {
		fmt.Fprintf(buf, "%s%smodel.authRules = [\n", in, in)
		rules := make([]string, len(e.AuthRules))
		for i, r := range e.AuthRules {
			rules[i] = in + in + in + authRule(r)
		}
		buf.WriteString(strings.Join(rules, ",\n"))
		fmt.Fprintf(buf, "\n%s%s]\n\n", in, in)
	}

	if e.IsModel() {
		fmt.Fprintf(buf, "%s%smodel.listPluralName = %q\n", in, in, e.PluralName)
		fmt.Fprintf(buf, "%s%smodel.syncPluralName = %q\n\n", in, in, e.PluralName)

		attrs := make([]string, 0, len(e.Indexes)+1)
		for _, idx := range e.Indexes {
			name := "nil"
			if idx.Name != "" {
				name = fmt.Sprintf("%q", idx.Name)
			}
			attrs = append(attrs, fmt.Sprintf(".index(fields: %s, name: %s)", quoteAll(idx.Fields), name))
		}
		pk := make([]string, 0, len(e.PrimaryKey().Fields))
		for _, name := range e.PrimaryKey().Fields {
			pk = append(pk, keys+"."+identifier(name))
		}
		attrs = append(attrs, ".primaryKey(fields: ["+strings.Join(pk, ", ")+"])")
		fmt.Fprintf(buf, "%s%smodel.attributes(\n", in, in)
		fmt.Fprintf(buf, "%s%s%s%s\n", in, in, in, strings.Join(attrs, ",\n"+in+in+in))
		fmt.Fprintf(buf, "%s%s)\n\n", in, in)
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		line, err := g.schemaField(e, f, keys)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	fmt.Fprintf(buf, "%s%smodel.fields(\n", in, in)
	fmt.Fprintf(buf, "%s%s%s%s\n", in, in, in, strings.Join(lines, ",\n"+in+in+in))
	fmt.Fprintf(buf, "%s%s)\n", in, in)
	fmt.Fprintf(buf, "%s}\n", in)
	buf.WriteString("}\n")

	if e.IsModel() {
		buf.WriteString("\n")
		return g.generateIdentifier(buf, e)
	}
	return nil
}

func (g *Codegen) schemaField(e *model.Entity, f *model.Field, keys string) (string, error) {
	t := f.EffectiveType()
	ref := keys + "." + identifier(f.Name)
	rel := f.Relationship
	if rel == nil {
		st, err := typemap.SwiftSchemaType(t)
		if err != nil {
			return "", typemap.WithContext(err, e, f)
		}
		readOnly := ""
		if f.ReadOnly {
			readOnly = "isReadOnly: true, "
		}
		return fmt.Sprintf(".field(%s, is: %s, %sofType: %s)", ref, required(t), readOnly, st), nil
	}

	switch rel.Connection {
	case model.HasMany, model.ManyToMany:
		return fmt.Sprintf(".hasMany(%s, is: %s, ofType: %s.self, associatedFields: %s)",
			ref, required(t), t.Name, g.associatedFields(f)), nil
	case model.HasOne:
		return fmt.Sprintf(".hasOne(%s, is: %s, ofType: %s.self, associatedFields: %s, targetNames: %s)",
			ref, required(t), t.Name, g.associatedFields(f), quoteAll(rel.TargetNames)), nil
	default:
		return fmt.Sprintf(".belongsTo(%s, is: %s, ofType: %s.self, targetNames: %s)",
			ref, required(t), t.Name, quoteAll(rel.TargetNames)), nil
	}
}

// associatedFields renders the keys pointing back at the owner of f.
func (g *Codegen) associatedFields(f *model.Field) string {
	other := f.EffectiveType().Name
	refs := g.reg.AssociatedFields(f)
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = other + ".keys." + identifier(r)
	}
	return "[" + strings.Join(out, ", ") + "]"
}

func (g *Codegen) generateIdentifier(buf *bytes.Buffer, e *model.Entity) error {
	in := g.config.Indent
	fmt.Fprintf(buf, "extension %s: ModelIdentifiable {\n", e.Name)
	if !e.HasCustomPrimaryKey() {
		fmt.Fprintf(buf, "%spublic typealias IdentifierFormat = ModelIdentifierFormat.Default\n", in)
		fmt.Fprintf(buf, "%spublic typealias IdentifierProtocol = DefaultModelIdentifier<Self>\n", in)
		buf.WriteString("}\n")
		return nil
	}
	fmt.Fprintf(buf, "%spublic typealias IdentifierFormat = ModelIdentifierFormat.Custom\n", in)
	fmt.Fprintf(buf, "%spublic typealias IdentifierProtocol = ModelIdentifier<Self, ModelIdentifierFormat.Custom>\n", in)
	buf.WriteString("}\n\n")

	var params, pairs []string
	for _, f := range e.PrimaryKeyFields() {
		t, err := typemap.Map(f.Type, typemap.Swift)
		if err != nil {
			return typemap.WithContext(err, e, f)
		}
		params = append(params, identifier(f.Name)+": "+t)
		pairs = append(pairs, fmt.Sprintf("(name: %q, value: %s)", f.Name, identifier(f.Name)))
	}
	fmt.Fprintf(buf, "extension %s.IdentifierProtocol {\n", e.Name)
	fmt.Fprintf(buf, "%spublic static func identifier(%s) -> Self {\n", in, strings.Join(params, ", "))
	fmt.Fprintf(buf, "%s%s.make(fields: [%s])\n", in, in, strings.Join(pairs, ", "))
	fmt.Fprintf(buf, "%s}\n", in)
	buf.WriteString("}\n")
	return nil
}

// ── Loader ──────────────────────────────────────────────────────────

func (g *Codegen) generateLoader(buf *bytes.Buffer) error {
	in := g.config.Indent
	doc, err := schemajson.Build(g.reg, g.entities, nil)
	if err != nil {
		return err
	}
	buf.WriteString("// Contains the set of classes that conforms to the `Model` protocol.\n\n")
	buf.WriteString("final public class AmplifyModels: AmplifyModelRegistration {\n")
	fmt.Fprintf(buf, "%spublic let version: String = %q\n\n", in, doc.Version)
	fmt.Fprintf(buf, "%spublic func registerModels(registry: ModelRegistry.Type) {\n", in)
	for _, e := range g.entities {
		if e.IsModel() {
			fmt.Fprintf(buf, "%s%sModelRegistry.register(modelType: %s.self)\n", in, in, e.Name)
		}
	}
	fmt.Fprintf(buf, "%s}\n", in)
	buf.WriteString("}\n")
	return nil
}

// ── Emit final file ─────────────────────────────────────────────────

func (g *Codegen) emit() []byte {
	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	buf.WriteString("import Amplify\n")
	buf.WriteString("import Foundation\n")
	for _, name := range g.types.Keys() {
		buf.WriteString("\n")
		buf.WriteString(g.types.Get(name))
	}
	return buf.Bytes()
}

func (g *Codegen) fileHeader() string {
	return "// swiftlint:disable all\n// Code generated by modelgen. DO NOT EDIT.\n"
}
