// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package directive turns directive-annotated schema definitions into
// model entities.
//
// Extraction is the first of two passes. Each definition is read on its
// own; references to types declared later in the document stay
// [model.TypeUnresolved] until the resolver runs.
package directive

import (
	"slices"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// Directive names with modelling semantics.
const (
	Model      = "model"
	PrimaryKey = "primaryKey"
	Index      = "index"
	Key        = "key"
	HasOne     = "hasOne"
	HasMany    = "hasMany"
	BelongsTo  = "belongsTo"
	ManyToMany = "manyToMany"
	Auth       = "auth"
	Default    = "default"
)

var connections = map[string]model.Connection{
	HasOne:     model.HasOne,
	HasMany:    model.HasMany,
	BelongsTo:  model.BelongsTo,
	ManyToMany: model.ManyToMany,
}

// Extract builds the entity for def. Definitions that do not produce an
// entity (inputs, unions, root operation types, scalars) yield nil; a
// scalar definition is recorded with reg.DeclareScalar.
//
// The entity is not added to reg.
func Extract(reg *model.Registry, def *ast.Definition, roots RootTypes) (*model.Entity, error) {
	switch def.Kind {
	case ast.Scalar:
		if !def.BuiltIn {
			reg.DeclareScalar(def.Name)
		}
		return nil, nil
	case ast.Enum:
		return extractEnum(def), nil
	case ast.Object, ast.Interface:
		if roots.Contains(def.Name) || def.BuiltIn {
			return nil, nil
		}
		return extractObject(reg, def)
	default:
		return nil, nil
	}
}

func extractEnum(def *ast.Definition) *model.Entity {
	e := &model.Entity{
		Name:        def.Name,
		Kind:        model.KindEnum,
		Description: def.Description,
		Directives:  Directives(def.Directives),
	}
	for _, v := range def.EnumValues {
		e.Values = append(e.Values, v.Name)
	}
	return e
}

func extractObject(reg *model.Registry, def *ast.Definition) (*model.Entity, error) {
	e := &model.Entity{
		Name:        def.Name,
		Kind:        model.KindEmbedded,
		Description: def.Description,
		Directives:  Directives(def.Directives),
	}
	modelDirective := e.Directive(Model)
	if modelDirective != nil && def.Kind == ast.Object {
		e.Kind = model.KindModel
		e.PluralName = names.Plural(e.Name)
		e.Syncable = true
		if v, ok := modelDirective.Arg("syncable"); ok {
			if b, isBool := v.(bool); isBool {
				e.Syncable = b
			}
		}
	}

	// Fields first: key and relationship directives on fields must be
	// known before the entity is finalised.
	var primary *model.Index
	for _, fd := range def.Fields {
		f, err := extractField(reg, e, fd)
		if err != nil {
			return nil, err
		}
		e.Fields = append(e.Fields, f)

		if d := f.Directive(PrimaryKey); d != nil {
			if primary != nil {
				return nil, model.NewConfigurationError(e.Name, f.Name, "@primaryKey is declared more than once")
			}
			sort, _ := d.StringsArg("sortKeyFields")
			primary = &model.Index{Fields: append([]string{f.Name}, sort...)}
		}
		for _, d := range f.Directives {
			if d.Name != Index {
				continue
			}
			idx := &model.Index{
				Name:       d.StringArg("name"),
				QueryField: d.StringArg("queryField"),
			}
			if idx.Name == "" {
				idx.Name = "gsi-" + e.Name + "." + f.Name
			}
			sort, _ := d.StringsArg("sortKeyFields")
			idx.Fields = append([]string{f.Name}, sort...)
			e.Indexes = append(e.Indexes, idx)
		}
	}

	legacy, err := legacyKeys(e)
	if err != nil {
		return nil, err
	}
	for _, idx := range legacy {
		if idx.IsPrimary() {
			if primary != nil {
				return nil, model.NewConfigurationError(e.Name, "", "primary key is declared more than once")
			}
			primary = idx
			continue
		}
		e.Indexes = append(e.Indexes, idx)
	}
	if primary != nil {
		e.Indexes = slices.Insert(e.Indexes, 0, primary)
	}

	if e.AuthRules, err = AuthRules(e.Name, "", e.Directive(Auth)); err != nil {
		return nil, err
	}

	if e.IsModel() {
		if primary == nil && !e.HasField("id") {
			e.Fields = slices.Insert(e.Fields, 0, &model.Field{
				Name:     "id",
				Type:     model.TypeRef{Name: typemap.ScalarID, Kind: model.TypeScalar, IsRequired: true},
				Implicit: true,
			})
		}
		addTimestamps(e, modelDirective)
	}

	if err := validateKeys(e); err != nil {
		return nil, err
	}
	return e, nil
}

// legacyKeys reads type-level @key directives. A @key without a name is
// the primary key.
func legacyKeys(e *model.Entity) ([]*model.Index, error) {
	var out []*model.Index
	for _, d := range e.Directives {
		if d.Name != Key {
			continue
		}
		fields, ok := d.StringsArg("fields")
		if !ok {
			return nil, model.NewConfigurationError(e.Name, "", "@key requires a fields argument")
		}
		if len(fields) == 0 {
			return nil, model.NewConfigurationError(e.Name, "", "@key requires at least one field")
		}
		out = append(out, &model.Index{
			Name:       d.StringArg("name"),
			Fields:     fields,
			QueryField: d.StringArg("queryField"),
		})
	}
	return out, nil
}

func validateKeys(e *model.Entity) error {
	seen := make(map[string]bool)
	for _, idx := range e.Indexes {
		if !idx.IsPrimary() {
			if seen[idx.Name] {
				return model.NewConfigurationError(e.Name, "", "index %q is declared more than once", idx.Name)
			}
			seen[idx.Name] = true
		}
		for _, name := range idx.Fields {
			if !e.HasField(name) {
				if idx.IsPrimary() {
					return model.NewConfigurationError(e.Name, name, "primary key field does not exist")
				}
				return model.NewConfigurationError(e.Name, name, "field of index %q does not exist", idx.Name)
			}
		}
	}
	return nil
}

// addTimestamps appends the managed createdAt and updatedAt fields unless
// they are declared or disabled through @model(timestamps:).
func addTimestamps(e *model.Entity, d *model.Directive) {
	created, updated := "createdAt", "updatedAt"
	if v, ok := d.Arg("timestamps"); ok {
		m, isMap := v.(*model.OrderedMap[any])
		if !isMap {
			// timestamps: null
			return
		}
		created, updated = timestampName(m, "createdAt"), timestampName(m, "updatedAt")
	}
	for _, name := range []string{created, updated} {
		if name == "" || e.HasField(name) {
			continue
		}
		e.Fields = append(e.Fields, &model.Field{
			Name:     name,
			Type:     model.TypeRef{Name: typemap.ScalarAWSDateTime, Kind: model.TypeScalar},
			ReadOnly: true,
			Implicit: true,
		})
	}
}

func timestampName(m *model.OrderedMap[any], key string) string {
	v, ok := m.Lookup(key)
	if !ok {
		return key
	}
	s, _ := v.(string)
	return s
}

func extractField(reg *model.Registry, e *model.Entity, fd *ast.FieldDefinition) (*model.Field, error) {
	f := &model.Field{
		Name:        fd.Name,
		Description: fd.Description,
		Type:        TypeRef(reg, fd.Type),
		Directives:  Directives(fd.Directives),
	}

	var err error
	if f.AuthRules, err = AuthRules(e.Name, f.Name, f.Directive(Auth)); err != nil {
		return nil, err
	}
	if err := extractDefault(e, f, fd); err != nil {
		return nil, err
	}
	if err := extractRelationship(e, f); err != nil {
		return nil, err
	}
	return f, nil
}

// TypeRef classifies an AST type: supported scalar, then enum or entity
// already in reg, otherwise unresolved.
func TypeRef(reg *model.Registry, t *ast.Type) model.TypeRef {
	ref := model.TypeRef{Name: t.Name()}
	if t.Elem != nil {
		ref.IsList = true
		ref.IsListNullable = !t.NonNull
		ref.IsRequired = t.Elem.NonNull
	} else {
		ref.IsRequired = t.NonNull
	}
	if typemap.IsScalar(ref.Name) {
		ref.Kind = model.TypeScalar
	} else {
		ref.Kind = reg.Classify(ref.Name)
	}
	return ref
}

func extractDefault(e *model.Entity, f *model.Field, fd *ast.FieldDefinition) error {
	d := fd.Directives.ForName(Default)
	if d == nil {
		return nil
	}
	arg := d.Arguments.ForName("value")
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return model.NewConfigurationError(e.Name, f.Name, "@default requires a value")
	}
	if f.Type.IsList || f.Type.IsReference() {
		return model.NewConfigurationError(e.Name, f.Name, "@default is only supported on scalar and enum fields")
	}
	raw := arg.Value.Raw
	if f.Type.Kind == model.TypeScalar {
		if err := typemap.ValidateLiteral(f.Type.Name, raw); err != nil {
			return model.NewConfigurationError(e.Name, f.Name, "%s", err.Error())
		}
	}
	f.Default = &raw
	return nil
}

func extractRelationship(e *model.Entity, f *model.Field) error {
	var found *model.Directive
	for _, d := range f.Directives {
		if _, ok := connections[d.Name]; !ok {
			continue
		}
		if found != nil {
			return model.NewConfigurationError(e.Name, f.Name, "field has both @%s and @%s", found.Name, d.Name)
		}
		found = d
	}
	if found == nil {
		return nil
	}

	conn := connections[found.Name]
	if f.Type.Kind == model.TypeScalar || f.Type.Kind == model.TypeEnum {
		return model.NewConfigurationError(e.Name, f.Name, "@%s requires a model type, got %s", found.Name, f.Type.Name)
	}
	switch conn {
	case model.HasMany, model.ManyToMany:
		if !f.Type.IsList {
			return model.NewConfigurationError(e.Name, f.Name, "@%s requires a list type", found.Name)
		}
	default:
		if f.Type.IsList {
			return model.NewConfigurationError(e.Name, f.Name, "@%s cannot be used on a list type", found.Name)
		}
	}

	rel := &model.Relationship{
		Connection:   conn,
		Owner:        e.Name,
		Related:      f.Type.Name,
		IndexName:    found.StringArg("indexName"),
		RelationName: found.StringArg("relationName"),
	}
	if fields, ok := found.StringsArg("fields"); ok {
		if len(fields) == 0 {
			return model.NewConfigurationError(e.Name, f.Name, "@%s fields must not be empty", found.Name)
		}
		rel.Fields = fields
	}
	if conn == model.ManyToMany && rel.RelationName == "" {
		return model.NewConfigurationError(e.Name, f.Name, "@manyToMany requires a relationName")
	}
	f.Relationship = rel
	return nil
}
