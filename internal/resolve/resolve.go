// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package resolve links entities once the whole schema has been extracted.
//
// Resolve is the second pass: it classifies forward type references,
// completes every pending relationship descriptor, synthesizes implicit
// foreign-key fields and many-to-many join models, and registers what it
// creates. Synthesized names depend only on entity, field and key names,
// so identical input always yields identical output.
package resolve

import (
	"slices"

	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/model"
)

// Resolve completes reg in place. Calling it again on a resolved registry
// changes nothing.
func Resolve(reg *model.Registry) error {
	r := &resolver{reg: reg}
	if err := r.types(); err != nil {
		return err
	}
	for _, e := range reg.Entities() {
		// Resolution may insert foreign keys into e.Fields.
		fields := append([]*model.Field(nil), e.Fields...)
		for _, f := range fields {
			if err := r.field(e, f); err != nil {
				return err
			}
		}
	}
	return nil
}

type resolver struct {
	reg *model.Registry
}

// types classifies references left unresolved by the extractor.
func (r *resolver) types() error {
	for _, e := range r.reg.Entities() {
		for _, f := range e.Fields {
			if f.Type.Kind != model.TypeUnresolved {
				continue
			}
			kind := r.reg.Classify(f.Type.Name)
			if kind == model.TypeUnresolved {
				if r.reg.IsDeclaredScalar(f.Type.Name) {
					return &model.UnknownScalarError{Entity: e.Name, Field: f.Name, Scalar: f.Type.Name}
				}
				return &model.DanglingReferenceError{Entity: e.Name, Field: f.Name, Reference: f.Type.Name}
			}
			f.Type.Kind = kind
		}
	}
	return nil
}

func (r *resolver) field(e *model.Entity, f *model.Field) error {
	rel := f.Relationship
	if rel == nil || rel.Resolved {
		return nil
	}
	if !e.IsModel() {
		return model.NewConfigurationError(e.Name, f.Name, "@%s is only supported on @model types", rel.Connection.Directive())
	}
	related := r.reg.Get(rel.Related)
	if related == nil {
		return &model.DanglingReferenceError{Entity: e.Name, Field: f.Name, Reference: rel.Related}
	}
	if !related.IsModel() {
		return model.NewConfigurationError(e.Name, f.Name, "@%s target %s is not a @model type", rel.Connection.Directive(), related.Name)
	}
	if err := checkFields(e, f, rel.Fields); err != nil {
		return err
	}

	var err error
	switch rel.Connection {
	case model.HasMany:
		err = r.hasMany(e, f, related)
	case model.HasOne:
		err = r.hasOne(e, f, related)
	case model.BelongsTo:
		err = r.belongsTo(e, f, related)
	case model.ManyToMany:
		err = r.manyToMany(e, f, related)
	}
	if err != nil {
		return err
	}
	rel.Resolved = true
	return nil
}

// hasMany binds A.f: [B] to foreign keys on B.
func (r *resolver) hasMany(a *model.Entity, f *model.Field, b *model.Entity) error {
	rel := f.Relationship
	rel.Kind = model.OneToMany

	inverses, err := pairInverses(a, b)
	if err != nil {
		return err
	}
	inverse := inverses[f]
	if inverse != nil {
		rel.Inverse = inverse.Name
	}

	switch {
	case rel.IndexName != "":
		idx := b.Index(rel.IndexName)
		if idx == nil {
			return model.NewConfigurationError(a.Name, f.Name, "index %q does not exist on %s", rel.IndexName, b.Name)
		}
		rel.AssociatedWith = append([]string(nil), idx.Fields...)
	case inverse != nil && len(inverse.Relationship.Fields) > 0:
		rel.AssociatedWith = append([]string(nil), inverse.Relationship.Fields...)
	default:
		keys := foreignKeys(b, a, []string{a.Name, f.Name}, false)
		rel.AssociatedWith = keys
		rel.Implicit = true
		indexName := "gsi-" + a.Name + "." + f.Name
		if b.Index(indexName) == nil {
			b.Indexes = append(b.Indexes, &model.Index{Name: indexName, Fields: keys})
		}
	}
	return nil
}

// hasOne binds A.f: B to foreign keys on A, where AppSync keeps them.
func (r *resolver) hasOne(a *model.Entity, f *model.Field, b *model.Entity) error {
	rel := f.Relationship
	rel.Kind = model.OneToOne

	inverses, err := pairInverses(a, b)
	if err != nil {
		return err
	}
	if inverse := inverses[f]; inverse != nil {
		rel.Inverse = inverse.Name
	}

	if len(rel.Fields) > 0 {
		rel.TargetNames = append([]string(nil), rel.Fields...)
		return nil
	}
	rel.TargetNames = foreignKeys(a, b, []string{a.Name, f.Name}, false)
	rel.Implicit = true
	return nil
}

// belongsTo binds B.g: A. Without explicit fields the foreign key comes
// from the hasMany or hasOne on A pointing back at B.
func (r *resolver) belongsTo(b *model.Entity, g *model.Field, a *model.Entity) error {
	rel := g.Relationship

	inverses, err := pairInverses(a, b)
	if err != nil {
		return err
	}
	inverse := inverses[g]
	if inverse == nil {
		// b may be the explicit join model of a many-to-many on a.
		inverse = findField(a, func(f *model.Field) bool {
			ir := f.Relationship
			return ir != nil && ir.Connection == model.ManyToMany && ir.RelationName == b.Name
		})
	}

	rel.Kind = model.OneToOne
	if inverse != nil {
		rel.Inverse = inverse.Name
		if inverse.Relationship.Connection != model.HasOne {
			rel.Kind = model.OneToMany
		}
	}

	if len(rel.Fields) > 0 {
		rel.TargetNames = append([]string(nil), rel.Fields...)
		return nil
	}
	if inverse == nil {
		return model.NewConfigurationError(b.Name, g.Name, "@belongsTo needs fields or a @hasOne or @hasMany on %s", a.Name)
	}

	switch inverse.Relationship.Connection {
	case model.HasMany:
		if err := r.field(a, inverse); err != nil {
			return err
		}
		rel.TargetNames = append([]string(nil), inverse.Relationship.AssociatedWith...)
		rel.Implicit = inverse.Relationship.Implicit
	case model.HasOne:
		rel.TargetNames = foreignKeys(b, a, []string{b.Name, g.Name}, false)
		rel.Implicit = true
	case model.ManyToMany:
		// b is an explicit join model.
		rel.TargetNames = foreignKeys(b, a, []string{a.Name}, true)
		rel.Implicit = true
	}
	return nil
}

// manyToMany binds A.f: [B] through the join model named by relationName,
// reusing an explicit entity or synthesizing one.
func (r *resolver) manyToMany(a *model.Entity, f *model.Field, b *model.Entity) error {
	rel := f.Relationship
	rel.Kind = model.ManyToManyKind
	rel.JoinEntity = rel.RelationName

	if a.Name == b.Name {
		return model.NewConfigurationError(a.Name, f.Name, "@manyToMany cannot join %s to itself", a.Name)
	}
	counterpart := findField(b, func(g *model.Field) bool {
		gr := g.Relationship
		return gr != nil && gr.Connection == model.ManyToMany && gr.RelationName == rel.RelationName && gr.Related == a.Name
	})
	if counterpart == nil {
		return model.NewConfigurationError(a.Name, f.Name, "@manyToMany(relationName: %q) has no counterpart on %s", rel.RelationName, b.Name)
	}
	rel.Inverse = counterpart.Name

	join := r.reg.Get(rel.RelationName)
	if join == nil {
		var err error
		if join, err = r.synthesizeJoin(rel.RelationName, a, f, b, counterpart); err != nil {
			return err
		}
	} else if !join.IsModel() {
		return model.NewConfigurationError(a.Name, f.Name, "join type %s is not a @model type", join.Name)
	}
	rel.Implicit = join.Synthesized

	side := findField(join, func(g *model.Field) bool {
		return g.Relationship != nil && g.Relationship.Connection == model.BelongsTo && g.Relationship.Related == a.Name
	})
	if side == nil {
		rel.AssociatedWith = foreignKeys(join, a, []string{a.Name}, true)
		return nil
	}
	if err := r.field(join, side); err != nil {
		return err
	}
	rel.AssociatedWith = append([]string(nil), side.Relationship.TargetNames...)
	return nil
}

// synthesizeJoin creates and registers the join model for a many-to-many
// relationship between a and b. Sides follow registry order so both
// declarations produce the same entity.
func (r *resolver) synthesizeJoin(name string, a *model.Entity, af *model.Field, b *model.Entity, bf *model.Field) (*model.Entity, error) {
	first, firstField, second, secondField := a, af, b, bf
	if r.position(b.Name) < r.position(a.Name) {
		first, firstField, second, secondField = b, bf, a, af
	}

	join := &model.Entity{
		Name:        name,
		Kind:        model.KindModel,
		PluralName:  names.Plural(name),
		Syncable:    first.Syncable && second.Syncable,
		Synthesized: true,
		Directives:  []*model.Directive{{Name: "model", Arguments: model.NewOrderedMap[any]()}},
	}

	var primary []string
	var sideFields []*model.Field
	for _, side := range []struct {
		entity *model.Entity
		field  *model.Field
	}{{first, firstField}, {second, secondField}} {
		keys := foreignKeys(join, side.entity, []string{side.entity.Name}, true)
		primary = append(primary, keys...)
		join.Indexes = append(join.Indexes, &model.Index{
			Name:   "by" + side.entity.Name,
			Fields: keys,
		})
		sideFields = append(sideFields, &model.Field{
			Name: names.Decapitalize(side.entity.Name),
			Type: model.TypeRef{Name: side.entity.Name, Kind: model.TypeModel, IsRequired: true},
			Relationship: &model.Relationship{
				Connection:  model.BelongsTo,
				Owner:       name,
				Related:     side.entity.Name,
				TargetNames: keys,
				Inverse:     side.field.Name,
				Kind:        model.OneToMany,
				Implicit:    true,
				Resolved:    true,
			},
			Implicit: true,
		})
	}
	join.Fields = append(join.Fields, sideFields...)
	for _, ts := range []string{"createdAt", "updatedAt"} {
		join.Fields = append(join.Fields, &model.Field{
			Name:     ts,
			Type:     model.TypeRef{Name: "AWSDateTime", Kind: model.TypeScalar},
			ReadOnly: true,
			Implicit: true,
		})
	}
	join.Indexes = append([]*model.Index{{Fields: primary}}, join.Indexes...)

	if err := r.reg.Add(join); err != nil {
		return nil, err
	}
	return join, nil
}

func (r *resolver) position(name string) int {
	for i, e := range r.reg.Entities() {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// foreignKeys returns the names of the fields on holder that reference
// target's primary key, creating any that are missing. Names are
// camel(prefix...)+Pascal(pk_i).
func foreignKeys(holder, target *model.Entity, prefix []string, required bool) []string {
	var out []string
	for _, pk := range target.PrimaryKeyFields() {
		parts := append(append([]string(nil), prefix...), pk.Name)
		name := names.JoinCamel(parts...)
		out = append(out, name)
		if holder.HasField(name) {
			continue
		}
		holder.Fields = append(holder.Fields, &model.Field{
			Name: name,
			Type: model.TypeRef{
				Name:       pk.Type.Name,
				Kind:       pk.Type.Kind,
				IsRequired: required,
			},
			Implicit: true,
		})
	}
	return out
}

// pairInverses matches the @hasMany and @hasOne fields on a that point at
// b with the @belongsTo fields on b that point back at a. The result maps
// each paired field to its inverse, in both directions. A hasMany whose
// index fields equal a belongsTo's fields pairs with it; the remaining
// fields pair in declaration order. Unequal remainders are ambiguous
// unless the surplus belongsTo fields carry their own keys.
func pairInverses(a, b *model.Entity) (map[*model.Field]*model.Field, error) {
	var parents, children []*model.Field
	for _, f := range a.Fields {
		if rel := f.Relationship; rel != nil && rel.Related == b.Name &&
			(rel.Connection == model.HasMany || rel.Connection == model.HasOne) {
			parents = append(parents, f)
		}
	}
	for _, g := range b.Fields {
		if rel := g.Relationship; rel != nil && rel.Related == a.Name && rel.Connection == model.BelongsTo {
			children = append(children, g)
		}
	}

	out := make(map[*model.Field]*model.Field)
	pair := func(p, c *model.Field) {
		out[p] = c
		out[c] = p
	}
	for _, p := range parents {
		if p.Relationship.IndexName == "" {
			continue
		}
		idx := b.Index(p.Relationship.IndexName)
		if idx == nil {
			continue
		}
		for _, c := range children {
			if _, taken := out[c]; !taken && slices.Equal(c.Relationship.Fields, idx.Fields) {
				pair(p, c)
				break
			}
		}
	}

	unpaired := func(fields []*model.Field) []*model.Field {
		var rest []*model.Field
		for _, f := range fields {
			if _, ok := out[f]; !ok {
				rest = append(rest, f)
			}
		}
		return rest
	}
	parents, children = unpaired(parents), unpaired(children)
	if len(parents) != len(children) {
		children = slices.DeleteFunc(children, func(c *model.Field) bool {
			return len(c.Relationship.Fields) > 0
		})
	}

	switch {
	case len(parents) == 0 || len(children) == 0:
	case len(parents) == len(children):
		for i := range parents {
			pair(parents[i], children[i])
		}
	default:
		return nil, model.NewConfigurationError(b.Name, children[0].Name,
			"cannot pair %d @belongsTo fields with %d @hasMany or @hasOne fields on %s; add fields or indexName",
			len(children), len(parents), a.Name)
	}
	return out, nil
}

func findField(e *model.Entity, match func(*model.Field) bool) *model.Field {
	for _, f := range e.Fields {
		if match(f) {
			return f
		}
	}
	return nil
}

func checkFields(e *model.Entity, f *model.Field, fields []string) error {
	for _, name := range fields {
		if !e.HasField(name) {
			return model.NewConfigurationError(e.Name, f.Name, "@%s field %q does not exist", f.Relationship.Connection.Directive(), name)
		}
	}
	return nil
}
