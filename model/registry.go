// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

// Registry maps entity names to entities for one generation run.
// Entities keep the order in which they were added; names are unique.
//
// A Registry is owned by exactly one visitor and is not safe for
// concurrent mutation. Independent runs build independent registries.
type Registry struct {
	entities *OrderedMap[*Entity]
	scalars  map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: NewOrderedMap[*Entity](),
		scalars:  make(map[string]bool),
	}
}

// Add registers e. A second entity with the same name is rejected.
func (r *Registry) Add(e *Entity) error {
	if r.entities.Has(e.Name) {
		return NewConfigurationError(e.Name, "", "type is declared more than once")
	}
	r.entities.Set(e.Name, e)
	return nil
}

// Get returns the entity called name, or nil.
func (r *Registry) Get(name string) *Entity {
	return r.entities.Get(name)
}

// Has reports whether an entity called name exists.
func (r *Registry) Has(name string) bool {
	return r.entities.Has(name)
}

// Len returns the number of entities.
func (r *Registry) Len() int {
	return r.entities.Len()
}

// Entities returns all entities in registration order.
func (r *Registry) Entities() []*Entity {
	keys := r.entities.Keys()
	out := make([]*Entity, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.entities.Get(k))
	}
	return out
}

// Models returns the @model entities in registration order.
func (r *Registry) Models() []*Entity { return r.byKind(KindModel) }

// Embedded returns the non-model object entities in registration order.
func (r *Registry) Embedded() []*Entity { return r.byKind(KindEmbedded) }

// Enums returns the enum entities in registration order.
func (r *Registry) Enums() []*Entity { return r.byKind(KindEnum) }

func (r *Registry) byKind(kind EntityKind) []*Entity {
	var out []*Entity
	for _, e := range r.Entities() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// DeclareScalar records a custom scalar declared in the schema.
func (r *Registry) DeclareScalar(name string) {
	r.scalars[name] = true
}

// IsDeclaredScalar reports whether the schema declared a scalar called name.
func (r *Registry) IsDeclaredScalar(name string) bool {
	return r.scalars[name]
}

// Classify returns the type kind of a named entity reference, or
// TypeUnresolved when the registry does not know the name (yet).
func (r *Registry) Classify(name string) TypeKind {
	e := r.Get(name)
	if e == nil {
		return TypeUnresolved
	}
	switch e.Kind {
	case KindEnum:
		return TypeEnum
	case KindModel:
		return TypeModel
	default:
		return TypeEmbedded
	}
}

// AssociatedFields returns the names of the fields on the other side of
// f's relationship that point back at f's owner: the declared inverse, the
// join model's side field, or the foreign keys as a fallback.
func (r *Registry) AssociatedFields(f *Field) []string {
	rel := f.Relationship
	if rel == nil {
		return nil
	}
	switch {
	case rel.Connection == ManyToMany:
		if join := r.Get(rel.JoinEntity); join != nil {
			for _, jf := range join.RelationshipFields() {
				if jf.Relationship.Connection == BelongsTo && jf.Relationship.Related == rel.Owner {
					return []string{jf.Name}
				}
			}
		}
	case rel.Inverse != "":
		return []string{rel.Inverse}
	case rel.Connection == HasOne:
		if related := r.Get(rel.Related); related != nil {
			return append([]string(nil), related.PrimaryKey().Fields...)
		}
	}
	return append([]string(nil), rel.AssociatedWith...)
}
