// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the intermediate representation shared by the
// directive extractor, the relationship resolver and every target emitter.
//
// A schema document is turned into a [Registry] of [Entity] values. Each
// entity owns its ordered [Field] list; relationship fields carry a
// [Relationship] that starts out pending and is completed exactly once by
// the resolver before any emitter runs.
package model

import "slices"

// EntityKind classifies an entity.
type EntityKind int

const (
	// KindModel is a persistent type marked with @model.
	KindModel EntityKind = iota
	// KindEmbedded is an object type without @model, used only as a nested shape.
	KindEmbedded
	// KindEnum is a GraphQL enum.
	KindEnum
)

// String returns the lowercase name of the kind.
func (k EntityKind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindEmbedded:
		return "embedded"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Entity is a named model type derived from one schema definition.
type Entity struct {
	// Name is the schema type name (e.g., "Post").
	Name string `json:"name"`

	// Kind tells persistent models, embedded shapes and enums apart.
	Kind EntityKind `json:"kind"`

	// PluralName is the pluralised name used by list/sync operations.
	PluralName string `json:"pluralName,omitempty"`

	// Description is the schema description, if any.
	Description string `json:"description,omitempty"`

	// Fields in declaration order. Implicit fields (id, timestamps,
	// foreign keys) are inserted where the AppSync transformer puts them.
	Fields []*Field `json:"fields,omitempty"`

	// Indexes holds the primary key (unnamed) followed by secondary indexes.
	Indexes []*Index `json:"indexes,omitempty"`

	// AuthRules combine with OR semantics.
	AuthRules []*AuthRule `json:"authRules,omitempty"`

	// Values lists enum members for KindEnum.
	Values []string `json:"values,omitempty"`

	// Directives keeps every directive on the type verbatim.
	Directives []*Directive `json:"directives,omitempty"`

	// Synthesized marks join models created by the resolver.
	Synthesized bool `json:"synthesized,omitempty"`

	// Syncable is false when @model(syncable: false) opts out of DataStore sync.
	Syncable bool `json:"syncable"`
}

// IsModel reports whether e is a persistent model.
func (e *Entity) IsModel() bool { return e.Kind == KindModel }

// Field returns the field with the given name, or nil.
func (e *Entity) Field(name string) *Field {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// HasField reports whether the entity declares a field called name.
func (e *Entity) HasField(name string) bool { return e.Field(name) != nil }

// Directive returns the first directive with the given name, or nil.
func (e *Entity) Directive(name string) *Directive {
	return findDirective(e.Directives, name)
}

// PrimaryKey returns the primary key index. Models without an explicit key
// use the "id" field.
func (e *Entity) PrimaryKey() *Index {
	for _, idx := range e.Indexes {
		if idx.IsPrimary() {
			return idx
		}
	}
	return &Index{Fields: []string{"id"}}
}

// PrimaryKeyFields returns the fields of the primary key in key order.
func (e *Entity) PrimaryKeyFields() []*Field {
	pk := e.PrimaryKey()
	out := make([]*Field, 0, len(pk.Fields))
	for _, name := range pk.Fields {
		if f := e.Field(name); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// HasCustomPrimaryKey reports whether the primary key differs from a lone "id".
func (e *Entity) HasCustomPrimaryKey() bool {
	pk := e.PrimaryKey()
	return len(pk.Fields) != 1 || pk.Fields[0] != "id"
}

// SecondaryIndexes returns the named indexes in declaration order.
func (e *Entity) SecondaryIndexes() []*Index {
	var out []*Index
	for _, idx := range e.Indexes {
		if !idx.IsPrimary() {
			out = append(out, idx)
		}
	}
	return out
}

// Index returns the secondary index with the given name, or nil.
func (e *Entity) Index(name string) *Index {
	for _, idx := range e.Indexes {
		if idx.Name == name {
			return idx
		}
	}
	return nil
}

// RelationshipFields returns the fields that carry a relationship.
func (e *Entity) RelationshipFields() []*Field {
	var out []*Field
	for _, f := range e.Fields {
		if f.Relationship != nil {
			out = append(out, f)
		}
	}
	return out
}

// IsConnectedKey reports whether name is an implicit foreign key owned by
// one of e's hasOne or belongsTo fields and not part of the primary key.
// Typed targets render such keys through the relationship field rather
// than as a field of their own.
func (e *Entity) IsConnectedKey(name string) bool {
	f := e.Field(name)
	if f == nil || !f.Implicit || slices.Contains(e.PrimaryKey().Fields, name) {
		return false
	}
	for _, rf := range e.RelationshipFields() {
		if rf.Relationship.OwnsForeignKey() && slices.Contains(rf.Relationship.TargetNames, name) {
			return true
		}
	}
	return false
}

// ExposedFields returns the fields typed targets declare: every field
// except connected keys.
func (e *Entity) ExposedFields() []*Field {
	out := make([]*Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if !e.IsConnectedKey(f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// InsertFieldAfter inserts f right after the field named after. When after
// is empty or absent the field is appended.
func (e *Entity) InsertFieldAfter(after string, f *Field) {
	for i, existing := range e.Fields {
		if existing.Name == after {
			e.Fields = slices.Insert(e.Fields, i+1, f)
			return
		}
	}
	e.Fields = append(e.Fields, f)
}

// Field is one member of an entity.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Type is the declared GraphQL type shape.
	Type TypeRef `json:"type"`

	// Default is the literal from @default(value:), kept as written.
	Default *string `json:"default,omitempty"`

	// Relationship is set when the field carries a relationship directive.
	Relationship *Relationship `json:"relationship,omitempty"`

	// AuthRules attached to the field.
	AuthRules []*AuthRule `json:"authRules,omitempty"`

	// Directives keeps every directive on the field verbatim.
	Directives []*Directive `json:"directives,omitempty"`

	// ReadOnly marks server-managed fields such as timestamps.
	ReadOnly bool `json:"readOnly,omitempty"`

	// Implicit marks fields that have no declaration in the schema.
	Implicit bool `json:"implicit,omitempty"`
}

// Directive returns the first directive with the given name, or nil.
func (f *Field) Directive(name string) *Directive {
	return findDirective(f.Directives, name)
}

// EffectiveType returns the type emitters render. A resolved many-to-many
// field is a list of its join model; every other field keeps its
// declared type.
func (f *Field) EffectiveType() TypeRef {
	r := f.Relationship
	if r == nil || r.Connection != ManyToMany || r.JoinEntity == "" {
		return f.Type
	}
	t := f.Type
	t.Name = r.JoinEntity
	t.Kind = TypeModel
	return t
}

// TypeKind classifies the named type a field refers to.
type TypeKind int

const (
	// TypeUnresolved is a reference the extractor could not classify yet.
	TypeUnresolved TypeKind = iota
	// TypeScalar is a GraphQL or AWS scalar.
	TypeScalar
	// TypeEnum refers to an enum entity.
	TypeEnum
	// TypeModel refers to a @model entity.
	TypeModel
	// TypeEmbedded refers to a non-model object type.
	TypeEmbedded
)

// String returns the lowercase name of the kind.
func (k TypeKind) String() string {
	switch k {
	case TypeScalar:
		return "scalar"
	case TypeEnum:
		return "enum"
	case TypeModel:
		return "model"
	case TypeEmbedded:
		return "embedded"
	default:
		return "unresolved"
	}
}

// TypeRef is the shape of a field type.
//
// For list types IsRequired describes the element (String! in [String!])
// and IsListNullable the list itself, matching the AppSync metadata
// convention. For non-list types IsRequired is the outer non-null marker.
type TypeRef struct {
	Name           string   `json:"name"`
	Kind           TypeKind `json:"kind"`
	IsList         bool     `json:"isList,omitempty"`
	IsRequired     bool     `json:"isRequired,omitempty"`
	IsListNullable bool     `json:"isListNullable,omitempty"`
}

// Nullable reports whether the outermost value may be null.
func (t TypeRef) Nullable() bool {
	if t.IsList {
		return t.IsListNullable
	}
	return !t.IsRequired
}

// IsReference reports whether the type points at another entity.
func (t TypeRef) IsReference() bool {
	return t.Kind == TypeModel || t.Kind == TypeEmbedded
}

// Index describes a primary key or a secondary index.
type Index struct {
	// Name is empty for the primary key.
	Name string `json:"name,omitempty"`

	// Fields lists the partition key first, then the sort key fields.
	Fields []string `json:"fields"`

	// QueryField is the generated query name, if requested.
	QueryField string `json:"queryField,omitempty"`
}

// IsPrimary reports whether this index is the primary key.
func (i *Index) IsPrimary() bool { return i.Name == "" }

// SortKeyFields returns every key field after the partition key.
func (i *Index) SortKeyFields() []string {
	if len(i.Fields) < 2 {
		return nil
	}
	return i.Fields[1:]
}

// AuthStrategy is the "allow" value of an auth rule.
type AuthStrategy string

// Auth strategies.
const (
	AllowOwner   AuthStrategy = "owner"
	AllowGroups  AuthStrategy = "groups"
	AllowPrivate AuthStrategy = "private"
	AllowPublic  AuthStrategy = "public"
	AllowCustom  AuthStrategy = "custom"
)

// AuthRule is one authorization policy. Rules on the same target are
// alternatives: any matching rule grants access.
type AuthRule struct {
	Allow         AuthStrategy `json:"allow"`
	Provider      string       `json:"provider,omitempty"`
	OwnerField    string       `json:"ownerField,omitempty"`
	IdentityClaim string       `json:"identityClaim,omitempty"`
	GroupClaim    string       `json:"groupClaim,omitempty"`
	Groups        []string     `json:"groups,omitempty"`
	GroupsField   string       `json:"groupsField,omitempty"`
	Operations    []string     `json:"operations,omitempty"`
}

// Directive is a directive exactly as written in the schema, with its
// argument values decoded into plain Go values (string, int64, float64,
// bool, nil, []any, *OrderedMap[any]).
type Directive struct {
	Name      string           `json:"name"`
	Arguments *OrderedMap[any] `json:"arguments"`
}

// Arg returns the decoded argument value and whether it was present.
func (d *Directive) Arg(name string) (any, bool) {
	if d == nil || d.Arguments == nil {
		return nil, false
	}
	return d.Arguments.Lookup(name)
}

// StringArg returns a string argument or "".
func (d *Directive) StringArg(name string) string {
	v, _ := d.Arg(name)
	s, _ := v.(string)
	return s
}

// StringsArg returns a list-of-strings argument. A single string is
// accepted as a one-element list, as GraphQL input coercion allows.
func (d *Directive) StringsArg(name string) ([]string, bool) {
	v, ok := d.Arg(name)
	if !ok || v == nil {
		return nil, ok
	}
	switch val := v.(type) {
	case string:
		return []string{val}, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, true
}

func findDirective(list []*Directive, name string) *Directive {
	for _, d := range list {
		if d.Name == name {
			return d
		}
	}
	return nil
}
