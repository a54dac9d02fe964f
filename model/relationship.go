// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

// Connection is the relationship directive a field was declared with.
type Connection int

const (
	HasOne Connection = iota
	HasMany
	BelongsTo
	ManyToMany
)

// String returns the AppSync connection type name (HAS_ONE, ...).
func (c Connection) String() string {
	switch c {
	case HasOne:
		return "HAS_ONE"
	case HasMany:
		return "HAS_MANY"
	case BelongsTo:
		return "BELONGS_TO"
	case ManyToMany:
		return "MANY_TO_MANY"
	default:
		return "UNKNOWN"
	}
}

// Directive returns the schema directive name for the connection.
func (c Connection) Directive() string {
	switch c {
	case HasOne:
		return "hasOne"
	case HasMany:
		return "hasMany"
	case BelongsTo:
		return "belongsTo"
	case ManyToMany:
		return "manyToMany"
	default:
		return ""
	}
}

// RelationKind is the cardinality of a resolved relationship.
type RelationKind int

const (
	OneToOne RelationKind = iota
	OneToMany
	ManyToManyKind
)

// String returns a human readable cardinality.
func (k RelationKind) String() string {
	switch k {
	case OneToOne:
		return "one-to-one"
	case OneToMany:
		return "one-to-many"
	case ManyToManyKind:
		return "many-to-many"
	default:
		return "unknown"
	}
}

// Relationship links the field's owner entity to a related entity.
//
// The extractor fills Connection, Owner, Related and the directive
// arguments. The resolver fills TargetNames or AssociatedWith, Inverse,
// JoinEntity and Implicit, then sets Resolved. After that the descriptor
// is not modified.
type Relationship struct {
	Connection Connection `json:"connection"`

	// Owner is the entity declaring the field.
	Owner string `json:"owner"`

	// Related is the entity the field points at.
	Related string `json:"related"`

	// Fields is the explicit fields: argument, if any.
	Fields []string `json:"fields,omitempty"`

	// IndexName is the @hasMany(indexName:) argument.
	IndexName string `json:"indexName,omitempty"`

	// RelationName is the @manyToMany(relationName:) argument.
	RelationName string `json:"relationName,omitempty"`

	// TargetNames are the foreign-key fields on the owner (hasOne, belongsTo).
	TargetNames []string `json:"targetNames,omitempty"`

	// AssociatedWith are the foreign-key fields on the related entity
	// (hasMany) or on the join entity (manyToMany).
	AssociatedWith []string `json:"associatedWith,omitempty"`

	// Inverse is the field on the related entity pointing back, if declared.
	Inverse string `json:"inverse,omitempty"`

	// JoinEntity names the join model of a many-to-many relationship.
	JoinEntity string `json:"joinEntity,omitempty"`

	// Kind is the resolved cardinality.
	Kind RelationKind `json:"kind"`

	// Implicit is true when the foreign keys were synthesized.
	Implicit bool `json:"implicit,omitempty"`

	// Resolved is set once the resolver completed the descriptor.
	Resolved bool `json:"resolved"`
}

// OwnsForeignKey reports whether the foreign key lives on the owner entity.
func (r *Relationship) OwnsForeignKey() bool {
	return r.Connection == HasOne || r.Connection == BelongsTo
}

// ForeignKeys returns the foreign-key field names, wherever they live.
func (r *Relationship) ForeignKeys() []string {
	if r.OwnsForeignKey() {
		return r.TargetNames
	}
	return r.AssociatedWith
}
