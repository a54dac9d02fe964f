// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package schemajson builds the JSON model document shared by the
// metadata and introspection targets and embedded by the JavaScript and
// TypeScript targets.
//
// Field names and nesting follow the AppSync model introspection format
// and must stay stable: runtime client libraries read them.
package schemajson

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// Document is the model document of one schema.
type Document struct {
	Models    *model.OrderedMap[*Model] `json:"models"`
	Enums     *model.OrderedMap[*Enum]  `json:"enums"`
	NonModels *model.OrderedMap[*Model] `json:"nonModels"`
	Version   string                    `json:"version,omitempty"`
}

// Model describes a model or non-model type.
type Model struct {
	Name           string                    `json:"name"`
	Fields         *model.OrderedMap[*Field] `json:"fields"`
	Syncable       *bool                     `json:"syncable,omitempty"`
	PluralName     string                    `json:"pluralName,omitempty"`
	Attributes     []Attribute               `json:"attributes,omitempty"`
	PrimaryKeyInfo *PrimaryKeyInfo           `json:"primaryKeyInfo,omitempty"`
}

// Field describes one field.
type Field struct {
	Name            string       `json:"name"`
	IsArray         bool         `json:"isArray"`
	Type            any          `json:"type"`
	IsRequired      bool         `json:"isRequired"`
	Attributes      []Attribute  `json:"attributes"`
	IsArrayNullable *bool        `json:"isArrayNullable,omitempty"`
	IsReadOnly      bool         `json:"isReadOnly,omitempty"`
	Association     *Association `json:"association,omitempty"`
}

// Attribute is a typed annotation: model, key or auth.
type Attribute struct {
	Type       string `json:"type"`
	Properties any    `json:"properties"`
}

// Association describes the relationship carried by a field.
type Association struct {
	ConnectionType string   `json:"connectionType"`
	AssociatedWith []string `json:"associatedWith,omitempty"`
	TargetNames    []string `json:"targetNames,omitempty"`
}

// Enum describes an enum type.
type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// PrimaryKeyInfo summarises a model's primary key.
type PrimaryKeyInfo struct {
	IsCustomPrimaryKey  bool     `json:"isCustomPrimaryKey"`
	PrimaryKeyFieldName string   `json:"primaryKeyFieldName"`
	SortKeyFieldNames   []string `json:"sortKeyFieldNames"`
}

// Build renders entities into a document. selection, when non-nil,
// restricts the document to the named entities. The version is an MD5
// hash of the rendered types, so it changes whenever the model does.
func Build(reg *model.Registry, entities []*model.Entity, selection map[string]bool) (*Document, error) {
	doc := &Document{
		Models:    model.NewOrderedMap[*Model](),
		Enums:     model.NewOrderedMap[*Enum](),
		NonModels: model.NewOrderedMap[*Model](),
	}
	for _, e := range entities {
		if selection != nil && !selection[e.Name] {
			continue
		}
		switch e.Kind {
		case model.KindEnum:
			doc.Enums.Set(e.Name, &Enum{Name: e.Name, Values: append([]string{}, e.Values...)})
		case model.KindModel:
			m, err := buildModel(reg, e)
			if err != nil {
				return nil, err
			}
			doc.Models.Set(e.Name, m)
		default:
			fields, err := buildFields(reg, e)
			if err != nil {
				return nil, err
			}
			doc.NonModels.Set(e.Name, &Model{Name: e.Name, Fields: fields})
		}
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	sum := md5.Sum(body)
	doc.Version = hex.EncodeToString(sum[:])
	return doc, nil
}

func buildModel(reg *model.Registry, e *model.Entity) (*Model, error) {
	fields, err := buildFields(reg, e)
	if err != nil {
		return nil, err
	}
	syncable := e.Syncable
	m := &Model{
		Name:       e.Name,
		Fields:     fields,
		Syncable:   &syncable,
		PluralName: e.PluralName,
	}

	modelArgs := any(model.NewOrderedMap[any]())
	if d := e.Directive("model"); d != nil && d.Arguments != nil {
		modelArgs = d.Arguments
	}
	m.Attributes = append(m.Attributes, Attribute{Type: "model", Properties: modelArgs})
	m.Attributes = append(m.Attributes, Attribute{Type: "key", Properties: keyProperties(e.PrimaryKey())})
	for _, idx := range e.SecondaryIndexes() {
		m.Attributes = append(m.Attributes, Attribute{Type: "key", Properties: keyProperties(idx)})
	}
	if len(e.AuthRules) > 0 {
		m.Attributes = append(m.Attributes, authAttribute(e.AuthRules))
	}

	pk := e.PrimaryKey()
	m.PrimaryKeyInfo = &PrimaryKeyInfo{
		IsCustomPrimaryKey:  e.HasCustomPrimaryKey(),
		PrimaryKeyFieldName: pk.Fields[0],
		SortKeyFieldNames:   append([]string{}, pk.SortKeyFields()...),
	}
	return m, nil
}

func keyProperties(idx *model.Index) *model.OrderedMap[any] {
	props := model.NewOrderedMap[any]()
	if idx.Name != "" {
		props.Set("name", idx.Name)
	}
	props.Set("fields", idx.Fields)
	if idx.QueryField != "" {
		props.Set("queryField", idx.QueryField)
	}
	return props
}

func authAttribute(rules []*model.AuthRule) Attribute {
	props := model.NewOrderedMap[any]()
	props.Set("rules", rules)
	return Attribute{Type: "auth", Properties: props}
}

func buildFields(reg *model.Registry, e *model.Entity) (*model.OrderedMap[*Field], error) {
	fields := model.NewOrderedMap[*Field]()
	for _, f := range e.Fields {
		t := f.EffectiveType()
		desc, err := typemap.Descriptor(t)
		if err != nil {
			return nil, typemap.WithContext(err, e, f)
		}
		jf := &Field{
			Name:       f.Name,
			IsArray:    t.IsList,
			Type:       desc,
			IsRequired: t.IsRequired,
			Attributes: []Attribute{},
			IsReadOnly: f.ReadOnly,
		}
		if t.IsList {
			nullable := t.IsListNullable
			jf.IsArrayNullable = &nullable
		}
		if len(f.AuthRules) > 0 {
			jf.Attributes = append(jf.Attributes, authAttribute(f.AuthRules))
		}
		if f.Relationship != nil {
			jf.Association = association(reg, f.Relationship)
		}
		fields.Set(f.Name, jf)
	}
	return fields, nil
}

// association maps a resolved relationship onto the connection vocabulary
// of the runtime: many-to-many fields are a HAS_MANY over the join model.
func association(reg *model.Registry, rel *model.Relationship) *Association {
	switch rel.Connection {
	case model.HasMany, model.ManyToMany:
		return &Association{ConnectionType: model.HasMany.String(), AssociatedWith: rel.AssociatedWith}
	case model.HasOne:
		a := &Association{ConnectionType: rel.Connection.String(), TargetNames: rel.TargetNames}
		if related := reg.Get(rel.Related); related != nil {
			a.AssociatedWith = related.PrimaryKey().Fields
		}
		return a
	default:
		return &Association{ConnectionType: rel.Connection.String(), TargetNames: rel.TargetNames}
	}
}

// Introspection returns the document in the versioned introspection
// envelope: {"version": 1, "models", "enums", "nonModels"}.
func (d *Document) Introspection() *model.OrderedMap[any] {
	out := model.NewOrderedMap[any]()
	out.Set("version", 1)
	out.Set("models", d.Models)
	out.Set("enums", d.Enums)
	out.Set("nonModels", d.NonModels)
	return out
}

// Marshal encodes v as indented JSON.
func Marshal(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
