// SPDX-License-Identifier: MIT

package directive

import (
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
)

// RootTypes is the set of operation root type names of a document.
type RootTypes map[string]bool

// Contains reports whether name is a root operation type.
func (r RootTypes) Contains(name string) bool { return r[name] }

// Roots returns the root operation type names of doc. Without a schema
// definition the conventional Query, Mutation and Subscription apply.
func Roots(doc *ast.SchemaDocument) RootTypes {
	roots := RootTypes{"Query": true, "Mutation": true, "Subscription": true}
	for _, list := range []ast.SchemaDefinitionList{doc.Schema, doc.SchemaExtension} {
		for _, sd := range list {
			for _, op := range sd.OperationTypes {
				roots[op.Type] = true
			}
		}
	}
	return roots
}

// Merge returns the document's definitions with every `extend` block folded
// into the definition it extends. An extension without a base definition
// stands in for it. doc is not modified.
func Merge(doc *ast.SchemaDocument) ast.DefinitionList {
	out := make(ast.DefinitionList, 0, len(doc.Definitions))
	byName := make(map[string]*ast.Definition, len(doc.Definitions))
	for _, def := range doc.Definitions {
		c := clone(def)
		out = append(out, c)
		byName[c.Name] = c
	}
	for _, ext := range doc.Extensions {
		base, ok := byName[ext.Name]
		if !ok {
			c := clone(ext)
			out = append(out, c)
			byName[c.Name] = c
			continue
		}
		base.Fields = append(base.Fields, ext.Fields...)
		base.Directives = append(base.Directives, ext.Directives...)
		base.EnumValues = append(base.EnumValues, ext.EnumValues...)
		base.Interfaces = append(base.Interfaces, ext.Interfaces...)
		base.Types = append(base.Types, ext.Types...)
	}
	return out
}

func clone(def *ast.Definition) *ast.Definition {
	c := *def
	c.Fields = slices.Clone(def.Fields)
	c.Directives = slices.Clone(def.Directives)
	c.EnumValues = slices.Clone(def.EnumValues)
	c.Interfaces = slices.Clone(def.Interfaces)
	c.Types = slices.Clone(def.Types)
	return &c
}
