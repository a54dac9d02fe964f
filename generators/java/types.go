// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// reserved lists Java keywords and literals.
var reserved = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true, "goto": true,
	"if": true, "implements": true, "import": true, "instanceof": true,
	"int": true, "interface": true, "long": true, "native": true, "new": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true,
	"super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "try": true,
	"void": true, "volatile": true, "while": true, "true": true,
	"false": true, "null": true,
}

func underscore(s string) string { return s + "_" }

// identifier escapes a schema name for use as a Java identifier.
func identifier(name string) string {
	return names.Escape(name, reserved, underscore)
}

func getter(f *model.Field) string {
	return "get" + names.Capitalize(f.Name)
}

// constant is the QueryField constant name of a field.
func constant(f *model.Field) string {
	return names.CamelToScreamingSnake(f.Name)
}

func fieldType(e *model.Entity, f *model.Field) (string, error) {
	t, err := typemap.Map(f.EffectiveType(), typemap.Java)
	return t, typemap.WithContext(err, e, f)
}

// isCollection reports whether f is a list of models, which Java exposes
// as a lazily loaded field outside of the constructor.
func isCollection(f *model.Field) bool {
	t := f.EffectiveType()
	return t.IsList && t.Kind == model.TypeModel
}

// modelField renders the @ModelField annotation of f.
func modelField(f *model.Field) string {
	t := f.EffectiveType()
	args := []string{fmt.Sprintf("targetType=%q", t.Name)}
	if !t.Nullable() {
		args = append(args, "isRequired = true")
	}
	if f.ReadOnly {
		args = append(args, "isReadOnly = true")
	}
	if len(f.AuthRules) > 0 {
		rules := make([]string, len(f.AuthRules))
		for i, r := range f.AuthRules {
			rules[i] = authRule(r)
		}
		args = append(args, "authRules = {"+strings.Join(rules, ", ")+"}")
	}
	return "@ModelField(" + strings.Join(args, ", ") + ")"
}

func quoteAll(items []string) string {
	q := make([]string, len(items))
	for i, s := range items {
		q[i] = fmt.Sprintf("%q", s)
	}
	return "{" + strings.Join(q, ", ") + "}"
}

// authRule renders one @AuthRule annotation.
func authRule(r *model.AuthRule) string {
	args := []string{"allow = AuthStrategy." + strings.ToUpper(string(r.Allow))}
	if r.OwnerField != "" {
		args = append(args, fmt.Sprintf("ownerField = %q", r.OwnerField))
	}
	if r.IdentityClaim != "" {
		args = append(args, fmt.Sprintf("identityClaim = %q", r.IdentityClaim))
	}
	if r.GroupClaim != "" {
		args = append(args, fmt.Sprintf("groupClaim = %q", r.GroupClaim))
	}
	if len(r.Groups) > 0 {
		args = append(args, "groups = "+quoteAll(r.Groups))
	}
	if r.GroupsField != "" {
		args = append(args, fmt.Sprintf("groupsField = %q", r.GroupsField))
	}
	args = append(args, fmt.Sprintf("provider = %q", r.Provider))
	ops := make([]string, len(r.Operations))
	for i, op := range r.Operations {
		ops[i] = "ModelOperation." + strings.ToUpper(op)
	}
	args = append(args, "operations = { "+strings.Join(ops, ", ")+" }")
	return "@AuthRule(" + strings.Join(args, ", ") + ")"
}
