// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package swift

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// reserved lists Swift keywords that must be escaped as identifiers.
var reserved = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "protocol": true, "public": true,
	"static": true, "struct": true, "subscript": true, "typealias": true,
	"var": true, "break": true, "case": true, "continue": true,
	"default": true, "defer": true, "do": true, "else": true,
	"fallthrough": true, "for": true, "guard": true, "if": true, "in": true,
	"repeat": true, "return": true, "switch": true, "where": true,
	"while": true, "as": true, "catch": true, "false": true, "is": true,
	"nil": true, "rethrows": true, "super": true, "self": true,
	"throw": true, "throws": true, "true": true, "try": true,
}

func backtick(s string) string { return "`" + s + "`" }

// identifier escapes a schema name for use as a Swift identifier.
func identifier(name string) string {
	return names.Escape(name, reserved, backtick)
}

// keysVar is the local name bound to Model.keys inside defineSchema.
func keysVar(e *model.Entity) string {
	return identifier(names.Decapitalize(e.Name))
}

func fieldType(e *model.Entity, f *model.Field) (string, error) {
	t, err := typemap.Map(f.EffectiveType(), typemap.Swift)
	return t, typemap.WithContext(err, e, f)
}

// defaultValue returns the initializer default of a parameter, or "".
func defaultValue(e *model.Entity, f *model.Field) (string, error) {
	t := f.EffectiveType()
	switch {
	case f.Default != nil:
		lit, err := typemap.Literal(t, *f.Default, typemap.Swift)
		if err != nil {
			return "", model.NewConfigurationError(e.Name, f.Name, "%s", err.Error())
		}
		return lit, nil
	case f.Name == "id" && t.Name == typemap.ScalarID && !t.IsList:
		return "UUID().uuidString", nil
	case t.IsList && t.Kind == model.TypeModel:
		return "[]", nil
	case t.Nullable():
		return "nil", nil
	}
	return "", nil
}

func required(t model.TypeRef) string {
	if t.Nullable() {
		return ".optional"
	}
	return ".required"
}

func quoteAll(items []string) string {
	q := make([]string, len(items))
	for i, s := range items {
		q[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(q, ", ") + "]"
}

// authRule renders one rule(...) expression.
func authRule(r *model.AuthRule) string {
	var args []string
	args = append(args, "allow: ."+string(r.Allow))
	if r.OwnerField != "" {
		args = append(args, fmt.Sprintf("ownerField: %q", r.OwnerField))
	}
	if r.IdentityClaim != "" {
		args = append(args, fmt.Sprintf("identityClaim: %q", r.IdentityClaim))
	}
	if r.GroupClaim != "" {
		args = append(args, fmt.Sprintf("groupClaim: %q", r.GroupClaim))
	}
	if len(r.Groups) > 0 {
		args = append(args, "groups: "+quoteAll(r.Groups))
	}
	if r.GroupsField != "" {
		args = append(args, fmt.Sprintf("groupsField: %q", r.GroupsField))
	}
	args = append(args, "provider: ."+r.Provider)
	ops := make([]string, len(r.Operations))
	for i, op := range r.Operations {
		ops[i] = "." + op
	}
	args = append(args, "operations: ["+strings.Join(ops, ", ")+"]")
	return "rule(" + strings.Join(args, ", ") + ")"
}
