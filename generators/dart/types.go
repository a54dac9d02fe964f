// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dart

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// core is the import prefix of the Amplify runtime.
const core = "amplify_core"

var reserved = map[string]bool{
	"assert": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true, "else": true,
	"enum": true, "extends": true, "false": true, "final": true,
	"finally": true, "for": true, "if": true, "in": true, "is": true,
	"new": true, "null": true, "rethrow": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "var": true, "void": true, "while": true, "with": true,
}

func suffix(s string) string { return s + "_" }

func identifier(name string) string {
	return names.Escape(name, reserved, suffix)
}

func constant(f *model.Field) string {
	return names.CamelToScreamingSnake(f.Name)
}

func fieldType(e *model.Entity, f *model.Field) (string, error) {
	t, err := typemap.Map(f.EffectiveType(), typemap.Dart)
	return t, typemap.WithContext(err, e, f)
}

// optional makes a Dart type nullable.
func optional(t string) string {
	if strings.HasSuffix(t, "?") {
		return t
	}
	return t + "?"
}

func isTemporal(t model.TypeRef) bool {
	return t.Kind == model.TypeScalar && (typemap.IsTemporal(t.Name) || t.Name == typemap.ScalarAWSTimestamp)
}

func temporalParse(t model.TypeRef, v string) string {
	if t.Name == typemap.ScalarAWSTimestamp {
		return core + ".TemporalTimestamp.fromSeconds(" + v + ")"
	}
	base, _ := typemap.Base(t, typemap.Dart)
	return base + ".fromString(" + v + ")"
}

func temporalFormat(t model.TypeRef) string {
	if t.Name == typemap.ScalarAWSTimestamp {
		return "toSeconds()"
	}
	return "format()"
}

// fromJSON returns the expression decoding field f from json.
func fromJSON(f *model.Field) (string, error) {
	t := f.EffectiveType()
	src := fmt.Sprintf("json['%s']", f.Name)
	base, err := typemap.Base(t, typemap.Dart)
	if err != nil {
		return "", err
	}
	if t.IsList {
		var conv string
		switch {
		case t.Kind == model.TypeModel || t.Kind == model.TypeEmbedded:
			conv = fmt.Sprintf(".where((e) => e != null).map((e) => %s.fromJson(new Map<String, dynamic>.from(e['serializedData'] ?? e)))", base)
		case t.Kind == model.TypeEnum:
			conv = fmt.Sprintf(".map((e) => %s.enumFromString<%s>(e, %s.values)!)", core, base, base)
		case isTemporal(t):
			conv = ".map((e) => " + temporalParse(t, "e") + ")"
		case base == "double":
			conv = ".map((e) => (e as num).toDouble())"
		default:
			return fmt.Sprintf("%s?.cast<%s>()", src, base), nil
		}
		return fmt.Sprintf("%s is List ? (%s as List)%s.toList() : null", src, src, conv), nil
	}
	switch {
	case t.Kind == model.TypeModel || t.Kind == model.TypeEmbedded:
		return fmt.Sprintf("%s != null ? %s.fromJson(new Map<String, dynamic>.from(%s['serializedData'] ?? %s)) : null", src, base, src, src), nil
	case t.Kind == model.TypeEnum:
		return fmt.Sprintf("%s.enumFromString<%s>(%s, %s.values)", core, base, src, base), nil
	case isTemporal(t):
		return fmt.Sprintf("%s != null ? %s : null", src, temporalParse(t, src)), nil
	case base == "double":
		return fmt.Sprintf("(%s as num?)?.toDouble()", src), nil
	}
	return src, nil
}

// toJSON returns the expression encoding field f.
func toJSON(f *model.Field) (string, error) {
	t := f.EffectiveType()
	v := private(f)
	base, err := typemap.Base(t, typemap.Dart)
	if err != nil {
		return "", err
	}
	if t.IsList {
		switch {
		case t.Kind == model.TypeModel || t.Kind == model.TypeEmbedded:
			return fmt.Sprintf("%s?.map((%s? e) => e?.toJson()).toList()", v, base), nil
		case t.Kind == model.TypeEnum:
			return fmt.Sprintf("%s?.map((e) => %s.enumToString(e)).toList()", v, core), nil
		case isTemporal(t):
			return fmt.Sprintf("%s?.map((e) => e.%s).toList()", v, temporalFormat(t)), nil
		}
		return v, nil
	}
	switch {
	case t.Kind == model.TypeModel || t.Kind == model.TypeEmbedded:
		return v + "?.toJson()", nil
	case t.Kind == model.TypeEnum:
		return core + ".enumToString(" + v + ")", nil
	case isTemporal(t):
		return v + "?." + temporalFormat(t), nil
	}
	return v, nil
}

// fieldTypeExpr renders the amplify_core.ModelFieldType of t.
func fieldTypeExpr(t model.TypeRef) (string, error) {
	kind, err := typemap.DartSchemaType(t)
	if err != nil {
		return "", err
	}
	enum := core + ".ModelFieldTypeEnum."
	switch {
	case t.IsList && t.Kind == model.TypeEmbedded:
		return fmt.Sprintf("%s.ModelFieldType(%sembeddedCollection, ofCustomTypeName: '%s')", core, enum, t.Name), nil
	case t.IsList && t.Kind == model.TypeModel:
		return fmt.Sprintf("%s.ModelFieldType(%scollection, ofModelName: '%s')", core, enum, t.Name), nil
	case t.IsList:
		elem := t
		elem.IsList = false
		inner, err := typemap.DartSchemaType(elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.ModelFieldType(%scollection, ofModelName: %s%s.name)", core, enum, enum, inner), nil
	case t.Kind == model.TypeEmbedded:
		return fmt.Sprintf("%s.ModelFieldType(%sembedded, ofCustomTypeName: '%s')", core, enum, t.Name), nil
	case t.Kind == model.TypeModel:
		return fmt.Sprintf("%s.ModelFieldType(%smodel, ofModelName: '%s')", core, enum, t.Name), nil
	}
	return fmt.Sprintf("%s.ModelFieldType(%s%s)", core, enum, kind), nil
}

var providers = map[string]string{
	"userPools": "USERPOOLS",
	"oidc":      "OIDC",
	"iam":       "IAM",
	"apiKey":    "APIKEY",
	"function":  "FUNCTION",
}

// authRule renders one amplify_core.AuthRule(...) expression.
func authRule(r *model.AuthRule) string {
	args := []string{"authStrategy: " + core + ".AuthStrategy." + strings.ToUpper(string(r.Allow))}
	if r.OwnerField != "" {
		args = append(args, fmt.Sprintf("ownerField: \"%s\"", r.OwnerField))
	}
	if r.IdentityClaim != "" {
		args = append(args, fmt.Sprintf("identityClaim: \"%s\"", r.IdentityClaim))
	}
	if r.GroupClaim != "" {
		args = append(args, fmt.Sprintf("groupClaim: \"%s\"", r.GroupClaim))
	}
	if len(r.Groups) > 0 {
		q := make([]string, len(r.Groups))
		for i, g := range r.Groups {
			q[i] = "\"" + g + "\""
		}
		args = append(args, "groups: [ "+strings.Join(q, ", ")+" ]")
	}
	if r.GroupsField != "" {
		args = append(args, fmt.Sprintf("groupsField: \"%s\"", r.GroupsField))
	}
	if p, ok := providers[r.Provider]; ok {
		args = append(args, "provider: "+core+".AuthRuleProvider."+p)
	}
	ops := make([]string, len(r.Operations))
	for i, op := range r.Operations {
		ops[i] = core + ".ModelOperation." + strings.ToUpper(op)
	}
	args = append(args, "operations: const [\n        "+strings.Join(ops, ",\n        ")+"\n      ]")
	return core + ".AuthRule(\n      " + strings.Join(args, ",\n      ") + ")"
}

func quoteAll(items []string) string {
	q := make([]string, len(items))
	for i, s := range items {
		q[i] = "'" + s + "'"
	}
	return "[" + strings.Join(q, ", ") + "]"
}
