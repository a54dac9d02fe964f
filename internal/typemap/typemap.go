// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typemap maps GraphQL field types to target-language type syntax.
//
// Every null and list wrapping policy lives here so emitters never spell a
// type by hand. The mapper is total over the supported scalar set plus
// enum, model and embedded references; anything else is an
// [model.UnknownScalarError].
package typemap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/model"
)

// Language selects a type convention.
type Language int

const (
	Swift Language = iota
	Java
	Dart
	TypeScript
)

// String returns the language name.
func (l Language) String() string {
	switch l {
	case Swift:
		return "swift"
	case Java:
		return "java"
	case Dart:
		return "dart"
	case TypeScript:
		return "typescript"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// convention is one target's type table and wrapping rules.
type convention struct {
	scalars map[string]string

	// list wraps the element type. base is the unwrapped element,
	// elem carries the element's nullable marker when it has one.
	list func(t model.TypeRef, base, elem string) string

	// nullable marks a type as optional.
	nullable func(s string) string
}

var conventions = map[Language]convention{
	Swift: {
		scalars: map[string]string{
			ScalarID:           "String",
			ScalarString:       "String",
			ScalarInt:          "Int",
			ScalarFloat:        "Double",
			ScalarBoolean:      "Bool",
			ScalarAWSDate:      "Temporal.Date",
			ScalarAWSTime:      "Temporal.Time",
			ScalarAWSDateTime:  "Temporal.DateTime",
			ScalarAWSTimestamp: "Int",
			ScalarAWSJSON:      "String",
			ScalarAWSEmail:     "String",
			ScalarAWSURL:       "String",
			ScalarAWSPhone:     "String",
			ScalarAWSIPAddress: "String",
		},
		list: func(t model.TypeRef, base, elem string) string {
			if t.Kind == model.TypeModel {
				return "List<" + base + ">"
			}
			return "[" + elem + "]"
		},
		nullable: func(s string) string { return s + "?" },
	},
	Java: {
		scalars: map[string]string{
			ScalarID:           "String",
			ScalarString:       "String",
			ScalarInt:          "Integer",
			ScalarFloat:        "Double",
			ScalarBoolean:      "Boolean",
			ScalarAWSDate:      "Temporal.Date",
			ScalarAWSTime:      "Temporal.Time",
			ScalarAWSDateTime:  "Temporal.DateTime",
			ScalarAWSTimestamp: "Temporal.Timestamp",
			ScalarAWSJSON:      "String",
			ScalarAWSEmail:     "String",
			ScalarAWSURL:       "String",
			ScalarAWSPhone:     "String",
			ScalarAWSIPAddress: "String",
		},
		list:     func(_ model.TypeRef, base, _ string) string { return "List<" + base + ">" },
		nullable: func(s string) string { return s },
	},
	Dart: {
		scalars: map[string]string{
			ScalarID:           "String",
			ScalarString:       "String",
			ScalarInt:          "int",
			ScalarFloat:        "double",
			ScalarBoolean:      "bool",
			ScalarAWSDate:      "amplify_core.TemporalDate",
			ScalarAWSTime:      "amplify_core.TemporalTime",
			ScalarAWSDateTime:  "amplify_core.TemporalDateTime",
			ScalarAWSTimestamp: "amplify_core.TemporalTimestamp",
			ScalarAWSJSON:      "String",
			ScalarAWSEmail:     "String",
			ScalarAWSURL:       "String",
			ScalarAWSPhone:     "String",
			ScalarAWSIPAddress: "String",
		},
		list: func(t model.TypeRef, base, elem string) string {
			if t.Kind == model.TypeModel {
				return "List<" + base + ">"
			}
			return "List<" + elem + ">"
		},
		nullable: func(s string) string { return s + "?" },
	},
	TypeScript: {
		scalars: map[string]string{
			ScalarID:           "string",
			ScalarString:       "string",
			ScalarInt:          "number",
			ScalarFloat:        "number",
			ScalarBoolean:      "boolean",
			ScalarAWSDate:      "string",
			ScalarAWSTime:      "string",
			ScalarAWSDateTime:  "string",
			ScalarAWSTimestamp: "number",
			ScalarAWSJSON:      "string",
			ScalarAWSEmail:     "string",
			ScalarAWSURL:       "string",
			ScalarAWSPhone:     "string",
			ScalarAWSIPAddress: "string",
		},
		list: func(_ model.TypeRef, _, elem string) string {
			if strings.Contains(elem, " | ") {
				return "(" + elem + ")[]"
			}
			return elem + "[]"
		},
		nullable: func(s string) string { return s + " | null" },
	},
}

// Map returns the full type syntax of t in lang, list and null wrapping
// included.
func Map(t model.TypeRef, lang Language) (string, error) {
	c, ok := conventions[lang]
	if !ok {
		return "", fmt.Errorf("typemap: unsupported language %v", lang)
	}
	base, err := c.base(t)
	if err != nil {
		return "", err
	}
	if !t.IsList {
		if t.IsRequired {
			return base, nil
		}
		return c.nullable(base), nil
	}
	elem := base
	if !t.IsRequired {
		elem = c.nullable(base)
	}
	list := c.list(t, base, elem)
	if t.IsListNullable {
		list = c.nullable(list)
	}
	return list, nil
}

// Base returns the element type of t in lang without any wrapping.
func Base(t model.TypeRef, lang Language) (string, error) {
	c, ok := conventions[lang]
	if !ok {
		return "", fmt.Errorf("typemap: unsupported language %v", lang)
	}
	return c.base(t)
}

func (c convention) base(t model.TypeRef) (string, error) {
	switch t.Kind {
	case model.TypeScalar:
		s, ok := c.scalars[t.Name]
		if !ok {
			return "", &model.UnknownScalarError{Scalar: t.Name}
		}
		return s, nil
	case model.TypeEnum, model.TypeModel, model.TypeEmbedded:
		return t.Name, nil
	default:
		return "", &model.DanglingReferenceError{Reference: t.Name}
	}
}

// Literal renders the @default value raw as a literal of t in lang.
func Literal(t model.TypeRef, raw string, lang Language) (string, error) {
	if _, ok := conventions[lang]; !ok {
		return "", fmt.Errorf("typemap: unsupported language %v", lang)
	}
	switch t.Kind {
	case model.TypeEnum:
		switch lang {
		case Swift:
			return "." + names.EnumCase(raw), nil
		default:
			return t.Name + "." + raw, nil
		}
	case model.TypeScalar:
	default:
		return "", fmt.Errorf("default values are only supported on scalar and enum fields")
	}
	if err := ValidateLiteral(t.Name, raw); err != nil {
		return "", err
	}

	switch {
	case t.Name == ScalarBoolean, t.Name == ScalarInt:
		return raw, nil
	case t.Name == ScalarFloat:
		if lang == Java && !strings.ContainsAny(raw, ".eE") {
			return raw + ".0", nil
		}
		return raw, nil
	case t.Name == ScalarAWSTimestamp:
		switch lang {
		case Java:
			return "new Temporal.Timestamp(" + raw + "L, TimeUnit.SECONDS)", nil
		case Dart:
			return "amplify_core.TemporalTimestamp.fromSeconds(" + raw + ")", nil
		}
		return raw, nil
	case IsTemporal(t.Name):
		return temporalLiteral(t.Name, raw, lang), nil
	default:
		return strconv.Quote(raw), nil
	}
}

// ValidateLiteral checks that raw is a valid literal for the scalar.
func ValidateLiteral(scalar, raw string) error {
	switch scalar {
	case ScalarInt, ScalarAWSTimestamp:
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Errorf("default value %q is not a valid %s", raw, scalar)
		}
	case ScalarFloat:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("default value %q is not a valid %s", raw, scalar)
		}
	case ScalarBoolean:
		if raw != "true" && raw != "false" {
			return fmt.Errorf("default value %q is not a valid %s", raw, scalar)
		}
	case ScalarAWSJSON:
		if !strings.HasPrefix(strings.TrimSpace(raw), "{") && !strings.HasPrefix(strings.TrimSpace(raw), "[") {
			return fmt.Errorf("default value %q is not a valid %s", raw, scalar)
		}
	}
	return nil
}

func temporalLiteral(scalar, raw string, lang Language) string {
	q := strconv.Quote(raw)
	switch lang {
	case Swift:
		return "try! " + conventions[Swift].scalars[scalar] + "(iso8601String: " + q + ")"
	case Java:
		return "new " + conventions[Java].scalars[scalar] + "(" + q + ")"
	case Dart:
		return conventions[Dart].scalars[scalar] + ".fromString(" + q + ")"
	default:
		return q
	}
}

// SwiftSchemaType returns the ModelFieldType expression used in Swift
// schema definitions (".string", ".enum(type: Status.self)", ...).
func SwiftSchemaType(t model.TypeRef) (string, error) {
	switch t.Kind {
	case model.TypeEnum:
		return ".enum(type: " + t.Name + ".self)", nil
	case model.TypeEmbedded:
		if t.IsList {
			return ".embeddedCollection(of: " + t.Name + ".self)", nil
		}
		return ".embedded(type: " + t.Name + ".self)", nil
	case model.TypeModel:
		if t.IsList {
			return ".collection(of: " + t.Name + ".self)", nil
		}
		return ".model(" + t.Name + ".self)", nil
	case model.TypeScalar:
	default:
		return "", &model.DanglingReferenceError{Reference: t.Name}
	}
	var s string
	switch t.Name {
	case ScalarInt, ScalarAWSTimestamp:
		s = ".int"
	case ScalarFloat:
		s = ".double"
	case ScalarBoolean:
		s = ".bool"
	case ScalarAWSDate:
		s = ".date"
	case ScalarAWSTime:
		s = ".time"
	case ScalarAWSDateTime:
		s = ".dateTime"
	default:
		if !IsScalar(t.Name) {
			return "", &model.UnknownScalarError{Scalar: t.Name}
		}
		s = ".string"
	}
	if t.IsList {
		elem, _ := Base(t, Swift)
		return ".embeddedCollection(of: " + elem + ".self)", nil
	}
	return s, nil
}

// DartSchemaType returns the ModelFieldTypeEnum member name for t.
func DartSchemaType(t model.TypeRef) (string, error) {
	if t.IsList {
		switch t.Kind {
		case model.TypeModel:
			return "collection", nil
		case model.TypeEmbedded:
			return "embeddedCollection", nil
		default:
			return "collection", nil
		}
	}
	switch t.Kind {
	case model.TypeEnum:
		return "enumeration", nil
	case model.TypeEmbedded:
		return "embedded", nil
	case model.TypeModel:
		return "model", nil
	case model.TypeScalar:
	default:
		return "", &model.DanglingReferenceError{Reference: t.Name}
	}
	switch t.Name {
	case ScalarInt:
		return "int", nil
	case ScalarFloat:
		return "double", nil
	case ScalarBoolean:
		return "bool", nil
	case ScalarAWSDate:
		return "date", nil
	case ScalarAWSTime:
		return "time", nil
	case ScalarAWSDateTime:
		return "dateTime", nil
	case ScalarAWSTimestamp:
		return "timestamp", nil
	}
	if !IsScalar(t.Name) {
		return "", &model.UnknownScalarError{Scalar: t.Name}
	}
	return "string", nil
}

// Descriptor returns the JSON "type" value of the AppSync metadata format:
// the scalar name, or {"model"|"enum"|"nonModel": name}.
func Descriptor(t model.TypeRef) (any, error) {
	switch t.Kind {
	case model.TypeScalar:
		if !IsScalar(t.Name) {
			return nil, &model.UnknownScalarError{Scalar: t.Name}
		}
		return t.Name, nil
	case model.TypeEnum:
		return map[string]string{"enum": t.Name}, nil
	case model.TypeModel:
		return map[string]string{"model": t.Name}, nil
	case model.TypeEmbedded:
		return map[string]string{"nonModel": t.Name}, nil
	default:
		return nil, &model.DanglingReferenceError{Reference: t.Name}
	}
}

// WithContext attaches entity and field names to mapping errors.
func WithContext(err error, e *model.Entity, f *model.Field) error {
	if err == nil {
		return nil
	}
	var us *model.UnknownScalarError
	if errors.As(err, &us) {
		return &model.UnknownScalarError{Entity: e.Name, Field: f.Name, Scalar: us.Scalar}
	}
	var dr *model.DanglingReferenceError
	if errors.As(err, &dr) {
		return &model.DanglingReferenceError{Entity: e.Name, Field: f.Name, Reference: dr.Reference}
	}
	return err
}
