// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure class. Every typed error below matches
// its sentinel with errors.Is.
var (
	ErrConfiguration     = errors.New("modelgen: configuration error")
	ErrUnknownScalar     = errors.New("modelgen: unknown scalar")
	ErrDanglingReference = errors.New("modelgen: dangling reference")
	ErrReuse             = errors.New("modelgen: visitor reused")
)

// ConfigurationError reports malformed directive arguments.
type ConfigurationError struct {
	Entity string
	Field  string
	Rule   string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("modelgen: configuration error")
	writeLocation(&b, e.Entity, e.Field)
	if e.Rule != "" {
		b.WriteString(": ")
		b.WriteString(e.Rule)
	}
	return b.String()
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// NewConfigurationError creates a ConfigurationError. The rule is a format string.
func NewConfigurationError(entity, field, rule string, args ...any) *ConfigurationError {
	if len(args) > 0 {
		rule = fmt.Sprintf(rule, args...)
	}
	return &ConfigurationError{Entity: entity, Field: field, Rule: rule}
}

// UnknownScalarError reports a scalar outside the supported set.
type UnknownScalarError struct {
	Entity string
	Field  string
	Scalar string
}

// Error implements the error interface.
func (e *UnknownScalarError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "modelgen: unknown scalar %q", e.Scalar)
	writeLocation(&b, e.Entity, e.Field)
	return b.String()
}

// Is reports whether target is ErrUnknownScalar.
func (e *UnknownScalarError) Is(target error) bool { return target == ErrUnknownScalar }

// DanglingReferenceError reports a type or relationship target that names
// no entity in the registry.
type DanglingReferenceError struct {
	Entity    string
	Field     string
	Reference string
}

// Error implements the error interface.
func (e *DanglingReferenceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "modelgen: unknown type %q", e.Reference)
	writeLocation(&b, e.Entity, e.Field)
	return b.String()
}

// Is reports whether target is ErrDanglingReference.
func (e *DanglingReferenceError) Is(target error) bool { return target == ErrDanglingReference }

// ReuseError reports a visitor driven past its single use.
type ReuseError struct {
	Op    string
	State string
}

// Error implements the error interface.
func (e *ReuseError) Error() string {
	return fmt.Sprintf("modelgen: cannot %s a visitor in state %s", e.Op, e.State)
}

// Is reports whether target is ErrReuse.
func (e *ReuseError) Is(target error) bool { return target == ErrReuse }

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsUnknownScalarError reports whether err is or wraps an UnknownScalarError.
func IsUnknownScalarError(err error) bool { return errors.Is(err, ErrUnknownScalar) }

// IsDanglingReferenceError reports whether err is or wraps a DanglingReferenceError.
func IsDanglingReferenceError(err error) bool { return errors.Is(err, ErrDanglingReference) }

// IsReuseError reports whether err is or wraps a ReuseError.
func IsReuseError(err error) bool { return errors.Is(err, ErrReuse) }

func writeLocation(b *strings.Builder, entity, field string) {
	switch {
	case entity != "" && field != "":
		fmt.Fprintf(b, " on %s.%s", entity, field)
	case entity != "":
		fmt.Fprintf(b, " on %s", entity)
	}
}
