// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "fmt"

// Target is the closed set of supported emitters.
type Target int

const (
	// TargetUnknown is any configuration value outside the supported set.
	TargetUnknown Target = iota
	TargetSwift
	TargetJava
	TargetMetadata
	TargetTypeScript
	TargetJavaScript
	TargetDart
	TargetIntrospection
)

var targetNames = map[Target]string{
	TargetSwift:         "swift",
	TargetJava:          "java",
	TargetMetadata:      "metadata",
	TargetTypeScript:    "typescript",
	TargetJavaScript:    "javascript",
	TargetDart:          "dart",
	TargetIntrospection: "introspection",
}

// String returns the configuration value of the target.
func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// ParseTarget resolves a configuration value. Unsupported values return
// TargetUnknown and false.
func ParseTarget(s string) (Target, bool) {
	for t, name := range targetNames {
		if name == s {
			return t, true
		}
	}
	return TargetUnknown, false
}

// Targets returns every supported target in declaration order.
func Targets() []Target {
	return []Target{
		TargetSwift,
		TargetJava,
		TargetMetadata,
		TargetTypeScript,
		TargetJavaScript,
		TargetDart,
		TargetIntrospection,
	}
}
