// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names provides the casing and pluralisation helpers shared by the
// resolver and every emitter.
package names

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Decapitalize returns name with the first letter lowercased.
func Decapitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// JoinCamel joins parts into one lowerCamelCase identifier:
// JoinCamel("Post", "comments", "id") == "postCommentsId".
func JoinCamel(parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(Decapitalize(p))
			continue
		}
		b.WriteString(Capitalize(p))
	}
	return b.String()
}

// Plural returns the plural form used for list and sync operation names.
func Plural(name string) string {
	return inflect.Pluralize(name)
}

// CamelToScreamingSnake converts a camelCase or PascalCase name to
// SCREAMING_SNAKE_CASE. A run of capitals stays one word, so "postID"
// becomes "POST_ID" and "URLPath" becomes "URL_PATH".
func CamelToScreamingSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			endsRun := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || endsRun {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// EnumCase converts an enum value to a lowerCamelCase case name:
// "IN_PROGRESS" -> "inProgress", "ACTIVE" -> "active", "Draft" -> "draft".
func EnumCase(value string) string {
	if !strings.Contains(value, "_") && !isAllUpper(value) {
		return Decapitalize(value)
	}
	parts := strings.Split(strings.ToLower(value), "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(Capitalize(p))
	}
	return b.String()
}

// Escape returns name, or name wrapped by the target's escaping rule when
// it collides with a reserved word.
func Escape(name string, reserved map[string]bool, wrap func(string) string) string {
	if reserved[name] {
		return wrap(name)
	}
	return name
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
