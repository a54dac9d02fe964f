// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package swift

// Config holds configuration for Swift generation.
type Config struct {
	// Mode is "code" (structs and enums), "metadata" (schema
	// extensions) or "loader" (model registration).
	Mode string

	// SelectedType restricts code and metadata output to one entity.
	SelectedType string

	// Indent is the indentation unit.
	Indent string
}
