// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dart

// Config holds configuration for Dart generation.
type Config struct {
	// Mode is "code" (classes and enums) or "loader" (ModelProvider).
	Mode string

	// SelectedType restricts code output to one entity.
	SelectedType string

	// Indent is the indentation unit.
	Indent string
}
