// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typescript

// Config holds configuration for TypeScript generation.
type Config struct {
	// Mode is "code" (index.ts with initSchema exports) or
	// "declaration" (index.d.ts for a JavaScript module).
	Mode string

	// SchemaImport is the module the schema object is imported from.
	SchemaImport string

	// Indent is the indentation unit.
	Indent string
}
