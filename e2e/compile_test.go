// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end syntax verification tests.
// These tests run the generated code through each language's parser.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const compileSchema = `
enum Priority { LOW HIGH }

type Todo @model @auth(rules: [{allow: owner}]) {
  id: ID!
  name: String!
  priority: Priority @default(value: "LOW")
  due: AWSDate
  tasks: [Task] @hasMany
  labels: [Label] @manyToMany(relationName: "TodoLabels")
  meta: Meta
}

type Task @model {
  id: ID!
  title: String
  todo: Todo @belongsTo
}

type Label @model {
  id: ID!
  todos: [Todo] @manyToMany(relationName: "TodoLabels")
}

type Meta {
  tags: [String!]
}
`

// generateFile runs the binary for one target and returns the file it wrote.
func generateFile(t *testing.T, ctx context.Context, args ...string) (string, []byte) {
	t.Helper()

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.graphql")
	if err := os.WriteFile(schemaPath, []byte(compileSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	cmd := exec.CommandContext(ctx, binary, append(append(args, "-o", out), schemaPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("modelgen %v: %v\n%s", args, err, stderr.String())
	}

	entries, err := os.ReadDir(out)
	if err != nil || len(entries) != 1 {
		t.Fatalf("want one generated file in %s: %v", out, err)
	}
	path := filepath.Join(out, entries[0].Name())
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return path, content
}

// requireTool skips the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not installed", name)
	}
}

func runTool(t *testing.T, ctx context.Context, name string, args ...string) {
	t.Helper()
	start := time.Now()
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		t.Fatalf("%s failed: %v\n%s", name, err, output)
	}
	t.Logf("%s: %v", name, time.Since(start))
}

func TestSwiftOutputParses(t *testing.T) {
	requireTool(t, "swiftc")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, mode := range []string{"code", "metadata", "loader"} {
		t.Run(mode, func(t *testing.T) {
			path, _ := generateFile(t, ctx, "-t", "swift", "-g", mode)
			runTool(t, ctx, "swiftc", "-parse", path)
		})
	}
}

func TestJavaScriptOutputParses(t *testing.T) {
	requireTool(t, "node")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path, _ := generateFile(t, ctx, "-t", "javascript")
	mjs := path[:len(path)-len(filepath.Ext(path))] + ".mjs"
	if err := os.Rename(path, mjs); err != nil {
		t.Fatal(err)
	}
	runTool(t, ctx, "node", "--check", mjs)

	path, _ = generateFile(t, ctx, "-t", "metadata")
	mjs = path[:len(path)-len(filepath.Ext(path))] + ".mjs"
	if err := os.Rename(path, mjs); err != nil {
		t.Fatal(err)
	}
	runTool(t, ctx, "node", "--check", mjs)
}

func TestDartOutputParses(t *testing.T) {
	requireTool(t, "dart")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, mode := range []string{"code", "loader"} {
		t.Run(mode, func(t *testing.T) {
			path, _ := generateFile(t, ctx, "-t", "dart", "-g", mode)
			runTool(t, ctx, "dart", "format", "--output=none", path)
		})
	}
}

func TestIntrospectionIsJSON(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, content := generateFile(t, ctx, "-t", "introspection")
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"version", "models", "enums", "nonModels"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing %q", key)
		}
	}
}
