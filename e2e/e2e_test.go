// SPDX-License-Identifier: MIT

// Package e2e provides end-to-end tests for the modelgen CLI.
package e2e

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/modelgen/internal/testutil"
)

var (
	binary string // path to built modelgen binary
	update = flag.Bool("update", false, "update golden files")
)

func TestMain(m *testing.M) {
	flag.Parse()

	tmpDir, err := os.MkdirTemp("", "modelgen-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binary = filepath.Join(tmpDir, "modelgen")
	if err := buildBinary(binary); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// buildBinary builds the modelgen binary to the specified path.
func buildBinary(outputPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", outputPath, "./cmd/modelgen")

	moduleRoot, err := findModuleRoot()
	if err != nil {
		return fmt.Errorf("find module root: %w", err)
	}
	cmd.Dir = moduleRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w: %s", err, stderr.String())
	}
	return nil
}

// findModuleRoot finds the root of the Go module by looking for go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

func TestE2E(t *testing.T) {
	pattern := filepath.Join("testdata", "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", "testdata")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			runTestCase(t, file, name)
		})
	}
}

// runTestCase executes a single e2e test case.
func runTestCase(t *testing.T, file, name string) {
	t.Helper()

	ar, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("parse txtar: %v", err)
	}
	tc, err := parseE2ECase(name, ar)
	if err != nil {
		t.Fatalf("parse case: %v", err)
	}

	workDir := t.TempDir()
	for path, data := range tc.inputs {
		full := filepath.Join(workDir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, data, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, tc.flags...)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if tc.wantFail {
		if err == nil {
			t.Fatalf("command succeeded, want failure")
		}
	} else if err != nil {
		t.Logf("command: %s %s", binary, strings.Join(tc.flags, " "))
		t.Logf("stderr: %s", stderr.String())
		t.Fatalf("command failed: %v", err)
	}

	got := map[string][]byte{
		"stdout": stdout.Bytes(),
		"stderr": stderr.Bytes(),
	}
	for path := range tc.want {
		if path == "stdout" || path == "stderr" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(workDir, path))
		if err != nil {
			t.Errorf("missing output file %q: %v", path, err)
			continue
		}
		got[path] = data
	}

	if *update {
		content := txtar.Format(updateE2EArchive(ar, tc.want, got))
		if err := os.WriteFile(file, content, 0o644); err != nil {
			t.Fatalf("write updated file: %v", err)
		}
		t.Logf("updated %s", file)
		return
	}

	compareOutput(t, tc.want, got)
}

// e2eCase represents a parsed e2e test case.
type e2eCase struct {
	name        string
	description string
	flags       []string
	wantFail    bool
	inputs      map[string][]byte
	want        map[string][]byte
}

// parseE2ECase parses a txtar archive into an e2e test case. Files under
// want/ hold the expected stdout, stderr or written files; every other
// file is written to the working directory before the command runs.
func parseE2ECase(name string, ar *txtar.Archive) (*e2eCase, error) {
	c := &e2eCase{
		name:        name,
		description: string(ar.Comment),
		inputs:      make(map[string][]byte),
		want:        make(map[string][]byte),
	}
	c.parseFlags()

	for _, f := range ar.Files {
		if rel, ok := strings.CutPrefix(f.Name, "want/"); ok {
			c.want[rel] = f.Data
			continue
		}
		c.inputs[f.Name] = f.Data
	}

	if len(c.inputs) == 0 {
		return nil, fmt.Errorf("no input files in archive")
	}
	if len(c.want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

// parseFlags extracts flags from the "Flags: ..." line in the description.
// Flags are space-separated to match CLI conventions. A "Fails: true"
// line expects a non-zero exit.
func (c *e2eCase) parseFlags() {
	for _, line := range strings.Split(c.description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Flags:"):
			c.flags = strings.Fields(strings.TrimPrefix(line, "Flags:"))
		case line == "Fails: true":
			c.wantFail = true
		}
	}
}

// compareOutput checks that every want snippet appears, in order, in the
// matching output.
func compareOutput(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for name, wantContent := range want {
		gotContent, ok := got[name]
		if !ok {
			continue // Already reported as missing.
		}
		if missing := testutil.MissingSnippet(string(gotContent), testutil.Snippets(wantContent)); missing != "" {
			t.Errorf("%s missing snippet:\n%s\n--- got:\n%s", name, missing, gotContent)
		}
	}
}

// updateE2EArchive replaces the want/* files with the full outputs.
func updateE2EArchive(ar *txtar.Archive, want, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	var names []string
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}
	return result
}
