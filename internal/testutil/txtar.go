// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for modelgen.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/modelgen/generator"
)

// Case represents a parsed scenario from a txtar archive.
type Case struct {
	// Name is the scenario name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Flags contains flags parsed from a "Flags: ..." line in the description.
	Flags []string

	// Schema is the contents of "schema.graphql".
	Schema []byte

	// Runs lists the runs decoded from "config.yaml".
	Runs []Run

	// Want maps an output key (see Run.Key) to expected content.
	Want map[string][]byte

	// WantErr is the contents of "error", a substring every run must fail with.
	WantErr string
}

// Run is one generation of a scenario.
type Run struct {
	// Name keys the expected output. Defaults to the target, plus the
	// mode when one is set.
	Name string `yaml:"name,omitempty"`

	generator.Config `yaml:",inline"`
}

// Key names the output of the run.
func (r Run) Key() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Generate == "":
		return r.Target
	default:
		return r.Target + "." + r.Generate
	}
}

type scenarioConfig struct {
	Targets []Run `yaml:"targets"`
}

// ParseCase parses a txtar archive into a scenario.
// The archive should contain:
//   - A description comment (text before the first file)
//   - A "schema.graphql" file with the input schema
//   - A "config.yaml" file with a list of runs under "targets"
//   - One "want/<key>" file per run (see Run.Key), or a single "error" file
//
// Want files hold snippets that must appear in the output in order,
// separated by lines containing only "...". The "Flags: exact"
// description line switches to whole-document comparison.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}
	c.parseFlags()

	var config []byte
	for _, f := range ar.Files {
		switch {
		case f.Name == "schema.graphql":
			c.Schema = f.Data
		case f.Name == "config.yaml":
			config = f.Data
		case f.Name == "error":
			c.WantErr = strings.TrimSpace(string(f.Data))
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected schema.graphql, config.yaml, error or want/*)", f.Name)
		}
	}

	if c.Schema == nil {
		return nil, fmt.Errorf("missing schema.graphql in archive")
	}
	if config == nil {
		return nil, fmt.Errorf("missing config.yaml in archive")
	}
	var sc scenarioConfig
	if err := yaml.Unmarshal(config, &sc); err != nil {
		return nil, fmt.Errorf("decode config.yaml: %w", err)
	}
	if len(sc.Targets) == 0 {
		return nil, fmt.Errorf("config.yaml lists no targets")
	}
	c.Runs = sc.Targets

	if c.WantErr == "" && len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* or error files in archive")
	}
	return c, nil
}

// parseFlags extracts flags from a "Flags: ..." line in the description.
func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Flags:") {
			continue
		}
		for _, f := range strings.Split(strings.TrimPrefix(line, "Flags:"), ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Flags = append(c.Flags, f)
			}
		}
		return
	}
}

// HasFlag reports whether the description sets flag.
func (c *Case) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// GenerateFunc renders schema for one run.
type GenerateFunc func(schema []byte, cfg generator.Config) (string, error)

// Run executes every run of the scenario and checks the outputs.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got := make(map[string]string)
	for _, r := range c.Runs {
		out, err := generate(c.Schema, r.Config)
		if c.WantErr != "" {
			if err == nil || !strings.Contains(err.Error(), c.WantErr) {
				t.Errorf("%s: error = %v, want %q", r.Key(), err, c.WantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: generate failed: %v", r.Key(), err)
		}
		got[r.Key()] = out
	}
	if c.WantErr != "" {
		return
	}

	for key := range c.Want {
		if _, ok := got[key]; !ok {
			t.Errorf("no run produces %q", key)
		}
	}

	for key, want := range c.Want {
		out, ok := got[key]
		if !ok {
			continue
		}
		if c.HasFlag("exact") {
			if diff := cmp.Diff(normalizeContent([]byte(want)), normalizeContent([]byte(out))); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", key, diff)
			}
			continue
		}
		if missing := MissingSnippet(normalizeContent([]byte(out)), Snippets(want)); missing != "" {
			t.Errorf("%s: output missing snippet (in order):\n%s\n--- got:\n%s", key, missing, out)
		}
	}
}

// Snippets splits a want file on "..." separator lines.
func Snippets(want []byte) []string {
	var out []string
	var cur []string
	flush := func() {
		if s := strings.TrimSpace(strings.Join(cur, "\n")); s != "" {
			out = append(out, normalizeContent([]byte(strings.Join(cur, "\n"))))
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(string(want), "\n") {
		if strings.TrimSpace(line) == "..." {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

// MissingSnippet returns the first snippet not found in out after the
// previous one, or "".
func MissingSnippet(out string, snippets []string) string {
	rest := out
	for _, s := range snippets {
		i := strings.Index(rest, s)
		if i < 0 {
			return s
		}
		rest = rest[i+len(s):]
	}
	return ""
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Trims leading and trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// LoadTestCases loads all txtar scenarios from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases
}
