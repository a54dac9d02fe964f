// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/generators/metadata"
)

// projectConfig is the YAML file read by --config.
//
//	schema: [schema/]
//	output: src/models
//	targets:
//	  - target: swift
//	  - target: swift
//	    generate: metadata
//	  - target: metadata
//	    file: schema.ts
//	    options:
//	      metadataTarget: typescript
type projectConfig struct {
	Schema  []string    `yaml:"schema"`
	Output  string      `yaml:"output"`
	Targets []targetRun `yaml:"targets"`
}

// targetRun is one generation and the file it is written to.
type targetRun struct {
	generator.Config `yaml:",inline"`

	// File overrides the default output file name.
	File string `yaml:"file,omitempty"`
}

func readConfig(path string) (*projectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var pc projectConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &pc, nil
}

// validate reports every problem with the target runs at once: unknown
// targets and modes, and runs that would write the same file.
func (pc *projectConfig) validate() error {
	var result *multierror.Error
	files := make(map[string]string)
	for _, r := range pc.Targets {
		if _, ok := generator.ParseTarget(r.Target); !ok {
			result = multierror.Append(result, fmt.Errorf("unknown target %q (supported: %s)",
				r.Target, strings.Join(targetNames(), ", ")))
			continue
		}
		switch r.Mode() {
		case generator.GenerateCode, generator.GenerateMetadata,
			generator.GenerateLoader, generator.GenerateDeclaration:
		default:
			result = multierror.Append(result, fmt.Errorf("%s: unknown generation mode %q", r.Target, r.Generate))
			continue
		}
		name := r.fileName()
		if prev, ok := files[name]; ok {
			result = multierror.Append(result, fmt.Errorf("%s and %s both write %s", prev, r.label(), name))
			continue
		}
		files[name] = r.label()
	}
	if result != nil {
		result.ErrorFormat = joinErrors
	}
	return result.ErrorOrNil()
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (r targetRun) label() string {
	return r.Target + "/" + r.Mode()
}

// fileName returns the output file of a run.
func (r targetRun) fileName() string {
	if r.File != "" {
		return r.File
	}
	mode := r.Mode()
	switch r.Target {
	case "swift":
		switch mode {
		case generator.GenerateMetadata:
			return "Schema.swift"
		case generator.GenerateLoader:
			return "AmplifyModels.swift"
		}
		return "Models.swift"
	case "java":
		if mode == generator.GenerateLoader {
			return "AmplifyModelProvider.java"
		}
		return "Models.java"
	case "dart":
		if mode == generator.GenerateLoader {
			return "ModelProvider.dart"
		}
		return "models.dart"
	case "typescript":
		if mode == generator.GenerateDeclaration {
			return "index.d.ts"
		}
		return "index.ts"
	case "javascript":
		if mode == generator.GenerateDeclaration {
			return "index.d.ts"
		}
		return "index.js"
	case "metadata":
		switch r.Option("metadataTarget", metadata.TargetJavaScript) {
		case metadata.TargetTypeScript:
			return "schema.ts"
		case metadata.TargetTypeDeclaration:
			return "schema.d.ts"
		}
		return "schema.js"
	case "introspection":
		return "model-introspection.json"
	}
	return r.Target + ".out"
}

// parseOptions turns "key=value" pairs into an options map.
func parseOptions(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	opts := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("option %q: want key=value", p)
		}
		opts[key] = value
	}
	return opts, nil
}
