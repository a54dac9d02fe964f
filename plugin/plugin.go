// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package plugin is the entry point of the model generator: one parsed
// schema document and one configuration record in, one document out.
package plugin

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/generators/dart"
	"github.com/albertocavalcante/modelgen/generators/introspection"
	"github.com/albertocavalcante/modelgen/generators/java"
	"github.com/albertocavalcante/modelgen/generators/javascript"
	"github.com/albertocavalcante/modelgen/generators/metadata"
	"github.com/albertocavalcante/modelgen/generators/swift"
	"github.com/albertocavalcante/modelgen/generators/typescript"
	"github.com/albertocavalcante/modelgen/model"
)

// Option configures a Generate call.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger routes diagnostics to log instead of the default stderr
// logger, which only reports warnings and errors.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Generate renders doc for the target named in cfg. A nil document and an
// unsupported target both yield an empty string; the latter is logged as
// a warning. Each call builds its own registry, so concurrent calls are
// independent.
func Generate(doc *ast.SchemaDocument, cfg generator.Config, opts ...Option) (string, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = defaultLogger()
	}
	log := o.log.WithField("target", cfg.Target)

	if doc == nil {
		log.Debug("no schema document")
		return "", nil
	}
	target, ok := generator.ParseTarget(cfg.Target)
	if !ok {
		log.Warn("unsupported target; nothing generated")
		return "", nil
	}

	v := generator.NewVisitor(log)
	if err := v.Traverse(doc); err != nil {
		return "", fmt.Errorf("%s: %w", target, err)
	}
	em, err := newEmitter(target, v.Registry(), cfg)
	if err != nil {
		return "", err
	}
	out, err := v.Render(em)
	if err != nil {
		return "", fmt.Errorf("%s: %w", target, err)
	}
	return out, nil
}

func newEmitter(target generator.Target, reg *model.Registry, cfg generator.Config) (generator.Emitter, error) {
	switch target {
	case generator.TargetSwift:
		return swift.NewGenerator(reg, cfg), nil
	case generator.TargetJava:
		return java.NewGenerator(reg, cfg), nil
	case generator.TargetMetadata:
		return metadata.NewGenerator(reg, cfg), nil
	case generator.TargetTypeScript:
		return typescript.NewGenerator(reg, cfg), nil
	case generator.TargetJavaScript:
		return javascript.NewGenerator(reg, cfg), nil
	case generator.TargetDart:
		return dart.NewGenerator(reg, cfg), nil
	case generator.TargetIntrospection:
		return introspection.NewGenerator(reg, cfg), nil
	default:
		return nil, fmt.Errorf("no emitter for %s", target)
	}
}
