// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command modelgen generates data-model source from an annotated GraphQL
// schema.
//
// Usage:
//
//	modelgen [flags] [schema paths...]
//
// Flags:
//
//	-o           Output directory (default: stdout)
//	-t           Comma-separated targets (default: introspection)
//	-g           Generation mode: code, metadata, loader, declaration
//	-type        Restrict output to one type and its dependencies
//	-option      Target option as key=value (repeatable)
//	-config      YAML project file with schema, output and targets
//	--dry-run    Print to stdout without writing files
//	--watch      Regenerate when schema files change
//	--verbose    Debug logging
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/load"
	"github.com/albertocavalcante/modelgen/plugin"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("modelgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	output := fs.String("o", "", "Output directory (default: stdout)")
	targets := fs.String("t", "", "Comma-separated targets (default: introspection)")
	mode := fs.String("g", "", "Generation mode: code, metadata, loader, declaration")
	selected := fs.String("type", "", "Restrict output to one type and its dependencies")
	configPath := fs.String("config", "", "YAML project file")
	dryRun := fs.Bool("dry-run", false, "Print to stdout without writing files")
	watch := fs.Bool("watch", false, "Regenerate when schema files change")
	verbose := fs.Bool("verbose", false, "Verbose output")
	var options stringList
	fs.Var(&options, "option", "Target option as key=value (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `modelgen - GraphQL data-model generator

Generate model source from a GraphQL schema annotated with @model,
@primaryKey, @index, @hasOne, @hasMany, @belongsTo, @manyToMany and @auth.

Usage:
  modelgen [flags] [schema paths...]

Schema paths may be files, directories, http(s) URLs or "-" for stdin.

Flags:
  -o string        Output directory (default: stdout)
  -t string        Comma-separated targets (default: introspection)
                   %s
  -g string        Generation mode: code, metadata, loader, declaration
  -type string     Restrict output to one type and its dependencies
  -option k=v      Target option (repeatable)
  -config string   YAML project file with schema, output and targets
  --dry-run        Print to stdout without writing files
  --watch          Regenerate when schema files change
  --verbose        Verbose output
  --version        Show version information
  --help           Show this help

Examples:
  # Introspection JSON to stdout
  modelgen schema.graphql

  # Swift models and schema extensions
  modelgen -t swift -o ./Models schema/
  modelgen -t swift -g metadata -o ./Models schema/

  # Java models in a custom package
  modelgen -t java -option package=com.example.models -o ./models schema.graphql

  # Everything a project file lists, kept up to date
  modelgen -config modelgen.yaml --watch

`, strings.Join(targetNames(), ", "))
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showHelp {
		fs.Usage()
		return nil
	}
	if *showVersion {
		fmt.Fprintf(stdout, "modelgen %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	log := newLogger(stderr, *verbose)

	var pc projectConfig
	if *configPath != "" {
		c, err := readConfig(*configPath)
		if err != nil {
			return err
		}
		pc = *c
	}
	if fs.NArg() > 0 {
		pc.Schema = fs.Args()
	}
	if *output != "" {
		pc.Output = *output
	}
	if *targets != "" || len(pc.Targets) == 0 {
		opts, err := parseOptions(options)
		if err != nil {
			return err
		}
		names := *targets
		if names == "" {
			names = generator.TargetIntrospection.String()
		}
		pc.Targets = nil
		for _, name := range strings.Split(names, ",") {
			pc.Targets = append(pc.Targets, targetRun{Config: generator.Config{
				Target:       strings.TrimSpace(name),
				Generate:     *mode,
				SelectedType: *selected,
				Options:      opts,
			}})
		}
	}
	if len(pc.Schema) == 0 {
		fs.Usage()
		return fmt.Errorf("no schema paths")
	}
	if err := pc.validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	build := func() error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		log.WithField("paths", pc.Schema).Debug("loading schema")
		res, err := load.Load(ctx, load.Options{Paths: pc.Schema, Stdin: os.Stdin})
		if err != nil {
			return fmt.Errorf("load schema: %w", err)
		}
		log.WithFields(logrus.Fields{
			"sources":     len(res.Sources),
			"definitions": len(res.Document.Definitions),
		}).Debug("schema loaded")

		out, err := generate(ctx, res, pc.Targets, log)
		if err != nil {
			return err
		}
		if *dryRun || pc.Output == "" {
			return printOutput(stdout, out)
		}
		return writeOutput(pc.Output, out, log)
	}

	if err := build(); err != nil {
		return err
	}
	if !*watch {
		return nil
	}
	return watchSchema(ctx, pc.Schema, log, build)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// generate runs every target concurrently into one Output. Each run
// traverses the shared document with its own registry.
func generate(ctx context.Context, res *load.Result, runs []targetRun, log logrus.FieldLogger) (*generator.Output, error) {
	out := generator.NewOutput()
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := plugin.Generate(res.Document, r.Config, plugin.WithLogger(log))
			if err != nil {
				return fmt.Errorf("generate %s: %w", r.Target, err)
			}
			out.Add(r.fileName(), content)
			log.WithFields(logrus.Fields{
				"target": r.Target,
				"mode":   r.Mode(),
				"file":   r.fileName(),
			}).Debug("generated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func printOutput(w io.Writer, out *generator.Output) error {
	names := out.Names()
	for i, name := range names {
		content, _ := out.Get(name)
		if len(names) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", name)
		}
		if _, err := io.WriteString(w, content); err != nil {
			return err
		}
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func writeOutput(dir string, out *generator.Output, log logrus.FieldLogger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, name := range out.Names() {
		content, _ := out.Get(name)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		log.WithField("path", path).Info("wrote file")
	}
	return nil
}

func targetNames() []string {
	var names []string
	for _, t := range generator.Targets() {
		names = append(names, t.String())
	}
	return names
}
