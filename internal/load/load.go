// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package load reads GraphQL schema sources from files, directories,
// standard input or HTTP URLs and parses them into one document.
package load

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Stdin is the path that reads the schema from Options.Stdin.
const Stdin = "-"

// Extensions lists the file extensions collected from directories.
var Extensions = []string{".graphql", ".gql", ".graphqls"}

// Options configures how schema sources are loaded.
type Options struct {
	// Paths lists files, directories, URLs or "-" for standard input.
	Paths []string

	// Stdin is read for the "-" path. Defaults to os.Stdin.
	Stdin io.Reader

	// Client fetches URL paths. Defaults to http.DefaultClient.
	Client *http.Client

	// Timeout for network operations.
	Timeout time.Duration
}

// Result contains the parsed document and where it came from.
type Result struct {
	// Document is the merged schema document of every source.
	Document *ast.SchemaDocument

	// Sources names each source in load order.
	Sources []string
}

// Load reads every path and parses the sources as one schema document.
// Definitions keep the order of the sources; directory entries are read
// in lexical order.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Paths) == 0 {
		return nil, fmt.Errorf("no schema paths")
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	var sources []*ast.Source
	for _, p := range opts.Paths {
		loaded, err := loadPath(ctx, opts, p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, loaded...)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no schema files found in %s", strings.Join(opts.Paths, ", "))
	}

	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	res := &Result{Document: doc}
	for _, s := range sources {
		res.Sources = append(res.Sources, s.Name)
	}
	return res, nil
}

// Parse parses in-memory schema text.
func Parse(name, input string) (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return doc, nil
}

func loadPath(ctx context.Context, opts Options, p string) ([]*ast.Source, error) {
	switch {
	case p == Stdin:
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []*ast.Source{{Name: "<stdin>", Input: string(data)}}, nil
	case strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://"):
		data, err := fetchURL(ctx, opts, p)
		if err != nil {
			return nil, err
		}
		return []*ast.Source{{Name: p, Input: string(data)}}, nil
	}

	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if !info.IsDir() {
		return readFiles([]string{p})
	}
	files, err := collect(p)
	if err != nil {
		return nil, err
	}
	return readFiles(files)
}

// collect returns the schema files below dir in lexical order.
func collect(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(Extensions, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	slices.Sort(files)
	return files, nil
}

func readFiles(paths []string) ([]*ast.Source, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		sources = append(sources, &ast.Source{Name: p, Input: string(data)})
	}
	return sources, nil
}

// fetchURL downloads one schema source.
func fetchURL(ctx context.Context, opts Options, url string) ([]byte, error) {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", url, resp.StatusCode, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
