// SPDX-License-Identifier: MIT

package plugin

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/model"
)

const schema = `
enum Status { ACTIVE INACTIVE }

type Post @model {
  id: ID!
  title: String!
  status: Status
  comments: [Comment] @hasMany
}

type Comment @model {
  id: ID!
  post: Post @belongsTo
}
`

func parse(t *testing.T, src string) *ast.SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: src})
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	return doc
}

func TestGenerate_Targets(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"swift", "public struct Post: Model {"},
		{"java", "public final class Post implements Model {"},
		{"dart", "class Post extends amplify_core.Model {"},
		{"typescript", "type EagerPostModel = {"},
		{"javascript", "const { Post, Comment } = initSchema(schema);"},
		{"metadata", "export const schema = {"},
		{"introspection", `"version": 1`},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			out, err := Generate(parse(t, schema), generator.Config{Target: tt.target})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestGenerate_EveryTargetIsWired(t *testing.T) {
	for _, target := range generator.Targets() {
		out, err := Generate(parse(t, schema), generator.Config{Target: target.String()})
		if err != nil {
			t.Errorf("%s: %v", target, err)
			continue
		}
		if out == "" {
			t.Errorf("%s: empty output", target)
		}
	}
}

func TestGenerate_UnknownTarget(t *testing.T) {
	log, hook := test.NewNullLogger()

	out, err := Generate(parse(t, schema), generator.Config{Target: "cobol"}, WithLogger(log))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("want a warning, got %v", hook.AllEntries())
	}
	if entry.Data["target"] != "cobol" {
		t.Errorf("warning fields = %v", entry.Data)
	}
}

func TestGenerate_NilDocument(t *testing.T) {
	out, err := Generate(nil, generator.Config{Target: "swift"})
	if err != nil || out != "" {
		t.Errorf("Generate(nil) = %q, %v; want empty output", out, err)
	}
}

func TestGenerate_ConfigurationError(t *testing.T) {
	doc := parse(t, `
		type Post @model { id: ID! }
		type Comment @model { id: ID! post: Post @belongsTo }
	`)
	out, err := Generate(doc, generator.Config{Target: "swift"})
	if err == nil {
		t.Fatal("want error for @belongsTo without an inverse")
	}
	if !errors.Is(err, model.ErrConfiguration) {
		t.Errorf("error = %v, want a configuration error", err)
	}
	if out != "" {
		t.Errorf("partial output returned: %q", out)
	}
}

func TestGenerate_UnknownScalar(t *testing.T) {
	src := `
		scalar Money
		type Item @model { id: ID! price: Money }
	`
	for _, target := range generator.Targets() {
		t.Run(target.String(), func(t *testing.T) {
			out, err := Generate(parse(t, src), generator.Config{Target: target.String()})
			if !errors.Is(err, model.ErrUnknownScalar) {
				t.Fatalf("error = %v, want an unknown scalar error", err)
			}
			var scalarErr *model.UnknownScalarError
			if !errors.As(err, &scalarErr) || scalarErr.Scalar != "Money" || scalarErr.Field != "price" {
				t.Errorf("error = %#v, want Money on Item.price", scalarErr)
			}
			if out != "" {
				t.Errorf("partial output returned: %q", out)
			}
		})
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	doc := parse(t, schema)
	want, err := Generate(doc, generator.Config{Target: "introspection"})
	if err != nil {
		t.Fatal(err)
	}

	g, _ := errgroup.WithContext(context.Background())
	for range 8 {
		g.Go(func() error {
			got, err := Generate(doc, generator.Config{Target: "introspection"})
			if err != nil {
				return err
			}
			if got != want {
				return errors.New("concurrent runs disagree")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
