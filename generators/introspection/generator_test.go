// SPDX-License-Identifier: MIT

package introspection

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/model"
)

const blog = `
enum PostStatus { DRAFT PUBLISHED }

type Post @model @auth(rules: [{allow: owner}]) {
  id: ID!
  title: String!
  status: PostStatus
  tags: [Tag] @manyToMany(relationName: "PostTags")
  comments: [Comment] @hasMany
  meta: Meta
}

type Comment @model {
  id: ID!
  post: Post @belongsTo
}

type Tag @model {
  id: ID!
  posts: [Post] @manyToMany(relationName: "PostTags")
}

type Meta {
  keywords: [String!]!
}
`

type document struct {
	Version   int                `json:"version"`
	Models    map[string]typeDoc `json:"models"`
	Enums     map[string]enumDoc `json:"enums"`
	NonModels map[string]typeDoc `json:"nonModels"`
}

type typeDoc struct {
	Name           string              `json:"name"`
	Fields         map[string]fieldDoc `json:"fields"`
	PluralName     string              `json:"pluralName"`
	Syncable       *bool               `json:"syncable"`
	Attributes     []attributeDoc      `json:"attributes"`
	PrimaryKeyInfo *struct {
		IsCustomPrimaryKey  bool     `json:"isCustomPrimaryKey"`
		PrimaryKeyFieldName string   `json:"primaryKeyFieldName"`
		SortKeyFieldNames   []string `json:"sortKeyFieldNames"`
	} `json:"primaryKeyInfo"`
}

type attributeDoc struct {
	Type string `json:"type"`
}

type fieldDoc struct {
	Name            string          `json:"name"`
	IsArray         bool            `json:"isArray"`
	Type            json.RawMessage `json:"type"`
	IsRequired      bool            `json:"isRequired"`
	IsArrayNullable *bool           `json:"isArrayNullable"`
	IsReadOnly      bool            `json:"isReadOnly"`
	Association     *struct {
		ConnectionType string   `json:"connectionType"`
		AssociatedWith []string `json:"associatedWith"`
		TargetNames    []string `json:"targetNames"`
	} `json:"association"`
}

type enumDoc struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func generate(t *testing.T, cfg generator.Config) (*model.Registry, document) {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: blog})
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	v := generator.NewVisitor(nil)
	if err := v.Traverse(doc); err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	out, err := v.Render(NewGenerator(v.Registry(), cfg))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var d document
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	return v.Registry(), d
}

func typeName(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var scalar string
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return scalar
	}
	var ref map[string]string
	if err := json.Unmarshal(raw, &ref); err != nil {
		t.Fatalf("bad type %s", raw)
	}
	for _, name := range ref {
		return name
	}
	return ""
}

// TestGenerator_RoundTrip checks that every entity, field, type,
// nullability and relationship kind of the registry survives rendering.
func TestGenerator_RoundTrip(t *testing.T) {
	reg, doc := generate(t, generator.Config{Target: "introspection"})

	if doc.Version != 1 {
		t.Errorf("version = %d, want 1", doc.Version)
	}

	for _, e := range reg.Entities() {
		if e.Kind == model.KindEnum {
			got, ok := doc.Enums[e.Name]
			if !ok {
				t.Errorf("enum %s missing", e.Name)
				continue
			}
			if diff := cmp.Diff(e.Values, got.Values); diff != "" {
				t.Errorf("enum %s values (-want +got):\n%s", e.Name, diff)
			}
			continue
		}

		section := doc.Models
		if e.Kind == model.KindEmbedded {
			section = doc.NonModels
		}
		td, ok := section[e.Name]
		if !ok {
			t.Errorf("type %s missing", e.Name)
			continue
		}
		if len(td.Fields) != len(e.Fields) {
			t.Errorf("%s has %d fields, want %d", e.Name, len(td.Fields), len(e.Fields))
		}
		for _, f := range e.Fields {
			fd, ok := td.Fields[f.Name]
			if !ok {
				t.Errorf("%s.%s missing", e.Name, f.Name)
				continue
			}
			want := f.EffectiveType()
			if got := typeName(t, fd.Type); got != want.Name {
				t.Errorf("%s.%s type = %q, want %q", e.Name, f.Name, got, want.Name)
			}
			if fd.IsArray != want.IsList || fd.IsRequired != want.IsRequired {
				t.Errorf("%s.%s shape = (array %v, required %v), want (%v, %v)",
					e.Name, f.Name, fd.IsArray, fd.IsRequired, want.IsList, want.IsRequired)
			}
			if want.IsList && (fd.IsArrayNullable == nil || *fd.IsArrayNullable != want.IsListNullable) {
				t.Errorf("%s.%s isArrayNullable = %v, want %v", e.Name, f.Name, fd.IsArrayNullable, want.IsListNullable)
			}
			if fd.IsReadOnly != f.ReadOnly {
				t.Errorf("%s.%s isReadOnly = %v", e.Name, f.Name, fd.IsReadOnly)
			}
			switch {
			case f.Relationship == nil && fd.Association != nil:
				t.Errorf("%s.%s has unexpected association", e.Name, f.Name)
			case f.Relationship != nil && fd.Association == nil:
				t.Errorf("%s.%s lost its association", e.Name, f.Name)
			}
		}
	}
}

func TestGenerator_Associations(t *testing.T) {
	_, doc := generate(t, generator.Config{Target: "introspection"})

	type assoc struct {
		Connection     string
		AssociatedWith []string
		TargetNames    []string
	}
	get := func(model, field string) assoc {
		fd := doc.Models[model].Fields[field]
		if fd.Association == nil {
			return assoc{}
		}
		return assoc{fd.Association.ConnectionType, fd.Association.AssociatedWith, fd.Association.TargetNames}
	}

	tests := []struct {
		model, field string
		want         assoc
	}{
		{"Post", "comments", assoc{Connection: "HAS_MANY", AssociatedWith: []string{"postCommentsId"}}},
		{"Post", "tags", assoc{Connection: "HAS_MANY", AssociatedWith: []string{"postId"}}},
		{"Comment", "post", assoc{Connection: "BELONGS_TO", TargetNames: []string{"postCommentsId"}}},
		{"PostTags", "post", assoc{Connection: "BELONGS_TO", TargetNames: []string{"postId"}}},
		{"PostTags", "tag", assoc{Connection: "BELONGS_TO", TargetNames: []string{"tagId"}}},
	}
	for _, tt := range tests {
		t.Run(tt.model+"."+tt.field, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, get(tt.model, tt.field)); diff != "" {
				t.Errorf("association (-want +got):\n%s", diff)
			}
		})
	}

	if got := typeName(t, doc.Models["Post"].Fields["tags"].Type); got != "PostTags" {
		t.Errorf("Post.tags type = %q, want the join model", got)
	}
	pk := doc.Models["PostTags"].PrimaryKeyInfo
	if pk == nil || !pk.IsCustomPrimaryKey || pk.PrimaryKeyFieldName != "postId" {
		t.Errorf("PostTags primaryKeyInfo = %+v", pk)
	}
	var kinds []string
	for _, a := range doc.Models["Post"].Attributes {
		kinds = append(kinds, a.Type)
	}
	if len(kinds) < 2 || kinds[0] != "model" || kinds[len(kinds)-1] != "auth" {
		t.Errorf("Post attributes = %v, want model first and auth last", kinds)
	}
}

// TestGenerator_ManyToManyDeclaredType checks that each @manyToMany field
// of the source schema is recoverable from the JSON: a HAS_MANY over the
// model named by relationName whose other BELONGS_TO side has the declared
// element type, and whose primary key is exactly the two side keys.
func TestGenerator_ManyToManyDeclaredType(t *testing.T) {
	_, doc := generate(t, generator.Config{Target: "introspection"})
	src, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: blog})
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	var checked int
	for _, def := range src.Definitions {
		for _, f := range def.Fields {
			d := f.Directives.ForName("manyToMany")
			if d == nil {
				continue
			}
			checked++
			relationName := d.Arguments.ForName("relationName").Value.Raw
			declared := f.Type.Name()

			fd := doc.Models[def.Name].Fields[f.Name]
			if fd.Association == nil || fd.Association.ConnectionType != "HAS_MANY" {
				t.Errorf("%s.%s association = %+v, want HAS_MANY", def.Name, f.Name, fd.Association)
				continue
			}
			if got := typeName(t, fd.Type); got != relationName {
				t.Errorf("%s.%s type = %q, want join model %q", def.Name, f.Name, got, relationName)
				continue
			}

			join := doc.Models[relationName]
			var sides [][]string
			var other string
			for _, jf := range join.Fields {
				if jf.Association == nil || jf.Association.ConnectionType != "BELONGS_TO" {
					continue
				}
				sides = append(sides, jf.Association.TargetNames)
				if !cmp.Equal(jf.Association.TargetNames, fd.Association.AssociatedWith) {
					other = typeName(t, jf.Type)
				}
			}
			if other != declared {
				t.Errorf("%s.%s reaches %q through %s, want declared type %q", def.Name, f.Name, other, relationName, declared)
			}
			if len(sides) != 2 || join.PrimaryKeyInfo == nil {
				t.Errorf("%s has %d BELONGS_TO sides and key %+v", relationName, len(sides), join.PrimaryKeyInfo)
				continue
			}
			key := append([]string{join.PrimaryKeyInfo.PrimaryKeyFieldName}, join.PrimaryKeyInfo.SortKeyFieldNames...)
			var want []string
			for _, side := range sides {
				want = append(want, side...)
			}
			sort.Strings(key)
			sort.Strings(want)
			if diff := cmp.Diff(want, key); diff != "" {
				t.Errorf("%s primary key (-want +got):\n%s", relationName, diff)
			}
		}
	}
	if checked != 2 {
		t.Errorf("checked %d @manyToMany fields, want 2", checked)
	}
}

func TestGenerator_SelectedType(t *testing.T) {
	_, doc := generate(t, generator.Config{Target: "introspection", SelectedType: "Comment"})

	var models []string
	for name := range doc.Models {
		models = append(models, name)
	}
	if _, ok := doc.Models["Comment"]; !ok {
		t.Fatalf("selected model missing: %v", models)
	}
	if _, ok := doc.Models["Post"]; !ok {
		t.Errorf("referenced model Post missing: %v", models)
	}
	if _, ok := doc.Enums["PostStatus"]; !ok {
		t.Errorf("enum reachable through Post missing")
	}
}
