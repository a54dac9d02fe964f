// SPDX-License-Identifier: MIT

package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/albertocavalcante/modelgen/internal/directive"
	"github.com/albertocavalcante/modelgen/model"
)

func extract(t *testing.T, src string) *model.Registry {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: src})
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	reg := model.NewRegistry()
	roots := directive.Roots(doc)
	for _, def := range directive.Merge(doc) {
		e, err := directive.Extract(reg, def, roots)
		if err != nil {
			t.Fatalf("Extract(%s): %v", def.Name, err)
		}
		if e != nil {
			if err := reg.Add(e); err != nil {
				t.Fatalf("Add(%s): %v", e.Name, err)
			}
		}
	}
	return reg
}

func resolved(t *testing.T, src string) *model.Registry {
	t.Helper()
	reg := extract(t, src)
	if err := Resolve(reg); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return reg
}

func fieldNames(e *model.Entity) []string {
	var out []string
	for _, f := range e.Fields {
		out = append(out, f.Name)
	}
	return out
}

func TestResolve_NoRelationshipsKeepsEntities(t *testing.T) {
	reg := resolved(t, `
		type A { x: String y: Int d: D }
		type B { z: [A] }
		enum C { ONE TWO }
		type D { c: C b: B }
	`)
	var got []string
	for _, e := range reg.Entities() {
		got = append(got, e.Name)
	}
	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, got); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "b"}, fieldNames(reg.Get("D"))); diff != "" {
		t.Errorf("D fields mismatch (-want +got):\n%s", diff)
	}
	// A.d is a forward reference.
	if k := reg.Get("A").Field("d").Type.Kind; k != model.TypeEmbedded {
		t.Errorf("A.d kind = %v, want embedded", k)
	}
}

func TestResolve_HasManyBelongsTo(t *testing.T) {
	reg := resolved(t, `
		type Post @model {
			id: ID!
			title: String!
			comments: [Comment] @hasMany
		}
		type Comment @model {
			id: ID!
			content: String!
			post: Post @belongsTo
		}
	`)

	post, comment := reg.Get("Post"), reg.Get("Comment")
	comments := post.Field("comments").Relationship
	want := &model.Relationship{
		Connection:     model.HasMany,
		Owner:          "Post",
		Related:        "Comment",
		AssociatedWith: []string{"postCommentsId"},
		Inverse:        "post",
		Kind:           model.OneToMany,
		Implicit:       true,
		Resolved:       true,
	}
	if diff := cmp.Diff(want, comments); diff != "" {
		t.Errorf("Post.comments mismatch (-want +got):\n%s", diff)
	}

	belongs := comment.Field("post").Relationship
	if diff := cmp.Diff([]string{"postCommentsId"}, belongs.TargetNames); diff != "" {
		t.Errorf("Comment.post target names (-want +got):\n%s", diff)
	}
	if belongs.Kind != model.OneToMany || belongs.Inverse != "comments" || !belongs.OwnsForeignKey() {
		t.Errorf("Comment.post = %+v", belongs)
	}

	fk := comment.Field("postCommentsId")
	if fk == nil || !fk.Implicit || fk.Type.Name != "ID" {
		t.Fatalf("implicit foreign key = %+v", fk)
	}
	if comment.Index("gsi-Post.comments") == nil {
		t.Error("implicit foreign key has no index")
	}
	if n := len(comment.Fields); n != 6 {
		t.Errorf("Comment has %d fields (%v), want the key once", n, fieldNames(comment))
	}
}

func TestResolve_ParallelRelationships(t *testing.T) {
	reg := resolved(t, `
		type Post @model {
			id: ID!
			comments: [Comment] @hasMany
			featured: [Comment] @hasMany
		}
		type Comment @model {
			id: ID!
			post: Post @belongsTo
			featuredOn: Post @belongsTo
		}
	`)
	post, comment := reg.Get("Post"), reg.Get("Comment")

	tests := []struct {
		field, inverse string
		keys           []string
		rel            *model.Relationship
	}{
		{"comments", "post", []string{"postCommentsId"}, post.Field("comments").Relationship},
		{"featured", "featuredOn", []string{"postFeaturedId"}, post.Field("featured").Relationship},
		{"post", "comments", []string{"postCommentsId"}, comment.Field("post").Relationship},
		{"featuredOn", "featured", []string{"postFeaturedId"}, comment.Field("featuredOn").Relationship},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if tt.rel.Inverse != tt.inverse {
				t.Errorf("inverse = %q, want %q", tt.rel.Inverse, tt.inverse)
			}
			keys := tt.rel.AssociatedWith
			if tt.rel.Connection == model.BelongsTo {
				keys = tt.rel.TargetNames
			}
			if diff := cmp.Diff(tt.keys, keys); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_HasManyExplicit(t *testing.T) {
	reg := resolved(t, `
		type Blog @model {
			id: ID!
			posts: [Post] @hasMany(indexName: "byBlog", fields: ["id"])
		}
		type Post @model {
			id: ID!
			blogID: ID! @index(name: "byBlog")
			blog: Blog @belongsTo(fields: ["blogID"])
		}
	`)
	posts := reg.Get("Blog").Field("posts").Relationship
	if diff := cmp.Diff([]string{"blogID"}, posts.AssociatedWith); diff != "" {
		t.Errorf("associatedWith (-want +got):\n%s", diff)
	}
	if posts.Implicit {
		t.Error("explicit index reported implicit")
	}
	if diff := cmp.Diff([]string{"blogID"}, reg.Get("Post").Field("blog").Relationship.TargetNames); diff != "" {
		t.Errorf("targetNames (-want +got):\n%s", diff)
	}
}

func TestResolve_HasOne(t *testing.T) {
	reg := resolved(t, `
		type Project @model {
			id: ID!
			team: Team @hasOne
		}
		type Team @model {
			id: ID!
			project: Project @belongsTo
		}
	`)
	project, team := reg.Get("Project"), reg.Get("Team")

	rel := project.Field("team").Relationship
	if diff := cmp.Diff([]string{"projectTeamId"}, rel.TargetNames); diff != "" {
		t.Errorf("hasOne target names (-want +got):\n%s", diff)
	}
	if rel.Kind != model.OneToOne || !project.HasField("projectTeamId") {
		t.Errorf("hasOne = %+v, fields %v", rel, fieldNames(project))
	}

	back := team.Field("project").Relationship
	if diff := cmp.Diff([]string{"teamProjectId"}, back.TargetNames); diff != "" {
		t.Errorf("belongsTo target names (-want +got):\n%s", diff)
	}
	if back.Kind != model.OneToOne || !team.HasField("teamProjectId") {
		t.Errorf("belongsTo = %+v", back)
	}
}

func TestResolve_ManyToManySynthesizesJoin(t *testing.T) {
	reg := resolved(t, `
		type Post @model {
			id: ID!
			tags: [Tag] @manyToMany(relationName: "PostTags")
		}
		type Tag @model {
			id: ID!
			label: String!
			posts: [Post] @manyToMany(relationName: "PostTags")
		}
	`)

	var synthesized []*model.Entity
	for _, e := range reg.Entities() {
		if e.Synthesized {
			synthesized = append(synthesized, e)
		}
	}
	if len(synthesized) != 1 {
		t.Fatalf("synthesized %d join entities, want 1", len(synthesized))
	}
	join := synthesized[0]
	if join.Name != "PostTags" || !join.IsModel() || reg.Get("PostTags") != join {
		t.Fatalf("join = %s (registered %v)", join.Name, reg.Get("PostTags") != nil)
	}
	if diff := cmp.Diff([]string{"postId", "tagId"}, join.PrimaryKey().Fields); diff != "" {
		t.Errorf("join primary key (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"postId", "tagId", "post", "tag", "createdAt", "updatedAt"}, fieldNames(join)); diff != "" {
		t.Errorf("join fields (-want +got):\n%s", diff)
	}
	if join.Index("byPost") == nil || join.Index("byTag") == nil {
		t.Error("join is missing its side indexes")
	}

	tags := reg.Get("Post").Field("tags").Relationship
	posts := reg.Get("Tag").Field("posts").Relationship
	if tags.JoinEntity != "PostTags" || posts.JoinEntity != "PostTags" {
		t.Errorf("join entity = %q / %q", tags.JoinEntity, posts.JoinEntity)
	}
	if diff := cmp.Diff([]string{"postId"}, tags.AssociatedWith); diff != "" {
		t.Errorf("Post.tags associatedWith (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"tagId"}, posts.AssociatedWith); diff != "" {
		t.Errorf("Tag.posts associatedWith (-want +got):\n%s", diff)
	}
	if tags.Kind != model.ManyToManyKind || !tags.Implicit || !posts.Implicit {
		t.Errorf("Post.tags = %+v", tags)
	}
}

func TestResolve_ManyToManyExplicitJoin(t *testing.T) {
	reg := resolved(t, `
		type Student @model {
			id: ID!
			courses: [Course] @manyToMany(relationName: "Enrollment")
		}
		type Course @model {
			id: ID!
			students: [Student] @manyToMany(relationName: "Enrollment")
		}
		type Enrollment @model {
			id: ID!
			studentId: ID!
			courseId: ID!
			student: Student @belongsTo(fields: ["studentId"])
			course: Course @belongsTo(fields: ["courseId"])
		}
	`)
	for _, e := range reg.Entities() {
		if e.Synthesized {
			t.Errorf("synthesized %s despite explicit join", e.Name)
		}
	}
	rel := reg.Get("Student").Field("courses").Relationship
	if rel.JoinEntity != "Enrollment" || rel.Implicit {
		t.Errorf("Student.courses = %+v", rel)
	}
	if diff := cmp.Diff([]string{"studentId"}, rel.AssociatedWith); diff != "" {
		t.Errorf("associatedWith (-want +got):\n%s", diff)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	src := `
		type Post @model { id: ID! comments: [Comment] @hasMany tags: [Tag] @manyToMany(relationName: "PostTags") }
		type Comment @model { id: ID! post: Post @belongsTo }
		type Tag @model { id: ID! posts: [Post] @manyToMany(relationName: "PostTags") }
	`
	once := resolved(t, src)
	twice := resolved(t, src)
	if err := Resolve(twice); err != nil {
		t.Fatalf("second Resolve: %v", err)
	}

	opt := cmp.AllowUnexported(model.OrderedMap[any]{})
	if diff := cmp.Diff(once.Entities(), twice.Entities(), opt); diff != "" {
		t.Errorf("second Resolve changed the registry (-once +twice):\n%s", diff)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   func(error) bool
	}{
		{"dangling type", `type Post @model { author: User }`, model.IsDanglingReferenceError},
		{"dangling relationship", `type Post @model { author: User @hasOne }`, model.IsDanglingReferenceError},
		{"declared custom scalar", `scalar Long type Post @model { size: Long }`, model.IsUnknownScalarError},
		{"missing index", `
			type Post @model { comments: [Comment] @hasMany(indexName: "nope") }
			type Comment @model { id: ID! }`, model.IsConfigurationError},
		{"belongsTo without inverse", `
			type Post @model { id: ID! }
			type Comment @model { post: Post @belongsTo }`, model.IsConfigurationError},
		{"unpairable belongsTo", `
			type Post @model { id: ID! comments: [Comment] @hasMany }
			type Comment @model { id: ID! post: Post @belongsTo featuredOn: Post @belongsTo }`, model.IsConfigurationError},
		{"manyToMany without counterpart", `
			type Post @model { tags: [Tag] @manyToMany(relationName: "PostTags") }
			type Tag @model { id: ID! }`, model.IsConfigurationError},
		{"manyToMany self join", `
			type User @model { friends: [User] @manyToMany(relationName: "Friends") }`, model.IsConfigurationError},
		{"relationship to embedded type", `
			type Address { street: String }
			type User @model { address: Address @hasOne }`, model.IsConfigurationError},
		{"hasOne missing field", `
			type User @model { profile: Profile @hasOne(fields: ["profileID"]) }
			type Profile @model { id: ID! }`, model.IsConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := extract(t, tt.src)
			err := Resolve(reg)
			if !tt.is(err) {
				t.Errorf("Resolve error = %v", err)
			}
		})
	}
}
