// SPDX-License-Identifier: MIT

package java

import (
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/albertocavalcante/modelgen/generator"
)

const blog = `
enum PostStatus { DRAFT PUBLISHED }

type Post @model @auth(rules: [{allow: owner}, {allow: groups, groups: ["Admin"]}]) {
  id: ID!
  title: String!
  status: PostStatus @default(value: "DRAFT")
  comments: [Comment] @hasMany
}

type Comment @model {
  id: ID!
  content: String
  post: Post @belongsTo
}

type Address {
  street: String!
}

type Order @model {
  customerId: ID! @primaryKey(sortKeyFields: ["createdOn"])
  createdOn: AWSDateTime!
}
`

func render(t *testing.T, src string, cfg generator.Config) string {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: src})
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
	return out
}

func TestCodegen_Code(t *testing.T) {
	out := render(t, blog, generator.Config{Target: "java"})

	for _, want := range []string{
		"// Code generated by modelgen. DO NOT EDIT.",
		"package com.amplifyframework.datastore.generated.model;",
		"import static com.amplifyframework.core.model.query.predicate.QueryField.field;",
		"public enum PostStatus {\n  DRAFT,\n  PUBLISHED\n}",
		`@ModelConfig(pluralName = "Posts", type = Model.Type.USER, version = 1, authRules = {`,
		`@AuthRule(allow = AuthStrategy.OWNER, ownerField = "owner", identityClaim = "cognito:username", provider = "userPools", operations = { ModelOperation.CREATE, ModelOperation.UPDATE, ModelOperation.DELETE, ModelOperation.READ })`,
		`groups = {"Admin"}`,
		`@Index(name = "undefined", fields = {"id"})`,
		"public final class Post implements Model {",
		`public static final QueryField TITLE = field("Post", "title");`,
		`private final @ModelField(targetType="String", isRequired = true) String title;`,
		`private final @ModelField(targetType="Comment") @HasMany(associatedWith = "post", type = Comment.class) List<Comment> comments = null;`,
		`private @ModelField(targetType="AWSDateTime", isReadOnly = true) Temporal.DateTime createdAt;`,
		"public String getTitle() {",
		"public static TitleStep builder() {",
		"public static Post justId(String id) {",
		"public interface TitleStep {\n    BuildStep title(String title);",
		"BuildStep status(PostStatus status);",
		"private PostStatus status = PostStatus.DRAFT;",
		"String id = this.id != null ? this.id : UUID.randomUUID().toString();",
		"Objects.requireNonNull(title);",
		"public CopyOfBuilder copyOfBuilder() {",
		"return (CopyOfBuilder) super.title(title);",
		`public static final QueryField POST = field("Comment", "postCommentsId");`,
		`@BelongsTo(targetName = "postCommentsId", targetNames = {"postCommentsId"}, type = Post.class) Post post;`,
		`@Index(name = "gsi-Post.comments", fields = {"postCommentsId"})`,
		"public final class Address {",
		`@Index(name = "undefined", fields = {"customerId", "createdOn"})`,
		"public OrderIdentifier resolveIdentifier() {",
		"public static class OrderIdentifier extends ModelIdentifier<Order> {",
		"super(customerId, createdOn);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if strings.Contains(out, "Order justId") {
		t.Error("justId generated for a custom primary key")
	}
	if strings.Contains(out, "private final @ModelField(targetType=\"ID\") String postCommentsId") {
		t.Error("connected key rendered as a class field")
	}
}

func TestCodegen_Loader(t *testing.T) {
	out := render(t, blog, generator.Config{Target: "java", Generate: generator.GenerateLoader})

	for _, want := range []string{
		"public final class AmplifyModelProvider implements ModelProvider {",
		"private static final String AMPLIFY_MODEL_VERSION = ",
		"Arrays.<Class<? extends Model>>asList(Post.class, Comment.class, Order.class)",
		"import com.amplifyframework.util.Immutable;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "public final class Post") {
		t.Error("loader output contains model classes")
	}
}

func TestCodegen_PackageOption(t *testing.T) {
	out := render(t, "type A @model { id: ID! }", generator.Config{
		Target:  "java",
		Options: map[string]string{"package": "com.example.models"},
	})
	if !strings.Contains(out, "package com.example.models;") {
		t.Errorf("package option ignored:\n%s", out)
	}
}

func TestCodegen_SelectedType(t *testing.T) {
	out := render(t, blog, generator.Config{Target: "java", SelectedType: "PostStatus"})
	if !strings.Contains(out, "public enum PostStatus") {
		t.Error("selected enum missing")
	}
	if strings.Contains(out, "class Post") {
		t.Error("unselected class rendered")
	}
}

func TestCodegen_AcronymQueryField(t *testing.T) {
	out := render(t, "type Review @model { id: ID! postID: ID! }", generator.Config{Target: "java"})
	want := `public static final QueryField POST_ID = field("Review", "postID");`
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}
