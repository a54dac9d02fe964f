// SPDX-License-Identifier: MIT

package dart

import (
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/albertocavalcante/modelgen/generator"
)

const blog = `
enum PostStatus { DRAFT PUBLISHED }

type Post @model @auth(rules: [{allow: owner}]) {
  id: ID!
  title: String!
  status: PostStatus @default(value: "DRAFT")
  rating: Float
  comments: [Comment] @hasMany
  address: Address
}

type Comment @model {
  id: ID!
  content: String
  post: Post @belongsTo
}

type Address {
  street: String!
  lines: [String]
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
	out := render(t, blog, generator.Config{Target: "dart"})

	for _, want := range []string{
		"// Code generated by modelgen. DO NOT EDIT.",
		"import 'package:amplify_core/amplify_core.dart' as amplify_core;",
		"import 'package:collection/collection.dart';",
		"enum PostStatus {\n  DRAFT,\n  PUBLISHED\n}",
		"class Post extends amplify_core.Model {",
		"static const classType = const _PostModelType();",
		"final String id;",
		"final String? _title;",
		"final List<Comment>? _comments;",
		"String get title {",
		"return _title!;",
		"PostStatus? get status {",
		"String getId() => id;",
		"PostModelIdentifier get modelIdentifier {",
		"factory Post({String? id, required String title, PostStatus? status, double? rating, List<Comment>? comments, Address? address})",
		"id: id == null ? amplify_core.UUID.getUUID() : id",
		"status: status ?? PostStatus.DRAFT",
		"comments: comments != null ? List<Comment>.unmodifiable(comments) : comments",
		"DeepCollectionEquality().equals(_comments, other._comments)",
		"Post copyWith({String? title, PostStatus? status, double? rating, List<Comment>? comments, Address? address})",
		"_status = amplify_core.enumFromString<PostStatus>(json['status'], PostStatus.values)",
		"_rating = (json['rating'] as num?)?.toDouble()",
		"_createdAt = json['createdAt'] != null ? amplify_core.TemporalDateTime.fromString(json['createdAt']) : null",
		"'createdAt': _createdAt?.format()",
		"'status': amplify_core.enumToString(_status)",
		"'address': _address?.toJson()",
		`static final TITLE = amplify_core.QueryField(fieldName: "title");`,
		`modelSchemaDefinition.name = "Post";`,
		`modelSchemaDefinition.pluralName = "Posts";`,
		"authStrategy: amplify_core.AuthStrategy.OWNER",
		"provider: amplify_core.AuthRuleProvider.USERPOOLS",
		"modelSchemaDefinition.addField(amplify_core.ModelFieldDefinition.id());",
		"amplify_core.ModelFieldDefinition.field(key: Post.TITLE, isRequired: true, ofType: amplify_core.ModelFieldType(amplify_core.ModelFieldTypeEnum.string))",
		"amplify_core.ModelFieldDefinition.hasMany(key: Post.COMMENTS, isRequired: false, ofModelName: 'Comment', associatedKey: Comment.POST)",
		"amplify_core.ModelFieldDefinition.embedded(fieldName: 'address', isRequired: false, ofType: amplify_core.ModelFieldType(amplify_core.ModelFieldTypeEnum.embedded, ofCustomTypeName: 'Address'))",
		"amplify_core.ModelFieldDefinition.nonQueryField(fieldName: 'createdAt', isRequired: false, isReadOnly: true, ofType: amplify_core.ModelFieldType(amplify_core.ModelFieldTypeEnum.dateTime))",
		"amplify_core.ModelFieldDefinition.belongsTo(key: Comment.POST, isRequired: false, targetNames: ['postCommentsId'], ofModelName: 'Post')",
		"class _PostModelType extends amplify_core.ModelType<Post> {",
		"class PostModelIdentifier implements amplify_core.ModelIdentifier<Post> {",
		"class Address {",
		"amplify_core.ModelFieldDefinition.customTypeField(fieldName: 'street', isRequired: true, ofType: amplify_core.ModelFieldType(amplify_core.ModelFieldTypeEnum.string))",
		"isArray: true, ofType: amplify_core.ModelFieldType(amplify_core.ModelFieldTypeEnum.collection, ofModelName: amplify_core.ModelFieldTypeEnum.string.name)",
		"_lines = json['lines']?.cast<String>()",
		`amplify_core.ModelIndex(fields: const ["customerId", "createdOn"], name: null)`,
		"class OrderModelIdentifier implements amplify_core.ModelIdentifier<Order> {",
		"final amplify_core.TemporalDateTime createdOn;",
		"customerId: _customerId!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Order getId()") || strings.Contains(out, "_postCommentsId") {
		t.Errorf("unexpected members in output")
	}
}

func TestCodegen_Loader(t *testing.T) {
	out := render(t, blog, generator.Config{Target: "dart", Generate: generator.GenerateLoader})

	for _, want := range []string{
		"export 'Post.dart';",
		"export 'PostStatus.dart';",
		"class ModelProvider implements amplify_core.ModelProviderInterface {",
		"List<amplify_core.ModelSchema> modelSchemas = [Post.schema, Comment.schema, Order.schema];",
		"List<amplify_core.ModelSchema> customTypeSchemas = [Address.schema];",
		"case \"Comment\":",
		"return Comment.classType;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "collection.dart") {
		t.Error("loader imports the collection package")
	}
}

func TestCodegen_UnsupportedMode(t *testing.T) {
	doc, err := parser.ParseSchema(&ast.Source{Input: "type A @model { id: ID! }"})
	if err != nil {
		t.Fatal(err)
	}
	v := generator.NewVisitor(nil)
	if err := v.Traverse(doc); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Render(NewGenerator(v.Registry(), generator.Config{Generate: generator.GenerateMetadata})); err == nil {
		t.Fatal("want error for metadata mode")
	}
}
