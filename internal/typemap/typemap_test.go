// SPDX-License-Identifier: MIT

package typemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/modelgen/model"
)

func scalar(name string, required bool) model.TypeRef {
	return model.TypeRef{Name: name, Kind: model.TypeScalar, IsRequired: required}
}

func TestMap(t *testing.T) {
	stringList := model.TypeRef{Name: "String", Kind: model.TypeScalar, IsList: true, IsListNullable: true}
	requiredList := model.TypeRef{Name: "Int", Kind: model.TypeScalar, IsList: true, IsRequired: true}
	comments := model.TypeRef{Name: "Comment", Kind: model.TypeModel, IsList: true, IsListNullable: true}
	status := model.TypeRef{Name: "Status", Kind: model.TypeEnum}

	tests := []struct {
		name string
		ref  model.TypeRef
		lang Language
		want string
	}{
		{"swift required", scalar("String", true), Swift, "String"},
		{"swift optional", scalar("Int", false), Swift, "Int?"},
		{"swift temporal", scalar("AWSDateTime", false), Swift, "Temporal.DateTime?"},
		{"swift scalar list", stringList, Swift, "[String?]?"},
		{"swift model list", comments, Swift, "List<Comment>?"},
		{"swift enum", status, Swift, "Status?"},
		{"java boxed", scalar("Int", false), Java, "Integer"},
		{"java list", requiredList, Java, "List<Integer>"},
		{"java timestamp", scalar("AWSTimestamp", true), Java, "Temporal.Timestamp"},
		{"dart optional", scalar("Float", false), Dart, "double?"},
		{"dart list", stringList, Dart, "List<String?>?"},
		{"dart model list", comments, Dart, "List<Comment>?"},
		{"ts optional", scalar("Boolean", false), TypeScript, "boolean | null"},
		{"ts nullable elements", stringList, TypeScript, "(string | null)[] | null"},
		{"ts required list", requiredList, TypeScript, "number[]"},
		{"ts email", scalar("AWSEmail", true), TypeScript, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.ref, tt.lang)
			if err != nil {
				t.Fatalf("Map: %v", err)
			}
			if got != tt.want {
				t.Errorf("Map = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMap_Errors(t *testing.T) {
	for _, lang := range []Language{Swift, Java, Dart, TypeScript} {
		t.Run(lang.String(), func(t *testing.T) {
			_, err := Map(scalar("Long", true), lang)
			if !model.IsUnknownScalarError(err) {
				t.Errorf("Map(Long) error = %v, want UnknownScalarError", err)
			}
			_, err = Map(model.TypeRef{Name: "Ghost"}, lang)
			if !model.IsDanglingReferenceError(err) {
				t.Errorf("Map(unresolved) error = %v, want DanglingReferenceError", err)
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	e := &model.Entity{Name: "Post"}
	f := &model.Field{Name: "size", Type: scalar("Long", false)}
	_, err := Map(f.Type, Swift)
	err = WithContext(err, e, f)
	want := `modelgen: unknown scalar "Long" on Post.size`
	if err == nil || err.Error() != want {
		t.Errorf("WithContext error = %v, want %s", err, want)
	}
	if WithContext(nil, e, f) != nil {
		t.Error("WithContext(nil) != nil")
	}
}

func TestLiteral(t *testing.T) {
	status := model.TypeRef{Name: "Status", Kind: model.TypeEnum}
	tests := []struct {
		name string
		ref  model.TypeRef
		raw  string
		lang Language
		want string
	}{
		{"string", scalar("String", false), "draft", Swift, `"draft"`},
		{"int", scalar("Int", false), "42", Dart, "42"},
		{"java float", scalar("Float", false), "1", Java, "1.0"},
		{"bool", scalar("Boolean", false), "true", TypeScript, "true"},
		{"swift enum", status, "IN_REVIEW", Swift, ".inReview"},
		{"dart enum", status, "DRAFT", Dart, "Status.DRAFT"},
		{"swift date", scalar("AWSDate", false), "2020-01-01", Swift, `try! Temporal.Date(iso8601String: "2020-01-01")`},
		{"dart datetime", scalar("AWSDateTime", false), "2020-01-01T00:00:00Z", Dart, `amplify_core.TemporalDateTime.fromString("2020-01-01T00:00:00Z")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Literal(tt.ref, tt.raw, tt.lang)
			if err != nil {
				t.Fatalf("Literal: %v", err)
			}
			if got != tt.want {
				t.Errorf("Literal = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := Literal(scalar("Int", false), "abc", Java); err == nil {
		t.Error("Literal(Int, abc) succeeded, want error")
	}
}

func TestSchemaTypes(t *testing.T) {
	tests := []struct {
		ref       model.TypeRef
		wantSwift string
		wantDart  string
	}{
		{scalar("ID", true), ".string", "string"},
		{scalar("AWSTimestamp", false), ".int", "timestamp"},
		{model.TypeRef{Name: "Status", Kind: model.TypeEnum}, ".enum(type: Status.self)", "enumeration"},
		{model.TypeRef{Name: "Post", Kind: model.TypeModel}, ".model(Post.self)", "model"},
		{model.TypeRef{Name: "Comment", Kind: model.TypeModel, IsList: true}, ".collection(of: Comment.self)", "collection"},
		{model.TypeRef{Name: "Address", Kind: model.TypeEmbedded}, ".embedded(type: Address.self)", "embedded"},
	}
	for _, tt := range tests {
		t.Run(tt.ref.Name, func(t *testing.T) {
			gotSwift, err := SwiftSchemaType(tt.ref)
			if err != nil {
				t.Fatal(err)
			}
			gotDart, err := DartSchemaType(tt.ref)
			if err != nil {
				t.Fatal(err)
			}
			if gotSwift != tt.wantSwift || gotDart != tt.wantDart {
				t.Errorf("schema types = %s, %s; want %s, %s", gotSwift, gotDart, tt.wantSwift, tt.wantDart)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		ref  model.TypeRef
		want any
	}{
		{scalar("AWSURL", true), "AWSURL"},
		{model.TypeRef{Name: "Status", Kind: model.TypeEnum}, map[string]string{"enum": "Status"}},
		{model.TypeRef{Name: "Post", Kind: model.TypeModel}, map[string]string{"model": "Post"}},
		{model.TypeRef{Name: "Address", Kind: model.TypeEmbedded}, map[string]string{"nonModel": "Address"}},
	}
	for _, tt := range tests {
		got, err := Descriptor(tt.ref)
		if err != nil {
			t.Fatalf("Descriptor(%s): %v", tt.ref.Name, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Descriptor(%s) mismatch (-want +got):\n%s", tt.ref.Name, diff)
		}
	}
}
