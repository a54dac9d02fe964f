// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package java generates Amplify Android data models in Java.
//
// The generated code follows the Amplify DataStore conventions:
//   - final classes implementing Model, annotated with @ModelConfig,
//     @Index and @ModelField
//   - QueryField constants for predicates
//   - immutable fields with a step builder and a copyOfBuilder
//   - plain enums
//   - AmplifyModelProvider, listing every model class
package java

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/schemajson"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// Codegen generates Java source from resolved entities.
type Codegen struct {
	reg    *model.Registry
	config Config

	entities []*model.Entity
	types    *model.OrderedMap[string]
}

// Output contains the generated Java content.
type Output struct {
	Java []byte
}

// New creates a new Java Codegen.
func New(reg *model.Registry, cfg Config) *Codegen {
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	if cfg.Package == "" {
		cfg.Package = DefaultPackage
	}
	return &Codegen{
		reg:    reg,
		config: cfg,
		types:  model.NewOrderedMap[string](),
	}
}

func (g *Codegen) checkMode() error {
	switch g.config.Mode {
	case generator.GenerateCode, generator.GenerateLoader:
		return nil
	}
	return fmt.Errorf("java: unsupported generate mode %q", g.config.Mode)
}

// Accept renders the class of one entity.
func (g *Codegen) Accept(e *model.Entity) error {
	if err := g.checkMode(); err != nil {
		return err
	}
	g.entities = append(g.entities, e)
	if g.config.Mode != generator.GenerateCode {
		return nil
	}
	if g.config.SelectedType != "" && g.config.SelectedType != e.Name {
		return nil
	}

	var buf bytes.Buffer
	if e.Kind == model.KindEnum {
		g.generateEnum(&buf, e)
	} else if err := g.generateClass(&buf, e); err != nil {
		return err
	}
	g.types.Set(e.Name, buf.String())
	return nil
}

// Generate produces the Java source.
func (g *Codegen) Generate() (*Output, error) {
	if err := g.checkMode(); err != nil {
		return nil, err
	}
	if g.config.Mode == generator.GenerateLoader {
		var buf bytes.Buffer
		if err := g.generateProvider(&buf); err != nil {
			return nil, err
		}
		g.types.Set("AmplifyModelProvider", buf.String())
	}
	return &Output{Java: g.emit()}, nil
}

// ── Enums ───────────────────────────────────────────────────────────

func (g *Codegen) generateEnum(buf *bytes.Buffer, e *model.Entity) {
	fmt.Fprintf(buf, "/** Auto generated enum from GraphQL schema. */\n")
	fmt.Fprintf(buf, "@SuppressWarnings(\"all\")\n")
	fmt.Fprintf(buf, "public enum %s {\n", e.Name)
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = g.config.Indent + v
	}
	buf.WriteString(strings.Join(values, ",\n"))
	buf.WriteString("\n}\n")
}

// ── Classes ─────────────────────────────────────────────────────────

// classInfo is the per-entity layout shared by the class sections.
type classInfo struct {
	e      *model.Entity
	fields []*model.Field // exposed fields
	types  map[string]string
	ctor   []*model.Field // constructor parameters
	steps  []*model.Field // required builder steps in order
	idStep bool           // builder accepts an optional id
}

func (g *Codegen) layout(e *model.Entity) (*classInfo, error) {
	c := &classInfo{e: e, fields: e.ExposedFields(), types: make(map[string]string)}
	c.idStep = e.IsModel() && !e.HasCustomPrimaryKey() && e.HasField("id")
	for _, f := range c.fields {
		t, err := fieldType(e, f)
		if err != nil {
			return nil, err
		}
		c.types[f.Name] = t
		if f.ReadOnly || isCollection(f) {
			continue
		}
		c.ctor = append(c.ctor, f)
		if c.idStep && f.Name == "id" {
			continue
		}
		if !f.EffectiveType().Nullable() && f.Default == nil {
			c.steps = append(c.steps, f)
		}
	}
	return c, nil
}

func (c *classInfo) params(fields []*model.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = c.types[f.Name] + " " + identifier(f.Name)
	}
	return strings.Join(parts, ", ")
}

func args(fields []*model.Field, sep string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = identifier(f.Name)
	}
	return strings.Join(parts, sep)
}

func stepName(f *model.Field) string {
	return names.Capitalize(f.Name) + "Step"
}

func (c *classInfo) nextStep(i int) string {
	if i+1 < len(c.steps) {
		return stepName(c.steps[i+1])
	}
	return "BuildStep"
}

func (c *classInfo) stepIndex(f *model.Field) int {
	for i, s := range c.steps {
		if s == f {
			return i
		}
	}
	return -1
}

func (g *Codegen) generateClass(buf *bytes.Buffer, e *model.Entity) error {
	c, err := g.layout(e)
	if err != nil {
		return err
	}
	in := g.config.Indent

	fmt.Fprintf(buf, "/** This is an auto generated class representing the %s type in your schema. */\n", e.Name)
	buf.WriteString("@SuppressWarnings(\"all\")\n")
	if e.IsModel() {
		g.writeModelConfig(buf, e)
		fmt.Fprintf(buf, "public final class %s implements Model {\n", e.Name)
		g.writeQueryFields(buf, c)
	} else {
		fmt.Fprintf(buf, "public final class %s {\n", e.Name)
	}

	// Fields.
	for _, f := range c.fields {
		final := "final "
		if f.ReadOnly {
			final = ""
		}
		ann := ""
		if e.IsModel() {
			ann = modelField(f) + " "
			if rel, err := g.relationAnnotation(f); err != nil {
				return err
			} else if rel != "" {
				ann += rel + " "
			}
		}
		init := ""
		if isCollection(f) {
			init = " = null"
		}
		fmt.Fprintf(buf, "%sprivate %s%s%s %s%s;\n", in, final, ann, c.types[f.Name], identifier(f.Name), init)
	}

	if e.IsModel() {
		g.writeIdentifier(buf, c)
	}

	// Getters.
	for _, f := range c.fields {
		fmt.Fprintf(buf, "%s\n%spublic %s %s() {\n%s%sreturn %s;\n%s}\n", in, in, c.types[f.Name], getter(f), in, in, identifier(f.Name), in)
	}

	// Constructor.
	fmt.Fprintf(buf, "%s\n%sprivate %s(%s) {\n", in, in, e.Name, c.params(c.ctor))
	for _, f := range c.ctor {
		fmt.Fprintf(buf, "%s%sthis.%s = %s;\n", in, in, identifier(f.Name), identifier(f.Name))
	}
	fmt.Fprintf(buf, "%s}\n", in)

	g.writeEquals(buf, c)
	g.writeBuilderEntry(buf, c)
	if err := g.writeSteps(buf, c); err != nil {
		return err
	}
	buf.WriteString("}\n")
	return nil
}

func (g *Codegen) writeModelConfig(buf *bytes.Buffer, e *model.Entity) {
	in := g.config.Indent
	fmt.Fprintf(buf, "@ModelConfig(pluralName = %q, type = Model.Type.USER, version = 1", e.PluralName)
	if len(e.AuthRules) > 0 {
		buf.WriteString(", authRules = {\n")
		rules := make([]string, len(e.AuthRules))
		for i, r := range e.AuthRules {
			rules[i] = in + authRule(r)
		}
		buf.WriteString(strings.Join(rules, ",\n"))
		buf.WriteString("\n}")
	}
	buf.WriteString(")\n")
	fmt.Fprintf(buf, "@Index(name = \"undefined\", fields = %s)\n", quoteAll(e.PrimaryKey().Fields))
	for _, idx := range e.SecondaryIndexes() {
		fmt.Fprintf(buf, "@Index(name = %q, fields = %s)\n", idx.Name, quoteAll(idx.Fields))
	}
}

func (g *Codegen) writeQueryFields(buf *bytes.Buffer, c *classInfo) {
	for _, f := range c.fields {
		if isCollection(f) {
			continue
		}
		column := f.Name
		if rel := f.Relationship; rel != nil && rel.OwnsForeignKey() && len(rel.TargetNames) == 1 {
			column = rel.TargetNames[0]
		}
		fmt.Fprintf(buf, "%spublic static final QueryField %s = field(%q, %q);\n", g.config.Indent, constant(f), c.e.Name, column)
	}
}

func (g *Codegen) relationAnnotation(f *model.Field) (string, error) {
	rel := f.Relationship
	if rel == nil {
		return "", nil
	}
	typ := f.EffectiveType().Name + ".class"
	switch rel.Connection {
	case model.HasMany, model.ManyToMany:
		return fmt.Sprintf("@HasMany(associatedWith = %s, type = %s)", associatedWith(g.reg.AssociatedFields(f)), typ), nil
	case model.HasOne:
		return fmt.Sprintf("@HasOne(associatedWith = %s, targetNames = %s, type = %s)",
			associatedWith(g.reg.AssociatedFields(f)), quoteAll(rel.TargetNames), typ), nil
	case model.BelongsTo:
		if len(rel.TargetNames) == 0 {
			return "", model.NewConfigurationError(rel.Owner, f.Name, "@belongsTo has no target names")
		}
		return fmt.Sprintf("@BelongsTo(targetName = %q, targetNames = %s, type = %s)",
			rel.TargetNames[0], quoteAll(rel.TargetNames), typ), nil
	}
	return "", nil
}

func associatedWith(fields []string) string {
	if len(fields) == 1 {
		return fmt.Sprintf("%q", fields[0])
	}
	return quoteAll(fields)
}

func (g *Codegen) writeIdentifier(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	e := c.e
	if !e.HasCustomPrimaryKey() {
		fmt.Fprintf(buf, "%s/** @deprecated This API is internal to Amplify and should not be used. */\n", in)
		fmt.Fprintf(buf, "%s@Deprecated\n", in)
		fmt.Fprintf(buf, "%spublic String resolveIdentifier() {\n%s%sreturn id;\n%s}\n", in, in, in, in)
		return
	}
	pk := e.PrimaryKeyFields()
	fmt.Fprintf(buf, "%s\n%spublic %sIdentifier resolveIdentifier() {\n", in, in, e.Name)
	fmt.Fprintf(buf, "%s%sreturn new %sIdentifier(%s);\n", in, in, e.Name, args(pk, ", "))
	fmt.Fprintf(buf, "%s}\n", in)

	fmt.Fprintf(buf, "%s\n%spublic static class %sIdentifier extends ModelIdentifier<%s> {\n", in, in, e.Name, e.Name)
	fmt.Fprintf(buf, "%s%sprivate static final long serialVersionUID = 1L;\n", in, in)
	fmt.Fprintf(buf, "%s%spublic %sIdentifier(%s) {\n", in, in, e.Name, c.params(pk))
	fmt.Fprintf(buf, "%s%s%ssuper(%s);\n", in, in, in, args(pk, ", "))
	fmt.Fprintf(buf, "%s%s}\n", in, in)
	fmt.Fprintf(buf, "%s}\n", in)
}

func (g *Codegen) writeEquals(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	e := c.e
	var comparable []*model.Field
	for _, f := range c.fields {
		if !isCollection(f) {
			comparable = append(comparable, f)
		}
	}
	self := names.Decapitalize(e.Name)
	if reserved[self] || self == "obj" {
		self = "other"
	}

	fmt.Fprintf(buf, "%s\n%s@Override\n%spublic boolean equals(Object obj) {\n", in, in, in)
	fmt.Fprintf(buf, "%s%sif (this == obj) {\n%s%s%sreturn true;\n", in, in, in, in, in)
	fmt.Fprintf(buf, "%s%s} else if (obj == null || getClass() != obj.getClass()) {\n%s%s%sreturn false;\n", in, in, in, in, in)
	fmt.Fprintf(buf, "%s%s} else {\n", in, in)
	fmt.Fprintf(buf, "%s%s%s%s %s = (%s) obj;\n", in, in, in, e.Name, self, e.Name)
	cmps := make([]string, len(comparable))
	for i, f := range comparable {
		cmps[i] = fmt.Sprintf("ObjectsCompat.equals(%s(), %s.%s())", getter(f), self, getter(f))
	}
	if len(cmps) == 0 {
		cmps = []string{"true"}
	}
	fmt.Fprintf(buf, "%s%s%sreturn %s;\n", in, in, in, strings.Join(cmps, " &&\n"+in+in+in+in))
	fmt.Fprintf(buf, "%s%s}\n%s}\n", in, in, in)

	fmt.Fprintf(buf, "%s\n%s@Override\n%spublic int hashCode() {\n", in, in, in)
	fmt.Fprintf(buf, "%s%sreturn new StringBuilder()\n", in, in)
	for _, f := range comparable {
		fmt.Fprintf(buf, "%s%s%s.append(%s())\n", in, in, in, getter(f))
	}
	fmt.Fprintf(buf, "%s%s%s.toString()\n%s%s%s.hashCode();\n%s}\n", in, in, in, in, in, in, in)

	fmt.Fprintf(buf, "%s\n%s@Override\n%spublic String toString() {\n", in, in, in)
	fmt.Fprintf(buf, "%s%sreturn new StringBuilder()\n", in, in)
	fmt.Fprintf(buf, "%s%s%s.append(\"%s {\")\n", in, in, in, e.Name)
	for i, f := range comparable {
		sep := ", "
		if i == len(comparable)-1 {
			sep = ""
		}
		fmt.Fprintf(buf, "%s%s%s.append(\"%s=\" + String.valueOf(%s()) + \"%s\")\n", in, in, in, f.Name, getter(f), sep)
	}
	fmt.Fprintf(buf, "%s%s%s.append(\"}\")\n%s%s%s.toString();\n%s}\n", in, in, in, in, in, in, in)
}

func (g *Codegen) writeBuilderEntry(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	e := c.e
	first := "BuildStep"
	if len(c.steps) > 0 {
		first = stepName(c.steps[0])
	}
	fmt.Fprintf(buf, "%s\n%spublic static %s builder() {\n%s%sreturn new Builder();\n%s}\n", in, in, first, in, in, in)

	if c.idStep {
		nulls := make([]string, len(c.ctor))
		for i, f := range c.ctor {
			nulls[i] = "null"
			if f.Name == "id" {
				nulls[i] = "id"
			}
		}
		fmt.Fprintf(buf, "%s\n%s/**\n%s * WARNING: This method should not be used to build an instance of this object for a CREATE mutation.\n", in, in, in)
		fmt.Fprintf(buf, "%s * @param id the id of the existing item this instance will represent\n%s * @return an instance of this model with only ID populated\n%s */\n", in, in, in)
		fmt.Fprintf(buf, "%spublic static %s justId(String id) {\n", in, e.Name)
		fmt.Fprintf(buf, "%s%sreturn new %s(\n%s%s%s%s\n%s%s);\n%s}\n", in, in, e.Name, in, in, in, strings.Join(nulls, ",\n"+in+in+in), in, in, in)
	}

	fmt.Fprintf(buf, "%s\n%spublic CopyOfBuilder copyOfBuilder() {\n", in, in)
	fmt.Fprintf(buf, "%s%sreturn new CopyOfBuilder(%s);\n%s}\n", in, in, args(c.ctor, ",\n"+in+in+in), in)
}

func (g *Codegen) writeSteps(buf *bytes.Buffer, c *classInfo) error {
	in := g.config.Indent
	e := c.e

	for i, f := range c.steps {
		fmt.Fprintf(buf, "%s\n%spublic interface %s {\n", in, in, stepName(f))
		fmt.Fprintf(buf, "%s%s%s %s(%s %s);\n", in, in, c.nextStep(i), identifier(f.Name), c.types[f.Name], identifier(f.Name))
		fmt.Fprintf(buf, "%s}\n", in)
	}

	var optional []*model.Field
	for _, f := range c.ctor {
		if c.stepIndex(f) < 0 {
			optional = append(optional, f)
		}
	}

	fmt.Fprintf(buf, "%s\n%spublic interface BuildStep {\n", in, in)
	fmt.Fprintf(buf, "%s%s%s build();\n", in, in, e.Name)
	for _, f := range optional {
		fmt.Fprintf(buf, "%s%sBuildStep %s(%s %s);\n", in, in, identifier(f.Name), c.types[f.Name], identifier(f.Name))
	}
	fmt.Fprintf(buf, "%s}\n", in)

	// Builder.
	impls := make([]string, 0, len(c.steps)+1)
	for _, f := range c.steps {
		impls = append(impls, stepName(f))
	}
	impls = append(impls, "BuildStep")
	fmt.Fprintf(buf, "%s\n%spublic static class Builder implements %s {\n", in, in, strings.Join(impls, ", "))
	for _, f := range c.ctor {
		init := ""
		if f.Default != nil {
			lit, err := typemap.Literal(f.EffectiveType(), *f.Default, typemap.Java)
			if err != nil {
				return model.NewConfigurationError(e.Name, f.Name, "%s", err.Error())
			}
			init = " = " + lit
		}
		fmt.Fprintf(buf, "%s%sprivate %s %s%s;\n", in, in, c.types[f.Name], identifier(f.Name), init)
	}
	fmt.Fprintf(buf, "%s%spublic Builder() {\n%s%s}\n", in, in, in, in)
	if len(c.ctor) > 0 {
		fmt.Fprintf(buf, "%s%s\n%s%sprivate Builder(%s) {\n", in, in, in, in, c.params(c.ctor))
		for _, f := range c.ctor {
			fmt.Fprintf(buf, "%s%s%sthis.%s = %s;\n", in, in, in, identifier(f.Name), identifier(f.Name))
		}
		fmt.Fprintf(buf, "%s%s}\n", in, in)
	}

	fmt.Fprintf(buf, "%s%s\n%s%s@Override\n%s%spublic %s build() {\n", in, in, in, in, in, in, e.Name)
	if c.idStep {
		fmt.Fprintf(buf, "%s%s%sString id = this.id != null ? this.id : UUID.randomUUID().toString();\n", in, in, in)
	}
	fmt.Fprintf(buf, "%s%s%sreturn new %s(\n%s%s%s%s%s);\n", in, in, in, e.Name, in, in, in, in,
		args(c.ctor, ",\n"+in+in+in+in))
	fmt.Fprintf(buf, "%s%s}\n", in, in)

	for _, f := range c.ctor {
		ret := "BuildStep"
		idx := c.stepIndex(f)
		if idx >= 0 {
			ret = c.nextStep(idx)
		}
		name := identifier(f.Name)
		fmt.Fprintf(buf, "%s%s\n%s%s@Override\n%s%spublic %s %s(%s %s) {\n", in, in, in, in, in, in, ret, name, c.types[f.Name], name)
		if idx >= 0 {
			fmt.Fprintf(buf, "%s%s%sObjects.requireNonNull(%s);\n", in, in, in, name)
		}
		fmt.Fprintf(buf, "%s%s%sthis.%s = %s;\n%s%s%sreturn this;\n%s%s}\n", in, in, in, name, name, in, in, in, in, in)
	}
	fmt.Fprintf(buf, "%s}\n", in)

	// CopyOfBuilder.
	fmt.Fprintf(buf, "%s\n%spublic final class CopyOfBuilder extends Builder {\n", in, in)
	fmt.Fprintf(buf, "%s%sprivate CopyOfBuilder(%s) {\n", in, in, c.params(c.ctor))
	fmt.Fprintf(buf, "%s%s%ssuper(%s);\n", in, in, in, args(c.ctor, ", "))
	for _, f := range c.steps {
		fmt.Fprintf(buf, "%s%s%sObjects.requireNonNull(%s);\n", in, in, in, identifier(f.Name))
	}
	fmt.Fprintf(buf, "%s%s}\n", in, in)
	for _, f := range c.ctor {
		if c.idStep && f.Name == "id" {
			continue
		}
		name := identifier(f.Name)
		fmt.Fprintf(buf, "%s%s\n%s%s@Override\n%s%spublic CopyOfBuilder %s(%s %s) {\n", in, in, in, in, in, in, name, c.types[f.Name], name)
		fmt.Fprintf(buf, "%s%s%sreturn (CopyOfBuilder) super.%s(%s);\n%s%s}\n", in, in, in, name, name, in, in)
	}
	fmt.Fprintf(buf, "%s}\n", in)
	return nil
}

// ── Model provider ──────────────────────────────────────────────────

func (g *Codegen) generateProvider(buf *bytes.Buffer) error {
	in := g.config.Indent
	doc, err := schemajson.Build(g.reg, g.entities, nil)
	if err != nil {
		return err
	}
	var classes []string
	for _, e := range g.entities {
		if e.IsModel() {
			classes = append(classes, e.Name+".class")
		}
	}

	buf.WriteString("/**\n * Contains the set of model classes that implement {@link Model}\n * interface.\n */\n\n")
	buf.WriteString("public final class AmplifyModelProvider implements ModelProvider {\n")
	fmt.Fprintf(buf, "%sprivate static final String AMPLIFY_MODEL_VERSION = %q;\n", in, doc.Version)
	fmt.Fprintf(buf, "%sprivate static AmplifyModelProvider amplifyGeneratedModelInstance;\n", in)
	fmt.Fprintf(buf, "%sprivate AmplifyModelProvider() {\n%s\n%s}\n\n", in, in, in)
	fmt.Fprintf(buf, "%spublic static synchronized AmplifyModelProvider getInstance() {\n", in)
	fmt.Fprintf(buf, "%s%sif (amplifyGeneratedModelInstance == null) {\n", in, in)
	fmt.Fprintf(buf, "%s%s%samplifyGeneratedModelInstance = new AmplifyModelProvider();\n", in, in, in)
	fmt.Fprintf(buf, "%s%s}\n%s%sreturn amplifyGeneratedModelInstance;\n%s}\n\n", in, in, in, in, in)
	fmt.Fprintf(buf, "%s/**\n%s * Get a set of the model classes.\n%s *\n%s * @return a set of the model classes.\n%s */\n", in, in, in, in, in)
	fmt.Fprintf(buf, "%s@Override\n%spublic Set<Class<? extends Model>> models() {\n", in, in)
	fmt.Fprintf(buf, "%s%sfinal Set<Class<? extends Model>> modifiableSet = new HashSet<>(\n", in, in)
	fmt.Fprintf(buf, "%s%s%sArrays.<Class<? extends Model>>asList(%s)\n", in, in, in, strings.Join(classes, ", "))
	fmt.Fprintf(buf, "%s%s);\n\n", in, in)
	fmt.Fprintf(buf, "%s%sreturn Immutable.of(modifiableSet);\n\n%s}\n\n", in, in, in)
	fmt.Fprintf(buf, "%s/**\n%s * Get the version of the models.\n%s *\n%s * @return the version string of the models.\n%s */\n", in, in, in, in, in)
	fmt.Fprintf(buf, "%s@Override\n%spublic String version() {\n%s%sreturn AMPLIFY_MODEL_VERSION;\n%s}\n", in, in, in, in, in)
	buf.WriteString("}\n")
	return nil
}

// ── Emit final file ─────────────────────────────────────────────────

var codeImports = []string{
	"androidx.core.util.ObjectsCompat",
	"com.amplifyframework.core.model.AuthStrategy",
	"com.amplifyframework.core.model.Model",
	"com.amplifyframework.core.model.ModelIdentifier",
	"com.amplifyframework.core.model.ModelOperation",
	"com.amplifyframework.core.model.annotations.AuthRule",
	"com.amplifyframework.core.model.annotations.BelongsTo",
	"com.amplifyframework.core.model.annotations.HasMany",
	"com.amplifyframework.core.model.annotations.HasOne",
	"com.amplifyframework.core.model.annotations.Index",
	"com.amplifyframework.core.model.annotations.ModelConfig",
	"com.amplifyframework.core.model.annotations.ModelField",
	"com.amplifyframework.core.model.query.predicate.QueryField",
	"com.amplifyframework.core.model.temporal.Temporal",
	"java.util.List",
	"java.util.Objects",
	"java.util.UUID",
	"java.util.concurrent.TimeUnit",
}

var loaderImports = []string{
	"com.amplifyframework.core.model.Model",
	"com.amplifyframework.core.model.ModelProvider",
	"com.amplifyframework.util.Immutable",
	"java.util.Arrays",
	"java.util.HashSet",
	"java.util.Set",
}

func (g *Codegen) emit() []byte {
	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	fmt.Fprintf(&buf, "package %s;\n\n", g.config.Package)
	if g.config.Mode == generator.GenerateLoader {
		for _, imp := range loaderImports {
			fmt.Fprintf(&buf, "import %s;\n", imp)
		}
	} else {
		for _, imp := range codeImports {
			fmt.Fprintf(&buf, "import %s;\n", imp)
		}
		buf.WriteString("\nimport static com.amplifyframework.core.model.query.predicate.QueryField.field;\n")
	}
	for _, name := range g.types.Keys() {
		buf.WriteString("\n")
		buf.WriteString(g.types.Get(name))
	}
	return buf.Bytes()
}

func (g *Codegen) fileHeader() string {
	return "// Code generated by modelgen. DO NOT EDIT.\n\n"
}
