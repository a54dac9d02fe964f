// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package dart generates Amplify Flutter data models.
package dart

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/names"
	"github.com/albertocavalcante/modelgen/internal/schemajson"
	"github.com/albertocavalcante/modelgen/internal/typemap"
	"github.com/albertocavalcante/modelgen/model"
)

// Codegen generates Dart source from resolved entities.
type Codegen struct {
	reg    *model.Registry
	config Config

	entities []*model.Entity
	types    *model.OrderedMap[string]
}

// Output contains the generated Dart content.
type Output struct {
	Dart []byte
}

// New creates a new Dart Codegen.
func New(reg *model.Registry, cfg Config) *Codegen {
	if cfg.Indent == "" {
		cfg.Indent = "  "
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
	return fmt.Errorf("dart: unsupported generate mode %q", g.config.Mode)
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

// Generate produces the Dart source.
func (g *Codegen) Generate() (*Output, error) {
	if err := g.checkMode(); err != nil {
		return nil, err
	}
	if g.config.Mode == generator.GenerateLoader {
		var buf bytes.Buffer
		if err := g.generateProvider(&buf); err != nil {
			return nil, err
		}
		g.types.Set("ModelProvider", buf.String())
	}
	return &Output{Dart: g.emit()}, nil
}

// ── Enums ───────────────────────────────────────────────────────────

func (g *Codegen) generateEnum(buf *bytes.Buffer, e *model.Entity) {
	fmt.Fprintf(buf, "enum %s {\n", e.Name)
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = g.config.Indent + v
	}
	buf.WriteString(strings.Join(values, ",\n"))
	buf.WriteString("\n}\n")
}

// ── Classes ─────────────────────────────────────────────────────────

// isPublicID reports whether f is stored as a plain public field.
func isPublicID(f *model.Field) bool {
	return f.Name == "id" && !f.Type.Nullable() && !f.Type.IsList
}

// private is the backing field of f.
func private(f *model.Field) string {
	if isPublicID(f) {
		return "id"
	}
	return "_" + f.Name
}

type classInfo struct {
	e      *model.Entity
	fields []*model.Field
	types  map[string]string
	autoID bool // the factory generates the id
}

func (g *Codegen) layout(e *model.Entity) (*classInfo, error) {
	c := &classInfo{e: e, fields: e.ExposedFields(), types: make(map[string]string)}
	c.autoID = e.IsModel() && !e.HasCustomPrimaryKey()
	for _, f := range c.fields {
		t, err := fieldType(e, f)
		if err != nil {
			return nil, err
		}
		c.types[f.Name] = t
	}
	return c, nil
}

func (g *Codegen) generateClass(buf *bytes.Buffer, e *model.Entity) error {
	c, err := g.layout(e)
	if err != nil {
		return err
	}
	in := g.config.Indent

	fmt.Fprintf(buf, "/** This is an auto generated class representing the %s type in your schema. */\n", e.Name)
	if e.IsModel() {
		fmt.Fprintf(buf, "class %s extends %s.Model {\n", e.Name, core)
		fmt.Fprintf(buf, "%sstatic const classType = const _%sModelType();\n", in, e.Name)
	} else {
		fmt.Fprintf(buf, "class %s {\n", e.Name)
	}
	for _, f := range c.fields {
		if isPublicID(f) {
			fmt.Fprintf(buf, "%sfinal %s id;\n", in, c.types[f.Name])
			continue
		}
		fmt.Fprintf(buf, "%sfinal %s %s;\n", in, optional(c.types[f.Name]), private(f))
	}

	if e.IsModel() {
		fmt.Fprintf(buf, "\n%s@override\n%sgetInstanceType() => classType;\n", in, in)
		if c.autoID {
			fmt.Fprintf(buf, "\n%s@Deprecated('[getId] is being deprecated in favor of custom primary key feature. Use getter [modelIdentifier] to get model identifier.')\n", in)
			fmt.Fprintf(buf, "%s@override\n%sString getId() => id;\n", in, in)
		}
		pairs := make([]string, 0, len(e.PrimaryKey().Fields))
		for _, f := range e.PrimaryKeyFields() {
			v := private(f)
			if !isPublicID(f) {
				v += "!"
			}
			pairs = append(pairs, fmt.Sprintf("%s: %s", identifier(f.Name), v))
		}
		fmt.Fprintf(buf, "\n%s%sModelIdentifier get modelIdentifier {\n", in, e.Name)
		fmt.Fprintf(buf, "%s%sreturn %sModelIdentifier(\n%s%s%s%s\n%s%s);\n%s}\n", in, in, e.Name, in, in, in,
			strings.Join(pairs, ",\n"+in+in+in), in, in, in)
	}

	g.writeGetters(buf, c)
	if err := g.writeConstructors(buf, c); err != nil {
		return err
	}
	g.writeEquality(buf, c)
	g.writeCopyWith(buf, c)
	if err := g.writeJSON(buf, c); err != nil {
		return err
	}
	if e.IsModel() {
		g.writeQueryFields(buf, c)
	}
	if err := g.writeSchema(buf, c); err != nil {
		return err
	}
	buf.WriteString("}\n")

	if e.IsModel() {
		buf.WriteString("\n")
		g.writeModelType(buf, e)
		buf.WriteString("\n")
		return g.writeModelIdentifier(buf, e)
	}
	return nil
}

func (g *Codegen) writeGetters(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	for _, f := range c.fields {
		if isPublicID(f) {
			continue
		}
		t := c.types[f.Name]
		name := identifier(f.Name)
		if f.EffectiveType().Nullable() {
			fmt.Fprintf(buf, "\n%s%s get %s {\n%s%sreturn %s;\n%s}\n", in, t, name, in, in, private(f), in)
			continue
		}
		fmt.Fprintf(buf, "\n%s%s get %s {\n", in, t, name)
		fmt.Fprintf(buf, "%s%stry {\n%s%s%sreturn %s!;\n", in, in, in, in, in, private(f))
		fmt.Fprintf(buf, "%s%s} catch(e) {\n", in, in)
		fmt.Fprintf(buf, "%s%s%sthrow %s.AmplifyCodeGenModelException(\n", in, in, in, core)
		fmt.Fprintf(buf, "%s%s%s%s%s.AmplifyExceptionMessages.codeGenRequiredFieldForceCastExceptionMessage,\n", in, in, in, in, core)
		fmt.Fprintf(buf, "%s%s%s%srecoverySuggestion:\n", in, in, in, in)
		fmt.Fprintf(buf, "%s%s%s%s%s%s.AmplifyExceptionMessages.codeGenRequiredFieldForceCastRecoverySuggestion,\n", in, in, in, in, in, core)
		fmt.Fprintf(buf, "%s%s%s%sunderlyingException: e.toString()\n", in, in, in, in)
		fmt.Fprintf(buf, "%s%s%s%s);\n%s%s}\n%s}\n", in, in, in, in, in, in, in)
	}
}

// factoryFields are the fields a caller may set; read-only fields are
// managed by the service.
func (c *classInfo) factoryFields() []*model.Field {
	var out []*model.Field
	for _, f := range c.fields {
		if !f.ReadOnly {
			out = append(out, f)
		}
	}
	return out
}

func (g *Codegen) writeConstructors(buf *bytes.Buffer, c *classInfo) error {
	in := g.config.Indent
	e := c.e

	// Internal constructor.
	params := make([]string, 0, len(c.fields))
	var inits []string
	for _, f := range c.fields {
		switch {
		case isPublicID(f):
			params = append(params, "required this.id")
		case !f.EffectiveType().Nullable():
			params = append(params, "required "+f.Name)
			inits = append(inits, fmt.Sprintf("%s = %s", private(f), f.Name))
		default:
			params = append(params, f.Name)
			inits = append(inits, fmt.Sprintf("%s = %s", private(f), f.Name))
		}
	}
	fmt.Fprintf(buf, "\n%sconst %s._internal({%s})", in, e.Name, strings.Join(params, ", "))
	if len(inits) > 0 {
		fmt.Fprintf(buf, ": %s", strings.Join(inits, ", "))
	}
	buf.WriteString(";\n")

	// Public factory.
	var fparams, fargs []string
	for _, f := range c.factoryFields() {
		t := c.types[f.Name]
		name := identifier(f.Name)
		arg := name
		switch {
		case c.autoID && isPublicID(f):
			fparams = append(fparams, "String? id")
			fargs = append(fargs, fmt.Sprintf("id: id == null ? %s.UUID.getUUID() : id", core))
			continue
		case f.Default != nil:
			lit, err := typemap.Literal(f.EffectiveType(), *f.Default, typemap.Dart)
			if err != nil {
				return model.NewConfigurationError(e.Name, f.Name, "%s", err.Error())
			}
			fparams = append(fparams, optional(t)+" "+name)
			arg = name + " ?? " + lit
		case f.EffectiveType().Nullable():
			fparams = append(fparams, optional(t)+" "+name)
		default:
			fparams = append(fparams, "required "+t+" "+name)
		}
		if f.EffectiveType().IsList {
			list := strings.TrimSuffix(t, "?")
			arg = fmt.Sprintf("%s != null ? %s.unmodifiable(%s) : %s", name, list, name, name)
		}
		fargs = append(fargs, f.Name+": "+arg)
	}
	fmt.Fprintf(buf, "\n%sfactory %s({%s}) {\n", in, e.Name, strings.Join(fparams, ", "))
	fmt.Fprintf(buf, "%s%sreturn %s._internal(\n%s%s%s%s);\n%s}\n", in, in, e.Name, in, in, in,
		strings.Join(fargs, ",\n"+in+in+in), in)
	return nil
}

func (g *Codegen) writeEquality(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	e := c.e

	fmt.Fprintf(buf, "\n%sbool equals(Object other) {\n%s%sreturn this == other;\n%s}\n", in, in, in, in)

	cmps := []string{"other is " + e.Name}
	for _, f := range c.fields {
		p := private(f)
		if f.EffectiveType().IsList {
			cmps = append(cmps, fmt.Sprintf("DeepCollectionEquality().equals(%s, other.%s)", p, p))
			continue
		}
		cmps = append(cmps, fmt.Sprintf("%s == other.%s", p, p))
	}
	fmt.Fprintf(buf, "\n%s@override\n%sbool operator ==(Object other) {\n", in, in)
	fmt.Fprintf(buf, "%s%sif (identical(other, this)) return true;\n", in, in)
	fmt.Fprintf(buf, "%s%sreturn %s;\n%s}\n", in, in, strings.Join(cmps, " &&\n"+in+in+in), in)

	fmt.Fprintf(buf, "\n%s@override\n%sint get hashCode => toString().hashCode;\n", in, in)

	fmt.Fprintf(buf, "\n%s@override\n%sString toString() {\n", in, in)
	fmt.Fprintf(buf, "%s%svar buffer = new StringBuffer();\n\n", in, in)
	fmt.Fprintf(buf, "%s%sbuffer.write(\"%s {\");\n", in, in, e.Name)
	var shown []*model.Field
	for _, f := range c.fields {
		if t := f.EffectiveType(); !(t.IsList && t.Kind == model.TypeModel) {
			shown = append(shown, f)
		}
	}
	for i, f := range shown {
		t := f.EffectiveType()
		p := private(f)
		var val string
		switch {
		case t.Kind == model.TypeEnum && !t.IsList:
			val = fmt.Sprintf("(%s != null ? %s.enumToString(%s)! : \"null\")", p, core, p)
		case isTemporal(t) && !t.IsList:
			val = fmt.Sprintf("(%s != null ? %s!.%s.toString() : \"null\")", p, p, temporalFormat(t))
		default:
			val = fmt.Sprintf("\"$%s\"", p)
		}
		sep := " + \", \""
		if i == len(shown)-1 {
			sep = ""
		}
		fmt.Fprintf(buf, "%s%sbuffer.write(\"%s=\" + %s%s);\n", in, in, f.Name, val, sep)
	}
	fmt.Fprintf(buf, "%s%sbuffer.write(\"}\");\n\n", in, in)
	fmt.Fprintf(buf, "%s%sreturn buffer.toString();\n%s}\n", in, in, in)
}

func (g *Codegen) writeCopyWith(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	e := c.e
	pk := e.PrimaryKey().Fields
	var params, args []string
	for _, f := range c.fields {
		fixed := f.ReadOnly || (e.IsModel() && slices.Contains(pk, f.Name))
		if fixed {
			args = append(args, f.Name+": "+private(f))
			continue
		}
		name := identifier(f.Name)
		params = append(params, optional(c.types[f.Name])+" "+name)
		args = append(args, fmt.Sprintf("%s: %s ?? this.%s", f.Name, name, private(f)))
	}
	sig := ""
	if len(params) > 0 {
		sig = "{" + strings.Join(params, ", ") + "}"
	}
	fmt.Fprintf(buf, "\n%s%s copyWith(%s) {\n", in, e.Name, sig)
	fmt.Fprintf(buf, "%s%sreturn %s._internal(\n%s%s%s%s);\n%s}\n", in, in, e.Name, in, in, in,
		strings.Join(args, ",\n"+in+in+in), in)
}

func (g *Codegen) writeJSON(buf *bytes.Buffer, c *classInfo) error {
	in := g.config.Indent
	e := c.e
	var from, to []string
	for _, f := range c.fields {
		fj, err := fromJSON(f)
		if err != nil {
			return typemap.WithContext(err, e, f)
		}
		tj, err := toJSON(f)
		if err != nil {
			return typemap.WithContext(err, e, f)
		}
		from = append(from, fmt.Sprintf("%s = %s", private(f), fj))
		to = append(to, fmt.Sprintf("'%s': %s", f.Name, tj))
	}
	fmt.Fprintf(buf, "\n%s%s.fromJson(Map<String, dynamic> json)", in, e.Name)
	if len(from) > 0 {
		fmt.Fprintf(buf, "\n%s%s: %s", in, in, strings.Join(from, ",\n"+in+in+in))
	}
	buf.WriteString(";\n")
	fmt.Fprintf(buf, "\n%sMap<String, dynamic> toJson() => {\n%s%s%s\n%s};\n", in, in, in,
		strings.Join(to, ", "), in)
	return nil
}

func (g *Codegen) writeQueryFields(buf *bytes.Buffer, c *classInfo) {
	in := g.config.Indent
	e := c.e
	buf.WriteString("\n")
	fmt.Fprintf(buf, "%sstatic final %s.QueryModelIdentifier<%sModelIdentifier> MODEL_IDENTIFIER = %s.QueryModelIdentifier<%sModelIdentifier>();\n",
		in, core, e.Name, core, e.Name)
	for _, f := range c.fields {
		if f.ReadOnly {
			continue
		}
		t := f.EffectiveType()
		if t.Kind == model.TypeModel {
			fmt.Fprintf(buf, "%sstatic final %s = %s.QueryField(\n%s%sfieldName: \"%s\",\n%s%sfieldType: %s.ModelFieldType(%s.ModelFieldTypeEnum.model, ofModelName: '%s'));\n",
				in, constant(f), core, in, in, f.Name, in, in, core, core, t.Name)
			continue
		}
		fmt.Fprintf(buf, "%sstatic final %s = %s.QueryField(fieldName: \"%s\");\n", in, constant(f), core, f.Name)
	}
}

func (g *Codegen) writeSchema(buf *bytes.Buffer, c *classInfo) error {
	in := g.config.Indent
	e := c.e
	def := "modelSchemaDefinition"
	fmt.Fprintf(buf, "%sstatic var schema = %s.Model.defineSchema(define: (%s.ModelSchemaDefinition %s) {\n", in, core, core, def)
	plural := e.PluralName
	if plural == "" {
		plural = names.Plural(e.Name)
	}
	fmt.Fprintf(buf, "%s%s%s.name = \"%s\";\n", in, in, def, e.Name)
	fmt.Fprintf(buf, "%s%s%s.pluralName = \"%s\";\n", in, in, def, plural)

	if len(e.AuthRules) > 0 {
		rules := make([]string, len(e.AuthRules))
		for i, r := range e.AuthRules {
			rules[i] = authRule(r)
		}
		fmt.Fprintf(buf, "\n%s%s%s.authRules = [\n%s%s%s%s\n%s%s];\n", in, in, def, in, in, in,
			strings.Join(rules, ",\n"+in+in+in), in, in)
	}

	if e.IsModel() && len(e.Indexes) > 0 {
		idx := make([]string, len(e.Indexes))
		for i, ix := range e.Indexes {
			name := "null"
			if ix.Name != "" {
				name = "\"" + ix.Name + "\""
			}
			q := make([]string, len(ix.Fields))
			for j, f := range ix.Fields {
				q[j] = "\"" + f + "\""
			}
			idx[i] = fmt.Sprintf("%s.ModelIndex(fields: const [%s], name: %s)", core, strings.Join(q, ", "), name)
		}
		fmt.Fprintf(buf, "\n%s%s%s.indexes = [\n%s%s%s%s\n%s%s];\n", in, in, def, in, in, in,
			strings.Join(idx, ",\n"+in+in+in), in, in)
	}

	buf.WriteString("\n")
	for _, f := range c.fields {
		line, err := g.schemaField(e, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s%s%s.addField(%s);\n", in, in, def, line)
	}
	fmt.Fprintf(buf, "%s});\n", in)
	return nil
}

func (g *Codegen) schemaField(e *model.Entity, f *model.Field) (string, error) {
	t := f.EffectiveType()
	req := !t.Nullable()
	fd := core + ".ModelFieldDefinition."

	if e.IsModel() && isPublicID(f) && !e.HasCustomPrimaryKey() {
		return fd + "id()", nil
	}
	ofType, err := fieldTypeExpr(t)
	if err != nil {
		return "", typemap.WithContext(err, e, f)
	}
	array := ""
	if t.IsList {
		array = ", isArray: true"
	}

	if !e.IsModel() {
		if t.Kind == model.TypeEmbedded {
			return fmt.Sprintf("%sembedded(fieldName: '%s', isRequired: %t%s, ofType: %s)", fd, f.Name, req, array, ofType), nil
		}
		return fmt.Sprintf("%scustomTypeField(fieldName: '%s', isRequired: %t%s, ofType: %s)", fd, f.Name, req, array, ofType), nil
	}

	if f.ReadOnly {
		return fmt.Sprintf("%snonQueryField(fieldName: '%s', isRequired: %t, isReadOnly: true, ofType: %s)", fd, f.Name, req, ofType), nil
	}

	key := e.Name + "." + constant(f)
	if rel := f.Relationship; rel != nil {
		switch rel.Connection {
		case model.HasMany, model.ManyToMany:
			return fmt.Sprintf("%shasMany(key: %s, isRequired: %t, ofModelName: '%s', associatedKey: %s)",
				fd, key, req, t.Name, g.associatedKey(f)), nil
		case model.HasOne:
			return fmt.Sprintf("%shasOne(key: %s, isRequired: %t, ofModelName: '%s', associatedKey: %s)",
				fd, key, req, t.Name, g.associatedKey(f)), nil
		case model.BelongsTo:
			return fmt.Sprintf("%sbelongsTo(key: %s, isRequired: %t, targetNames: %s, ofModelName: '%s')",
				fd, key, req, quoteAll(rel.TargetNames), t.Name), nil
		}
	}
	if t.Kind == model.TypeEmbedded {
		return fmt.Sprintf("%sembedded(fieldName: '%s', isRequired: %t%s, ofType: %s)", fd, f.Name, req, array, ofType), nil
	}
	return fmt.Sprintf("%sfield(key: %s, isRequired: %t%s, ofType: %s)", fd, key, req, array, ofType), nil
}

// associatedKey names the QueryField on the other side pointing back at
// the owner of f.
func (g *Codegen) associatedKey(f *model.Field) string {
	other := f.EffectiveType().Name
	refs := g.reg.AssociatedFields(f)
	if len(refs) == 0 {
		return other + ".ID"
	}
	return other + "." + names.CamelToScreamingSnake(refs[0])
}

func (g *Codegen) writeModelType(buf *bytes.Buffer, e *model.Entity) {
	in := g.config.Indent
	fmt.Fprintf(buf, "class _%sModelType extends %s.ModelType<%s> {\n", e.Name, core, e.Name)
	fmt.Fprintf(buf, "%sconst _%sModelType();\n\n", in, e.Name)
	fmt.Fprintf(buf, "%s@override\n%s%s fromJson(Map<String, dynamic> jsonData) {\n", in, in, e.Name)
	fmt.Fprintf(buf, "%s%sreturn %s.fromJson(jsonData);\n%s}\n\n", in, in, e.Name, in)
	fmt.Fprintf(buf, "%s@override\n%sString modelName() {\n%s%sreturn '%s';\n%s}\n", in, in, in, in, e.Name, in)
	buf.WriteString("}\n")
}

func (g *Codegen) writeModelIdentifier(buf *bytes.Buffer, e *model.Entity) error {
	in := g.config.Indent
	pk := e.PrimaryKeyFields()
	id := e.Name + "ModelIdentifier"

	fmt.Fprintf(buf, "/**\n * This is an auto generated class representing the model identifier\n * of [%s] in your schema.\n */\n", e.Name)
	fmt.Fprintf(buf, "class %s implements %s.ModelIdentifier<%s> {\n", id, core, e.Name)
	var params, entries, show, cmps, hashes []string
	for _, f := range pk {
		t, err := typemap.Map(f.Type, typemap.Dart)
		if err != nil {
			return typemap.WithContext(err, e, f)
		}
		name := identifier(f.Name)
		fmt.Fprintf(buf, "%sfinal %s %s;\n", in, t, name)
		params = append(params, "required this."+name)
		entries = append(entries, fmt.Sprintf("'%s': %s", f.Name, name))
		show = append(show, fmt.Sprintf("%s: $%s", f.Name, name))
		cmps = append(cmps, fmt.Sprintf("%s == other.%s", name, name))
		hashes = append(hashes, name+".hashCode")
	}
	fmt.Fprintf(buf, "\n%sconst %s({\n%s%s});\n", in, id, in+in, strings.Join(params, ",\n"+in+in))
	fmt.Fprintf(buf, "\n%s@override\n%sMap<String, dynamic> serializeAsMap() => (<String, dynamic>{\n%s%s\n%s});\n",
		in, in, in+in, strings.Join(entries, ",\n"+in+in), in)
	fmt.Fprintf(buf, "\n%s@override\n%sList<Map<String, dynamic>> serializeAsList() => serializeAsMap()\n", in, in)
	fmt.Fprintf(buf, "%s%s.entries\n%s%s.map((entry) => (<String, dynamic>{ entry.key: entry.value }))\n%s%s.toList();\n", in, in, in, in, in, in)
	fmt.Fprintf(buf, "\n%s@override\n%sString serializeAsString() => serializeAsMap().values.join('#');\n", in, in)
	fmt.Fprintf(buf, "\n%s@override\n%sString toString() => '%s(%s)';\n", in, in, id, strings.Join(show, ", "))
	fmt.Fprintf(buf, "\n%s@override\n%sbool operator ==(Object other) {\n", in, in)
	fmt.Fprintf(buf, "%s%sif (identical(this, other)) {\n%s%s%sreturn true;\n%s%s}\n\n", in, in, in, in, in, in, in)
	fmt.Fprintf(buf, "%s%sreturn other is %s &&\n%s%s%s%s;\n%s}\n", in, in, id, in, in, in,
		strings.Join(cmps, " &&\n"+in+in+in), in)
	fmt.Fprintf(buf, "\n%s@override\n%sint get hashCode =>\n%s%s%s;\n", in, in, in, in, strings.Join(hashes, " ^\n"+in+in))
	buf.WriteString("}\n")
	return nil
}

// ── Model provider ──────────────────────────────────────────────────

func (g *Codegen) generateProvider(buf *bytes.Buffer) error {
	in := g.config.Indent
	doc, err := schemajson.Build(g.reg, g.entities, nil)
	if err != nil {
		return err
	}

	var models, customTypes []string
	for _, e := range g.entities {
		fmt.Fprintf(buf, "export '%s.dart';\n", e.Name)
		switch e.Kind {
		case model.KindModel:
			models = append(models, e.Name)
		case model.KindEmbedded:
			customTypes = append(customTypes, e.Name)
		}
	}
	schemas := func(list []string) string {
		out := make([]string, len(list))
		for i, n := range list {
			out[i] = n + ".schema"
		}
		return "[" + strings.Join(out, ", ") + "]"
	}

	buf.WriteString("\nclass ModelProvider implements " + core + ".ModelProviderInterface {\n")
	fmt.Fprintf(buf, "%s@override\n%sString version = \"%s\";\n", in, in, doc.Version)
	fmt.Fprintf(buf, "%s@override\n%sList<%s.ModelSchema> modelSchemas = %s;\n", in, in, core, schemas(models))
	fmt.Fprintf(buf, "%s@override\n%sList<%s.ModelSchema> customTypeSchemas = %s;\n", in, in, core, schemas(customTypes))
	fmt.Fprintf(buf, "%sstatic final ModelProvider _instance = ModelProvider();\n\n", in)
	fmt.Fprintf(buf, "%sstatic ModelProvider get instance => _instance;\n\n", in)
	fmt.Fprintf(buf, "%s%s.ModelType getModelTypeByModelName(String modelName) {\n", in, core)
	fmt.Fprintf(buf, "%s%sswitch(modelName) {\n", in, in)
	for _, name := range models {
		fmt.Fprintf(buf, "%s%s%scase \"%s\":\n%s%s%s%sreturn %s.classType;\n", in, in, in, name, in, in, in, in, name)
	}
	fmt.Fprintf(buf, "%s%s%sdefault:\n", in, in, in)
	fmt.Fprintf(buf, "%s%s%s%sthrow Exception(\"Failed to find model in model provider for model name: \" + modelName);\n", in, in, in, in)
	fmt.Fprintf(buf, "%s%s}\n%s}\n", in, in, in)
	buf.WriteString("}\n")
	return nil
}

// ── Emit final file ─────────────────────────────────────────────────

func (g *Codegen) emit() []byte {
	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	buf.WriteString("import 'package:amplify_core/amplify_core.dart' as amplify_core;\n")
	if g.config.Mode == generator.GenerateCode {
		buf.WriteString("import 'package:collection/collection.dart';\n")
	}
	for _, name := range g.types.Keys() {
		buf.WriteString("\n")
		buf.WriteString(g.types.Get(name))
	}
	return buf.Bytes()
}

func (g *Codegen) fileHeader() string {
	return "// ignore_for_file: public_member_api_docs, annotate_overrides, dead_code, " +
		"file_names, non_constant_identifier_names, prefer_const_constructors, " +
		"unnecessary_const, unnecessary_new\n" +
		"// Code generated by modelgen. DO NOT EDIT.\n\n"
}
