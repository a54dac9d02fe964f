// SPDX-License-Identifier: MIT

package directive

import (
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/albertocavalcante/modelgen/model"
)

// Directives converts AST directives into model directives, keeping every
// directive and argument in source order.
func Directives(list ast.DirectiveList) []*model.Directive {
	if len(list) == 0 {
		return nil
	}
	out := make([]*model.Directive, 0, len(list))
	for _, d := range list {
		args := model.NewOrderedMap[any]()
		for _, a := range d.Arguments {
			args.Set(a.Name, Value(a.Value))
		}
		out = append(out, &model.Directive{Name: d.Name, Arguments: args})
	}
	return out
}

// Value decodes an AST value into plain Go values: string, int64, float64,
// bool, nil, []any or *model.OrderedMap[any].
func Value(v *ast.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.IntValue:
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n
		}
		return v.Raw
	case ast.FloatValue:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return f
		}
		return v.Raw
	case ast.BooleanValue:
		return v.Raw == "true"
	case ast.NullValue:
		return nil
	case ast.ListValue:
		out := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			out = append(out, Value(c.Value))
		}
		return out
	case ast.ObjectValue:
		m := model.NewOrderedMap[any]()
		for _, c := range v.Children {
			m.Set(c.Name, Value(c.Value))
		}
		return m
	case ast.Variable:
		return "$" + v.Raw
	default:
		// strings, block strings and enum values
		return v.Raw
	}
}
