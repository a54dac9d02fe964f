// SPDX-License-Identifier: MIT

package directive

import (
	"github.com/albertocavalcante/modelgen/model"
)

// defaultOperations applies when a rule lists no operations.
var defaultOperations = []string{"create", "update", "delete", "read"}

var defaultProviders = map[model.AuthStrategy]string{
	model.AllowOwner:   "userPools",
	model.AllowGroups:  "userPools",
	model.AllowPrivate: "userPools",
	model.AllowPublic:  "apiKey",
	model.AllowCustom:  "function",
}

// AuthRules decodes the rules argument of an @auth directive. A nil
// directive yields no rules.
func AuthRules(entity, field string, d *model.Directive) ([]*model.AuthRule, error) {
	if d == nil {
		return nil, nil
	}
	raw, ok := d.Arg("rules")
	if !ok {
		return nil, model.NewConfigurationError(entity, field, "@auth requires a rules argument")
	}
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case *model.OrderedMap[any]:
		items = []any{v}
	default:
		return nil, model.NewConfigurationError(entity, field, "@auth rules must be a list of objects")
	}

	rules := make([]*model.AuthRule, 0, len(items))
	for i, item := range items {
		obj, ok := item.(*model.OrderedMap[any])
		if !ok {
			return nil, model.NewConfigurationError(entity, field, "@auth rule %d is not an object", i)
		}
		rule, err := authRule(entity, field, obj)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func authRule(entity, field string, obj *model.OrderedMap[any]) (*model.AuthRule, error) {
	str := func(key string) string {
		s, _ := obj.Get(key).(string)
		return s
	}
	strs := func(key string) []string {
		d := &model.Directive{Arguments: obj}
		v, _ := d.StringsArg(key)
		return v
	}

	allow := model.AuthStrategy(str("allow"))
	provider, known := defaultProviders[allow]
	if !known {
		if allow == "" {
			return nil, model.NewConfigurationError(entity, field, "@auth rule is missing allow")
		}
		return nil, model.NewConfigurationError(entity, field, "@auth rule has unknown strategy %q", allow)
	}
	if p := str("provider"); p != "" {
		provider = p
	}

	rule := &model.AuthRule{
		Allow:      allow,
		Provider:   provider,
		Operations: strs("operations"),
	}
	if len(rule.Operations) == 0 {
		rule.Operations = append([]string(nil), defaultOperations...)
	}

	switch allow {
	case model.AllowOwner:
		rule.OwnerField = str("ownerField")
		if rule.OwnerField == "" {
			rule.OwnerField = "owner"
		}
		rule.IdentityClaim = str("identityClaim")
		if rule.IdentityClaim == "" {
			rule.IdentityClaim = "cognito:username"
		}
	case model.AllowGroups:
		rule.Groups = strs("groups")
		rule.GroupsField = str("groupsField")
		if len(rule.Groups) == 0 && rule.GroupsField == "" {
			return nil, model.NewConfigurationError(entity, field, "@auth groups rule needs groups or groupsField")
		}
		rule.GroupClaim = str("groupClaim")
		if rule.GroupClaim == "" {
			rule.GroupClaim = "cognito:groups"
		}
	}
	return rule, nil
}
