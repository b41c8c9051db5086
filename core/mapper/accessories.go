// Package mapper - Addon to accessory mapping
// Addon ids are free-form, so accessories resolve through an ordered rule
// table of substring predicates. The first matching rule wins; addons
// matching no rule are dropped from the composition.
package mapper

import (
	"strings"

	"package-audit/core/types"
)

// accessoryRule pairs a predicate over the addon id with a resolver that
// picks the canonical accessory id
type accessoryRule struct {
	name    string
	match   func(id string) bool
	resolve func(id string) string
}

func contains(sub string) func(string) bool {
	return func(id string) bool { return strings.Contains(id, sub) }
}

// accessoryRules is evaluated top-to-bottom per addon
var accessoryRules = []accessoryRule{
	{
		name:  "ups",
		match: contains("ups"),
		resolve: func(string) string {
			return "ups-1000va"
		},
	},
	{
		name:  "alarm",
		match: contains("alarm"),
		resolve: func(id string) string {
			switch {
			case strings.Contains(id, "enterprise"):
				return "alarm-enterprise"
			case strings.Contains(id, "advanced"):
				return "alarm-advanced"
			default:
				return "alarm-basic"
			}
		},
	},
	{
		name:  "access-control",
		match: contains("access-control"),
		resolve: func(id string) string {
			if strings.Contains(id, "enterprise") {
				return "access-control-enterprise"
			}
			return "access-control-basic"
		},
	},
	{
		name:  "intercom",
		match: contains("intercom"),
		resolve: func(id string) string {
			if strings.Contains(id, "pro") {
				return "gate-intercom-pro"
			}
			return "gate-intercom"
		},
	},
}

// MapAccessory resolves one addon id to a canonical accessory id.
// The second return value is false when no rule matches.
func MapAccessory(id string) (string, bool) {
	for _, rule := range accessoryRules {
		if rule.match(id) {
			return rule.resolve(id), true
		}
	}
	return "", false
}

// MapAccessories resolves a package's addon list to canonical accessory ids.
// Purely optional zero-price addons carry no cost and are skipped before
// matching; unresolved addons are dropped silently.
func MapAccessories(addons []types.Addon) []string {
	var ids []string
	for _, addon := range addons {
		if addon.Optional && !addon.Price.IsPositive() {
			continue
		}
		if id, ok := MapAccessory(addon.ID); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
