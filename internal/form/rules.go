package form

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule describes the validation constraints for a single field.
// Checks run in a fixed order: required, min length, max length, pattern,
// custom. The first failing check wins.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// Message overrides the default message for the required, pattern and
	// custom checks. Length checks always use the parameterized defaults.
	Message string
	// Custom receives the candidate value and the full value set, including
	// the in-flight edit, so cross-field rules see the latest values.
	Custom func(value string, values map[string]string) bool
}

// RuleSet maps field names to their rules for one form
type RuleSet map[string]Rule

// ValidateField evaluates value against rule. It returns the error message,
// or "" if the field is valid. An empty value on a non-required field is
// always valid, regardless of other constraints.
func ValidateField(value string, rule Rule, values map[string]string) string {
	if rule.Required && strings.TrimSpace(value) == "" {
		if rule.Message != "" {
			return rule.Message
		}
		return "this field is required"
	}

	if strings.TrimSpace(value) == "" {
		return ""
	}

	if rule.MinLength > 0 && len(value) < rule.MinLength {
		return fmt.Sprintf("minimum %d characters required", rule.MinLength)
	}

	if rule.MaxLength > 0 && len(value) > rule.MaxLength {
		return fmt.Sprintf("maximum %d characters", rule.MaxLength)
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		if rule.Message != "" {
			return rule.Message
		}
		return "invalid format"
	}

	if rule.Custom != nil && !rule.Custom(value, values) {
		if rule.Message != "" {
			return rule.Message
		}
		return "validation failed"
	}

	return ""
}

// ValidateAll validates every field named in rules against values. Fields
// absent from rules are never validated. The result contains only fields
// that currently fail.
func ValidateAll(values map[string]string, rules RuleSet) map[string]string {
	errors := make(map[string]string)
	for name, rule := range rules {
		if msg := ValidateField(values[name], rule, values); msg != "" {
			errors[name] = msg
		}
	}
	return errors
}
