package form

import (
	"regexp"
	"testing"
)

func TestValidateFieldRequired(t *testing.T) {
	rule := Rule{Required: true}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tab and newline", "\t\n", true},
		{"non-empty", "x", false},
		{"padded value", "  x  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateField(tt.value, rule, nil)
			if (got != "") != tt.wantErr {
				t.Errorf("ValidateField(%q) = %q, wantErr=%v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldRequiredMessage(t *testing.T) {
	if got := ValidateField("", Rule{Required: true}, nil); got != "this field is required" {
		t.Errorf("default required message = %q", got)
	}
	if got := ValidateField("", Rule{Required: true, Message: "email is required"}, nil); got != "email is required" {
		t.Errorf("custom required message = %q", got)
	}
}

func TestValidateFieldEmptyOptionalSkipsAllChecks(t *testing.T) {
	rule := Rule{
		MinLength: 5,
		MaxLength: 10,
		Pattern:   regexp.MustCompile(`^\d+$`),
		Custom:    func(string, map[string]string) bool { return false },
	}

	if got := ValidateField("", rule, nil); got != "" {
		t.Errorf("empty optional value should be valid, got %q", got)
	}
	if got := ValidateField("   ", rule, nil); got != "" {
		t.Errorf("whitespace optional value should be valid, got %q", got)
	}
}

func TestValidateFieldMinLengthBoundary(t *testing.T) {
	rule := Rule{MinLength: 5}

	if got := ValidateField("abcd", rule, nil); got != "minimum 5 characters required" {
		t.Errorf("length m-1 should fail with length error, got %q", got)
	}
	if got := ValidateField("abcde", rule, nil); got != "" {
		t.Errorf("length m should pass, got %q", got)
	}
}

func TestValidateFieldMaxLength(t *testing.T) {
	rule := Rule{MaxLength: 3}

	if got := ValidateField("abcd", rule, nil); got != "maximum 3 characters" {
		t.Errorf("over max should fail, got %q", got)
	}
	if got := ValidateField("abc", rule, nil); got != "" {
		t.Errorf("at max should pass, got %q", got)
	}
}

func TestValidateFieldPattern(t *testing.T) {
	rule := Rule{Pattern: regexp.MustCompile(`^\d+$`)}

	if got := ValidateField("abc", rule, nil); got != "invalid format" {
		t.Errorf("pattern miss default message = %q", got)
	}
	if got := ValidateField("123", rule, nil); got != "" {
		t.Errorf("pattern match should pass, got %q", got)
	}

	withMsg := Rule{Pattern: regexp.MustCompile(`^\d+$`), Message: "digits only"}
	if got := ValidateField("abc", withMsg, nil); got != "digits only" {
		t.Errorf("pattern custom message = %q", got)
	}
}

func TestValidateFieldCheckOrder(t *testing.T) {
	// First failing check wins; later checks never run
	rule := Rule{
		Required:  true,
		MinLength: 5,
		Pattern:   regexp.MustCompile(`^\d+$`),
	}

	if got := ValidateField("ab", rule, nil); got != "minimum 5 characters required" {
		t.Errorf("minLength should win over pattern, got %q", got)
	}
}

func TestValidateFieldCustomSeesLatestValues(t *testing.T) {
	rule := Rule{
		Custom: func(value string, values map[string]string) bool {
			return value == values["password"]
		},
		Message: "passwords do not match",
	}

	values := map[string]string{"password": "Abc12345", "confirmPassword": "Abc12345"}
	if got := ValidateField("Abc12345", rule, values); got != "" {
		t.Errorf("matching confirm should pass, got %q", got)
	}

	values["password"] = "Changed1"
	if got := ValidateField("Abc12345", rule, values); got != "passwords do not match" {
		t.Errorf("stale confirm should fail, got %q", got)
	}
}

func TestValidateFieldCustomDefaultMessage(t *testing.T) {
	rule := Rule{Custom: func(string, map[string]string) bool { return false }}
	if got := ValidateField("x", rule, nil); got != "validation failed" {
		t.Errorf("custom default message = %q", got)
	}
}

func TestValidateAllOnlyRuleFields(t *testing.T) {
	rules := RuleSet{
		"email": {Required: true},
	}
	values := map[string]string{
		"email":    "",
		"nickname": "", // no rule, must never produce an error
	}

	errors := ValidateAll(values, rules)
	if _, ok := errors["email"]; !ok {
		t.Error("expected error for email")
	}
	if _, ok := errors["nickname"]; ok {
		t.Error("field without a rule must never be validated")
	}
	if len(errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(errors))
	}
}

func TestValidateAllMissingValueTreatedAsEmpty(t *testing.T) {
	rules := RuleSet{"title": {Required: true}}

	errors := ValidateAll(map[string]string{}, rules)
	if errors["title"] == "" {
		t.Error("required field absent from values should fail")
	}
}

func TestPasswordRequiredAndMinLength(t *testing.T) {
	// required + minLength 8 on a password field
	rule := Rule{Required: true, MinLength: 8, Message: "password must be at least 8 characters"}

	tests := []struct {
		value string
		want  string
	}{
		{"", "password must be at least 8 characters"},
		{"short", "minimum 8 characters required"},
		{"longenough", ""},
	}

	for _, tt := range tests {
		if got := ValidateField(tt.value, rule, nil); got != tt.want {
			t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"spaces in@example.com", false},
		{"user@nodot", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abc12345", true},
		{"abc12345", false}, // no uppercase
		{"ABC12345", false}, // no lowercase
		{"Abcdefgh", false}, // no digit
		{"Ab1", false},      // too short
	}

	for _, tt := range tests {
		if got := IsStrongPassword(tt.password); got != tt.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestRegisterRulesConfirmPassword(t *testing.T) {
	rules := RegisterRules()

	values := map[string]string{
		"name":            "Sam",
		"email":           "sam@example.com",
		"password":        "Abc12345",
		"confirmPassword": "Abc1234",
	}

	errors := ValidateAll(values, rules)
	if errors["confirmPassword"] != "passwords do not match" {
		t.Errorf("mismatch error = %q", errors["confirmPassword"])
	}

	values["confirmPassword"] = "Abc12345"
	errors = ValidateAll(values, rules)
	if len(errors) != 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}
