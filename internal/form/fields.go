package form

import "regexp"

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsStrongPassword reports whether s is at least 8 characters with at least
// one lowercase letter, one uppercase letter and one digit
func IsStrongPassword(s string) bool {
	return len(s) >= 8 && hasLower.MatchString(s) && hasUpper.MatchString(s) && hasDigit.MatchString(s)
}

// LoginRules returns the rule set for the login form
func LoginRules() RuleSet {
	return RuleSet{
		"email": {
			Required: true,
			Pattern:  emailRegexp,
			Message:  "invalid email address",
		},
		"password": {
			Required: true,
			Message:  "password is required",
		},
	}
}

// RegisterRules returns the rule set for the registration form
func RegisterRules() RuleSet {
	return RuleSet{
		"name": {
			Required:  true,
			MinLength: 2,
			MaxLength: 50,
			Message:   "name must be between 2 and 50 characters",
		},
		"email": {
			Required: true,
			Pattern:  emailRegexp,
			Message:  "invalid email address",
		},
		"password": {
			Required:  true,
			MinLength: 8,
			Message:   "password must be at least 8 characters",
		},
		"confirmPassword": {
			Required: true,
			Custom: func(value string, values map[string]string) bool {
				if values == nil {
					return false
				}
				return value == values["password"]
			},
			Message: "passwords do not match",
		},
	}
}

// TaskRules returns the rule set for the task create/edit form
func TaskRules() RuleSet {
	return RuleSet{
		"title": {
			Required:  true,
			MaxLength: 100,
			Message:   "title is required",
		},
		"description": {
			MaxLength: 500,
		},
	}
}
