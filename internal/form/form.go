package form

// Form holds the values, errors and submission state for one form. It owns
// no side effects beyond its own state and the submit callback handed to
// Submit; network access belongs to the caller.
type Form struct {
	initial    map[string]string
	values     map[string]string
	errors     map[string]string
	rules      RuleSet
	submitting bool
}

// New creates a form with the given initial values and rules
func New(initial map[string]string, rules RuleSet) *Form {
	f := &Form{
		initial: copyValues(initial),
		values:  copyValues(initial),
		errors:  make(map[string]string),
		rules:   rules,
	}
	return f
}

// SetValue records a field change. If the field currently has an error it is
// re-validated immediately against the merged latest values, so the error
// updates or clears as the user types. Fields without a visible error are
// not validated until the next submit attempt.
func (f *Form) SetValue(name, value string) {
	f.values[name] = value

	if _, hadError := f.errors[name]; !hadError {
		return
	}

	rule, ok := f.rules[name]
	if !ok {
		delete(f.errors, name)
		return
	}

	if msg := ValidateField(value, rule, f.values); msg != "" {
		f.errors[name] = msg
	} else {
		delete(f.errors, name)
	}
}

// Validate runs every rule against the current values and records the
// failures, replacing any previous errors. It reports whether the form is
// currently valid.
func (f *Form) Validate() bool {
	f.errors = ValidateAll(f.values, f.rules)
	return len(f.errors) == 0
}

// Submit validates every field. If any fail, the errors are recorded and fn
// is not called. Otherwise fn is invoked with a copy of the current values
// and its error is returned; the submitting flag is cleared when fn settles
// regardless of outcome.
func (f *Form) Submit(fn func(values map[string]string) error) error {
	errors := ValidateAll(f.values, f.rules)
	if len(errors) > 0 {
		f.errors = errors
		return nil
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	return fn(f.Values())
}

// SetFieldValue sets a field without triggering change validation, for
// programmatic control such as pre-populating an edit form.
func (f *Form) SetFieldValue(name, value string) {
	f.values[name] = value
}

// SetFieldError records an error for a field directly
func (f *Form) SetFieldError(name, msg string) {
	f.errors[name] = msg
}

// ClearErrors removes all field errors
func (f *Form) ClearErrors() {
	f.errors = make(map[string]string)
}

// Reset restores the initial values and clears errors and submission state
func (f *Form) Reset() {
	f.values = copyValues(f.initial)
	f.errors = make(map[string]string)
	f.submitting = false
}

// Values returns a copy of the current field values
func (f *Form) Values() map[string]string {
	return copyValues(f.values)
}

// Value returns the current value of a field
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Errors returns the current field errors
func (f *Form) Errors() map[string]string {
	return f.errors
}

// Error returns the current error for a field, or ""
func (f *Form) Error(name string) string {
	return f.errors[name]
}

// HasErrors reports whether any field currently fails validation
func (f *Form) HasErrors() bool {
	return len(f.errors) > 0
}

// IsSubmitting reports whether a submit callback is in flight. Callers are
// expected to disable submit affordances while true.
func (f *Form) IsSubmitting() bool {
	return f.submitting
}

func copyValues(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
