package form

import (
	"errors"
	"reflect"
	"testing"
)

func newLoginFormForTests() *Form {
	return New(map[string]string{"email": "", "password": ""}, LoginRules())
}

func TestSetValueDoesNotValidateUntouchedField(t *testing.T) {
	f := newLoginFormForTests()

	// Typing an invalid email before any submit must not surface an error
	f.SetValue("email", "not-an-email")

	if f.Error("email") != "" {
		t.Errorf("untouched-but-invalid field should not show an error before submit, got %q", f.Error("email"))
	}
}

func TestSetValueRevalidatesFieldWithError(t *testing.T) {
	f := newLoginFormForTests()

	// Submit with bad email to mark the field invalid
	f.Submit(func(map[string]string) error {
		t.Fatal("callback must not run on validation failure")
		return nil
	})
	if f.Error("email") == "" {
		t.Fatal("expected email error after failed submit")
	}

	// Still invalid: error updates, stays present
	f.SetValue("email", "still-bad")
	if f.Error("email") == "" {
		t.Error("error should persist while the field is invalid")
	}

	// Now valid: error clears on the change event itself
	f.SetValue("email", "user@example.com")
	if f.Error("email") != "" {
		t.Errorf("error should clear once the field becomes valid, got %q", f.Error("email"))
	}
}

func TestConfirmPasswordClearsOnChange(t *testing.T) {
	f := New(map[string]string{
		"name": "", "email": "", "password": "", "confirmPassword": "",
	}, RegisterRules())

	f.SetValue("name", "Sam")
	f.SetValue("email", "sam@example.com")
	f.SetValue("password", "Abc12345")
	f.SetValue("confirmPassword", "Abc1234")

	f.Submit(func(map[string]string) error {
		t.Fatal("callback must not run with mismatched passwords")
		return nil
	})
	if f.Error("confirmPassword") != "passwords do not match" {
		t.Fatalf("mismatch error = %q", f.Error("confirmPassword"))
	}

	// Fixing the confirm field clears its error on the next change event
	f.SetValue("confirmPassword", "Abc12345")
	if f.Error("confirmPassword") != "" {
		t.Errorf("error should clear after matching, got %q", f.Error("confirmPassword"))
	}
}

func TestCrossFieldSeesInFlightValue(t *testing.T) {
	f := New(map[string]string{
		"name": "", "email": "", "password": "", "confirmPassword": "",
	}, RegisterRules())

	f.SetValue("name", "Sam")
	f.SetValue("email", "sam@example.com")
	f.SetValue("confirmPassword", "Newpass99")
	f.Submit(func(map[string]string) error { return nil })
	if f.Error("confirmPassword") == "" {
		t.Fatal("expected mismatch before password typed")
	}

	// Typing the password itself must not clear confirmPassword (only the
	// changed field is re-validated), but re-validating confirm afterwards
	// must see the freshly typed password, not a stale snapshot.
	f.SetValue("password", "Newpass99")
	f.SetValue("confirmPassword", "Newpass99")
	if f.Error("confirmPassword") != "" {
		t.Errorf("confirm should validate against the latest password, got %q", f.Error("confirmPassword"))
	}
}

func TestValidateRecordsErrors(t *testing.T) {
	f := newLoginFormForTests()

	if f.Validate() {
		t.Error("empty login form should not validate")
	}
	if f.Error("email") == "" || f.Error("password") == "" {
		t.Errorf("expected errors on both fields, got %+v", f.Errors())
	}

	f.SetValue("email", "user@example.com")
	f.SetValue("password", "hunter2!")
	if !f.Validate() {
		t.Errorf("valid values should pass, got %+v", f.Errors())
	}
	if f.HasErrors() {
		t.Error("a passing Validate must clear previous errors")
	}
}

func TestSubmitAbortsOnValidationErrors(t *testing.T) {
	f := newLoginFormForTests()
	called := false

	err := f.Submit(func(map[string]string) error {
		called = true
		return nil
	})

	if err != nil {
		t.Errorf("validation failure must not surface as an error, got %v", err)
	}
	if called {
		t.Error("callback must not be invoked when validation fails")
	}
	if !f.HasErrors() {
		t.Error("expected field errors after failed submit")
	}
	if f.IsSubmitting() {
		t.Error("submitting must stay false when submission is aborted")
	}
}

func TestSubmitLifecycle(t *testing.T) {
	f := newLoginFormForTests()
	f.SetValue("email", "user@example.com")
	f.SetValue("password", "hunter2!")

	var calls int
	var seen map[string]string
	var duringSubmit bool

	err := f.Submit(func(values map[string]string) error {
		calls++
		seen = values
		duringSubmit = f.IsSubmitting()
		return nil
	})

	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
	if !duringSubmit {
		t.Error("IsSubmitting must be true while the callback runs")
	}
	if f.IsSubmitting() {
		t.Error("IsSubmitting must be false after the callback settles")
	}

	want := map[string]string{"email": "user@example.com", "password": "hunter2!"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("callback values = %v, want %v", seen, want)
	}
}

func TestSubmitClearsFlagOnCallbackError(t *testing.T) {
	f := newLoginFormForTests()
	f.SetValue("email", "user@example.com")
	f.SetValue("password", "hunter2!")

	wantErr := errors.New("invalid credentials")
	err := f.Submit(func(map[string]string) error {
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("submit error = %v, want %v", err, wantErr)
	}
	if f.IsSubmitting() {
		t.Error("IsSubmitting must be false even when the callback fails")
	}
}

func TestSubmitValuesAreACopy(t *testing.T) {
	f := newLoginFormForTests()
	f.SetValue("email", "user@example.com")
	f.SetValue("password", "hunter2!")

	f.Submit(func(values map[string]string) error {
		values["email"] = "mutated@example.com"
		return nil
	})

	if f.Value("email") != "user@example.com" {
		t.Errorf("callback mutation leaked into form state: %q", f.Value("email"))
	}
}

func TestReset(t *testing.T) {
	initial := map[string]string{"email": "seed@example.com", "password": ""}
	f := New(initial, LoginRules())

	f.SetValue("email", "other@example.com")
	f.SetValue("password", "x")
	f.SetFieldError("password", "boom")
	f.Reset()

	if !reflect.DeepEqual(f.Values(), initial) {
		t.Errorf("Reset values = %v, want %v", f.Values(), initial)
	}
	if f.HasErrors() {
		t.Errorf("Reset should clear errors, got %v", f.Errors())
	}
	if f.IsSubmitting() {
		t.Error("Reset should clear submitting")
	}

	// Idempotent across repeated edit/reset cycles
	f.SetValue("email", "again@example.com")
	f.Reset()
	if !reflect.DeepEqual(f.Values(), initial) {
		t.Errorf("second Reset values = %v, want %v", f.Values(), initial)
	}
}

func TestManualMutations(t *testing.T) {
	f := newLoginFormForTests()

	// SetFieldValue bypasses change validation entirely
	f.SetFieldError("email", "boom")
	f.SetFieldValue("email", "user@example.com")
	if f.Error("email") != "boom" {
		t.Error("SetFieldValue must not trigger validation")
	}

	f.ClearErrors()
	if f.HasErrors() {
		t.Error("ClearErrors should remove all errors")
	}
}

func TestSetValueFieldWithoutRule(t *testing.T) {
	f := New(map[string]string{"email": ""}, LoginRules())

	// An error manually set on a rule-less field clears on the next change
	f.SetFieldError("extra", "stale")
	f.SetValue("extra", "anything")
	if f.Error("extra") != "" {
		t.Errorf("rule-less field should always be valid, got %q", f.Error("extra"))
	}
}
