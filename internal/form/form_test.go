package form

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestRegisterValidate(t *testing.T) {
	valid := Register{
		Name:            "Alice",
		Username:        "alice",
		Email:           "alice@test.com",
		Password:        "password1234",
		ConfirmPassword: "password1234",
	}

	tests := []struct {
		name      string
		mutate    func(f *Register)
		wantField string
	}{
		{"valid", func(_ *Register) {}, ""},
		{"missing_username", func(f *Register) { f.Username = "" }, "Username"},
		{"short_username", func(f *Register) { f.Username = "ab" }, "Username"},
		{"bad_email", func(f *Register) { f.Email = "not-an-email" }, "Email"},
		{"short_password", func(f *Register) { f.Password = "pw"; f.ConfirmPassword = "pw" }, "Password"},
		{"password_mismatch", func(f *Register) { f.ConfirmPassword = "different1234" }, "ConfirmPassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			err := f.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %+v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() = nil, want field error")
			}
			fields := FieldErrors(err)
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("FieldErrors() = %v, want key %q", fields, tt.wantField)
			}
		})
	}
}

func TestRoomValidate(t *testing.T) {
	tests := []struct {
		name    string
		f       Room
		wantErr bool
	}{
		{"valid", Room{Name: "Algebra Help", Topic: "Math", Description: "basics"}, false},
		{"no_description_ok", Room{Name: "Algebra Help", Topic: "Math"}, false},
		{"missing_name", Room{Topic: "Math"}, true},
		{"missing_topic", Room{Name: "Algebra Help"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %+v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageValidate(t *testing.T) {
	if err := (Message{Body: "hello"}).Validate(); err != nil {
		t.Errorf("Validate() error = %+v, want nil", err)
	}
	if err := (Message{}).Validate(); err == nil {
		t.Error("Validate() = nil, want error on empty body")
	}
}

func TestLoginFromRequestNormalizes(t *testing.T) {
	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(url.Values{
			"identifier": {"  Alice@Test.COM "},
			"password":   {"password1234"},
		}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm() error = %+v", err)
	}

	f := LoginFromRequest(req)
	if f.Identifier != "alice@test.com" {
		t.Errorf("identifier = %q, want lowercased and trimmed", f.Identifier)
	}
	if f.Password != "password1234" {
		t.Errorf("password = %q, should not be normalized", f.Password)
	}
}

func TestFieldErrorsOnPlainError(t *testing.T) {
	fields := FieldErrors(errors.New("boom"))
	if len(fields) != 0 {
		t.Errorf("FieldErrors() = %v, want empty map", fields)
	}

	if fields := FieldErrors(nil); len(fields) != 0 {
		t.Errorf("FieldErrors(nil) = %v, want empty map", fields)
	}
}
