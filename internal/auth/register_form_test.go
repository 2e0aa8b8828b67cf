package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() RegisterForm {
	return RegisterForm{
		Fullname:   "Nguyen Van A",
		Email:      "a@example.com",
		Password:   "hunter2x",
		Repassword: "hunter2x",
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, validForm().Validate())
}

func TestValidate_EmptyFormReportsEveryField(t *testing.T) {
	errs := RegisterForm{}.Validate()
	assert.ElementsMatch(t, []string{"fullname", "email", "password", "repassword"}, fieldsOf(errs))
}

func TestValidate_FullnameLength(t *testing.T) {
	f := validForm()
	f.Fullname = "Bob"
	require.Equal(t, []string{"fullname"}, fieldsOf(f.Validate()))

	f.Fullname = "ABCDEFGHIJKLMNOPQRSTUVWXYZABCDE" // 31 chars
	require.Equal(t, []string{"fullname"}, fieldsOf(f.Validate()))

	f.Fullname = "Trầm Bê" // 7 runes, multibyte
	assert.Empty(t, f.Validate())
}

func TestValidate_EmailFormat(t *testing.T) {
	f := validForm()
	for _, bad := range []string{"not-an-email", "a@b", "@example.com", "a b@example.com"} {
		f.Email = bad
		assert.Equal(t, []string{"email"}, fieldsOf(f.Validate()), "email %q", bad)
	}
}

func TestValidate_PasswordLength(t *testing.T) {
	f := validForm()
	f.Password = "short"
	f.Repassword = "short"
	assert.Equal(t, []string{"password"}, fieldsOf(f.Validate()))
}

func TestValidate_PasswordMismatch(t *testing.T) {
	f := validForm()
	f.Repassword = "different1"
	assert.Equal(t, []string{"repassword"}, fieldsOf(f.Validate()))
}
