package auth

import (
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RegisterForm struct {
	Fullname   string
	Email      string
	Password   string
	Repassword string
}

// FieldError is one validation failure, addressed to a form field.
type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
}

// Validate runs the registration rules and returns every failure, not just
// the first.
func (f RegisterForm) Validate() []FieldError {
	var errs []FieldError

	if f.Fullname == "" {
		errs = append(errs, FieldError{Field: "fullname", Message: "Full name must not be empty."})
	} else if n := utf8.RuneCountInString(f.Fullname); n < 6 || n > 30 {
		errs = append(errs, FieldError{Field: "fullname", Message: "Full name must be 6 to 30 characters."})
	}

	if f.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email must not be empty."})
	} else if !emailPattern.MatchString(f.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Email format is invalid."})
	}

	if f.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password must not be empty."})
	} else if len(f.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters."})
	}

	if f.Repassword == "" {
		errs = append(errs, FieldError{Field: "repassword", Message: "Password confirmation must not be empty."})
	}

	if len(errs) == 0 && f.Password != f.Repassword {
		errs = append(errs, FieldError{Field: "repassword", Message: "Passwords do not match."})
	}

	return errs
}
