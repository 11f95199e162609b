package session

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
)

const minPasswordLength = 6

var (
	digitRe = regexp.MustCompile(`\d`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// minLength applies to empty strings too, unlike validation.Length.
func minLength(n int, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(s) < n {
			return errors.New(msg)
		}
		return nil
	}
}

var passwordRules = []validation.Rule{
	validation.By(minLength(minPasswordLength, "Password must be at least 6 characters long")),
	validation.Match(digitRe).Error("Password must contain at least one number"),
	validation.Match(upperRe).Error("Password must contain at least one uppercase letter"),
}

// ValidatePassword returns the first violated password rule, or nil. Rules
// are checked in order: length, digit, uppercase letter.
func ValidatePassword(password string) error {
	if err := validation.Validate(password, passwordRules...); err != nil {
		return &ValidationError{Field: "password", Message: err.Error()}
	}
	return nil
}

// ValidateEmail checks the address shape only.
func ValidateEmail(email string) error {
	err := validation.Validate(strings.TrimSpace(email),
		validation.Required.Error("Email is required"),
		validation.Match(emailRe).Error("Please enter a valid email address"),
	)
	if err != nil {
		return &ValidationError{Field: "email", Message: err.Error()}
	}
	return nil
}

// ValidateRegistration checks name, email and password in that order and
// reports the first failure.
func ValidateRegistration(name, email, password string) error {
	if err := validation.Validate(strings.TrimSpace(name), validation.Required.Error("Name is required")); err != nil {
		return &ValidationError{Field: "name", Message: err.Error()}
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
