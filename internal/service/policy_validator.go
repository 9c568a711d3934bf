package service

import (
	"regexp"
	"strings"
	"unicode"

	"jobtracker/internal/errors"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 16
	// passwordSpecials is the fixed set of accepted special characters.
	passwordSpecials = "#?!@$%^&*()-_+=:;,.|{}~"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// PolicyValidator validates credential fields against the account
// policies. It runs before any store write so policy failures never
// reach the database.
type PolicyValidator struct{}

// NewPolicyValidator creates a new policy validator.
func NewPolicyValidator() *PolicyValidator {
	return &PolicyValidator{}
}

// ValidateEmail checks the address against standard email grammar:
// local-part@domain with at least one dot in the domain.
func (v *PolicyValidator) ValidateEmail(email string) error {
	if email == "" {
		return errors.NewValidation("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.NewValidation("email address is invalid")
	}
	return nil
}

// ValidatePassword checks length and character-class requirements:
// 8-16 characters with at least one lowercase letter, one uppercase
// letter, one digit and one special character. Go's regexp has no
// lookahead, so the classes are counted in a single scan.
func (v *PolicyValidator) ValidatePassword(password string) error {
	if password == "" {
		return errors.NewValidation("password is required")
	}
	if len(password) < passwordMinLength || len(password) > passwordMaxLength {
		return errors.NewValidation("password must be between 8 and 16 characters")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return errors.NewValidation("password must contain a lowercase letter, an uppercase letter, a digit and a special character")
	}
	return nil
}

// ValidateNewPassword checks the policy and the confirmation field.
func (v *PolicyValidator) ValidateNewPassword(password, confirmation string) error {
	if err := v.ValidatePassword(password); err != nil {
		return err
	}
	if confirmation == "" {
		return errors.NewValidation("password confirmation is required")
	}
	if password != confirmation {
		return errors.NewValidation("password and confirmation must match")
	}
	return nil
}
