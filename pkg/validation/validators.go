package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Names: letters (including the Spanish accented set) and spaces only.
	// Digits and punctuation are rejected.
	nameRegex = regexp.MustCompile(`^[a-zA-ZñÑáéíóúÁÉÍÓÚ ]+$`)

	// local@domain.tld with a mandatory 2-4 char extension. Bare domains
	// ("user@host") are rejected on purpose.
	emailRegex = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

	// Spanish mobile/landline format: 9 digits, leading 6, 7 or 9.
	phoneRegex = regexp.MustCompile(`^(6|7|9)\d{8}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_email", ValidEmail)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidName validates that a string contains only name characters.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidEmail validates the email shape, including the extension.
func ValidEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return emailRegex.MatchString(val)
}

// ValidPhone validates a Spanish phone number structure.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
