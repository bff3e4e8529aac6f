package validation

import "github.com/go-playground/validator/v10"

// FieldMessages maps submission struct fields to their fixed failure message.
// These messages are part of the API contract; clients assert on them.
var FieldMessages = map[string]string{
	"FirstName": "Invalid name",
	"LastName":  "Invalid name",
	"Email":     "Invalid email",
	"Phone":     "Invalid phone",
	"Address":   "Invalid address",
}

// FirstMessage returns the fixed message for the first violated field.
// validator/v10 evaluates fields in struct declaration order, so the first
// entry of ValidationErrors is the first violated constraint.
func FirstMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}
	if msg, ok := FieldMessages[validationErrors[0].Field()]; ok {
		return msg
	}
	return "Invalid " + validationErrors[0].Field()
}
