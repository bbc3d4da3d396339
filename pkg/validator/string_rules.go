package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: requiredError(field),
	}
}

// Present validates that a string is not empty. Whitespace counts as a value,
// the same way a required form control treats it.
func Present(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: requiredError(field),
	}
}

// MaxLen validates that value has at most max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

func requiredError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "field is required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}
