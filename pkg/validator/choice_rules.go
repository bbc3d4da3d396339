package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InListString validates that value is one of allowedValues.
// An empty allow list accepts any value, so callers can make the restriction optional.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			if len(allowedValues) == 0 {
				return true
			}
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}
