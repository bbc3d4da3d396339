package validator

import "github.com/shopspring/decimal"

// PositiveDecimal validates that an amount is strictly greater than zero.
func PositiveDecimal(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.IsPositive()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be positive",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// WholeDecimal validates that an amount has no fractional part.
func WholeDecimal(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.Equal(value.Truncate(0))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be a whole number",
			TranslationKey: "validation.whole_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
