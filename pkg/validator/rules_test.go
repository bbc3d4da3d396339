package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/showcase/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required with value", validator.Required("name", "John"), true},
		{"required blank", validator.Required("name", " \t\n"), false},
		{"required empty", validator.Required("name", ""), false},
		{"present with value", validator.Present("name", "John"), true},
		{"present whitespace", validator.Present("name", "   "), true},
		{"present empty", validator.Present("name", ""), false},
		{"max length ok", validator.MaxLen("name", "John", 10), true},
		{"max length exact", validator.MaxLen("name", "John Smith", 10), true},
		{"max length long", validator.MaxLen("name", "John Jacob Jingleheimer", 10), false},
		{"max length counts characters", validator.MaxLen("name", "Zoë Brontë", 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}

	assert.Equal(t, "validation.required", validator.Present("name", "").Error.TranslationKey)
	assert.Equal(t, "must be at most 10 characters long", validator.MaxLen("name", "", 10).Error.Message)
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"john@example.com",
		"first.last+tag@sub.example.org",
		"john@localhost",
		"o'brien@example.ie",
	}
	invalid := []string{
		"",
		"   ",
		" john@example.com",
		"john",
		"john@",
		"@example.com",
		"john@example..com",
		"john@.example.com",
		"john@-example.com",
		"John <john@example.com>",
		"\"john doe\"@example.com",
	}

	for _, v := range valid {
		assert.True(t, validator.ValidEmail("email", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidEmail("email", v).Check(), v)
	}

	rule := validator.ValidEmail("email", "x")
	assert.Equal(t, "validation.email", rule.Error.TranslationKey)
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	options := []string{"Rainbow Sunset Painting", "other"}

	assert.True(t, validator.InListString("product", "other", options).Check())
	assert.False(t, validator.InListString("product", "Mountain Majesty", options).Check())
	assert.True(t, validator.InListString("product", "anything", nil).Check())

	rule := validator.InListString("product", "x", options)
	assert.Equal(t, "must be one of: Rainbow Sunset Painting, other", rule.Error.Message)
}

func TestDecimalRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.PositiveDecimal("price", decimal.NewFromInt(150)).Check())
	assert.False(t, validator.PositiveDecimal("price", decimal.Zero).Check())
	assert.False(t, validator.PositiveDecimal("price", decimal.NewFromInt(-5)).Check())

	assert.True(t, validator.WholeDecimal("price", decimal.NewFromInt(200)).Check())
	assert.True(t, validator.WholeDecimal("price", decimal.RequireFromString("175.00")).Check())
	assert.False(t, validator.WholeDecimal("price", decimal.RequireFromString("99.50")).Check())
}
