package mailto

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/showcase/pkg/validator"
)

// FormSubmission holds the raw contact form values of one submit.
// It is built per request and never stored.
type FormSubmission struct {
	Name            string `form:"name" json:"name"`
	Email           string `form:"email" json:"email"`
	SelectedProduct string `form:"product" json:"product"`
	Message         string `form:"message" json:"message"`
}

// Field names used in validation errors. They match the form input names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldProduct = "product"
	FieldMessage = "message"
)

// Field length limits, in characters. The contact form carries the same
// values as maxlength attributes.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxMessageLength = 2000
)

type validateConfig struct {
	products []string
}

// ValidateOption adjusts Validate.
type ValidateOption func(*validateConfig)

// AllowProducts restricts the selected product to the given option values.
// Without it any non-empty product is accepted.
func AllowProducts(values ...string) ValidateOption {
	return func(c *validateConfig) {
		c.products = append(c.products, values...)
	}
}

// Validate checks the submission the way the form's native constraints do:
// name, email and product must be non-empty, the email must be a valid
// address and no field may exceed its maxlength. The message is optional.
// On failure the returned error matches ErrValidationBlocked and carries
// validator.ValidationErrors.
func Validate(sub FormSubmission, opts ...ValidateOption) error {
	cfg := &validateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	rules := []validator.Rule{
		validator.Present(FieldName, sub.Name),
		validator.MaxLen(FieldName, sub.Name, MaxNameLength),
		validator.Present(FieldEmail, sub.Email),
		validator.Present(FieldProduct, sub.SelectedProduct),
		validator.MaxLen(FieldMessage, sub.Message, MaxMessageLength),
	}
	if sub.Email != "" {
		rules = append(rules,
			validator.ValidEmail(FieldEmail, sub.Email),
			validator.MaxLen(FieldEmail, sub.Email, MaxEmailLength),
		)
	}
	if sub.SelectedProduct != "" {
		rules = append(rules, validator.InListString(FieldProduct, sub.SelectedProduct, cfg.products))
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrValidationBlocked, err)
	}
	return nil
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Normalize returns s as a browser submits it: line breaks are removed from
// the single-line name and email inputs and surrounding whitespace is
// trimmed from the email. Select and textarea values are left as they are.
func (s FormSubmission) Normalize() FormSubmission {
	s.Name = lineBreaks.Replace(s.Name)
	s.Email = strings.Trim(lineBreaks.Replace(s.Email), " \t\f")
	return s
}
