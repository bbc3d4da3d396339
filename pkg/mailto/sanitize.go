package mailto

import "github.com/dmitrymomot/showcase/pkg/sanitizer"

var singleLine = sanitizer.Compose(sanitizer.PlainText, sanitizer.SingleLine)

// PlainText is the opt-in input policy. Markup and control characters are
// stripped from every field. Name and product are folded onto one line,
// since they end up in the body header lines and the subject, and the email
// is normalized.
func PlainText(sub FormSubmission) FormSubmission {
	return FormSubmission{
		Name:            singleLine(sub.Name),
		Email:           sanitizer.Apply(sub.Email, sanitizer.PlainText, sanitizer.NormalizeEmail),
		SelectedProduct: singleLine(sub.SelectedProduct),
		Message:         sanitizer.PlainText(sub.Message),
	}
}
