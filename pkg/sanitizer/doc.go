// Package sanitizer provides small string transformations for cleaning user
// input before it is used to compose messages.
//
// Every helper has the shape func(string) string so helpers can be combined
// with Apply or stored as a reusable pipeline with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.PlainText,
//	    sanitizer.SingleLine,
//	)
//	name := clean(form.Name)
//
// PlainText strips markup with the bluemonday strict policy and removes
// control characters while keeping line breaks. StripHTML does the markup
// part only and keeps stripping until entity-encoded tags are gone.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
