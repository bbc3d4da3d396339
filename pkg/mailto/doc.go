// Package mailto turns contact form submissions into mailto URIs.
//
// The pipeline is split into pure steps that can be used on their own:
//
//	err := mailto.Validate(sub, mailto.AllowProducts(dropdown.Values()...))
//	msg := mailto.BuildMailMessage(sub, "artist@example.com")
//	// msg.EncodedURI == "mailto:artist@example.com?subject=Painting%20Inquiry%3A%20...&body=..."
//
// Subject and body are encoded independently with EncodeComponent, which
// escapes every byte outside A-Z a-z 0-9 - _ . ! ~ * ' ( ). DecodeComponent
// and ParseURI reverse it exactly.
//
// # Encoder
//
// Encoder drives one submission through a fresh state machine:
//
//	idle -submit-> validating -validate-> building -build-> dispatching -dispatch-> confirmed
//	                          \-validate-> rejected
//
// On success the URI is handed to a mailclient.Opener and Confirmation is
// passed to a mailclient.Notifier exactly once. A rejected submission builds
// nothing and notifies nobody; Submit returns an error matching
// ErrValidationBlocked with validator.ValidationErrors inside.
//
// Opener failures are logged, not returned. A mailto link has no delivery
// receipt, so there is nothing the caller could do with the error.
//
// # Sanitization
//
// Field values are interpolated verbatim by default, markup included, after
// the same normalization a browser applies to single-line inputs (see
// FormSubmission.Normalize). Pass WithSanitizer(PlainText) to strip markup
// and control characters before validation and message construction.
package mailto
