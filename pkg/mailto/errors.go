package mailto

import "errors"

var (
	// ErrValidationBlocked is joined with the field errors of a rejected submission.
	ErrValidationBlocked = errors.New("mailto.errors.validation_blocked")

	// ErrInvalidRecipient is returned when the encoder is configured with a bad address.
	ErrInvalidRecipient = errors.New("mailto.errors.invalid_recipient")

	// ErrInvalidURI is returned by ParseURI for anything that is not a mailto URI
	// produced by this package.
	ErrInvalidURI = errors.New("mailto.errors.invalid_uri")

	// ErrInvalidEncoding is returned when a component contains a malformed escape.
	ErrInvalidEncoding = errors.New("mailto.errors.invalid_encoding")

	// ErrNotifyFailed is returned when the confirmation could not be shown.
	ErrNotifyFailed = errors.New("mailto.errors.notify_failed")
)
