package qrcode

import "errors"

var (
	ErrEmptyContent   = errors.New("qrcode: content cannot be empty")
	ErrContentTooLong = errors.New("qrcode: content too long to encode")
	ErrGenerate       = errors.New("qrcode: failed to generate")
)
