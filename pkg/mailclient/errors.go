package mailclient

import "errors"

var (
	ErrFailedToOpen   = errors.New("mailclient.errors.failed_to_open")
	ErrFailedToNotify = errors.New("mailclient.errors.failed_to_notify")
	ErrInvalidConfig  = errors.New("mailclient.errors.invalid_config")
	ErrUnsupportedURI = errors.New("mailclient.errors.unsupported_uri")
)
