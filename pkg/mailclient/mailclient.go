package mailclient

import (
	"context"
	"strings"
)

// Opener hands a composed mailto URI to a mail client.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// Notifier shows the confirmation to the person who submitted the form.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, uri string) error

func (f OpenerFunc) Open(ctx context.Context, uri string) error { return f(ctx, uri) }

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, message string) error

func (f NotifierFunc) Notify(ctx context.Context, message string) error { return f(ctx, message) }

const scheme = "mailto:"

func checkURI(uri string) error {
	if !strings.HasPrefix(strings.ToLower(uri), scheme) {
		return ErrUnsupportedURI
	}
	return nil
}
