package mailclient

import (
	"context"
	"errors"

	"github.com/cli/browser"
)

// BrowserOpener passes the URI to the operating system's default handler,
// which launches the configured mail client.
type BrowserOpener struct {
	open func(url string) error
}

func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{open: browser.OpenURL}
}

// Open returns once the handler has been started; the mail client itself is
// not observed.
func (b *BrowserOpener) Open(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkURI(uri); err != nil {
		return err
	}
	if err := b.open(uri); err != nil {
		return errors.Join(ErrFailedToOpen, err)
	}
	return nil
}
