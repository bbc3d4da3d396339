package mailclient

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/showcase/pkg/logger"
)

// DevOpener records the URI in the log instead of launching anything.
// Only the recipient and URI length are logged; the body holds visitor data.
type DevOpener struct {
	log *slog.Logger
}

func NewDevOpener(log *slog.Logger) *DevOpener {
	if log == nil {
		log = slog.Default()
	}
	return &DevOpener{log: log}
}

func (d *DevOpener) Open(ctx context.Context, uri string) error {
	if err := checkURI(uri); err != nil {
		return err
	}

	recipient := ""
	if u, err := url.Parse(uri); err == nil {
		recipient = u.Opaque
	}

	d.log.InfoContext(ctx, "mail client open skipped",
		logger.Component("mailclient"),
		slog.String("recipient", recipient),
		logger.URILength(uri),
	)
	return nil
}
