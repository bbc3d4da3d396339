package mailclient

import (
	"fmt"
	"log/slog"
)

const (
	ModeBrowser = "browser"
	ModeLog     = "log"
)

type Config struct {
	Mode string `env:"MAILCLIENT_MODE" envDefault:"log"`
}

// New returns the Opener selected by cfg.Mode.
func New(cfg Config, log *slog.Logger) (Opener, error) {
	switch cfg.Mode {
	case ModeBrowser:
		return NewBrowserOpener(), nil
	case ModeLog, "":
		return NewDevOpener(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, cfg.Mode)
	}
}
