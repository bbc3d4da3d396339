package mailclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/showcase/pkg/logger"
)

// LogNotifier writes confirmations to the log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, message string) error {
	n.log.InfoContext(ctx, message, logger.Component("mailclient"), logger.Event("confirmation"))
	return nil
}

// WriterNotifier prints each confirmation on its own line.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintln(n.w, message); err != nil {
		return errors.Join(ErrFailedToNotify, err)
	}
	return nil
}
