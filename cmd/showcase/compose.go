package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/mailclient"
	"github.com/dmitrymomot/showcase/pkg/mailto"
)

// compose builds an inquiry from flags, hands the URI to the configured mail
// client opener and prints the confirmation. With -print the URI is written
// to stdout instead of being opened.
func compose(ctx context.Context, cfg appConfig, log *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("compose", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var sub mailto.FormSubmission
	fs.StringVar(&sub.Name, "name", "", "your name")
	fs.StringVar(&sub.Email, "email", "", "your email address")
	fs.StringVar(&sub.SelectedProduct, "product", "", "painting name or \""+catalog.OtherValue+"\"")
	fs.StringVar(&sub.Message, "message", "", "message text")
	printOnly := fs.Bool("print", false, "print the mailto URI instead of opening it")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	var opener mailclient.Opener
	if *printOnly {
		opener = mailclient.OpenerFunc(func(_ context.Context, uri string) error {
			_, err := fmt.Fprintln(stdout, uri)
			return err
		})
	} else {
		opener, err = mailclient.New(cfg.Mail, log)
		if err != nil {
			return err
		}
	}

	opts := append(encoderOptions(cfg, log),
		mailto.WithOpener(opener),
		mailto.WithNotifier(mailclient.NewWriterNotifier(stdout)),
		mailto.WithValidation(mailto.AllowProducts(catalog.DeriveDropdown(products).Values()...)),
	)
	enc, err := mailto.NewEncoder(cfg.Recipient, opts...)
	if err != nil {
		return fmt.Errorf("SHOWCASE_RECIPIENT: %w", err)
	}

	return enc.Submit(ctx, sub)
}
