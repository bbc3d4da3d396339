// Package mailclient delivers a composed mailto URI to the visitor's mail
// client and shows them a confirmation. Nothing here sends email: the mail
// client does, under the visitor's control.
//
// Opener implementations:
//   - BrowserOpener hands the URI to the OS default handler via
//     github.com/cli/browser, which starts the registered mail client.
//   - DevOpener only logs that a URI would have been opened.
//
// Notifier implementations:
//   - LogNotifier writes the confirmation to the log.
//   - WriterNotifier prints it, for the command line.
//
// OpenerFunc and NotifierFunc adapt plain functions, which is how the HTTP
// layer captures the URI and confirmation of a single request.
//
// # Configuration
//
//	var cfg mailclient.Config // MAILCLIENT_MODE=browser|log
//	config.MustLoad(&cfg)
//	opener, err := mailclient.New(cfg, log)
//
// # Errors
//
// Openers reject anything but mailto: URIs with ErrUnsupportedURI. Launch
// failures are wrapped with ErrFailedToOpen; callers are expected to log them
// rather than surface them, since a missing mail client is not something the
// visitor can fix from the form.
package mailclient
