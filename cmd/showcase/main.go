// Command showcase serves the painting showcase and checks or composes
// inquiries from the command line.
//
//	showcase [serve]                       run the web server
//	showcase check [-page f] [-catalog f]  verify cards and dropdown agree
//	showcase compose -name -email -product [-message]
//	                                       open an inquiry in the mail client
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/config"
	"github.com/dmitrymomot/showcase/pkg/environment"
	"github.com/dmitrymomot/showcase/pkg/logger"
	"github.com/dmitrymomot/showcase/pkg/mailto"
	"github.com/dmitrymomot/showcase/pkg/requestid"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	usageMessage = "usage: showcase [serve | check [-page file] [-catalog file] | compose -name n -email e -product p [-message m]]"
)

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches the subcommand and maps its error to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	log := newLogger(cfg, stderr)

	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = serve(ctx, cfg, log)
	case "check":
		err = check(cfg, args, stdout)
	case "compose":
		err = compose(ctx, cfg, log, args, stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usageMessage)
		return exitOK
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usageMessage)
		return exitUsage
	default:
		log.ErrorContext(ctx, "command failed", slog.String("command", cmd), logger.Error(err))
		return exitFailure
	}
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	// Unknown formats keep the environment preset, same as unknown levels.
	switch f := logger.Format(cfg.LogFormat); f {
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...)
}

// loadCatalog reads the configured catalog file or falls back to the
// embedded default.
func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// encoderOptions are the options shared by serve and compose.
func encoderOptions(cfg appConfig, log *slog.Logger) []mailto.Option {
	opts := []mailto.Option{mailto.WithLogger(log)}
	if cfg.SanitizeInput {
		opts = append(opts, mailto.WithSanitizer(mailto.PlainText))
	}
	return opts
}
