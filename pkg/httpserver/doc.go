// Package httpserver runs the showcase HTTP handler with graceful shutdown,
// configurable timeouts and health-check endpoints.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// shuts the server down within the configured deadline. Start and stop are
// logged through the supplied slog logger; WithStartHook and WithStopHook run
// extra callbacks around the life-cycle.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, func(ctx context.Context) error {
//		return catalog.ValidateConsistency(products, dropdown)
//	}))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
