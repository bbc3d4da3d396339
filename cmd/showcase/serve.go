package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/showcase/handler"
	"github.com/dmitrymomot/showcase/modules/showcase"
	"github.com/dmitrymomot/showcase/pkg/catalog"
	"github.com/dmitrymomot/showcase/pkg/environment"
	"github.com/dmitrymomot/showcase/pkg/httpserver"
	"github.com/dmitrymomot/showcase/pkg/logger"
	"github.com/dmitrymomot/showcase/pkg/mailto"
	"github.com/dmitrymomot/showcase/pkg/page"
	"github.com/dmitrymomot/showcase/pkg/requestid"
)

func serve(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	logger.SetAsDefault(log)

	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if err := products.Validate(); err != nil {
		return err
	}
	// The page derives its dropdown, so this only fails on duplicate names.
	if err := catalog.ValidateConsistency(products, catalog.DeriveDropdown(products)); err != nil {
		return err
	}

	enc, err := mailto.NewEncoder(cfg.Recipient, encoderOptions(cfg, log)...)
	if err != nil {
		return fmt.Errorf("SHOWCASE_RECIPIENT: %w", err)
	}

	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  page.ErrorPage,
		ErrorToast: page.ErrorToast,
	})

	svc := showcase.NewService(cfg.Showcase, products, enc, nil, errHandler)
	router := showcase.Router(showcase.RouterOptions{
		Showcase:    svc,
		HealthCheck: httpserver.HealthCheckHandler(log, svc.CheckConsistency),
		Middlewares: []func(http.Handler) http.Handler{
			middleware.RealIP,
			requestid.Middleware,
			environment.Middleware(environment.Parse(cfg.Env)),
			showcase.RequestLogger(log),
			middleware.Recoverer,
		},
	})

	log.InfoContext(ctx, "catalog loaded",
		logger.Count(len(products)),
		slog.Int("available", len(products.Available())),
		logger.Component("showcase"),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
