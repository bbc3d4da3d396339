package showcase

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the application router. Each part is optional.
type RouterOptions struct {
	Showcase    Mountable
	HealthCheck http.Handler
	Middlewares []func(http.Handler) http.Handler
}

// Router creates the application router: middlewares first, then the health
// check at /healthz and the showcase at the root.
//
// Example:
//
//	svc := showcase.NewService(cfg, products, enc, nil, errHandler)
//	r := showcase.Router(showcase.RouterOptions{
//		Showcase:    svc,
//		HealthCheck: httpserver.HealthCheckHandler(log, svc.CheckConsistency),
//		Middlewares: []func(http.Handler) http.Handler{
//			requestid.Middleware,
//			showcase.RequestLogger(log),
//		},
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	for _, mw := range opts.Middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	if opts.HealthCheck != nil {
		r.Method(http.MethodGet, "/healthz", opts.HealthCheck)
	}
	if opts.Showcase != nil {
		r.Mount("/", opts.Showcase.Handle())
	}

	return r
}
