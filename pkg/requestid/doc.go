// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client supplied "X-Request-ID" header when it is made of
// letters, digits, dashes and underscores (at most 128 characters) and
// generates a UUID otherwise. The ID is stored in the request context, echoed
// in the response header and shown on error pages.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(r.Context(), "contact submitted") // carries request_id
package requestid
