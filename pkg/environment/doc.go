// Package environment propagates the application environment (development,
// staging, production) through context.Context, HTTP requests and logs.
//
// Attach the environment once at the router level:
//
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(environment.Production))
//
// and query it anywhere downstream:
//
//	if environment.IsProduction(ctx) {
//	    // production-only behaviour
//	}
//
// LoggerExtractor plugs the value into pkg/logger so every record carries an
// "env" attribute.
package environment
