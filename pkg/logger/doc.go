// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New builds a *slog.Logger from Option values: output format (text or json),
// minimum level, environment preset and ContextExtractor callbacks that pull
// request-scoped values (request id, environment) out of the context on every
// record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "showcase"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "inquiry composed",
//	    logger.Product(msg.Product),
//	    logger.URILength(msg.EncodedURI),
//	)
//
// # Attributes
//
// Helpers in attr.go keep key names consistent across packages. Error returns
// an empty Attr for nil input so callers never need a nil check.
// Composed mailto URIs contain visitor data; log their length with URILength,
// never the URI itself.
package logger
