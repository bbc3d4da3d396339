// Package showcase is the mountable web module of the painting showcase.
//
// Routes:
//
//	GET  /              product cards and the contact form
//	POST /contact       compose the inquiry and hand the mailto URI to the browser
//	GET  /catalog.json  products and the derived dropdown
//	GET  /healthz       readiness, runs the catalog consistency check
//
// The dropdown is always derived from the catalog, so the cards and the
// options agree by construction. A plain form post answers with a
// confirmation page that opens the mail client through a refresh meta tag;
// a DataStar post gets the confirmation patched into #contact-status and a
// client-side navigation to the URI in the same event stream. Validation
// failures go to the configured error handler.
package showcase
