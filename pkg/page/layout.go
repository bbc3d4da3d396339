package page

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/showcase/pkg/catalog"
)

// DatastarScript is the client bundle that turns the contact form into an
// SSE-driven form. Without it the form falls back to a regular POST.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// LayoutParams configures the document shell.
type LayoutParams struct {
	Title string
	Head  templ.Component // rendered at the end of <head>
}

// Layout wraps body in the HTML document with the toast container every page
// shares.
func Layout(p LayoutParams, body ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(p.Title)
		h.raw(`</title><script type="module" src="`, esc(DatastarScript), `"></script>`)
		h.component(p.Head)
		h.raw(`</head><body><div id="toast-container" aria-live="polite"></div><main>`)
		for _, c := range body {
			h.component(c)
		}
		h.raw(`</main></body></html>`)
	})
}

// HomeParams is everything the showcase page needs.
type HomeParams struct {
	Title    string
	Catalog  catalog.Catalog
	Dropdown catalog.Dropdown
	// Action is the form target, "/contact" when empty.
	Action   string
}

// Home renders the full showcase: the product grid followed by the contact form.
func Home(p HomeParams) templ.Component {
	return Layout(LayoutParams{Title: p.Title},
		component(func(h *htmlWriter) {
			h.raw(`<header><h1>`)
			h.text(p.Title)
			h.raw(`</h1></header>`)
		}),
		ProductGrid(p.Catalog),
		ContactForm(p.Dropdown, p.Action),
	)
}
