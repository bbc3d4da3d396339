package page

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/showcase/handler"
)

// ErrorPage renders the full page shown for failed regular requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	title := "Something went wrong"
	if p.StatusCode > 0 && p.StatusCode < 500 {
		title = "Please check your inquiry"
	}
	return Layout(LayoutParams{Title: title},
		component(func(h *htmlWriter) {
			h.raw(`<div class="error-page"><h1>`)
			h.text(title)
			h.raw(`</h1><p class="error-status">`, strconv.Itoa(p.StatusCode), `</p><p class="error-message">`)
			h.text(p.Error)
			h.raw(`</p>`)
			if p.RequestID != "" {
				h.raw(`<p class="request-id">Request ID: <code>`)
				h.text(p.RequestID)
				h.raw(`</code></p>`)
			}
			h.raw(`<p><a href="/">Back to the showcase</a></p></div>`)
		}),
	)
}

// ErrorToast renders the notification prepended to #toast-container for
// DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="toast toast-`, esc(p.Type), `" role="alert"`)
		if p.RequestID != "" {
			h.raw(` data-request-id="`, esc(p.RequestID), `"`)
		}
		h.raw(`>`)
		h.text(p.Message)
		h.raw(`</div>`)
	})
}
