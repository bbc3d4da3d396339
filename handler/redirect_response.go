package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect sends the client to url: a 303 for regular requests, a client-side
// navigation for DataStar requests.
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// RedirectWithCode is like Redirect with a custom status for regular requests.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{
		url:  url,
		code: code,
	}
}

type templRedirectResponse struct {
	component TemplComponent
	url       string
	options   []datastar.PatchElementOption
}

func (t templRedirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchElementTempl(t.component, t.options...); err != nil {
			return err
		}
		return sse.Redirect(t.url)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// TemplRedirect patches component into the page and then navigates the client
// to url over the same SSE stream. Regular requests get the component as the
// full response; the component itself is expected to link to url.
//
// Handing a mailto URI to the browser this way opens the mail client while
// the confirmation stays on screen:
//
//	return handler.TemplRedirect(page.Confirmation(uri),
//		uri,
//		handler.WithTarget("#contact-status"),
//		handler.WithPatchMode(handler.PatchInner),
//	)
func TemplRedirect(component TemplComponent, url string, opts ...TemplOption) Response {
	return templRedirectResponse{
		component: component,
		url:       url,
		options:   opts,
	}
}
