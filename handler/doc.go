// Package handler provides type-safe HTTP request handling for the showcase
// web surface.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. The same handler serves plain form posts and DataStar
// requests: responses inspect the request and either write HTML or patch the
// page over Server-Sent Events.
//
//	func contact(ctx handler.Context, sub mailto.FormSubmission) handler.Response {
//		msg, err := enc.Compose(sub)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.TemplRedirect(page.Confirmation(msg.EncodedURI), msg.EncodedURI,
//			handler.WithTarget("#contact-status"),
//			handler.WithPatchMode(handler.PatchInner),
//		)
//	}
//
//	r.Post("/contact", handler.Wrap(contact,
//		handler.WithBinders[handler.Context, mailto.FormSubmission](binder.Form()),
//		handler.WithErrorHandler[handler.Context, mailto.FormSubmission](errHandler),
//	))
//
// # Response Types
//
//	handler.JSON(data)                     // 200 OK with data envelope
//	handler.JSON(data, WithJSONStatus(201)) // custom status
//	handler.JSONError(err)                 // error envelope, status from err
//	handler.Templ(component)               // render a templ component
//	handler.TemplPartial(partial, full)    // partial for DataStar, full page otherwise
//	handler.TemplMulti(patches...)         // several targets at once
//	handler.Redirect("/")                  // 303 or client-side navigation
//	handler.TemplRedirect(c, uri)          // patch then navigate in one stream
//	handler.Error(err)                     // defer to the configured error handler
//
// # Error Handling
//
// NewErrorHandler classifies errors into a status code and message.
// HTTPError values carry their own status. Binder failures map to 400 or 415.
// validator.ValidationErrors map to 400 with "field: message" pairs, and
// JSONError reports them as 422 with per-field details. Regular requests get a
// full error page; DataStar requests get a toast prepended to #toast-container.
package handler
