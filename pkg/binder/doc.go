// Package binder decodes HTTP request bodies into typed structs.
//
// Two binders are provided. Form() handles application/x-www-form-urlencoded
// and multipart/form-data bodies using `form` struct tags. JSON() handles
// application/json bodies strictly: unknown fields and trailing data fail.
//
//	type FormSubmission struct {
//		Name    string `form:"name" json:"name"`
//		Email   string `form:"email" json:"email"`
//		Product string `form:"product" json:"product"`
//		Message string `form:"message" json:"message"`
//	}
//
// Each binder returns ErrBinderNotApplicable for the other's media type, so
// they can be chained and the first matching one wins. Bound values are
// never trimmed or rewritten.
//
// # Error Handling
//
//   - ErrMissingContentType: the request has no Content-Type header
//   - ErrUnsupportedMediaType: the media type is neither form nor JSON
//   - ErrInvalidForm: the form body could not be parsed or converted
//   - ErrInvalidJSON: the JSON body is malformed, too large or has unknown fields
package binder
