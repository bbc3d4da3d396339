package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (1MB).
const DefaultMaxMemory = 1 << 20

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Values are copied verbatim; trimming and other
// normalization belong to the caller.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Fields without a tag bind to their lowercased name. Supported field types
// are strings, integers, floats, bools, pointers to those and slices of them.
//
// Form reports ErrBinderNotApplicable for JSON bodies so it can be chained
// with JSON():
//
//	r.Post("/contact", handler.Wrap(contact,
//		handler.WithBinders[handler.Context, mailto.FormSubmission](
//			binder.Form(),
//			binder.JSON(),
//		),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt := mediaType(r)

		var values map[string][]string

		switch mt {
		case "":
			return fmt.Errorf("%w: expected %s or %s", ErrMissingContentType, mediaTypeForm, mediaTypeMultipart)

		case mediaTypeJSON:
			return ErrBinderNotApplicable

		case mediaTypeForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case mediaTypeMultipart:
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil {
				return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
			}
			if !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = make(map[string][]string)
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mt, mediaTypeForm, mediaTypeMultipart)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

// validateBoundary checks a multipart boundary against RFC 2046: 1 to 70
// characters from the bchars set, not ending with a space.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	if boundary[len(boundary)-1] == ' ' {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '\'' || c == '(' || c == ')' || c == '+' || c == '_' || c == ',' ||
			c == '-' || c == '.' || c == '/' || c == ':' || c == '=' || c == '?' || c == ' ':
		default:
			return false
		}
	}
	return true
}
