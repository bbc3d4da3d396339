package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that hands err to the configured error handler
// without writing anything itself.
func Error(err error) Response {
	return errorResponse{err: err}
}
