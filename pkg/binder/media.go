package binder

import (
	"net/http"
	"strings"
)

const (
	mediaTypeForm      = "application/x-www-form-urlencoded"
	mediaTypeMultipart = "multipart/form-data"
	mediaTypeJSON      = "application/json"
)

// mediaType returns the lowercased media type of the request without parameters.
func mediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func isFormMedia(mt string) bool {
	return mt == mediaTypeForm || mt == mediaTypeMultipart
}
