package api

import (
	"context"
	"net/http"
)

// RequestURL records the externally visible URL of the request in the
// context, so handlers can build pagination links without re-deriving the
// public host.
func RequestURL(next http.Handler, host string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqURL := host + r.URL.RequestURI()
		ctx := context.WithValue(r.Context(), CtxKeyRequestURL, reqURL)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
