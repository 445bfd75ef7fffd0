package api

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	// Responses carry URLs in pagination links; HTML escaping would mangle
	// the & separators for no benefit outside a browser-embedded context.
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(data)
}
