package app

import (
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
)

func (s Server) dashboardHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		summary, err := s.dashboardService.Summary(r.Context(), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(summary, requestURL(r)), http.StatusOK)
	})
}
