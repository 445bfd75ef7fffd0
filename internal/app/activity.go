package app

import (
	"encoding/json"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/activity"
	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/timeutil"
)

type activityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type activityResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	CreatedAt   timeutil.DateTime `json:"createdAt"`
}

func toActivityResponse(a *activity.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		Category:    a.Category,
		CreatedAt:   a.CreatedAt,
	}
}

func (s Server) activitiesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		sort, desc := sortParams(r)
		activities, err := s.activityService.Activities(r.Context(), orgID, &activity.Filter{
			Search:   r.URL.Query().Get("search"),
			Category: r.URL.Query().Get("category"),
			Sort:     sort,
			Desc:     desc,
		}, pag)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toCollectionResponse(activities, requestURL(r), toActivityResponse), http.StatusOK)
	})
}

func (s Server) createActivityHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req activityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		a := &activity.Activity{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			OrgID:       orgID,
		}
		if err := s.activityService.Create(r.Context(), a); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toActivityResponse(a), requestURL(r)), http.StatusCreated)
	})
}

func (s Server) activityHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		a, err := s.activityService.Activity(r.Context(), r.PathValue("activity_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toActivityResponse(a), requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateActivityHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("activity_id"))
		if !ok {
			return
		}

		var req activityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		a := &activity.Activity{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			OrgID:       orgID,
		}
		if err := s.activityService.Update(r.Context(), a); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toActivityResponse(a), requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteActivityHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("activity_id"))
		if !ok {
			return
		}

		if err := s.activityService.Delete(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
