package app

import (
	"encoding/json"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/timeutil"
)

type groupRequest struct {
	Name      string   `json:"name"`
	ClientIDs []string `json:"clients"`
}

type groupResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ClientIDs []string          `json:"clients"`
	CreatedAt timeutil.DateTime `json:"createdAt"`
}

func toGroupResponse(g *client.Group) groupResponse {
	ids := make([]string, len(g.ClientIDs))
	for i, id := range g.ClientIDs {
		ids[i] = id.String()
	}
	return groupResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		ClientIDs: ids,
		CreatedAt: g.CreatedAt,
	}
}

func (s Server) groupsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		groups, err := s.clientService.Groups(r.Context(), orgID, r.URL.Query().Get("search"), pag)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toCollectionResponse(groups, requestURL(r), toGroupResponse), http.StatusOK)
	})
}

func (s Server) createGroupHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}
		clientIDs, ok := parseIDs(w, req.ClientIDs)
		if !ok {
			return
		}

		g := &client.Group{Name: req.Name, ClientIDs: clientIDs, OrgID: orgID}
		if err := s.clientService.CreateGroup(r.Context(), g); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toGroupResponse(g), requestURL(r)), http.StatusCreated)
	})
}

func (s Server) groupHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		g, err := s.clientService.Group(r.Context(), r.PathValue("group_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toGroupResponse(g), requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateGroupHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("group_id"))
		if !ok {
			return
		}

		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}
		clientIDs, ok := parseIDs(w, req.ClientIDs)
		if !ok {
			return
		}

		g := &client.Group{ID: id, Name: req.Name, ClientIDs: clientIDs, OrgID: orgID}
		if err := s.clientService.UpdateGroup(r.Context(), g); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toGroupResponse(g), requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteGroupHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("group_id"))
		if !ok {
			return
		}

		if err := s.clientService.DeleteGroup(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
