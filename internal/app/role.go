package app

import (
	"encoding/json"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/role"
	"github.com/firmdesk/firmdesk/internal/timeutil"
)

type roleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type roleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Permissions []string          `json:"permissions"`
	CreatedAt   timeutil.DateTime `json:"createdAt"`
}

func toRoleResponse(r *role.Role) roleResponse {
	perms := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = string(p)
	}
	return roleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Permissions: perms,
		CreatedAt:   r.CreatedAt,
	}
}

func (req roleRequest) toRole(orgID string) *role.Role {
	perms := make([]role.Permission, len(req.Permissions))
	for i, p := range req.Permissions {
		perms[i] = role.Permission(p)
	}
	return &role.Role{Name: req.Name, Permissions: perms, OrgID: orgID}
}

func (s Server) rolesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		roles, err := s.roleService.Roles(r.Context(), orgID, r.URL.Query().Get("search"), pag)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toCollectionResponse(roles, requestURL(r), toRoleResponse), http.StatusOK)
	})
}

func (s Server) createRoleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req roleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		ro := req.toRole(orgID)
		if err := s.roleService.Create(r.Context(), ro); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toRoleResponse(ro), requestURL(r)), http.StatusCreated)
	})
}

func (s Server) roleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		ro, err := s.roleService.Role(r.Context(), r.PathValue("role_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toRoleResponse(ro), requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateRoleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("role_id"))
		if !ok {
			return
		}

		var req roleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		ro := req.toRole(orgID)
		ro.ID = id
		if err := s.roleService.Update(r.Context(), ro); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toRoleResponse(ro), requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteRoleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("role_id"))
		if !ok {
			return
		}

		if err := s.roleService.Delete(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
