package app

import (
	"encoding/json"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/branch"
	"github.com/firmdesk/firmdesk/internal/timeutil"
)

type branchRequest struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	City  string `json:"city,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type branchResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Code      string            `json:"code"`
	City      string            `json:"city,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	CreatedAt timeutil.DateTime `json:"createdAt"`
}

func toBranchResponse(b *branch.Branch) branchResponse {
	return branchResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Code:      b.Code,
		City:      b.City,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
	}
}

func (s Server) branchesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		sort, desc := sortParams(r)
		branches, err := s.branchService.Branches(r.Context(), orgID, &branch.Filter{
			Search: r.URL.Query().Get("search"),
			Sort:   sort,
			Desc:   desc,
		}, pag)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toCollectionResponse(branches, requestURL(r), toBranchResponse), http.StatusOK)
	})
}

func (s Server) createBranchHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req branchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		b := &branch.Branch{
			Name:  req.Name,
			Code:  req.Code,
			City:  req.City,
			Phone: req.Phone,
			OrgID: orgID,
		}
		if err := s.branchService.Create(r.Context(), b); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toBranchResponse(b), requestURL(r)), http.StatusCreated)
	})
}

func (s Server) branchHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		b, err := s.branchService.Branch(r.Context(), branch.Query{ID: r.PathValue("branch_id")}, orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toBranchResponse(b), requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateBranchHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("branch_id"))
		if !ok {
			return
		}

		var req branchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		b := &branch.Branch{
			ID:    id,
			Name:  req.Name,
			Code:  req.Code,
			City:  req.City,
			Phone: req.Phone,
			OrgID: orgID,
		}
		if err := s.branchService.Update(r.Context(), b); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toBranchResponse(b), requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteBranchHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("branch_id"))
		if !ok {
			return
		}

		if err := s.branchService.Delete(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
