package app

import (
	"encoding/json"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/member"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

type memberRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	RoleID   string `json:"roleId,omitempty"`
	BranchID string `json:"branchId,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

type memberResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	RoleID    string            `json:"roleId,omitempty"`
	BranchID  string            `json:"branchId,omitempty"`
	Active    bool              `json:"active"`
	CreatedAt timeutil.DateTime `json:"createdAt"`
}

func toMemberResponse(m *member.Member) memberResponse {
	resp := memberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
	if m.RoleID != nil {
		resp.RoleID = m.RoleID.String()
	}
	if m.BranchID != nil {
		resp.BranchID = m.BranchID.String()
	}
	return resp
}

func (req memberRequest) toMember(orgID string) (*member.Member, error) {
	m := &member.Member{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Active: true,
		OrgID:  orgID,
	}
	if req.Active != nil {
		m.Active = *req.Active
	}
	if req.RoleID != "" {
		roleID, err := uuid.Parse(req.RoleID)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid role id")
		}
		m.RoleID = &roleID
	}
	if req.BranchID != "" {
		branchID, err := uuid.Parse(req.BranchID)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid branch id")
		}
		m.BranchID = &branchID
	}
	return m, nil
}

func (s Server) membersHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		sort, desc := sortParams(r)
		members, err := s.memberService.Members(r.Context(), orgID, &member.Filter{
			Search:   r.URL.Query().Get("search"),
			BranchID: r.URL.Query().Get("branch"),
			RoleID:   r.URL.Query().Get("role"),
			Sort:     sort,
			Desc:     desc,
		}, pag)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toCollectionResponse(members, requestURL(r), toMemberResponse), http.StatusOK)
	})
}

func (s Server) createMemberHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req memberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		m, err := req.toMember(orgID)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.memberService.Create(r.Context(), m); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toMemberResponse(m), requestURL(r)), http.StatusCreated)
	})
}

func (s Server) memberHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		m, err := s.memberService.Member(r.Context(), r.PathValue("member_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toMemberResponse(m), requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateMemberHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("member_id"))
		if !ok {
			return
		}

		var req memberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		m, err := req.toMember(orgID)
		if err != nil {
			writeError(w, err)
			return
		}
		m.ID = id
		if err := s.memberService.Update(r.Context(), m); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toMemberResponse(m), requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteMemberHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("member_id"))
		if !ok {
			return
		}

		if err := s.memberService.Delete(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
