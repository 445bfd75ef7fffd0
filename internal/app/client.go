package app

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/branch"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/export"
	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

type clientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	PAN      string `json:"pan,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
	BranchID string `json:"branchId,omitempty"`
	Status   string `json:"status,omitempty"`
}

type clientResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	PAN       string            `json:"pan,omitempty"`
	GSTIN     string            `json:"gstin,omitempty"`
	BranchID  string            `json:"branchId,omitempty"`
	Status    string            `json:"status"`
	CreatedAt timeutil.DateTime `json:"createdAt"`
}

func toClientResponse(c *client.Client) clientResponse {
	resp := clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		PAN:       c.PAN,
		GSTIN:     c.GSTIN,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
	if c.BranchID != nil {
		resp.BranchID = c.BranchID.String()
	}
	return resp
}

func (req clientRequest) toClient(orgID string) (*client.Client, error) {
	c := &client.Client{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		PAN:    req.PAN,
		GSTIN:  req.GSTIN,
		Status: client.Status(req.Status),
		OrgID:  orgID,
	}
	if req.BranchID != "" {
		branchID, err := uuid.Parse(req.BranchID)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid branch id")
		}
		c.BranchID = &branchID
	}
	return c, nil
}

func (s Server) clientsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		sort, desc := sortParams(r)
		clients, err := s.clientService.Clients(r.Context(), orgID, &client.Filter{
			Search:   r.URL.Query().Get("search"),
			BranchID: r.URL.Query().Get("branch"),
			GroupID:  r.URL.Query().Get("group"),
			Status:   client.Status(r.URL.Query().Get("status")),
			Sort:     sort,
			Desc:     desc,
		}, pag)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toCollectionResponse(clients, requestURL(r), toClientResponse), http.StatusOK)
	})
}

func (s Server) createClientHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		c, err := req.toClient(orgID)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.clientService.Create(r.Context(), c); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toClientResponse(c), requestURL(r)), http.StatusCreated)
	})
}

func (s Server) clientHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		c, err := s.clientService.Client(r.Context(), r.PathValue("client_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toClientResponse(c), requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateClientHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("client_id"))
		if !ok {
			return
		}

		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		c, err := req.toClient(orgID)
		if err != nil {
			writeError(w, err)
			return
		}
		c.ID = id
		if err := s.clientService.Update(r.Context(), c); err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(toClientResponse(c), requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteClientHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("client_id"))
		if !ok {
			return
		}

		if err := s.clientService.Delete(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s Server) deleteClientsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req idsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}
		ids, ok := parseIDs(w, req.IDs)
		if !ok {
			return
		}

		if err := s.clientService.DeleteMany(r.Context(), ids, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s Server) exportClientsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		clients, err := s.clientService.Clients(r.Context(), orgID, nil, exportPagination())
		if err != nil {
			writeError(w, err)
			return
		}

		branchCodes, err := s.branchCodes(r, orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		f, err := export.ClientsWorkbook(clients.Records, branchCodes)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="clients.xlsx"`)
		if err := f.Write(w); err != nil {
			writeError(w, err)
		}
	})
}

func (s Server) importClientsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		// Multipart uploads carry the spreadsheet as the "file" part; other
		// requests carry it as the raw body.
		var spreadsheet io.Reader = r.Body
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			file, _, err := r.FormFile("file")
			if err != nil {
				api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "the spreadsheet file is missing"))
				return
			}
			defer file.Close()
			spreadsheet = file
		}

		parsed, err := export.ParseClients(spreadsheet)
		if err != nil {
			api.WriteError(w, api.NewError("INVALID_SPREADSHEET", http.StatusBadRequest, err.Error()))
			return
		}

		imported := 0
		for _, row := range parsed {
			c := row.Client
			c.OrgID = orgID
			if row.BranchCode != "" {
				b, err := s.branchService.Branch(r.Context(), branch.Query{Code: row.BranchCode}, orgID)
				if err != nil {
					writeError(w, err)
					return
				}
				c.BranchID = &b.ID
			}
			if err := s.clientService.Create(r.Context(), &c); err != nil {
				writeError(w, err)
				return
			}
			imported++
		}

		api.WriteJSON(w, map[string]any{"imported": imported, "meta": api.NewMeta()}, http.StatusCreated)
	})
}

// branchCodes maps branch IDs to codes for spreadsheet rendering.
func (s Server) branchCodes(r *http.Request, orgID string) (map[string]string, error) {
	branches, err := s.branchService.Branches(r.Context(), orgID, nil, exportPagination())
	if err != nil {
		return nil, err
	}

	codes := make(map[string]string, len(branches.Records))
	for _, b := range branches.Records {
		codes[b.ID.String()] = b.Code
	}
	return codes, nil
}

// exportPagination requests the largest page the API serves; exports are not
// paginated in the panel.
func exportPagination() page.Pagination {
	size := int32(1000)
	return page.NewPagination(nil, &size)
}
