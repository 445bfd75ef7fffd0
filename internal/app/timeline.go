package app

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/export"
	"github.com/firmdesk/firmdesk/internal/frequency"
	"github.com/firmdesk/firmdesk/internal/payload"
	"github.com/firmdesk/firmdesk/internal/timeline"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

// clientField accepts both a single client id and a list of them, so a form
// that collapsed its selection to one value still parses.
type clientField []string

func (f *clientField) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*f = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*f = nil
		return nil
	}
	*f = []string{one}
	return nil
}

type timelineRequest struct {
	ActivityID      string             `json:"activity"`
	ClientIDs       clientField        `json:"client"`
	BranchID        string             `json:"branchId"`
	Frequency       string             `json:"frequency"`
	FrequencyConfig frequency.Settings `json:"frequencyConfig"`
	Status          string             `json:"status"`
	UDIN            string             `json:"udin"`
	Turnover        *float64           `json:"turnover"`
	AssignedMember  string             `json:"assignedMember"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
}

// timelineWire is the response shape before pruning. Empty optional fields
// are dropped from the payload entirely rather than serialized as zero
// values.
type timelineWire struct {
	ID              string             `json:"id"`
	ActivityID      string             `json:"activity"`
	ClientIDs       []string           `json:"client"`
	BranchID        string             `json:"branchId"`
	Frequency       string             `json:"frequency"`
	FrequencyConfig frequency.Settings `json:"frequencyConfig"`
	Status          string             `json:"status"`
	UDIN            string             `json:"udin"`
	Turnover        *float64           `json:"turnover"`
	AssignedMember  string             `json:"assignedMember"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
	CreatedAt       string             `json:"createdAt"`
}

// toTimelineResponse renders a timeline in the stored wire form: 12-hour
// times, end-of-day timestamps, empties pruned.
func toTimelineResponse(t *timeline.Timeline) (map[string]any, error) {
	wire := timelineWire{
		ID:              t.ID.String(),
		ActivityID:      t.ActivityID.String(),
		ClientIDs:       idStrings(t.ClientIDs),
		Frequency:       string(t.Frequency),
		FrequencyConfig: t.FrequencyConfig,
		Status:          string(t.Status),
		Turnover:        t.Turnover,
		CreatedAt:       t.CreatedAt.String(),
	}
	if t.BranchID != nil {
		wire.BranchID = t.BranchID.String()
	}
	if t.AssignedMemberID != nil {
		wire.AssignedMember = t.AssignedMemberID.String()
	}
	if t.UDIN != nil {
		wire.UDIN = *t.UDIN
	}
	if t.StartDate != nil {
		wire.StartDate = t.StartDate.String()
	}
	if t.EndDate != nil {
		wire.EndDate = t.EndDate.String()
	}
	return payload.Marshal(wire)
}

// toTimelineEditResponse renders a timeline in the edit form: 24-hour times
// and date-only bounds, ready for the form to bind.
func toTimelineEditResponse(t *timeline.Timeline) (map[string]any, error) {
	wire := timelineWire{
		ID:              t.ID.String(),
		ActivityID:      t.ActivityID.String(),
		ClientIDs:       idStrings(t.ClientIDs),
		Frequency:       string(t.Frequency),
		FrequencyConfig: t.EditSettings(),
		Status:          string(t.Status),
		Turnover:        t.Turnover,
		CreatedAt:       t.CreatedAt.String(),
	}
	if t.BranchID != nil {
		wire.BranchID = t.BranchID.String()
	}
	if t.AssignedMemberID != nil {
		wire.AssignedMember = t.AssignedMemberID.String()
	}
	if t.UDIN != nil {
		wire.UDIN = *t.UDIN
	}
	if t.StartDate != nil {
		wire.StartDate = t.StartDate.ToDate().String()
	}
	if t.EndDate != nil {
		wire.EndDate = t.EndDate.ToDate().String()
	}
	return payload.Marshal(wire)
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (req timelineRequest) toTimeline(orgID string) (*timeline.Timeline, error) {
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid activity id")
	}

	t := &timeline.Timeline{
		ActivityID:      activityID,
		Frequency:       frequency.Kind(req.Frequency),
		FrequencyConfig: req.FrequencyConfig,
		Status:          timeline.Status(req.Status),
		Turnover:        req.Turnover,
		OrgID:           orgID,
	}

	for _, id := range req.ClientIDs {
		clientID, err := uuid.Parse(id)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid client id")
		}
		t.ClientIDs = append(t.ClientIDs, clientID)
	}

	if req.BranchID != "" {
		branchID, err := uuid.Parse(req.BranchID)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid branch id")
		}
		t.BranchID = &branchID
	}
	if req.AssignedMember != "" {
		memberID, err := uuid.Parse(req.AssignedMember)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid member id")
		}
		t.AssignedMemberID = &memberID
	}
	if req.UDIN != "" {
		udin := req.UDIN
		t.UDIN = &udin
	}

	if req.StartDate != "" {
		d, err := timeutil.ParseDate(req.StartDate)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid start date")
		}
		startDate := d.EndOfDay()
		t.StartDate = &startDate
	}
	if req.EndDate != "" {
		d, err := timeutil.ParseDate(req.EndDate)
		if err != nil {
			return nil, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid end date")
		}
		endDate := d.EndOfDay()
		t.EndDate = &endDate
	}

	return t, nil
}

func (s Server) timelinesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		pag, err := api.NewPagination(r)
		if err != nil {
			writeError(w, err)
			return
		}

		sort, desc := sortParams(r)
		timelines, err := s.timelineService.Timelines(r.Context(), orgID, &timeline.Filter{
			BranchID:  r.URL.Query().Get("branch"),
			ClientID:  r.URL.Query().Get("client"),
			Status:    timeline.Status(r.URL.Query().Get("status")),
			Frequency: frequency.Kind(r.URL.Query().Get("frequency")),
			Sort:      sort,
			Desc:      desc,
		}, pag)
		if err != nil {
			writeError(w, err)
			return
		}

		records := make([]map[string]any, 0, len(timelines.Records))
		for _, t := range timelines.Records {
			record, err := toTimelineResponse(t)
			if err != nil {
				writeError(w, err)
				return
			}
			records = append(records, record)
		}

		reqURL := requestURL(r)
		api.WriteJSON(w, collectionResponse[map[string]any]{
			Data:  records,
			Links: api.NewPaginatedLinks(reqURL, timelines),
			Meta:  api.NewPaginatedMeta(timelines),
		}, http.StatusOK)
	})
}

func (s Server) createTimelineHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		var req timelineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		t, err := req.toTimeline(orgID)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.timelineService.Create(r.Context(), t); err != nil {
			writeError(w, err)
			return
		}

		record, err := toTimelineResponse(t)
		if err != nil {
			writeError(w, err)
			return
		}
		api.WriteJSON(w, toRecordResponse(record, requestURL(r)), http.StatusCreated)
	})
}

func (s Server) timelineHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		t, err := s.timelineService.Timeline(r.Context(), r.PathValue("timeline_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		convert := toTimelineResponse
		if r.URL.Query().Get("form") == "edit" {
			convert = toTimelineEditResponse
		}
		record, err := convert(t)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toRecordResponse(record, requestURL(r)), http.StatusOK)
	})
}

func (s Server) updateTimelineHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("timeline_id"))
		if !ok {
			return
		}

		var req timelineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		t, err := req.toTimeline(orgID)
		if err != nil {
			writeError(w, err)
			return
		}
		t.ID = id
		if err := s.timelineService.Update(r.Context(), t); err != nil {
			writeError(w, err)
			return
		}

		record, err := toTimelineResponse(t)
		if err != nil {
			writeError(w, err)
			return
		}
		api.WriteJSON(w, toRecordResponse(record, requestURL(r)), http.StatusOK)
	})
}

func (s Server) deleteTimelineHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		id, ok := parseID(w, r.PathValue("timeline_id"))
		if !ok {
			return
		}

		if err := s.timelineService.Delete(r.Context(), id, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s Server) deleteTimelinesHandler() http.Handler {
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

		if err := s.timelineService.DeleteMany(r.Context(), ids, orgID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

type previewRequest struct {
	ActivityName    string             `json:"activityName"`
	ClientNames     []string           `json:"clientNames"`
	Frequency       string             `json:"frequency"`
	FrequencyConfig frequency.Settings `json:"frequencyConfig"`
	StartDate       string             `json:"startDate"`
	EndDate         string             `json:"endDate"`
}

type previewResponse struct {
	Preview string           `json:"preview"`
	Status  frequency.Status `json:"status"`
}

// previewTimelineHandler renders the schedule summary for an unsaved form
// state. Nothing is persisted; an incomplete configuration yields an empty
// preview with the advisory status.
func (s Server) previewTimelineHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req previewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "could not parse body"))
			return
		}

		var start, end *timeutil.Date
		if req.StartDate != "" {
			d, err := timeutil.ParseDate(req.StartDate)
			if err != nil {
				api.WriteError(w, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid start date"))
				return
			}
			start = &d
		}
		if req.EndDate != "" {
			d, err := timeutil.ParseDate(req.EndDate)
			if err != nil {
				api.WriteError(w, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid end date"))
				return
			}
			end = &d
		}

		kind := frequency.Kind(req.Frequency)
		api.WriteJSON(w, previewResponse{
			Preview: frequency.Preview(req.ActivityName, req.ClientNames, kind, req.FrequencyConfig, start, end),
			Status:  frequency.StatusOf(kind, req.FrequencyConfig),
		}, http.StatusOK)
	})
}

func (s Server) timelinePreviewHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")

		preview, err := s.timelineService.Preview(r.Context(), r.PathValue("timeline_id"), orgID)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, map[string]any{"preview": preview, "meta": api.NewMeta()}, http.StatusOK)
	})
}

func (s Server) exportTimelinesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.PathValue("org_id")
		ctx := r.Context()

		timelines, err := s.timelineService.Timelines(ctx, orgID, nil, exportPagination())
		if err != nil {
			writeError(w, err)
			return
		}

		rows := make([]export.TimelineRow, 0, len(timelines.Records))
		for _, t := range timelines.Records {
			act, err := s.activityService.Activity(ctx, t.ActivityID.String(), orgID)
			if err != nil {
				writeError(w, err)
				return
			}
			names, err := s.clientService.Names(ctx, t.ClientIDs, orgID)
			if err != nil {
				writeError(w, err)
				return
			}

			var start, end *timeutil.Date
			row := export.TimelineRow{
				Activity:  act.Name,
				Clients:   strings.Join(names, ", "),
				Frequency: string(t.Frequency),
				Status:    string(t.Status),
			}
			if t.StartDate != nil {
				d := t.StartDate.ToDate()
				start = &d
				row.StartDate = d.String()
			}
			if t.EndDate != nil {
				d := t.EndDate.ToDate()
				end = &d
				row.EndDate = d.String()
			}
			row.Schedule = frequency.Preview(act.Name, names, t.Frequency, t.EditSettings(), start, end)
			rows = append(rows, row)
		}

		f, err := export.TimelinesWorkbook(rows)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="timelines.xlsx"`)
		if err := f.Write(w); err != nil {
			writeError(w, err)
		}
	})
}
