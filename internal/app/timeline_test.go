package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/firmdesk/firmdesk/internal/frequency"
	"github.com/firmdesk/firmdesk/internal/timeline"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientField_UnmarshalJSON(t *testing.T) {
	var f clientField
	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &f))
	assert.Equal(t, clientField{"a", "b"}, f)

	f = nil
	require.NoError(t, json.Unmarshal([]byte(`"a"`), &f))
	assert.Equal(t, clientField{"a"}, f)

	f = nil
	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Empty(t, f)

	assert.Error(t, json.Unmarshal([]byte(`123`), &f))
}

func TestPreviewTimelineHandler(t *testing.T) {
	handler := Server{}.previewTimelineHandler()

	body := `{
		"activityName": "VAT Filing",
		"clientNames": ["Acme Ltd"],
		"frequency": "Weekly",
		"frequencyConfig": {"weeklyDays": ["Monday", "Wednesday"], "weeklyTime": "09:30"},
		"startDate": "2024-01-01",
		"endDate": "2024-12-31"
	}`
	r := httptest.NewRequest(http.MethodPost, "/app/orgs/test/timelines/preview", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp previewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t,
		"VAT Filing activity will be created every Monday, Wednesday at 09:30 AM for Acme Ltd, starting from 01/01/2024 and continuing till 31/12/2024",
		resp.Preview)
	assert.Equal(t, frequency.StatusConfigured, resp.Status)
}

func TestPreviewTimelineHandler_Incomplete(t *testing.T) {
	handler := Server{}.previewTimelineHandler()

	body := `{
		"activityName": "VAT Filing",
		"clientNames": ["Acme Ltd"],
		"frequency": "Daily",
		"frequencyConfig": {}
	}`
	r := httptest.NewRequest(http.MethodPost, "/app/orgs/test/timelines/preview", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp previewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Preview)
	assert.Equal(t, frequency.StatusIncomplete, resp.Status)
}

func TestPreviewTimelineHandler_InvalidDate(t *testing.T) {
	handler := Server{}.previewTimelineHandler()

	body := `{"activityName": "VAT Filing", "clientNames": ["Acme Ltd"], "frequency": "Hourly", "frequencyConfig": {"hourlyInterval": 2}, "startDate": "01/01/2024"}`
	r := httptest.NewRequest(http.MethodPost, "/app/orgs/test/timelines/preview", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToTimelineResponse_PrunesEmptyFields(t *testing.T) {
	tl := &timeline.Timeline{
		ID:         uuid.New(),
		ActivityID: uuid.New(),
		ClientIDs:  []uuid.UUID{uuid.New()},
		Frequency:  frequency.KindMonthly,
		FrequencyConfig: frequency.Settings{
			MonthlyDay:  2,
			MonthlyTime: "02:00 PM",
		},
		Status:    timeline.StatusPending,
		CreatedAt: timeutil.DateTimeNow(),
	}

	record, err := toTimelineResponse(tl)
	require.NoError(t, err)

	assert.NotContains(t, record, "branchId")
	assert.NotContains(t, record, "udin")
	assert.NotContains(t, record, "turnover")
	assert.NotContains(t, record, "assignedMember")
	assert.NotContains(t, record, "startDate")
	assert.NotContains(t, record, "endDate")
	assert.Equal(t, "Monthly", record["frequency"])

	config, ok := record["frequencyConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "02:00 PM", config["monthlyTime"])
	assert.NotContains(t, config, "dailyTime")
	assert.NotContains(t, config, "weeklyDays")
}

func TestToTimelineEditResponse(t *testing.T) {
	start := timeutil.Date{Time: timeutil.Now()}
	startDate := start.EndOfDay()

	tl := &timeline.Timeline{
		ID:         uuid.New(),
		ActivityID: uuid.New(),
		ClientIDs:  []uuid.UUID{uuid.New()},
		Frequency:  frequency.KindDaily,
		FrequencyConfig: frequency.Settings{
			DailyTime: "02:00 PM",
		},
		Status:    timeline.StatusPending,
		StartDate: &startDate,
		CreatedAt: timeutil.DateTimeNow(),
	}

	record, err := toTimelineEditResponse(tl)
	require.NoError(t, err)

	config, ok := record["frequencyConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "14:00", config["dailyTime"])
	assert.Equal(t, startDate.ToDate().String(), record["startDate"])
}

func TestTimelineRequest_ToTimeline(t *testing.T) {
	activityID := uuid.New()
	clientID := uuid.New()

	req := timelineRequest{
		ActivityID: activityID.String(),
		ClientIDs:  clientField{clientID.String()},
		Frequency:  "Daily",
		FrequencyConfig: frequency.Settings{
			DailyTime: "09:00",
		},
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	}

	tl, err := req.toTimeline("org")
	require.NoError(t, err)
	assert.Equal(t, activityID, tl.ActivityID)
	assert.Equal(t, []uuid.UUID{clientID}, tl.ClientIDs)
	assert.Equal(t, "2024-01-01T23:59:59.000Z", tl.StartDate.String())
	assert.Equal(t, "2024-12-31T23:59:59.000Z", tl.EndDate.String())
	assert.Nil(t, tl.BranchID)
	assert.Nil(t, tl.UDIN)

	req.StartDate = "bogus"
	_, err = req.toTimeline("org")
	assert.Error(t, err)
}
