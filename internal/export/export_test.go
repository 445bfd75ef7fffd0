package export

import (
	"bytes"
	"testing"

	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsWorkbookRoundTrip(t *testing.T) {
	branchID := uuid.New()
	clients := []*client.Client{
		{Name: "Acme Ltd", Email: "ops@acme.test", Phone: "555-0100", PAN: "AAAPA1234A", GSTIN: "22AAAAA0000A1Z5", BranchID: &branchID, Status: client.StatusActive},
		{Name: "Beta Inc", Status: client.StatusInactive},
	}

	f, err := ClientsWorkbook(clients, map[string]string{branchID.String(): "HQ"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	parsed, err := ParseClients(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, "Acme Ltd", parsed[0].Client.Name)
	assert.Equal(t, "ops@acme.test", parsed[0].Client.Email)
	assert.Equal(t, "HQ", parsed[0].BranchCode)
	assert.Equal(t, client.StatusActive, parsed[0].Client.Status)

	assert.Equal(t, "Beta Inc", parsed[1].Client.Name)
	assert.Empty(t, parsed[1].BranchCode)
	assert.Equal(t, client.StatusInactive, parsed[1].Client.Status)
}

func TestParseClients_SkipsBlankRowsAndDefaultsStatus(t *testing.T) {
	f, err := ClientsWorkbook([]*client.Client{{Name: "Acme Ltd"}}, nil)
	require.NoError(t, err)
	// An extra row with no name must be ignored.
	require.NoError(t, f.SetCellValue("Sheet1", "B3", "stray@acme.test"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	parsed, err := ParseClients(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, client.StatusActive, parsed[0].Client.Status)
}

func TestTimelinesWorkbook(t *testing.T) {
	f, err := TimelinesWorkbook([]TimelineRow{
		{Activity: "VAT Filing", Clients: "Acme Ltd", Frequency: "Weekly", Schedule: "every Monday at 09:30 AM", Status: "pending"},
	})
	require.NoError(t, err)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Activity", rows[0][0])
	assert.Equal(t, "VAT Filing", rows[1][0])
	assert.Equal(t, "every Monday at 09:30 AM", rows[1][3])
}
