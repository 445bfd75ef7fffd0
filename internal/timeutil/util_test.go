package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_JSON(t *testing.T) {
	dt, err := ParseDateTime("2024-06-15T10:30:00.000Z")
	require.NoError(t, err)

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-15T10:30:00.000Z"`, string(data))

	var parsed DateTime
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(dt.Time))

	assert.Error(t, json.Unmarshal([]byte(`"15/06/2024"`), &parsed))
}

func TestDate_EndOfDay(t *testing.T) {
	d, err := ParseDate("2024-06-15")
	require.NoError(t, err)

	eod := d.EndOfDay()
	assert.Equal(t, "2024-06-15T23:59:59.000Z", eod.String())
	assert.Equal(t, d, eod.ToDate())
}

func TestNewDate_TruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	d := NewDate(time.Date(2024, 6, 16, 2, 30, 0, 0, loc))

	// 2:30 IST on the 16th is still the 15th in UTC.
	assert.Equal(t, "2024-06-15", d.String())
	assert.Equal(t, time.UTC, d.Location())
}

func TestDateNow(t *testing.T) {
	d := DateNow()
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.UTC, d.Location())
}
