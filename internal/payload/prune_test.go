package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrune_DropsEmptyValues(t *testing.T) {
	in := map[string]any{
		"hourlyInterval": 1,
		"dailyTime":      "",
		"weeklyDays":     []any{},
		"monthlyTime":    "09:00 AM",
	}

	got := Prune(in)
	assert.Equal(t, map[string]any{
		"hourlyInterval": 1,
		"monthlyTime":    "09:00 AM",
	}, got)
}

func TestPrune_RecursesIntoNestedObjects(t *testing.T) {
	in := map[string]any{
		"frequency": "Daily",
		"frequencyConfig": map[string]any{
			"dailyTime":  "09:00 AM",
			"weeklyTime": "",
			"weeklyDays": []any{},
		},
		"udin":     nil,
		"metadata": map[string]any{"note": ""},
	}

	got := Prune(in)
	require.Contains(t, got, "frequencyConfig")
	assert.Equal(t, map[string]any{"dailyTime": "09:00 AM"}, got["frequencyConfig"])
	// Objects emptied by pruning disappear along with nulls.
	assert.NotContains(t, got, "udin")
	assert.NotContains(t, got, "metadata")
}

func TestPrune_KeepsNonEmptyArraysWhole(t *testing.T) {
	in := map[string]any{
		"client":     []any{"id-1", "id-2"},
		"weeklyDays": []any{"Monday"},
		"turnover":   0,
		"flag":       false,
	}

	got := Prune(in)
	assert.Equal(t, []any{"id-1", "id-2"}, got["client"])
	assert.Equal(t, []any{"Monday"}, got["weeklyDays"])
	// Zero numbers and false are values, not emptiness.
	assert.Equal(t, 0, got["turnover"])
	assert.Equal(t, false, got["flag"])
}

func TestMarshal_PrunesStructPayloads(t *testing.T) {
	type config struct {
		DailyTime  string   `json:"dailyTime"`
		WeeklyDays []string `json:"weeklyDays"`
	}
	type body struct {
		Frequency string  `json:"frequency"`
		Config    config  `json:"frequencyConfig"`
		UDIN      *string `json:"udin"`
	}

	got, err := Marshal(body{Frequency: "Daily", Config: config{DailyTime: "09:00 AM"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"frequency":       "Daily",
		"frequencyConfig": map[string]any{"dailyTime": "09:00 AM"},
	}, got)
}
