package timeline

import (
	"github.com/firmdesk/firmdesk/internal/frequency"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

// Timeline is a recurring task: an activity performed for one or more
// clients on the schedule its frequency settings describe. The settings are
// owned exclusively by the timeline and fully replaced on every edit.
type Timeline struct {
	ID               uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ActivityID       uuid.UUID
	ClientIDs        []uuid.UUID `gorm:"serializer:json"`
	AssignedMemberID *uuid.UUID
	BranchID         *uuid.UUID
	Frequency        frequency.Kind
	// FrequencyConfig is stored in the wire form, with every time field in
	// the 12-hour "HH:MM AM/PM" representation.
	FrequencyConfig frequency.Settings `gorm:"serializer:json"`
	Status          Status
	UDIN            *string  `gorm:"column:udin"`
	Turnover        *float64
	// StartDate and EndDate are calendar bounds normalized to end-of-day UTC.
	StartDate *timeutil.DateTime
	EndDate   *timeutil.DateTime

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

// EditSettings returns the frequency settings in the 24-hour form the edit
// form binds to. Malformed stored time values degrade to empty strings.
func (t Timeline) EditSettings() frequency.Settings {
	return t.FrequencyConfig.To24Hour()
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusDelayed   Status = "delayed"
)

var statuses = []Status{StatusPending, StatusOngoing, StatusCompleted, StatusDelayed}

func ParseStatus(s string) (Status, bool) {
	for _, status := range statuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

type Filter struct {
	BranchID  string
	ClientID  string
	Status    Status
	Frequency frequency.Kind
	Sort      string
	Desc      bool
}
