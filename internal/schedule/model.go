package schedule

import (
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

// Schedule is a due-run marker polled by the scheduler. Its ID is the ID of
// the entity the task operates on.
type Schedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskType  TaskType
	NextRunAt timeutil.DateTime

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

type TaskType string

const (
	TaskTypeTimeline TaskType = "TIMELINE"
)
