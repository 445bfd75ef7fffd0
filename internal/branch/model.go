package branch

import (
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

type Branch struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name  string
	Code  string
	City  string
	Phone string

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

type Query struct {
	ID   string
	Code string
}

type Filter struct {
	Search string
	Sort   string
	Desc   bool
}
