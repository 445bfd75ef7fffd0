package member

import (
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

// Member is a team member of the firm who can be assigned recurring work.
type Member struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string
	Email    string
	Phone    string
	RoleID   *uuid.UUID
	BranchID *uuid.UUID
	Active   bool

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

type Filter struct {
	Search   string
	BranchID string
	RoleID   string
	Sort     string
	Desc     bool
}
