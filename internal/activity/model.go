package activity

import (
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

// Activity is a unit of recurring work the firm performs for its clients,
// e.g. a VAT filing or an audit.
type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string
	Description string
	Category    string

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

type Filter struct {
	Search   string
	Category string
	Sort     string
	Desc     bool
}
