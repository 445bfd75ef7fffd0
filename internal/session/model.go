package session

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

const Validity = 24 * time.Hour

type Session struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username      string
	Name          string
	Organizations Organizations `gorm:"column:organizations;type:jsonb;not null"`

	CreatedAt timeutil.DateTime
	ExpiresAt timeutil.DateTime
}

func (s Session) IsExpired() bool {
	return s.ExpiresAt.Before(timeutil.Now())
}

type Organizations map[string]struct {
	Name string `json:"name"`
}

func (o Organizations) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *Organizations) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to convert value to []byte")
	}
	return json.Unmarshal(bytes, o)
}
