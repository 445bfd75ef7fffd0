package client

import (
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

type Client struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string
	Email    string
	Phone    string
	PAN      string `gorm:"column:pan"`
	GSTIN    string `gorm:"column:gstin"`
	BranchID *uuid.UUID
	Status   Status

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Group is a named set of clients used to assign recurring work in bulk.
type Group struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string
	ClientIDs []uuid.UUID `gorm:"serializer:json"`

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

func (Group) TableName() string {
	return "client_groups"
}

type Filter struct {
	Search   string
	BranchID string
	GroupID  string
	Status   Status
	Sort     string
	Desc     bool
}
