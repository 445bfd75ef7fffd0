package role

import (
	"slices"

	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string
	Permissions []Permission `gorm:"serializer:json"`

	OrgID     string
	CreatedAt timeutil.DateTime
	UpdatedAt timeutil.DateTime
}

// Permission is a resource:action pair, e.g. "timelines:write".
type Permission string

const (
	PermissionBranchesRead    Permission = "branches:read"
	PermissionBranchesWrite   Permission = "branches:write"
	PermissionClientsRead     Permission = "clients:read"
	PermissionClientsWrite    Permission = "clients:write"
	PermissionMembersRead     Permission = "members:read"
	PermissionMembersWrite    Permission = "members:write"
	PermissionActivitiesRead  Permission = "activities:read"
	PermissionActivitiesWrite Permission = "activities:write"
	PermissionRolesRead       Permission = "roles:read"
	PermissionRolesWrite      Permission = "roles:write"
	PermissionTimelinesRead   Permission = "timelines:read"
	PermissionTimelinesWrite  Permission = "timelines:write"
	PermissionDashboardRead   Permission = "dashboard:read"
)

var Permissions = []Permission{
	PermissionBranchesRead, PermissionBranchesWrite,
	PermissionClientsRead, PermissionClientsWrite,
	PermissionMembersRead, PermissionMembersWrite,
	PermissionActivitiesRead, PermissionActivitiesWrite,
	PermissionRolesRead, PermissionRolesWrite,
	PermissionTimelinesRead, PermissionTimelinesWrite,
	PermissionDashboardRead,
}

func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	if !slices.Contains(Permissions, p) {
		return "", false
	}
	return p, true
}

func (r Role) Has(p Permission) bool {
	return slices.Contains(r.Permissions, p)
}
