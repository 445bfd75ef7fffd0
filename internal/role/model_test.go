package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePermission(t *testing.T) {
	p, ok := ParsePermission("timelines:write")
	assert.True(t, ok)
	assert.Equal(t, PermissionTimelinesWrite, p)

	_, ok = ParsePermission("timelines:admin")
	assert.False(t, ok)

	_, ok = ParsePermission("")
	assert.False(t, ok)
}

func TestRole_Has(t *testing.T) {
	r := Role{Permissions: []Permission{PermissionClientsRead, PermissionClientsWrite}}

	assert.True(t, r.Has(PermissionClientsRead))
	assert.False(t, r.Has(PermissionBranchesWrite))
	assert.False(t, Role{}.Has(PermissionClientsRead))
}
