package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	pag := NewPagination(nil, nil)
	assert.Equal(t, 1, pag.Number)
	assert.Equal(t, 25, pag.Size)

	number, size := int32(3), int32(50)
	pag = NewPagination(&number, &size)
	assert.Equal(t, 3, pag.Number)
	assert.Equal(t, 50, pag.Size)
	assert.Equal(t, 100, pag.Offset())

	tooBig := int32(5000)
	pag = NewPagination(nil, &tooBig)
	assert.Equal(t, 25, pag.Size)
}

func TestNew_RoundsPartialPagesUp(t *testing.T) {
	p := New([]int{1, 2, 3}, Pagination{Number: 1, Size: 25}, 26)
	assert.Equal(t, 26, p.TotalRecords)
	assert.Equal(t, 2, p.TotalPages)
}

func TestOrderClause(t *testing.T) {
	columns := map[string]string{"name": "name", "code": "code"}

	assert.Equal(t, "name ASC", OrderClause(columns, "name", false))
	assert.Equal(t, "code DESC", OrderClause(columns, "code", true))
	// Unknown sort keys fall back to newest-first.
	assert.Equal(t, "created_at DESC", OrderClause(columns, "drop table", false))
	assert.Equal(t, "created_at DESC", OrderClause(columns, "", false))
}
