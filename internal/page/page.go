package page

import (
	"gorm.io/gorm"
)

const (
	defaultPageSize int32 = 25
	maxPageSize     int32 = 1000
)

type Page[T any] struct {
	// Records are the records found for the page requested.
	Records []T
	// TotalRecords is the total number of records available.
	TotalRecords int
	// TotalPages is the total number of pages based on Size and TotalRecords.
	TotalPages int
	Pagination
}

type Pagination struct {
	// Number is the page number requested, starting at 1.
	Number int
	// Size is the page size requested.
	Size int
}

// Offset converts the one-based page number to a zero-based record offset.
func (p Pagination) Offset() int {
	return (p.Number - 1) * p.Size
}

func NewPagination(pageNumber, pageSize *int32) Pagination {
	pagination := Pagination{
		Number: 1,
		Size:   int(defaultPageSize),
	}

	if pageNumber != nil && *pageNumber > 0 {
		pagination.Number = int(*pageNumber)
	}

	if pageSize != nil && *pageSize > 0 && *pageSize <= maxPageSize {
		pagination.Size = int(*pageSize)
	}

	return pagination
}

func New[T any](records []T, pag Pagination, totalRecords int) Page[T] {
	return Page[T]{
		Records:      records,
		TotalRecords: totalRecords,
		// Adding (Size - 1) rounds partial pages up.
		TotalPages: (totalRecords + pag.Size - 1) / pag.Size,
		Pagination: pag,
	}
}

// Paginate runs the query twice, once to count the records available and once
// to fetch the page requested.
func Paginate[T any](query *gorm.DB, pag Pagination) (Page[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	var records []T
	if err := query.Offset(pag.Offset()).Limit(pag.Size).Find(&records).Error; err != nil {
		return Page[T]{}, err
	}

	return New(records, pag, int(total)), nil
}

// OrderClause builds an ORDER BY clause from a whitelist of sortable
// columns. Unknown sort keys fall back to newest-first.
func OrderClause(columns map[string]string, sort string, desc bool) string {
	column, ok := columns[sort]
	if !ok {
		column = "created_at"
		desc = true
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
