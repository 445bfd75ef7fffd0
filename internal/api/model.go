package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/timeutil"
)

type ContextKey string

const (
	CtxKeyOrgID      ContextKey = "org_id"
	CtxKeySessionID  ContextKey = "session_id"
	CtxKeyRequestURL ContextKey = "request_url"
)

// NewPagination parses the page and page-size query parameters.
func NewPagination(r *http.Request) (page.Pagination, error) {
	var pageNumber, pageSize *int32

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return page.Pagination{}, NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid page number")
		}
		n := int32(p)
		pageNumber = &n
	}

	if pageSizeStr := r.URL.Query().Get("page-size"); pageSizeStr != "" {
		ps, err := strconv.Atoi(pageSizeStr)
		if err != nil || ps < 1 || ps > 1000 {
			return page.Pagination{}, NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid page size")
		}
		n := int32(ps)
		pageSize = &n
	}

	return page.NewPagination(pageNumber, pageSize), nil
}

type Links struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Self  string `json:"self"`
}

func NewLinks(self string) *Links {
	return &Links{
		Self: self,
	}
}

// NewPaginatedLinks generates pagination links (self, first, prev, next,
// last) based on the current page information and the requested URL.
func NewPaginatedLinks[T any](requestedURL string, p page.Page[T]) *Links {
	buildURL := func(pageNumber int) string {
		u, _ := url.Parse(requestedURL)
		query := u.Query()
		query.Set("page", strconv.Itoa(pageNumber))
		query.Set("page-size", strconv.Itoa(p.Size))
		u.RawQuery = query.Encode()
		return u.String()
	}

	links := &Links{
		Self: requestedURL,
	}

	if p.Number > 1 {
		links.First = buildURL(1)
		links.Prev = buildURL(p.Number - 1)
	}

	if p.Number < p.TotalPages {
		links.Next = buildURL(p.Number + 1)
		links.Last = buildURL(p.TotalPages)
	}

	return links
}

type Meta struct {
	RequestDateTime timeutil.DateTime `json:"requestDateTime"`
	TotalRecords    *int              `json:"totalRecords,omitempty"`
	TotalPages      *int              `json:"totalPages,omitempty"`
}

func NewMeta() *Meta {
	return &Meta{
		RequestDateTime: timeutil.DateTimeNow(),
	}
}

func NewPaginatedMeta[T any](p page.Page[T]) *Meta {
	return &Meta{
		RequestDateTime: timeutil.DateTimeNow(),
		TotalRecords:    &p.TotalRecords,
		TotalPages:      &p.TotalPages,
	}
}
