package app

import (
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/google/uuid"
)

type collectionResponse[T any] struct {
	Data  []T        `json:"data"`
	Links *api.Links `json:"links"`
	Meta  *api.Meta  `json:"meta"`
}

func toCollectionResponse[T, U any](p page.Page[T], reqURL string, convert func(T) U) collectionResponse[U] {
	data := make([]U, 0, len(p.Records))
	for _, record := range p.Records {
		data = append(data, convert(record))
	}
	return collectionResponse[U]{
		Data:  data,
		Links: api.NewPaginatedLinks(reqURL, p),
		Meta:  api.NewPaginatedMeta(p),
	}
}

type recordResponse[T any] struct {
	Data  T          `json:"data"`
	Links *api.Links `json:"links"`
	Meta  *api.Meta  `json:"meta"`
}

func toRecordResponse[T any](data T, reqURL string) recordResponse[T] {
	return recordResponse[T]{
		Data:  data,
		Links: api.NewLinks(reqURL),
		Meta:  api.NewMeta(),
	}
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

func requestURL(r *http.Request) string {
	if reqURL, ok := r.Context().Value(api.CtxKeyRequestURL).(string); ok {
		return reqURL
	}
	return r.URL.RequestURI()
}

func parseID(w http.ResponseWriter, value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		api.WriteError(w, api.NewError("INVALID_PARAMETER", http.StatusBadRequest, "invalid id"))
		return uuid.UUID{}, false
	}
	return id, true
}

func parseIDs(w http.ResponseWriter, values []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, ok := parseID(w, value)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func sortParams(r *http.Request) (sort string, desc bool) {
	return r.URL.Query().Get("sort"), r.URL.Query().Get("desc") == "true"
}
