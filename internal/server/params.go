package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/vidtube/internal/models"
)

// parseVideoQuery reads category, search, page and per_page from the query string.
//
// Missing numbers default through [models.VideoQuery.Normalize]; present ones must be base-10 integers.
func parseVideoQuery(values url.Values, maxPerPage int) (models.VideoQuery, error) {
	q := models.VideoQuery{
		Category: values.Get("category"),
		Search:   values.Get("search"),
	}

	var err error
	if q.Page, err = intParam(values, "page"); err != nil {
		return q, err
	}
	if q.PerPage, err = intParam(values, "per_page"); err != nil {
		return q, err
	}

	return q.Normalize(maxPerPage), nil
}

// intParam returns 0 when name is absent or blank.
func intParam(values url.Values, name string) (int, error) {
	raw := values.Get(name)
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw}
	}
	return n, nil
}

// pathID parses the {id} wildcard. Anything that is not a positive integer reports ok=false.
func pathID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
