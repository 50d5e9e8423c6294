// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
)

const (
	pageQueryParam     = "page"
	pageSizeQueryParam = "page_size"
	lastPageKeyword    = "last"
)

// parsePageRequest reads page and page_size from the query string.
//
// A missing page means the first one and "last" the final one; any other
// non-numeric page is out of range. An unparsable or non-positive page_size
// falls back to the service default.
func parsePageRequest(r *http.Request) (models.PageRequest, error) {
	query := r.URL.Query()
	page := models.PageRequest{Page: 1}

	switch raw := query.Get(pageQueryParam); raw {
	case "":
	case lastPageKeyword:
		page.Page = models.LastPage
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return models.PageRequest{}, service.ErrPageOutOfRange
		}
		page.Page = n
	}

	if raw := query.Get(pageSizeQueryParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page.PageSize = n
		}
	}

	return page, nil
}

// pageLinks builds absolute next/previous links of result, keeping every
// other query parameter. The link to page 1 carries no page parameter.
func pageLinks(r *http.Request, result models.UserPage) (next, previous *string) {
	if result.HasNext() {
		link := pageURL(r, result.Page+1)
		next = &link
	}
	if result.HasPrevious() {
		link := pageURL(r, result.Page-1)
		previous = &link
	}
	return next, previous
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	query := r.URL.Query()
	if page == 1 {
		query.Del(pageQueryParam)
	} else {
		query.Set(pageQueryParam, strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}
	return u.String()
}
