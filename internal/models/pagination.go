package models

import (
	"math"
	"net/url"
	"strconv"
)

// Pagination describes one page of a LIMIT/OFFSET result.
type Pagination struct {
	CurrentPage int
	PerPage     int
	Total       int64
}

// PageMeta is the wire form of pagination metadata.
type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int64  `json:"total"`
	From        *int64 `json:"from"`
	To          *int64 `json:"to"`
	Path        string `json:"path,omitempty"`
}

// PageLinks holds absolute links to neighbouring pages.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageResponse is the envelope for every paginated collection.
type PageResponse[T any] struct {
	Data  []T       `json:"data"`
	Meta  PageMeta  `json:"meta"`
	Links PageLinks `json:"links"`
}

// DataResponse wraps a single resource or an unpaginated list.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

func NewPagination(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	return Pagination{CurrentPage: page, PerPage: perPage, Total: total}
}

// Offset is the number of rows skipped before the current page. It
// saturates at math.MaxInt so an absurd page number yields an empty page.
func (p Pagination) Offset() int {
	page, per := max(p.CurrentPage, 1), max(p.PerPage, 1)
	if page-1 > math.MaxInt/per {
		return math.MaxInt
	}
	return (page - 1) * per
}

// LastPage is never below 1, even for an empty result.
func (p Pagination) LastPage() int {
	if p.Total <= 0 {
		return 1
	}
	per := int64(p.PerPage)
	return int((p.Total + per - 1) / per)
}

// Meta computes from/to for a page that returned count rows.
// Both are nil when the page is empty.
func (p Pagination) Meta(count int, path string) PageMeta {
	meta := PageMeta{
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage(),
		PerPage:     p.PerPage,
		Total:       p.Total,
		Path:        path,
	}
	if count > 0 {
		from := int64(p.Offset()) + 1
		to := from + int64(count) - 1
		meta.From = &from
		meta.To = &to
	}
	return meta
}

// Links rewrites the page parameter of base for first/last/prev/next.
func (p Pagination) Links(base url.URL) PageLinks {
	pageURL := func(n int) string {
		u := base
		q := u.Query()
		q.Set("page", strconv.Itoa(n))
		u.RawQuery = q.Encode()
		return u.String()
	}

	last := p.LastPage()
	links := PageLinks{First: pageURL(1), Last: pageURL(last)}
	if p.CurrentPage > 1 {
		prev := pageURL(min(p.CurrentPage-1, last))
		links.Prev = &prev
	}
	if p.CurrentPage < last {
		next := pageURL(p.CurrentPage + 1)
		links.Next = &next
	}
	return links
}
