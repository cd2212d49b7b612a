// Package pagination implements offset-based paging over filtered collections.
package pagination

import (
	"context"
	"math"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest is a page/page-size pair that is always positive.
type PageRequest struct {
	Page     int
	PageSize int
}

// ParsePageRequest parses raw page and page size values. Missing, non-numeric
// or non-positive input silently falls back to the defaults; it never fails.
func ParsePageRequest(page, pageSize string) PageRequest {
	return PageRequest{
		Page:     parsePositive(page, DefaultPage),
		PageSize: parsePositive(pageSize, DefaultPageSize),
	}
}

// FromQuery reads the "page" and "page_size" query parameters.
func FromQuery(values url.Values) PageRequest {
	return ParsePageRequest(values.Get("page"), values.Get("page_size"))
}

// Normalize clamps page below 1 to 1 and page size below 1 to DefaultPageSize.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Skip is the number of matching records before this page. ok is false when
// that number does not fit in an int, so no stored record can be on the page.
func (p PageRequest) Skip() (skip int, ok bool) {
	n := p.Normalize()
	if n.Page-1 > math.MaxInt/n.PageSize {
		return 0, false
	}
	return (n.Page - 1) * n.PageSize, true
}

// PageResult is one page of records plus navigation metadata.
type PageResult[T any] struct {
	Data        []T   `json:"data"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

// Collection is the storage capability Paginate needs.
type Collection[T any] interface {
	// Find returns at most limit records matching filter after skipping skip of them,
	// in a stable order.
	Find(ctx context.Context, filter query.Filter, skip, limit int) ([]T, error)
	// Count returns the number of records matching filter.
	Count(ctx context.Context, filter query.Filter) (int64, error)
}

// Paginate fetches one page of c matching filter.
//
// Find and Count are two independent reads. A writer touching the filtered set
// between them can make TotalItems disagree with Data. Callers that need both to
// come from one snapshot run Paginate inside postgresql.WithSnapshot.
func Paginate[T any](ctx context.Context, c Collection[T], filter query.Filter, req PageRequest) (PageResult[T], error) {
	req = req.Normalize()

	var items []T
	if skip, ok := req.Skip(); ok {
		var err error
		items, err = c.Find(ctx, filter, skip, req.PageSize)
		if err != nil {
			return PageResult[T]{}, err
		}
	}
	total, err := c.Count(ctx, filter)
	if err != nil {
		return PageResult[T]{}, err
	}

	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(total, req.PageSize)

	return PageResult[T]{
		Data:        items,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
		HasPrev:     req.Page > 1,
		HasNext:     req.Page < totalPages,
	}, nil
}

// Map converts the records of a page while keeping its metadata.
func Map[T, U any](page PageResult[T], fn func(T) U) PageResult[U] {
	data := make([]U, 0, len(page.Data))
	for _, item := range page.Data {
		data = append(data, fn(item))
	}
	return PageResult[U]{
		Data:        data,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		HasPrev:     page.HasPrev,
		HasNext:     page.HasNext,
	}
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	size := int64(pageSize)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return int(pages)
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
