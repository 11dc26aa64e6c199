package query

import (
	"fmt"
	"strconv"

	"estatehub/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Window is a validated page/limit pair.
type Window struct {
	Page  int
	Limit int
}

// NewWindow applies defaults for zero values and rejects out-of-range ones.
func NewWindow(page, limit int) (Window, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		return Window{}, fmt.Errorf("page must be at least 1")
	}
	if limit < 1 || limit > MaxLimit {
		return Window{}, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
	}
	return Window{Page: page, Limit: limit}, nil
}

// ParseWindow reads raw page/limit query values.
func ParseWindow(rawPage, rawLimit string) (Window, error) {
	page, limit := 0, 0
	var fields []utils.FieldError
	if rawPage != "" {
		v, err := strconv.Atoi(rawPage)
		if err != nil || v < 1 {
			fields = append(fields, utils.FieldError{Field: "page", Message: "must be a positive integer"})
		}
		page = v
	}
	if rawLimit != "" {
		v, err := strconv.Atoi(rawLimit)
		if err != nil || v < 1 || v > MaxLimit {
			fields = append(fields, utils.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxLimit)})
		}
		limit = v
	}
	if len(fields) > 0 {
		return Window{}, utils.Validation("Invalid pagination parameters").WithDetails(fields)
	}
	return NewWindow(page, limit)
}

// Offset is the number of items skipped before this window.
func (w Window) Offset() int64 {
	return int64(w.Page-1) * int64(w.Limit)
}

// PageInfo is the navigation metadata returned with every page.
type PageInfo struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPageInfo(w Window, total int64) PageInfo {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(w.Limit) - 1) / int64(w.Limit))
	}
	return PageInfo{
		CurrentPage:     w.Page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    w.Limit,
		HasNextPage:     w.Page < totalPages,
		HasPreviousPage: w.Page > 1,
	}
}

// Page is a window of items plus its navigation metadata.
type Page[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageInfo `json:"pagination"`
}

func NewPage[T any](items []T, w Window, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPageInfo(w, total)}
}

// SearchPage is a Page that also echoes the search terms.
type SearchPage[T any] struct {
	Page[T]
	Query string `json:"query"`
}
