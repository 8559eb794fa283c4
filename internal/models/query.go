package models

import (
	"math"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	TrendingLimit  = 20
)

// AllCategories is the synthetic category that disables category filtering.
const AllCategories = "All"

// VideoQuery filters and paginates the video catalog.
//
// Category and Search are case-insensitive substring matches; blank values are inert.
type VideoQuery struct {
	Category string
	Search   string
	Page     int
	PerPage  int
}

// Normalize trims filters, clears a category of "all" (any case), coerces page < 1 to 1 and
// per_page < 1 to [DefaultPerPage]. A positive maxPerPage caps PerPage.
func (q VideoQuery) Normalize(maxPerPage int) VideoQuery {
	q.Category = strings.TrimSpace(q.Category)
	if strings.EqualFold(q.Category, AllCategories) {
		q.Category = ""
	}
	q.Search = strings.TrimSpace(q.Search)

	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if maxPerPage > 0 && q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	return q
}

// Offset is the number of rows skipped before the current page.
// It saturates at [math.MaxInt] so a huge page stays past the end instead of wrapping.
func (q VideoQuery) Offset() int {
	if q.Page <= 1 || q.PerPage <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PerPage {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PerPage
}

// VideoPage is one page of a [VideoQuery] result.
type VideoPage struct {
	Videos  []*Video
	Total   int
	Page    int
	PerPage int
}

// Pages is the total page count; zero when there are no results.
func (p *VideoPage) Pages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

func (p *VideoPage) HasNext() bool { return p.Page < p.Pages() }
func (p *VideoPage) HasPrev() bool { return p.Page > 1 }
