package aggregation

import (
	"strconv"
	"strings"
)

const DefaultPageSize = 10

// Pagination is the metadata rendered under a paged listing.
type Pagination struct {
	CurrentPage int   `json:"page"`
	TotalPages  int   `json:"pages"`
	PageNumbers []int `json:"totalPage"`
	PrevPage    int   `json:"prev"`
	NextPage    int   `json:"next"`
	Offset      int   `json:"-"`
	Limit       int   `json:"-"`
}

// ParsePage reads a 1-based page number from a query value. Missing,
// malformed and non-positive values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate computes page metadata for totalCount rows. A requested page past
// the end is kept as is, so its offset selects an empty page; prev and next
// stay inside [1, totalPages].
func Paginate(totalCount int64, requestedPage, pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if requestedPage < 1 {
		requestedPage = 1
	}
	if totalCount < 0 {
		totalCount = 0
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	numbers := make([]int, totalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}

	prev := clamp(requestedPage-1, 1, totalPages)
	next := clamp(requestedPage+1, 1, totalPages)

	return Pagination{
		CurrentPage: requestedPage,
		TotalPages:  totalPages,
		PageNumbers: numbers,
		PrevPage:    prev,
		NextPage:    next,
		Offset:      (requestedPage - 1) * pageSize,
		Limit:       pageSize,
	}
}

// clamp bounds v to [lo, hi]; an empty range (hi < lo) collapses to lo.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
