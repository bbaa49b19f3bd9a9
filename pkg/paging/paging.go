package paging

import "github.com/gardet/listing-finder/pkg/types"

// Page is one fixed-size window over the ordered result.
type Page struct {
	Slice      []*types.Property
	Page       int
	PageSize   int
	TotalHits  int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Clamp forces page into [1, ceil(total/size)]. Callers clamp before
// paginating; an out-of-range request is not an error.
func Clamp(page, total, pageSize int) int {
	pages := TotalPages(total, pageSize)
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// TotalPages is ceil(total/pageSize) with a floor of one page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices the ordered result into the requested 1-based page.
func Paginate(items []*types.Property, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	pages := TotalPages(total, pageSize)
	page = Clamp(page, total, pageSize)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{
		Slice:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalHits:  total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
}
