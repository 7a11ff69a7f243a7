package core

import "strconv"

// maxPagesDisplayed is the width of the pager's page-number window.
const maxPagesDisplayed = 5

// ToggleSort is the sort-header click: the active ascending column flips to
// descending, anything else (a new column, or the active descending one) sorts ascending.
func ToggleSort(q QueryState, column SortColumn) QueryState {
	order := SortAsc
	if q.SortBy == column && q.SortOrder == SortAsc {
		order = SortDesc
	}
	q.SortBy = column
	q.SortOrder = order
	return q
}

// SortUpdate is ToggleSort expressed as a URL parameter update.
func SortUpdate(q QueryState, column SortColumn) map[string]string {
	next := ToggleSort(q, column)
	return map[string]string{ParamSortBy: string(next.SortBy), ParamSortOrder: string(next.SortOrder)}
}

// SearchUpdate commits a search and resets to page 1.
func SearchUpdate(search string) map[string]string {
	return map[string]string{ParamSearch: search, ParamPage: "1"}
}

// PageUpdate requests another page.
func PageUpdate(page int) map[string]string {
	return map[string]string{ParamPage: strconv.Itoa(page)}
}

// Pager is the page-change half of the table presentation.
type Pager struct {
	Current int
	Total   int
}

// Visible is false when there is nothing to page through.
func (p Pager) Visible() bool { return p.Total > 1 }

// Prev returns the previous page; ok is false on the first page.
func (p Pager) Prev() (page int, ok bool) {
	if p.Current <= 1 {
		return p.Current, false
	}
	return p.Current - 1, true
}

// Next returns the following page; ok is false on the last page.
func (p Pager) Next() (page int, ok bool) {
	if p.Current >= p.Total {
		return p.Current, false
	}
	return p.Current + 1, true
}

// Pages returns at most five page numbers around the current page.
func (p Pager) Pages() []int {
	if p.Total <= 0 {
		return nil
	}
	start, end := 1, p.Total
	if p.Total > maxPagesDisplayed {
		before := maxPagesDisplayed / 2
		after := (maxPagesDisplayed+1)/2 - 1
		switch {
		case p.Current <= before:
			start, end = 1, maxPagesDisplayed
		case p.Current+after >= p.Total:
			start, end = p.Total-maxPagesDisplayed+1, p.Total
		default:
			start, end = p.Current-before, p.Current+after
		}
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
