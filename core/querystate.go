package core

import (
	"net/url"
	"strconv"
)

// URL parameter names of the listing query state.
const (
	ParamPage      = "page"
	ParamLimit     = "limit"
	ParamSearch    = "search"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
)

// SortColumn is a sortable listing column as it appears in URLs.
type SortColumn string

const (
	SortByName      SortColumn = "name"
	SortByEmail     SortColumn = "email"
	SortByRole      SortColumn = "role"
	SortByCreatedAt SortColumn = "createdAt"
	SortByUpdatedAt SortColumn = "updatedAt"
)

// sortColumns is the allow-list: URL identifier -> database column.
// Nothing outside this map ever reaches an ORDER BY clause.
var sortColumns = map[SortColumn]string{
	SortByName:      "name",
	SortByEmail:     "email",
	SortByRole:      "role",
	SortByCreatedAt: "created_at",
	SortByUpdatedAt: "updated_at",
}

// ParseSortColumn returns the column for s and whether s is allow-listed.
func ParseSortColumn(s string) (SortColumn, bool) {
	c := SortColumn(s)
	_, ok := sortColumns[c]
	return c, ok
}

// Column returns the database column name; empty for columns outside the allow-list.
func (c SortColumn) Column() string { return sortColumns[c] }

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder returns the direction for s and whether s is valid.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case SortAsc, SortDesc:
		return SortOrder(s), true
	}
	return "", false
}

// Defaults applied by DecodeQueryState and by the listing service.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortDesc
)

// QueryState is the canonical (page, search, sort) tuple driving a listing view.
type QueryState struct {
	Page      int
	Search    string
	SortBy    SortColumn
	SortOrder SortOrder
}

// DefaultQueryState is page 1, no search, newest first.
func DefaultQueryState() QueryState {
	return QueryState{Page: DefaultPage, SortBy: DefaultSortBy, SortOrder: DefaultSortOrder}
}

// DecodeQueryState reads a QueryState from URL parameters. It never fails: each
// missing or malformed field falls back to its default independently.
func DecodeQueryState(v url.Values) QueryState {
	q := DefaultQueryState()
	if p, err := strconv.Atoi(v.Get(ParamPage)); err == nil && p >= 1 {
		q.Page = p
	}
	q.Search = v.Get(ParamSearch)
	if c, ok := ParseSortColumn(v.Get(ParamSortBy)); ok {
		q.SortBy = c
	}
	if o, ok := ParseSortOrder(v.Get(ParamSortOrder)); ok {
		q.SortOrder = o
	}
	return q
}

// EncodeQueryState merges a partial update into a copy of current. A key whose new
// value is empty is removed rather than stored empty. current is left untouched.
func EncodeQueryState(update map[string]string, current url.Values) url.Values {
	out := make(url.Values, len(current)+len(update))
	for k, vs := range current {
		out[k] = append([]string(nil), vs...)
	}
	for k, v := range update {
		if v == "" {
			out.Del(k)
			continue
		}
		out.Set(k, v)
	}
	return out
}

// Values is the request form of the state: page, sortBy and sortOrder always,
// search only when non-empty.
func (q QueryState) Values() url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(q.Page))
	v.Set(ParamSortBy, string(q.SortBy))
	v.Set(ParamSortOrder, string(q.SortOrder))
	if q.Search != "" {
		v.Set(ParamSearch, q.Search)
	}
	return v
}

// Offset converts a 1-based page into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
