package core

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQueryState_Defaults(t *testing.T) {
	q := DecodeQueryState(url.Values{})
	assert.Equal(t, QueryState{Page: 1, Search: "", SortBy: SortByCreatedAt, SortOrder: SortDesc}, q)
}

func TestDecodeQueryState_MalformedFieldsFallBackIndependently(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want QueryState
	}{
		{"non-numeric page", "page=abc&sortBy=name&sortOrder=asc", QueryState{Page: 1, SortBy: SortByName, SortOrder: SortAsc}},
		{"zero page", "page=0", QueryState{Page: 1, SortBy: SortByCreatedAt, SortOrder: SortDesc}},
		{"negative page", "page=-3&search=jo", QueryState{Page: 1, Search: "jo", SortBy: SortByCreatedAt, SortOrder: SortDesc}},
		{"fractional page", "page=2.5", QueryState{Page: 1, SortBy: SortByCreatedAt, SortOrder: SortDesc}},
		{"unknown column", "page=4&sortBy=password", QueryState{Page: 4, SortBy: SortByCreatedAt, SortOrder: SortDesc}},
		{"sql in column", "sortBy=name%3BDROP%20TABLE%20users", QueryState{Page: 1, SortBy: SortByCreatedAt, SortOrder: SortDesc}},
		{"bad order", "sortBy=email&sortOrder=sideways", QueryState{Page: 1, SortBy: SortByEmail, SortOrder: SortDesc}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := url.ParseQuery(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, DecodeQueryState(v))
		})
	}
}

func TestEncodeQueryState_MergesAndDropsEmpty(t *testing.T) {
	current := url.Values{"page": {"3"}, "search": {"jane"}, "sortBy": {"name"}}

	out := EncodeQueryState(map[string]string{"search": "", "page": "1"}, current)

	assert.Equal(t, "1", out.Get("page"))
	assert.Equal(t, "name", out.Get("sortBy"))
	_, has := out["search"]
	assert.False(t, has, "empty value must remove the key")
	// input untouched
	assert.Equal(t, "3", current.Get("page"))
	assert.Equal(t, "jane", current.Get("search"))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	current := url.Values{"page": {"2"}, "sortBy": {"email"}, "sortOrder": {"asc"}, "search": {"old"}}
	updates := []map[string]string{
		SearchUpdate("smith"),
		PageUpdate(5),
		SortUpdate(DecodeQueryState(current), SortByEmail),
		SortUpdate(DecodeQueryState(current), SortByRole),
		{ParamSearch: ""},
	}
	for _, up := range updates {
		got := DecodeQueryState(EncodeQueryState(up, current))

		want := DecodeQueryState(current)
		for k, v := range up {
			switch k {
			case ParamPage:
				want.Page = DecodeQueryState(url.Values{ParamPage: {v}}).Page
			case ParamSearch:
				want.Search = v
			case ParamSortBy:
				want.SortBy = SortColumn(v)
			case ParamSortOrder:
				want.SortOrder = SortOrder(v)
			}
		}
		assert.Equal(t, want, got, "update %v", up)
	}
}

func TestQueryState_Values_SearchOnlyWhenSet(t *testing.T) {
	v := DefaultQueryState().Values()
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "createdAt", v.Get("sortBy"))
	assert.Equal(t, "desc", v.Get("sortOrder"))
	_, has := v["search"]
	assert.False(t, has)

	q := DefaultQueryState()
	q.Search = "doe"
	assert.Equal(t, "doe", q.Values().Get("search"))
}

func TestSortColumn_AllowList(t *testing.T) {
	for c, col := range map[string]string{"name": "name", "email": "email", "role": "role", "createdAt": "created_at", "updatedAt": "updated_at"} {
		sc, ok := ParseSortColumn(c)
		assert.True(t, ok, c)
		assert.Equal(t, col, sc.Column())
	}
	_, ok := ParseSortColumn("password")
	assert.False(t, ok)
	assert.Empty(t, SortColumn("password").Column())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 0, Offset(0, 10))
}
