package pagination_test

import (
	"net/url"
	"newsroom/pkg/pagination"
	"testing"

	"github.com/stretchr/testify/require"
)

func pages(v *pagination.View) []int {
	var out []int
	for _, l := range v.Links {
		out = append(out, l.Page)
	}

	return out
}

func mustURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)

	return *u
}

func TestParsePage(t *testing.T) {
	require.Equal(t, 1, pagination.ParsePage(""))
	require.Equal(t, 1, pagination.ParsePage("abc"))
	require.Equal(t, 1, pagination.ParsePage("-3"))
	require.Equal(t, 4, pagination.ParsePage("4"))
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 1, pagination.TotalPages(0, 10))
	require.Equal(t, 1, pagination.TotalPages(10, 10))
	require.Equal(t, 2, pagination.TotalPages(11, 10))
	require.Equal(t, 1, pagination.TotalPages(5, 0))
}

func TestNew_SinglePage(t *testing.T) {
	require.Nil(t, pagination.New(mustURL(t, "/news/latest"), pagination.Params{Page: 1, PageSize: 10, Total: 7}))
}

func TestNew_Window(t *testing.T) {
	u := mustURL(t, "/news/search?query=go")

	tests := []struct {
		page int
		want []int
	}{
		{1, []int{1, 2, 0, 10}},
		{2, []int{1, 2, 3, 0, 10}},
		{5, []int{1, 0, 4, 5, 6, 0, 10}},
		{9, []int{1, 0, 8, 9, 10}},
		{10, []int{1, 0, 9, 10}},
	}
	for _, tt := range tests {
		v := pagination.New(u, pagination.Params{Page: tt.page, PageSize: 10, Total: 100})
		require.NotNil(t, v)
		require.Equal(t, tt.want, pages(v), "page %d", tt.page)
	}
}

func TestNew_Links(t *testing.T) {
	v := pagination.New(mustURL(t, "/news/search?query=go+lang&page=2"), pagination.Params{Page: 2, PageSize: 10, Total: 30})
	require.NotNil(t, v)

	require.Equal(t, "/news/search?page=1&query=go+lang", v.Prev.URL)
	require.Equal(t, "/news/search?page=3&query=go+lang", v.Next.URL)
	require.True(t, v.Links[1].Current)
	require.False(t, v.Links[0].Current)
}

func TestNew_LastPageHasNoNext(t *testing.T) {
	v := pagination.New(mustURL(t, "/news/latest"), pagination.Params{Page: 3, PageSize: 10, Total: 30})
	require.Nil(t, v.Next)
	require.NotNil(t, v.Prev)
}

func TestNew_UnknownTotal(t *testing.T) {
	u := mustURL(t, "/news/trending")

	require.Nil(t, pagination.New(u, pagination.Params{Page: 1, PageSize: 10, Total: -1, OnPage: 4}))

	v := pagination.New(u, pagination.Params{Page: 1, PageSize: 10, Total: -1, OnPage: 10})
	require.NotNil(t, v)
	require.Nil(t, v.Prev)
	require.Equal(t, "/news/trending?page=2", v.Next.URL)

	v = pagination.New(u, pagination.Params{Page: 3, PageSize: 10, Total: -1, OnPage: 2})
	require.Equal(t, "/news/trending?page=2", v.Prev.URL)
	require.Nil(t, v.Next)
	require.Equal(t, []int{3}, pages(v))
}

func TestNew_PagePastTheEndIsClamped(t *testing.T) {
	v := pagination.New(mustURL(t, "/news/latest"), pagination.Params{Page: 999, PageSize: 10, Total: 30})
	require.NotNil(t, v)
	require.Equal(t, []int{1, 2, 3}, pages(v))
	require.True(t, v.Links[2].Current)
	require.NotNil(t, v.Prev)
	require.Equal(t, 2, v.Prev.Page)
	require.Nil(t, v.Next)
}
