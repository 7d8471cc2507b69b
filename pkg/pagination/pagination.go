// Package pagination builds page link lists for paged listings.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// DefaultPageSize is the page size of every paged listing.
const DefaultPageSize = 10

type Link struct {
	URL         string
	Page        int
	Current     bool
	Placeholder bool
}

type View struct {
	Links []Link
	Prev  *Link
	Next  *Link
}

// Params describe the listing being paged. Total is the item count reported
// by the backend or a negative number when the backend does not report it;
// OnPage is then used to guess whether a next page exists.
type Params struct {
	Page       int
	PageSize   int
	Total      int
	OnPage     int
	QueryParam string
	// Padding is the number of page links shown on each side of the current page.
	Padding int
}

// ParsePage reads a 1-based page number, falling back to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// TotalPages returns the page count for total items, at least 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// New builds the pagination view for u. It returns nil when there is only one page.
func New(u url.URL, p Params) *View {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.QueryParam == "" {
		p.QueryParam = "page"
	}
	if p.Padding <= 0 {
		p.Padding = 1
	}
	if p.Page < 1 {
		p.Page = 1
	}

	b := builder{u: u, param: p.QueryParam}

	if p.Total < 0 {
		return b.open(p)
	}

	total := TotalPages(p.Total, p.PageSize)
	if total <= 1 {
		return nil
	}
	// a page past the end is shown as the last one
	p.Page = min(p.Page, total)

	v := &View{}
	for _, page := range window(p.Page, total, p.Padding) {
		if page == 0 {
			v.Links = append(v.Links, Link{Placeholder: true})

			continue
		}
		v.Links = append(v.Links, b.link(page, page == p.Page))
	}
	if p.Page > 1 {
		prev := b.link(p.Page-1, false)
		v.Prev = &prev
	}
	if p.Page < total {
		next := b.link(p.Page+1, false)
		v.Next = &next
	}

	return v
}

// window lists the pages to show: the first, the last and padding pages
// around current. A zero stands for a gap.
func window(current, total, padding int) []int {
	left := max(current-padding, 1)
	right := min(current+padding, total)

	var pages []int
	if left > 1 {
		pages = append(pages, 1)
		if left > 2 {
			pages = append(pages, 0)
		}
	}
	for i := left; i <= right; i++ {
		pages = append(pages, i)
	}
	if right < total {
		if right < total-1 {
			pages = append(pages, 0)
		}
		pages = append(pages, total)
	}

	return pages
}

// open pages a listing of unknown length: a full page implies a next one.
func (b builder) open(p Params) *View {
	hasNext := p.OnPage >= p.PageSize
	if p.Page == 1 && !hasNext {
		return nil
	}

	v := &View{}
	if p.Page > 1 {
		prev := b.link(p.Page-1, false)
		v.Prev = &prev
	}
	v.Links = append(v.Links, b.link(p.Page, true))
	if hasNext {
		next := b.link(p.Page+1, false)
		v.Next = &next
	}

	return v
}

type builder struct {
	u     url.URL
	param string
}

func (b builder) link(page int, current bool) Link {
	q := b.u.Query()
	q.Set(b.param, strconv.Itoa(page))
	u := b.u
	u.RawQuery = q.Encode()

	return Link{URL: u.RequestURI(), Page: page, Current: current}
}
