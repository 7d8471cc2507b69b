package pagehandler

import (
	"net/http"
	"strconv"
	"strings"

	"newsroom/pkg/domain"
	"newsroom/pkg/pagination"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// HomeTrendingLimit is how many trending articles the front page shows; the
// first one is presented as breaking news.
const HomeTrendingLimit = 20

type homeData struct {
	Breaking *domain.Article
	Trending []domain.Article
	Latest   []domain.Article
}

type tab struct {
	Label  string
	URL    string
	Active bool
}

type listData struct {
	Heading  string
	Tabs     []tab
	Search   bool
	Query    string
	Articles []domain.Article
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var trending, latest *domain.ArticlePage
	var cats []domain.Category

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		trending, err = h.deps.News.TrendingArticles(ctx, domain.PageRequest{Page: 1, PageSize: HomeTrendingLimit})

		return err
	})
	g.Go(func() (err error) {
		latest, err = h.deps.News.LatestArticles(ctx, domain.PageRequest{Page: 1, PageSize: pagination.DefaultPageSize})

		return err
	})
	g.Go(func() error {
		cats = h.categories(r)

		return nil
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, err)

		return
	}

	data := homeData{Latest: latest.Items}
	if len(trending.Items) > 0 {
		data.Breaking = &trending.Items[0]
		data.Trending = trending.Items[1:]
	}

	p := h.page(w, r, "")
	p.Categories = cats
	p.Data = data
	h.render(w, r, http.StatusOK, "home", p)
}

// List serves /news/latest and /news/trending.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	listType, ok := domain.ParseListType(chi.URLParam(r, "listType"))
	if !ok {
		h.NotFound(w, r)

		return
	}

	req := pageRequest(r)
	fetch := h.deps.News.LatestArticles
	heading := "Latest news"
	if listType == domain.ListTrending {
		fetch = h.deps.News.TrendingArticles
		heading = "Trending news"
	}

	page, err := fetch(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.renderList(w, r, req, page, listData{
		Heading:  heading,
		Tabs:     listTabs("/news/", listType),
		Articles: page.Items,
	}, h.categories(r))
}

func (h *Handler) CategoryList(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	listType, ok := domain.ParseListType(chi.URLParam(r, "listType"))
	if err != nil || !ok {
		h.NotFound(w, r)

		return
	}

	cats := h.categories(r)
	var category *domain.Category
	for i := range cats {
		if cats[i].ID == domain.CategoryID(id) {
			category = &cats[i]
		}
	}
	if category == nil {
		if category, err = h.deps.News.Category(r.Context(), domain.CategoryID(id)); err != nil {
			h.fail(w, r, err)

			return
		}
	}

	req := pageRequest(r)
	page, err := h.deps.News.CategoryArticles(r.Context(), category.ID, listType, req)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.renderList(w, r, req, page, listData{
		Heading:  category.Name,
		Tabs:     listTabs("/news/category/"+strconv.FormatInt(id, 10)+"/", listType),
		Articles: page.Items,
	}, cats)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	data := listData{Heading: "Search", Search: true, Query: query}
	if query == "" {
		p := h.page(w, r, "Search")
		p.Data = data
		h.render(w, r, http.StatusOK, "list", p)

		return
	}

	req := pageRequest(r)
	page, err := h.deps.News.SearchArticles(r.Context(), query, req)
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrBadRequest {
			p := h.page(w, r, "Search")
			p.Error = serrors.MessageOf(err, "Invalid search")
			p.Data = data
			h.render(w, r, http.StatusBadRequest, "list", p)

			return
		}
		h.fail(w, r, err)

		return
	}

	data.Heading = "Results for “" + query + "”"
	data.Articles = page.Items
	h.renderList(w, r, req, page, data, nil)
}

func (h *Handler) renderList(
	w http.ResponseWriter, r *http.Request, req domain.PageRequest, page *domain.ArticlePage, data listData, cats []domain.Category,
) {
	p := h.page(w, r, data.Heading)
	p.Categories = cats
	p.Data = data
	p.Pagination = pagination.New(*r.URL, pagination.Params{
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    page.TotalCount,
		OnPage:   len(page.Items),
	})
	h.render(w, r, http.StatusOK, "list", p)
}

func pageRequest(r *http.Request) domain.PageRequest {
	return domain.PageRequest{
		Page:     pagination.ParsePage(r.URL.Query().Get("page")),
		PageSize: pagination.DefaultPageSize,
	}
}

func listTabs(prefix string, active domain.ListType) []tab {
	tabs := make([]tab, 0, 2)
	for _, lt := range []domain.ListType{domain.ListLatest, domain.ListTrending} {
		label := "Latest"
		if lt == domain.ListTrending {
			label = "Trending"
		}
		tabs = append(tabs, tab{Label: label, URL: prefix + lt.String(), Active: lt == active})
	}

	return tabs
}
