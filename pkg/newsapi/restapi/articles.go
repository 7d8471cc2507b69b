package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"newsroom/pkg/domain"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func (cl *Client) listArticles(ctx context.Context, op, path string, query url.Values) (*domain.ArticlePage, error) {
	var page *domain.ArticlePage
	err := cl.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   path,
		query:  query,
	}, func(body []byte) error {
		p, err := decodeArticlePage(body)
		page = p

		return err
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// decodeArticlePage accepts both listing shapes the backend uses: a bare
// array, or an object with items and totalCount.
func decodeArticlePage(body []byte) (*domain.ArticlePage, error) {
	if isEmpty(body) {
		return &domain.ArticlePage{Items: []domain.Article{}}, nil
	}

	switch jx.DecodeBytes(body).Next() {
	case jx.Array:
		var items []domain.Article
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}

		return &domain.ArticlePage{Items: items, TotalCount: domain.UnknownTotal}, nil
	case jx.Object:
		var page domain.ArticlePage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, err
		}
		if page.Items == nil {
			page.Items = []domain.Article{}
		}

		return &page, nil
	default:
		return nil, errors.New("article listing is neither an array nor an object")
	}
}

func (cl *Client) TrendingArticles(ctx context.Context, page domain.PageRequest) (*domain.ArticlePage, error) {
	return cl.listArticles(ctx, "trending_articles", "/api/Articles/trending", pageQuery(page.Page, page.PageSize))
}

func (cl *Client) LatestArticles(ctx context.Context, page domain.PageRequest) (*domain.ArticlePage, error) {
	return cl.listArticles(ctx, "latest_articles", "/api/Articles/latest", pageQuery(page.Page, page.PageSize))
}

func (cl *Client) CategoryArticles(
	ctx context.Context, id domain.CategoryID, listType domain.ListType, page domain.PageRequest,
) (*domain.ArticlePage, error) {
	q := pageQuery(page.Page, page.PageSize)
	q.Set("listType", strconv.Itoa(int(listType)))

	return cl.listArticles(ctx, "category_articles",
		"/api/Articles/category/"+strconv.FormatInt(int64(id), 10), q)
}

func (cl *Client) SearchArticles(ctx context.Context, query string, page domain.PageRequest) (*domain.ArticlePage, error) {
	q := pageQuery(page.Page, page.PageSize)
	q.Set("query", query)

	return cl.listArticles(ctx, "search_articles", "/api/Articles/search", q)
}

func (cl *Client) JournalistArticles(
	ctx context.Context, status *domain.ArticleStatus, page domain.PageRequest,
) (*domain.ArticlePage, error) {
	q := pageQuery(page.Page, page.PageSize)
	if status != nil {
		q.Set("status", strconv.Itoa(int(*status)))
	}

	return cl.listArticles(ctx, "journalist_articles", "/journalist/articles", q)
}

func (cl *Client) Article(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	var article domain.Article
	err := cl.do(ctx, call{
		op:     "article",
		method: http.MethodGet,
		path:   "/api/Articles/" + id.String(),
	}, decodeJSON(&article))
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (cl *Client) CreateArticle(ctx context.Context, input domain.ArticleInput) (domain.ArticleID, error) {
	var id domain.ArticleID
	err := cl.do(ctx, call{
		op:     "create_article",
		method: http.MethodPost,
		path:   "/api/Articles",
		body:   input,
	}, func(body []byte) error {
		v, err := decodeCreatedID(body, "articleID")
		id = domain.ArticleID(v)

		return err
	})

	return id, err
}

// decodeCreatedID reads the id of a created entity from either a bare number
// or an object carrying field (matched case-insensitively).
func decodeCreatedID(body []byte, field string) (int64, error) {
	d := jx.DecodeBytes(body)
	switch d.Next() {
	case jx.Number:
		return d.Int64()
	case jx.Object:
		var (
			id    int64
			found bool
		)
		err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if !bytes.EqualFold(key, []byte(field)) || d.Next() != jx.Number {
				return d.Skip()
			}
			v, err := d.Int64()
			id, found = v, true

			return err
		})
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, errors.Errorf("response has no %s", field)
		}

		return id, nil
	default:
		return 0, errors.Errorf("unexpected id response type %s", d.Next())
	}
}

func (cl *Client) UpdateArticle(ctx context.Context, id domain.ArticleID, input domain.ArticleInput) error {
	return cl.do(ctx, call{
		op:     "update_article",
		method: http.MethodPut,
		path:   "/api/Articles/" + id.String(),
		body:   input,
	}, nil)
}

func (cl *Client) DeleteArticle(ctx context.Context, id domain.ArticleID) error {
	return cl.do(ctx, call{
		op:     "delete_article",
		method: http.MethodDelete,
		path:   "/api/Articles/" + id.String(),
	}, nil)
}

func (cl *Client) PublishArticle(ctx context.Context, id domain.ArticleID) error {
	return cl.do(ctx, call{
		op:     "publish_article",
		method: http.MethodPut,
		path:   "/api/Articles/" + id.String() + "/publish",
	}, nil)
}

func (cl *Client) LikeArticle(ctx context.Context, id domain.ArticleID) error {
	return cl.do(ctx, call{
		op:     "like_article",
		method: http.MethodPost,
		path:   "/api/likes/article/" + id.String() + "/like",
	}, nil)
}

func (cl *Client) UnlikeArticle(ctx context.Context, id domain.ArticleID) error {
	return cl.do(ctx, call{
		op:     "unlike_article",
		method: http.MethodDelete,
		path:   "/api/likes/article/" + id.String() + "/unlike",
	}, nil)
}
