package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom/pkg/domain"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/newsapi/restapi"
	"newsroom/pkg/serrors"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newClient(t *testing.T, h http.HandlerFunc) (*restapi.Client, *sdkmetric.ManualReader) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	reader := sdkmetric.NewManualReader()
	c, err := restapi.New(restapi.Options{
		BaseURL:       srv.URL,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	})
	require.NoError(t, err)

	return c, reader
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	_, err := restapi.New(restapi.Options{BaseURL: "/api"})
	require.Error(t, err)
}

func TestBearerInjection(t *testing.T) {
	var gotAuth []string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	_, err = c.Categories(newsapi.WithToken(context.Background(), "tok"))
	require.NoError(t, err)

	require.Equal(t, []string{"", "Bearer tok"}, gotAuth)
}

func TestLogin(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds domain.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "a@b.c", creds.Email)

		_, _ = io.WriteString(w, `{"token":"jwt-value","expires":"later"}`)
	})

	token, err := c.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "jwt-value", token)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantKind    serrors.Kind
		wantMessage string
	}{
		{
			name: "message field", status: http.StatusBadRequest, contentType: "application/json",
			body: `{"message":"Email is already registered.","code":7}`, wantKind: serrors.ErrBadRequest,
			wantMessage: "Email is already registered.",
		},
		{
			name: "bare json string", status: http.StatusConflict, contentType: "application/json",
			body: `"Already liked"`, wantKind: serrors.ErrConflict, wantMessage: "Already liked",
		},
		{
			name: "plain text", status: http.StatusNotFound, contentType: "text/plain; charset=utf-8",
			body: "Article not found", wantKind: serrors.ErrNotFound, wantMessage: "Article not found",
		},
		{
			name: "html is not shown", status: http.StatusBadGateway, contentType: "text/html",
			body: "<html>bad gateway</html>", wantKind: serrors.ErrInternal, wantMessage: newsapi.DefaultErrorMessage,
		},
		{
			name: "object without message", status: http.StatusUnauthorized, contentType: "application/json",
			body: `{"title":"Unauthorized"}`, wantKind: serrors.ErrUnauthorized, wantMessage: newsapi.DefaultErrorMessage,
		},
		{
			name: "empty body", status: http.StatusForbidden, wantKind: serrors.ErrForbidden,
			wantMessage: newsapi.DefaultErrorMessage,
		},
		{
			name: "rate limited", status: http.StatusTooManyRequests, wantKind: serrors.ErrRateLimited,
			wantMessage: newsapi.DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.DeleteComment(context.Background(), 5)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantKind)
			require.Equal(t, tt.status, newsapi.Status(err))
			require.Equal(t, tt.wantMessage, serrors.MessageOf(err, ""))
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := restapi.New(restapi.Options{BaseURL: base})
	require.NoError(t, err)

	_, err = c.Article(context.Background(), 1)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, serrors.StatusNetwork, newsapi.Status(err))
	require.Equal(t, newsapi.NetworkErrorMessage, serrors.MessageOf(err, ""))
}

func TestListingShapes(t *testing.T) {
	t.Run("object with total", func(t *testing.T) {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/Articles/latest", r.URL.Path)
			require.Equal(t, "2", r.URL.Query().Get("page"))
			require.Equal(t, "10", r.URL.Query().Get("pageSize"))
			_, _ = io.WriteString(w, `{"items":[{"articleID":3,"title":"T"}],"totalCount":31}`)
		})

		page, err := c.LatestArticles(context.Background(), domain.PageRequest{Page: 2, PageSize: 10})
		require.NoError(t, err)
		require.Equal(t, 31, page.TotalCount)
		require.Len(t, page.Items, 1)
		require.Equal(t, domain.ArticleID(3), page.Items[0].ID)
	})

	t.Run("bare array", func(t *testing.T) {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"articleID":1},{"articleID":2}]`)
		})

		page, err := c.TrendingArticles(context.Background(), domain.PageRequest{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.Equal(t, domain.UnknownTotal, page.TotalCount)
	})

	t.Run("null", func(t *testing.T) {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `null`)
		})

		page, err := c.SearchArticles(context.Background(), "x", domain.PageRequest{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Empty(t, page.Items)
	})

	t.Run("garbage", func(t *testing.T) {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `42`)
		})

		_, err := c.SearchArticles(context.Background(), "x", domain.PageRequest{Page: 1, PageSize: 10})
		require.ErrorIs(t, err, serrors.ErrInternal)
	})
}

func TestCategoryAndJournalistQueries(t *testing.T) {
	var queries []string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Path+"?"+r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"items":[],"totalCount":0}`)
	})

	ctx := context.Background()
	_, err := c.CategoryArticles(ctx, 4, domain.ListTrending, domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	_, err = c.SearchArticles(ctx, "city hall", domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	published := domain.ArticlePublished
	_, err = c.JournalistArticles(ctx, &published, domain.PageRequest{Page: 3, PageSize: 10})
	require.NoError(t, err)
	_, err = c.JournalistArticles(ctx, nil, domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Equal(t, []string{
		"/api/Articles/category/4?listType=1&page=1&pageSize=10",
		"/api/Articles/search?page=1&pageSize=10&query=city+hall",
		"/journalist/articles?page=3&pageSize=10&status=1",
		"/journalist/articles?page=1&pageSize=10",
	}, queries)
}

func TestCreateArticleID(t *testing.T) {
	for name, body := range map[string]string{
		"object":      `{"articleID":17,"title":"x"}`,
		"camel case":  `{"articleId":17}`,
		"bare number": `17`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/Articles", r.URL.Path)
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, body)
			})

			id, err := c.CreateArticle(context.Background(), domain.ArticleInput{Title: "x"})
			require.NoError(t, err)
			require.Equal(t, domain.ArticleID(17), id)
		})
	}
}

func TestLikeEndpoints(t *testing.T) {
	var calls []string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	require.NoError(t, c.LikeArticle(ctx, 1))
	require.NoError(t, c.UnlikeArticle(ctx, 1))
	require.NoError(t, c.LikeComment(ctx, 2))
	require.NoError(t, c.UnlikeComment(ctx, 2))
	require.NoError(t, c.PublishArticle(ctx, 3))

	require.Equal(t, []string{
		"POST /api/likes/article/1/like",
		"DELETE /api/likes/article/1/unlike",
		"POST /api/likes/comment/2/like",
		"DELETE /api/likes/comment/2/unlike",
		"PUT /api/Articles/3/publish",
	}, calls)
}

func TestComments(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.Equal(t, "/api/comments/9", r.URL.Path)
			_, _ = io.WriteString(w,
				`[{"commentID":1,"articleID":9,"parentCommentID":null,"content":"a"},`+
					`{"commentID":2,"articleID":9,"parentCommentID":1,"content":"b"}]`)
		case http.MethodPost:
			var in domain.CommentInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, domain.ArticleID(9), in.ArticleID)
			require.NotNil(t, in.ParentCommentID)
			w.WriteHeader(http.StatusCreated)
		}
	})

	ctx := context.Background()
	comments, err := c.ArticleComments(ctx, 9)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Nil(t, comments[0].ParentCommentID)
	require.Equal(t, domain.CommentID(1), *comments[1].ParentCommentID)

	parent := domain.CommentID(1)
	require.NoError(t, c.CreateComment(ctx, domain.CommentInput{ArticleID: 9, ParentCommentID: &parent, Content: "c"}))
}

func TestPresignedURL(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/presigned-url", r.URL.Path)
		require.Equal(t, "png", r.URL.Query().Get("extension"))
		_, _ = io.WriteString(w, `{"url":"https://bucket/x.png?sig=1","fileName":"x.png"}`)
	})

	up, err := c.PresignedURL(context.Background(), "png")
	require.NoError(t, err)
	require.Equal(t, "https://bucket/x.png?sig=1", up.URL)
	require.Equal(t, "x.png", up.FileName)
}

func TestActivationTokenIsEscaped(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Auth/activate-account/a%2Fb", r.URL.EscapedPath())
	})

	require.NoError(t, c.ActivateAccount(context.Background(), "a/b"))
}

func TestDurationRecorded(t *testing.T) {
	c, reader := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Category(context.Background(), 1)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	require.Equal(t, "newsapi.request.duration", m.Name)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.EqualValues(t, 1, hist.DataPoints[0].Count)

	op, ok := hist.DataPoints[0].Attributes.Value("operation")
	require.True(t, ok)
	require.Equal(t, "category", op.AsString())
	status, ok := hist.DataPoints[0].Attributes.Value("status")
	require.True(t, ok)
	require.EqualValues(t, http.StatusNotFound, status.AsInt64())
}
