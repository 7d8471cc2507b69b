package pagehandler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func article() *domain.Article {
	return &domain.Article{
		ID:          5,
		Title:       "Rivers rise",
		Slug:        "rivers-rise",
		Description: "Flood warnings",
		Content:     "<p>Water everywhere</p>",
		LikeCount:   3,
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func commentsOf(articleID domain.ArticleID) []domain.Comment {
	parent := domain.CommentID(10)

	return []domain.Comment{
		{ID: 10, ArticleID: articleID, UserID: "42", AuthorName: "Ada", Content: "First!"},
		{ID: 11, ArticleID: articleID, ParentCommentID: &parent, UserID: "7", AuthorName: "Bob", Content: "Reply"},
	}
}

func TestArticle_StaleSlugRedirectsBeforeLoadingComments(t *testing.T) {
	f := newFixture(t, nil)
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(5)).Return(article(), nil).Times(1)

	rec := f.get("/news/article/5/old-headline?reply=10")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/news/article/5/rivers-rise?reply=10", rec.Header().Get("Location"))
}

func TestArticle_BarePathRendersWithOneFetch(t *testing.T) {
	f := newFixture(t, nil)
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(5)).Return(article(), nil).Times(1)
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil).Times(1)

	rec := f.get("/news/article/5?reply=10")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Rivers rise")
	require.Contains(t, rec.Body.String(), "Replying to")
}

func TestArticle_Renders(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(5)).Return(article(), nil)
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil)

	rec := f.get("/news/article/5/rivers-rise")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Rivers rise")
	require.Contains(t, body, "Water everywhere")
	require.Contains(t, body, "First!")
	require.Contains(t, body, "Reply")
}

func TestArticle_CommentFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, nil)
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(5)).Return(article(), nil)
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).
		Return(nil, serrors.KindOnly(serrors.ErrInternal))

	rec := f.get("/news/article/5/rivers-rise")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestArticle_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(9)).Return(nil, serrors.KindOnly(serrors.ErrNotFound))
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(9)).Return(nil, nil).AnyTimes()

	rec := f.get("/news/article/9/anything")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateComment_Anonymous(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.post("/news/article/5/comments", url.Values{"content": {"hi"}})
	requireRedirect(t, rec, "/news/article/5")
	require.NotNil(t, cookie(rec, flashCookie))
}

func TestCreateComment_Success(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().CreateComment(gomock.Any(), domain.CommentInput{ArticleID: 5, Content: "Nice piece"}).Return(nil)

	rec := f.post("/news/article/5/comments", url.Values{"content": {"  Nice piece  "}})
	requireRedirect(t, rec, "/news/article/5#comments")
}

func TestCreateComment_ReplyToReplyTargetsTopLevel(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil)

	top := domain.CommentID(10)
	f.news.EXPECT().CreateComment(gomock.Any(), domain.CommentInput{
		ArticleID: 5, ParentCommentID: &top, Content: "Agreed",
	}).Return(nil)

	rec := f.post("/news/article/5/comments", url.Values{"content": {"Agreed"}, "parentID": {"11"}})
	requireRedirect(t, rec, "/news/article/5#comments")
}

func TestCreateComment_EmptyReshowsArticle(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(5)).Return(article(), nil)
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil)

	rec := f.post("/news/article/5/comments", url.Values{"content": {"   "}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "Comment cannot be empty")
}

func TestCreateComment_BackendFailureKeepsInput(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().CreateComment(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrBadRequest, "Comments are closed."))
	f.news.EXPECT().Article(gomock.Any(), domain.ArticleID(5)).Return(article(), nil)
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(nil, nil)

	rec := f.post("/news/article/5/comments", url.Values{"content": {"Still here"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Comments are closed.")
	require.Contains(t, rec.Body.String(), "Still here")
}

func TestLikeArticle_Toggles(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().UnlikeArticle(gomock.Any(), domain.ArticleID(5)).Return(nil)

	rec := f.post("/news/article/5/like", url.Values{"liked": {"true"}})
	requireRedirect(t, rec, "/news/article/5#like")
}

func TestLikeComment(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().LikeComment(gomock.Any(), domain.CommentID(11)).Return(nil)

	rec := f.post("/news/article/5/comments/11/like", url.Values{"liked": {"false"}})
	requireRedirect(t, rec, "/news/article/5#comment-11")
}

func TestLikeArticle_TokenRejectedEndsSession(t *testing.T) {
	s := visitor(domain.RoleReader)
	f := newFixture(t, s)
	f.news.EXPECT().LikeArticle(gomock.Any(), domain.ArticleID(5)).Return(serrors.KindOnly(serrors.ErrUnauthorized))
	f.store.EXPECT().DeleteSession(gomock.Any(), s.ID).Return(nil)

	rec := f.post("/news/article/5/like", nil)
	requireRedirect(t, rec, "/login")
	require.Equal(t, -1, cookie(rec, "sid").MaxAge)
	require.NotNil(t, cookie(rec, flashCookie))
}

func TestDeleteComment_OnlyOwner(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil)

	rec := f.post("/news/article/5/comments/11/delete", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteComment_Owner(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil)
	f.news.EXPECT().DeleteComment(gomock.Any(), domain.CommentID(10)).Return(nil)

	rec := f.post("/news/article/5/comments/10/delete", nil)
	requireRedirect(t, rec, "/news/article/5#comments")
}

func TestConfirmDeleteComment(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().ArticleComments(gomock.Any(), domain.ArticleID(5)).Return(commentsOf(5), nil)

	rec := f.get("/news/article/5/comments/10/delete")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `action="/news/article/5/comments/10/delete"`)
}
