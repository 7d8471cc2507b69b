package pagehandler

import (
	"net/http"
	"strconv"

	"newsroom/internal/comments"
	"newsroom/internal/forms"
	"newsroom/internal/session"
	"newsroom/internal/web/flash"
	"newsroom/internal/web/view"
	"newsroom/pkg/domain"
	"newsroom/pkg/logger"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type articleData struct {
	Article      domain.Article
	Threads      []comments.Thread
	CommentCount int
	ReplyTo      *domain.Comment
}

type commentDeleteData struct {
	ArticleID domain.ArticleID
	Comment   domain.Comment
}

func articleID(r *http.Request) (domain.ArticleID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)

	return domain.ArticleID(id), err == nil && id > 0
}

func commentID(r *http.Request) (domain.CommentID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)

	return domain.CommentID(id), err == nil && id > 0
}

func articlePath(id domain.ArticleID) string { return "/news/article/" + id.String() }

// loadArticle fetches an article together with its comments. A comment
// failure other than a rejected token leaves the comment list empty.
func (h *Handler) loadArticle(r *http.Request, id domain.ArticleID) (*domain.Article, []domain.Comment, error) {
	var (
		article *domain.Article
		list    []domain.Comment
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		article, err = h.deps.News.Article(ctx, id)

		return err
	})
	g.Go(func() (err error) {
		list, err = h.articleComments(r.WithContext(ctx), id)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return article, list, nil
}

// articleComments fetches the comments of an article. Only a rejected token
// is an error; other failures leave the list empty.
func (h *Handler) articleComments(r *http.Request, id domain.ArticleID) ([]domain.Comment, error) {
	list, err := h.deps.News.ArticleComments(r.Context(), id)
	if err != nil && serrors.KindOf(err) != serrors.ErrUnauthorized {
		logger.Warn(r.Context(), "could not load comments", zap.Error(err))

		return nil, nil
	}

	return list, err
}

func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}

	// the bare id path is what the site's own redirects use; it renders as is
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		h.reshowArticle(w, r, http.StatusOK, h.page(w, r, ""), id)

		return
	}

	// every article fetch counts a view, so a stale slug is redirected
	// before anything else is loaded
	article, err := h.deps.News.Article(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	if slug != article.PathSlug() {
		canonical := view.ArticleURL(*article)
		if r.URL.RawQuery != "" {
			canonical += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, canonical, http.StatusFound)

		return
	}

	list, err := h.articleComments(r, id)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.renderArticle(w, r, http.StatusOK, h.page(w, r, article.Title), article, list)
}

func (h *Handler) renderArticle(
	w http.ResponseWriter, r *http.Request, status int, p view.Page, article *domain.Article, list []domain.Comment,
) {
	threads := comments.Organize(list)
	data := articleData{Article: *article, Threads: threads, CommentCount: comments.Count(threads)}
	if raw := r.URL.Query().Get("reply"); raw != "" {
		if target, err := strconv.ParseInt(raw, 10, 64); err == nil {
			if c, ok := comments.Find(list, domain.CommentID(target)); ok {
				data.ReplyTo = c
			}
		}
	}
	if f, ok := p.Form.(forms.Comment); ok && f.ParentID > 0 && data.ReplyTo == nil {
		data.ReplyTo, _ = comments.Find(list, domain.CommentID(f.ParentID))
	}

	p.Title = article.Title
	p.Categories = h.categories(r)
	p.Data = data
	h.render(w, r, status, "article", p)
}

// signedIn redirects anonymous visitors back to the article with a notice.
func (h *Handler) signedIn(w http.ResponseWriter, r *http.Request, action string, id domain.ArticleID) bool {
	if session.FromContext(r.Context()) != nil {
		return true
	}
	h.deps.Flash.Set(w, flash.Info, "Please log in to "+action+".")
	http.Redirect(w, r, articlePath(id), http.StatusSeeOther)

	return false
}

func (h *Handler) LikeArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}
	if !h.signedIn(w, r, "like articles", id) {
		return
	}

	var f likeForm
	decode(r, &f)

	var err error
	if f.Liked {
		err = h.deps.News.UnlikeArticle(r.Context(), id)
	} else {
		err = h.deps.News.LikeArticle(r.Context(), id)
	}
	if err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.deps.Flash.Set(w, flash.Error, msg)
			http.Redirect(w, r, articlePath(id), http.StatusSeeOther)
		}

		return
	}

	http.Redirect(w, r, articlePath(id)+"#like", http.StatusSeeOther)
}

type likeForm struct {
	Liked bool `form:"liked"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}
	if !h.signedIn(w, r, "comment", id) {
		return
	}

	var f forms.Comment
	decode(r, &f)

	p := h.page(w, r, "")
	p.Form = f
	if errs := forms.Validate(f); errs != nil {
		p.Errors = errs
		h.reshowArticle(w, r, http.StatusUnprocessableEntity, p, id)

		return
	}

	in, err := f.Input(id)
	if err == nil && in.ParentCommentID != nil {
		err = h.resolveParent(r, &in)
	}
	if err == nil {
		err = h.deps.News.CreateComment(r.Context(), in)
	}
	if err != nil {
		msg := h.formFailed(w, r, err)
		if msg == "" {
			return
		}
		p.Error = msg
		h.reshowArticle(w, r, serrors.HTTPStatus(serrors.KindOf(err)), p, id)

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Comment posted.")
	http.Redirect(w, r, articlePath(id)+"#comments", http.StatusSeeOther)
}

// resolveParent re-targets a reply to a reply at the top-level comment.
func (h *Handler) resolveParent(r *http.Request, in *domain.CommentInput) error {
	list, err := h.deps.News.ArticleComments(r.Context(), in.ArticleID)
	if err != nil {
		return err
	}
	parent, err := comments.ReplyParent(list, *in.ParentCommentID)
	if err != nil {
		return serrors.Wrap(serrors.ErrNotFound, err, "The comment you replied to no longer exists.")
	}
	in.ParentCommentID = &parent

	return nil
}

// reshowArticle renders the article again with the submitted comment form.
func (h *Handler) reshowArticle(w http.ResponseWriter, r *http.Request, status int, p view.Page, id domain.ArticleID) {
	article, list, err := h.loadArticle(r, id)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.renderArticle(w, r, status, p, article, list)
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	cid, cok := commentID(r)
	if !ok || !cok {
		h.NotFound(w, r)

		return
	}
	if !h.signedIn(w, r, "like comments", id) {
		return
	}

	var f likeForm
	decode(r, &f)

	var err error
	if f.Liked {
		err = h.deps.News.UnlikeComment(r.Context(), cid)
	} else {
		err = h.deps.News.LikeComment(r.Context(), cid)
	}
	if err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.deps.Flash.Set(w, flash.Error, msg)
			http.Redirect(w, r, articlePath(id)+"#comments", http.StatusSeeOther)
		}

		return
	}

	http.Redirect(w, r, articlePath(id)+"#comment-"+cid.String(), http.StatusSeeOther)
}

// ownComment loads the article and checks that the visitor wrote the comment.
func (h *Handler) ownComment(w http.ResponseWriter, r *http.Request) (domain.ArticleID, *domain.Comment, bool) {
	id, ok := articleID(r)
	cid, cok := commentID(r)
	if !ok || !cok {
		h.NotFound(w, r)

		return 0, nil, false
	}
	if !h.signedIn(w, r, "manage comments", id) {
		return 0, nil, false
	}

	list, err := h.deps.News.ArticleComments(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)

		return 0, nil, false
	}
	c, found := comments.Find(list, cid)
	if !found {
		h.NotFound(w, r)

		return 0, nil, false
	}
	if !comments.IsOwner(*c, session.FromContext(r.Context()).UserID) {
		h.fail(w, r, serrors.With(serrors.ErrForbidden, "You can only delete your own comments."))

		return 0, nil, false
	}

	return id, c, true
}

func (h *Handler) ConfirmDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.ownComment(w, r)
	if !ok {
		return
	}

	p := h.page(w, r, "Delete comment")
	p.Data = commentDeleteData{ArticleID: id, Comment: *c}
	h.render(w, r, http.StatusOK, "comment_delete", p)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.ownComment(w, r)
	if !ok {
		return
	}

	if err := h.deps.News.DeleteComment(r.Context(), c.ID); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.deps.Flash.Set(w, flash.Error, msg)
			http.Redirect(w, r, articlePath(id)+"#comments", http.StatusSeeOther)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Comment deleted.")
	http.Redirect(w, r, articlePath(id)+"#comments", http.StatusSeeOther)
}
