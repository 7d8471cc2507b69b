package v1handler

import (
	"net/http"
	"strconv"

	"newsroom/internal/comments"
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// LikeRequest carries the like state the page shows before the toggle.
type LikeRequest struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

func (l *LikeRequest) Bind(*http.Request) error {
	if l.LikeCount < 0 {
		l.LikeCount = 0
	}

	return nil
}

// LikeResponse is the state after the toggle.
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

func (*LikeResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// toggle applies the comment like rule to the submitted state.
func toggle(req LikeRequest) (bool, *LikeResponse) {
	c := domain.Comment{IsLiked: req.Liked, LikeCount: req.LikeCount}
	wasLiked := comments.ToggleLike(&c)

	return wasLiked, &LikeResponse{Liked: c.IsLiked, LikeCount: c.LikeCount}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "Invalid %s", name)
	}

	return id, nil
}

func (h *Handler) ToggleArticleLike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "articleID")
	if err != nil {
		h.fail(w, r, err)

		return
	}

	var req LikeRequest
	if err := render.Bind(r, &req); err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid request body"))

		return
	}

	wasLiked, resp := toggle(req)
	if wasLiked {
		err = h.deps.News.UnlikeArticle(r.Context(), domain.ArticleID(id))
	} else {
		err = h.deps.News.LikeArticle(r.Context(), domain.ArticleID(id))
	}
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, resp)
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "commentID")
	if err != nil {
		h.fail(w, r, err)

		return
	}

	var req LikeRequest
	if err := render.Bind(r, &req); err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid request body"))

		return
	}

	wasLiked, resp := toggle(req)
	if wasLiked {
		err = h.deps.News.UnlikeComment(r.Context(), domain.CommentID(id))
	} else {
		err = h.deps.News.LikeComment(r.Context(), domain.CommentID(id))
	}
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, resp)
}
