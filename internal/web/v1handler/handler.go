// Package v1handler serves the JSON endpoints used by the pages' scripts:
// inline image uploads and like toggles.
package v1handler

import (
	"errors"
	"net/http"

	"newsroom/internal/session"
	"newsroom/internal/uploads"
	"newsroom/pkg/domain"
	"newsroom/pkg/logger"
	"newsroom/pkg/metrics"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Deps struct {
	News     newsapi.Client
	Sessions *session.Manager
	Uploads  *uploads.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints relative to the router's mount point.
func (h *Handler) Routes(r chi.Router) {
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(h.requireRole(nil))

	r.Post("/articles/{articleID}/like", h.ToggleArticleLike)
	r.Post("/comments/{commentID}/like", h.ToggleCommentLike)

	r.Group(func(r chi.Router) {
		r.Use(h.requireRole(domain.Role.CanAuthor))
		r.Post("/uploads", h.CreateUpload)
		r.Get("/uploads/{uploadID}", h.GetUpload)
	})
}

// ErrResponse is the body of every failed v1 call.
type ErrResponse struct {
	HTTPStatusCode int    `json:"-"`
	Code           string `json:"code"`
	Message        string `json:"message"`
}

func (e *ErrResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// NewError maps err to its response. Unexpected errors are logged and their
// details hidden.
func (h *Handler) NewError(r *http.Request, err error) *ErrResponse {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "v1 call failed", zap.Error(err))
	} else {
		logger.Debug(r.Context(), "v1 call rejected", zap.Error(err))
	}

	return &ErrResponse{
		HTTPStatusCode: status,
		Code:           kind.Error(),
		Message:        serrors.MessageOf(err, newsapi.DefaultErrorMessage),
	}
}

// fail writes err. A token the backend rejected also ends the session so
// the script's redirect to the login page lands on a clean state.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, serrors.ErrUnauthorized) && session.FromContext(r.Context()) != nil {
		metrics.BackendUnauthorizedTotal.Inc()
		if derr := h.deps.Sessions.Destroy(w, r); derr != nil {
			logger.Warn(r.Context(), "could not destroy rejected session", zap.Error(derr))
		}
	}

	if rerr := render.Render(w, r, h.NewError(r, err)); rerr != nil {
		logger.Error(r.Context(), "could not render error", zap.Error(rerr))
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, v render.Renderer) {
	render.Status(r, status)
	if err := render.Render(w, r, v); err != nil {
		logger.Error(r.Context(), "could not render response", zap.Error(err))
	}
}

// requireRole rejects calls without a session with 401 and calls whose role
// does not satisfy allowed with 403. A nil allowed admits any session.
func (h *Handler) requireRole(allowed func(domain.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())
			switch {
			case s == nil:
				h.fail(w, r, serrors.With(serrors.ErrUnauthorized, "Please log in to continue."))
			case allowed != nil && !allowed(s.Role):
				h.fail(w, r, serrors.With(serrors.ErrForbidden, "You do not have access to this action."))
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
