// Package pagehandler serves the HTML pages. Handlers fetch what they render
// from the backend on every request and follow Post/Redirect/Get for forms.
package pagehandler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"newsroom/internal/forms"
	"newsroom/internal/session"
	"newsroom/internal/uploads"
	"newsroom/internal/web/flash"
	"newsroom/internal/web/view"
	"newsroom/pkg/domain"
	"newsroom/pkg/logger"
	"newsroom/pkg/metrics"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Deps struct {
	News     newsapi.Client
	Sessions *session.Manager
	Uploads  *uploads.Service
	Views    *view.Renderer
	Flash    *flash.Store
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every page. The session middleware must run before them.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Route("/news", func(r chi.Router) {
		r.Get("/search", h.Search)
		r.Get("/category/{categoryID}/{listType}", h.CategoryList)
		r.Get("/{listType}", h.List)

		r.Route("/article/{articleID}", func(r chi.Router) {
			r.Get("/", h.Article)
			r.Get("/{slug}", h.Article)
			r.Post("/like", h.LikeArticle)
			r.Post("/comments", h.CreateComment)
			r.Post("/comments/{commentID}/like", h.LikeComment)
			r.Get("/comments/{commentID}/delete", h.ConfirmDeleteComment)
			r.Post("/comments/{commentID}/delete", h.DeleteComment)
		})
	})

	r.Get(session.LoginPath, h.LoginPage)
	r.Post(session.LoginPath, h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/signup", h.SignUpPage)
	r.Post("/signup", h.SignUp)
	r.Get("/forgot-password", h.ForgotPasswordPage)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Get("/reset-password", h.ResetPasswordPage)
	r.Post("/reset-password", h.ResetPassword)
	r.Get("/activate-account/resend", h.ResendActivationPage)
	r.Post("/activate-account/resend", h.ResendActivation)
	r.Get("/activate-account/{token}", h.ActivateAccount)
	r.Get("/journalist/activate/{token}", h.JournalistActivationPage)
	r.Post("/journalist/activate/{token}", h.ActivateJournalist)

	r.Group(func(r chi.Router) {
		r.Use(h.requireRole("view your profile", nil))
		r.Get("/profile", h.Profile)
		r.Post("/profile", h.ChangePassword)
	})

	r.Route("/journalist", func(r chi.Router) {
		r.Use(h.requireRole("write articles", domain.Role.CanAuthor))
		r.Get("/dashboard", h.Dashboard)
		r.Get("/articles/new", h.NewArticle)
		r.Post("/articles/new", h.SaveArticle)
		r.Get("/articles/{articleID}/edit", h.EditArticle)
		r.Post("/articles/{articleID}/edit", h.SaveArticle)
		r.Post("/articles/{articleID}/publish", h.PublishArticle)
		r.Get("/articles/{articleID}/delete", h.ConfirmDeleteArticle)
		r.Post("/articles/{articleID}/delete", h.DeleteArticle)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.requireRole("manage journalists", domain.Role.IsAdmin))
		r.Get("/", h.Admin)
		r.Post("/", h.RegisterJournalist)
	})
}

// requireRole sends anonymous visitors to the login page and visitors
// whose role does not satisfy allowed to the front page. A nil allowed
// admits every signed-in visitor.
func (h *Handler) requireRole(action string, allowed func(domain.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())
			if s == nil {
				h.deps.Flash.Set(w, flash.Info, "Please log in to "+action+".")
				http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)

				return
			}
			if allowed != nil && !allowed(s.Role) {
				h.deps.Flash.Set(w, flash.Error, "You do not have access to that page.")
				http.Redirect(w, r, "/", http.StatusSeeOther)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// page starts the template data of a request.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, title string) view.Page {
	return view.Page{
		Title:   title,
		Session: session.FromContext(r.Context()),
		Flash:   h.deps.Flash.Pop(w, r),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, p view.Page) {
	if err := h.deps.Views.Render(w, status, name, p); err != nil {
		logger.Error(r.Context(), "could not render page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// categories loads the navigation categories. Pages still render without them.
func (h *Handler) categories(r *http.Request) []domain.Category {
	list, err := h.deps.News.Categories(r.Context())
	if err != nil {
		logger.Warn(r.Context(), "could not load categories", zap.Error(err))

		return nil
	}

	return list
}

// unauthorized ends a session the backend no longer accepts. It reports
// whether the response was written.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !newsapi.IsUnauthorized(err) {
		return false
	}
	metrics.BackendUnauthorizedTotal.Inc()
	if !strings.HasPrefix(r.URL.Path, session.LoginPath) {
		h.deps.Flash.Set(w, flash.Info, "Your session has expired. Please log in again.")
	}

	return h.deps.Sessions.HandleUnauthorized(w, r)
}

type errorData struct {
	Heading string
	Message string
}

// fail renders err as an error page.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if h.unauthorized(w, r, err) {
		return
	}

	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)
	data := errorData{Heading: "Something went wrong", Message: serrors.MessageOf(err, newsapi.DefaultErrorMessage)}
	switch {
	case errors.Is(kind, serrors.ErrNotFound):
		data.Heading = "Page not found"
		data.Message = "The page you are looking for does not exist."
	case errors.Is(kind, serrors.ErrForbidden):
		data.Heading = "Access denied"
	case status >= http.StatusInternalServerError:
		logger.Error(r.Context(), "page failed", zap.Error(err))
	default:
		logger.Warn(r.Context(), "page failed", zap.Error(err))
	}

	p := h.page(w, r, data.Heading)
	p.Data = data
	h.render(w, r, status, "error", p)
}

// formFailed handles a failed backend call behind a form. It returns the
// alert to show next to the preserved input, or "" when the response was
// already written.
func (h *Handler) formFailed(w http.ResponseWriter, r *http.Request, err error) string {
	if h.unauthorized(w, r, err) {
		return ""
	}
	if serrors.HTTPStatus(serrors.KindOf(err)) >= http.StatusInternalServerError {
		logger.Error(r.Context(), "form submission failed", zap.Error(err))
	}

	return serrors.MessageOf(err, newsapi.DefaultErrorMessage)
}

// NotFound renders the not found page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, serrors.KindOnly(serrors.ErrNotFound))
}

// back is the local page the visitor came from, or fallback.
func back(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) || !strings.HasPrefix(ref.Path, "/") {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}

	return ref.Path
}

func decode(r *http.Request, dst any) {
	if err := r.ParseForm(); err != nil {
		logger.Debug(r.Context(), "could not parse form", zap.Error(err))
	}
	if err := forms.Decode(r.PostForm, dst); err != nil {
		logger.Debug(r.Context(), "could not decode form", zap.Error(err))
	}
}
