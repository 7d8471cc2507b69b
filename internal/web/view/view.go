// Package view renders the HTML pages of the site from embedded templates
// and serves the static assets.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"newsroom/internal/comments"
	"newsroom/internal/forms"
	"newsroom/internal/session"
	"newsroom/internal/web/flash"
	"newsroom/pkg/domain"
	"newsroom/pkg/pagination"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title      string
	Session    *domain.Session
	Flash      *flash.Message
	Categories []domain.Category
	// Form holds the submitted values of the page's form.
	Form   any
	Errors forms.Errors
	// Error is a page-level alert, usually the backend's message.
	Error      string
	Pagination *pagination.View
	Data       any
}

// SignedIn reports whether a visitor is signed in.
func (p Page) SignedIn() bool { return p.Session != nil }

// CanAuthor reports whether the visitor may use the journalist pages.
func (p Page) CanAuthor() bool { return p.Session != nil && p.Session.Role.CanAuthor() }

func (p Page) IsAdmin() bool { return p.Session != nil && p.Session.Role.IsAdmin() }

// UserID is the visitor's id, or "" for anonymous visitors.
func (p Page) UserID() domain.UserID {
	if p.Session == nil {
		return ""
	}

	return p.Session.UserID
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs()).ParseFS(templateFS,
		"templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not list pages: %w", err)
	}

	rd := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("could not clone layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", file, err)
		}
		rd.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}

	return rd, nil
}

// Render writes the named page with status. The page is rendered to a buffer
// first so a template error never leaves a half-written response.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) error {
	t, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("could not render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

// Static serves the embedded assets; mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}

//nolint: gochecknoglobals
var (
	policy       = newPolicy()
	editorPolicy = newPolicy().AllowAttrs("data-upload-id").OnElements("img")
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span", "figure", "img")
	p.RequireNoReferrerOnLinks(true)

	return p
}

// Sanitize strips anything but safe rich-text markup from article HTML.
func Sanitize(raw string) template.HTML {
	return template.HTML(policy.Sanitize(raw)) //nolint: gosec
}

// SanitizeEditor is Sanitize that keeps upload placeholders, for content
// going back into the editor.
func SanitizeEditor(raw string) template.HTML {
	return template.HTML(editorPolicy.Sanitize(raw)) //nolint: gosec
}

// ArticleURL is the canonical path of an article page.
func ArticleURL(a domain.Article) string {
	return "/news/article/" + a.ID.String() + "/" + a.PathSlug()
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"sanitize":       Sanitize,
		"sanitizeEditor": SanitizeEditor,
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict needs key and value pairs")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				k, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
				}
				m[k] = pairs[i+1]
			}

			return m, nil
		},
		"articleURL": ArticleURL,
		"ago":        humanize.Time,
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"datePtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}

			return t.Format("Jan 2, 2006")
		},
		"count":    humanize.Comma,
		"roleName": session.FormatRole,
		"isOwner":  comments.IsOwner,
		"threads":  comments.Organize,
		"plural": func(n int, one, many string) string {
			if n == 1 {
				return one
			}

			return many
		},
		"field": func(errs forms.Errors, name string) string {
			return errs.Get(name)
		},
		"maxComment": func() int { return comments.MaxLength },
	}
}
