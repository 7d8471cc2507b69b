package pagehandler

import (
	"errors"
	"net/http"
	"net/url"

	"newsroom/internal/forms"
	"newsroom/internal/uploads"
	"newsroom/internal/web/flash"
	"newsroom/pkg/domain"
	"newsroom/pkg/logger"
	"newsroom/pkg/pagination"
	"newsroom/pkg/serrors"

	"go.uber.org/zap"
)

const dashboardPath = "/journalist/dashboard"

// multipartMemory is how much of a multipart body is held in memory; the
// rest spills to temporary files.
const multipartMemory = 8 << 20

type dashboardData struct {
	Tabs     []tab
	Articles []domain.Article
}

type editorData struct {
	Editing    bool
	Action     string
	Categories []domain.Category
}

type articleDeleteData struct {
	Article domain.Article
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var status *domain.ArticleStatus
	current := r.URL.Query().Get("status")
	switch current {
	case "draft":
		s := domain.ArticleDraft
		status = &s
	case "published":
		s := domain.ArticlePublished
		status = &s
	default:
		current = ""
	}

	req := pageRequest(r)
	page, err := h.deps.News.JournalistArticles(r.Context(), status, req)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	tabs := make([]tab, 0, 3)
	for _, t := range []struct{ label, status string }{{"All", ""}, {"Drafts", "draft"}, {"Published", "published"}} {
		u := dashboardPath
		if t.status != "" {
			u += "?" + url.Values{"status": {t.status}}.Encode()
		}
		tabs = append(tabs, tab{Label: t.label, URL: u, Active: t.status == current})
	}

	p := h.page(w, r, "My articles")
	p.Data = dashboardData{Tabs: tabs, Articles: page.Items}
	p.Pagination = pagination.New(*r.URL, pagination.Params{
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    page.TotalCount,
		OnPage:   len(page.Items),
	})
	h.render(w, r, http.StatusOK, "dashboard", p)
}

func (h *Handler) renderEditor(
	w http.ResponseWriter, r *http.Request, status int, f forms.Article, errs forms.Errors, alert string,
) {
	id, editing := articleID(r)
	action := "/journalist/articles/new"
	if editing {
		action = "/journalist/articles/" + id.String() + "/edit"
	}

	p := h.page(w, r, "Editor")
	p.Form = f
	p.Errors = errs
	p.Error = alert
	p.Data = editorData{Editing: editing, Action: action, Categories: h.categories(r)}
	h.render(w, r, status, "editor", p)
}

func (h *Handler) NewArticle(w http.ResponseWriter, r *http.Request) {
	h.renderEditor(w, r, http.StatusOK, forms.Article{}, nil, "")
}

func (h *Handler) EditArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}

	a, err := h.deps.News.Article(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.renderEditor(w, r, http.StatusOK, forms.Article{
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		CategoryID:  int64(a.CategoryID),
		ImageURL:    a.ImageURL,
	}, nil, "")
}

// SaveArticle handles every editor submission: back to editing, preview,
// save as draft and publish. A new thumbnail is uploaded first so it
// survives a failed validation or a preview.
func (h *Handler) SaveArticle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderEditor(w, r, http.StatusBadRequest, forms.Article{}, nil, "Could not read the submitted form.")

		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	var f forms.Article
	if err := forms.Decode(r.PostForm, &f); err != nil {
		logger.Debug(r.Context(), "could not decode article form", zap.Error(err))
	}

	if file, header, err := r.FormFile("thumbnail"); err == nil {
		defer func() { _ = file.Close() }()
		if header.Size > 0 {
			imageURL, err := h.deps.Uploads.Upload(r.Context(), uploads.File{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Body:        file,
			})
			if err != nil {
				if h.unauthorized(w, r, err) {
					return
				}
				h.renderEditor(w, r, serrors.HTTPStatus(serrors.KindOf(err)), f,
					forms.Errors{"imageURL": serrors.MessageOf(err, "Failed to upload image. Please try again.")}, "")

				return
			}
			f.ImageURL = imageURL
			f.Thumbnail = true
		}
	}

	if f.Action == "edit" {
		h.renderEditor(w, r, http.StatusOK, f, nil, "")

		return
	}

	content, err := uploads.Splice(f.Content, h.deps.Uploads.Tracker())
	if err != nil {
		h.renderEditor(w, r, serrors.HTTPStatus(serrors.KindOf(err)), f, nil,
			serrors.MessageOf(err, "Please wait for image uploads to finish."))

		return
	}
	f.Content = content

	if errs := forms.Validate(f); errs != nil {
		h.renderEditor(w, r, http.StatusUnprocessableEntity, f, errs, "")

		return
	}

	if f.Action == forms.ActionPreview {
		id, editing := articleID(r)
		action := "/journalist/articles/new"
		if editing {
			action = "/journalist/articles/" + id.String() + "/edit"
		}
		p := h.page(w, r, "Preview")
		p.Form = f
		p.Data = editorData{Editing: editing, Action: action}
		h.render(w, r, http.StatusOK, "preview", p)

		return
	}

	in := f.Input()
	if id, editing := articleID(r); editing {
		err = h.deps.News.UpdateArticle(r.Context(), id, in)
	} else {
		var created domain.ArticleID
		created, err = h.deps.News.CreateArticle(r.Context(), in)
		if err == nil {
			logger.Info(r.Context(), "article created", zap.Stringer("articleID", created))
		}
	}
	if err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.renderEditor(w, r, serrors.HTTPStatus(serrors.KindOf(err)), f, nil, msg)
		}

		return
	}

	notice := "Article saved as draft."
	if in.Status == domain.ArticlePublished {
		notice = "Article published."
	}
	h.deps.Flash.Set(w, flash.Success, notice)
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

func (h *Handler) PublishArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}

	if err := h.deps.News.PublishArticle(r.Context(), id); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.deps.Flash.Set(w, flash.Error, msg)
			http.Redirect(w, r, back(r, dashboardPath), http.StatusSeeOther)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Article published.")
	http.Redirect(w, r, back(r, dashboardPath), http.StatusSeeOther)
}

func (h *Handler) ConfirmDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}

	a, err := h.deps.News.Article(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	p := h.page(w, r, "Delete article")
	p.Data = articleDeleteData{Article: *a}
	h.render(w, r, http.StatusOK, "article_delete", p)
}

func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		h.NotFound(w, r)

		return
	}

	if err := h.deps.News.DeleteArticle(r.Context(), id); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.deps.Flash.Set(w, flash.Error, msg)
			http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Article deleted.")
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}
