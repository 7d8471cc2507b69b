package v1handler

import (
	"net/http"

	"newsroom/internal/uploads"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

const multipartMemory = 8 << 20

// UploadResponse reports the progress of an inline image upload.
type UploadResponse struct {
	uploads.Status
}

func (*UploadResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// CreateUpload starts a background upload of the multipart "file" field and
// answers 202 with its id.
func (h *Handler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Expected a multipart form with a file"))

		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "No file was uploaded"))

		return
	}
	defer func() { _ = file.Close() }()

	status, err := h.deps.Uploads.Start(r.Context(), uploads.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.respond(w, r, http.StatusAccepted, &UploadResponse{Status: status})
}

func (h *Handler) GetUpload(w http.ResponseWriter, r *http.Request) {
	status, ok := h.deps.Uploads.Tracker().Get(chi.URLParam(r, "uploadID"))
	if !ok {
		h.fail(w, r, serrors.With(serrors.ErrNotFound, "Upload not found"))

		return
	}

	h.respond(w, r, http.StatusOK, &UploadResponse{Status: status})
}
