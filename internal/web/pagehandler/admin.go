package pagehandler

import (
	"net/http"

	"newsroom/internal/forms"
	"newsroom/internal/web/flash"
	"newsroom/pkg/serrors"
)

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "admin", "Admin", forms.RegisterJournalist{}, nil, "")
}

func (h *Handler) RegisterJournalist(w http.ResponseWriter, r *http.Request) {
	var f forms.RegisterJournalist
	decode(r, &f)
	if errs := forms.Validate(f); errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "admin", "Admin", f, errs, "")

		return
	}

	if err := h.deps.News.RegisterJournalist(r.Context(), f.Registration()); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.renderForm(w, r, serrors.HTTPStatus(serrors.KindOf(err)), "admin", "Admin", f, nil, msg)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Journalist "+f.FirstName+" "+f.LastName+" registered successfully.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
