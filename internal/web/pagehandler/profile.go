package pagehandler

import (
	"net/http"

	"newsroom/internal/forms"
	"newsroom/internal/session"
	"newsroom/internal/web/flash"
	"newsroom/pkg/logger"
	"newsroom/pkg/serrors"

	"go.uber.org/zap"
)

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "profile", "Profile", forms.ChangePassword{}, nil, "")
}

// ChangePassword changes the password and signs the user out of every other
// browser.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var f forms.ChangePassword
	decode(r, &f)
	if errs := forms.Validate(f); errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "profile", "Profile", forms.ChangePassword{}, errs, "")

		return
	}

	if err := h.deps.News.ChangePassword(r.Context(), f.Change()); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.renderForm(w, r, serrors.HTTPStatus(serrors.KindOf(err)), "profile", "Profile", forms.ChangePassword{}, nil, msg)
		}

		return
	}

	if err := h.deps.Sessions.RevokeOthers(r.Context(), session.FromContext(r.Context())); err != nil {
		logger.Warn(r.Context(), "could not revoke other sessions", zap.Error(err))
	}

	h.deps.Flash.Set(w, flash.Success, "Password changed successfully.")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
