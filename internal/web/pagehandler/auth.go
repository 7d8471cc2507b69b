package pagehandler

import (
	"net/http"
	"strings"

	"newsroom/internal/forms"
	"newsroom/internal/session"
	"newsroom/internal/web/flash"
	"newsroom/pkg/logger"
	"newsroom/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type resetData struct {
	Token        string
	TokenMissing bool
}

type activationData struct {
	Activated bool
	Attempted bool
}

type journalistActivationData struct {
	Token string
	Valid bool
}

// renderForm shows a form page with the submitted values and their errors.
func (h *Handler) renderForm(
	w http.ResponseWriter, r *http.Request, status int, name, title string, form any, errs forms.Errors, alert string,
) {
	p := h.page(w, r, title)
	p.Form = form
	p.Errors = errs
	p.Error = alert
	h.render(w, r, status, name, p)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)

		return
	}
	h.renderForm(w, r, http.StatusOK, "login", "Log in", forms.Login{}, nil, "")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var f forms.Login
	decode(r, &f)
	if errs := forms.Validate(f); errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "login", "Log in", f, errs, "")

		return
	}

	token, err := h.deps.News.Login(r.Context(), f.Credentials())
	if err == nil {
		_, err = h.deps.Sessions.Login(w, r, token)
	}
	if err != nil {
		status := serrors.HTTPStatus(serrors.KindOf(err))
		if status >= http.StatusInternalServerError {
			logger.Error(r.Context(), "login failed", zap.Error(err))
		}
		f.Password = ""
		h.renderForm(w, r, status, "login", "Log in", f, nil, serrors.MessageOf(err, "Invalid email or password."))

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Welcome back!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.Destroy(w, r); err != nil {
		logger.Warn(r.Context(), "could not end session", zap.Error(err))
	}
	h.deps.Flash.Set(w, flash.Info, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) SignUpPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "signup", "Sign up", forms.SignUp{}, nil, "")
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var f forms.SignUp
	decode(r, &f)
	if errs := forms.Validate(f); errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "signup", "Sign up", f, errs, "")

		return
	}

	if err := h.deps.News.Register(r.Context(), f.Registration()); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.renderForm(w, r, serrors.HTTPStatus(serrors.KindOf(err)), "signup", "Sign up", f, nil, msg)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success,
		"Registration successful! Please check your email to activate your account.")
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}

func (h *Handler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "forgot_password", "Forgot password", forms.ForgotPassword{}, nil, "")
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var f forms.ForgotPassword
	decode(r, &f)
	if errs := forms.Validate(f); errs != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "forgot_password", "Forgot password", f, errs, "")

		return
	}

	if err := h.deps.News.ForgotPassword(r.Context(), f.Email); err != nil {
		if msg := h.formFailed(w, r, err); msg != "" {
			h.renderForm(w, r, serrors.HTTPStatus(serrors.KindOf(err)), "forgot_password", "Forgot password", f, nil, msg)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "If an account exists for that email, a reset link is on its way.")
	http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
}

func (h *Handler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	p := h.page(w, r, "Reset password")
	p.Form = forms.ResetPassword{Token: token}
	p.Data = resetData{Token: token, TokenMissing: token == ""}
	if token == "" {
		p.Error = "Invalid reset link. Token is missing."
	}
	h.render(w, r, http.StatusOK, "reset_password", p)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var f forms.ResetPassword
	decode(r, &f)

	p := h.page(w, r, "Reset password")
	p.Data = resetData{Token: f.Token, TokenMissing: f.Token == ""}
	if errs := forms.Validate(f); errs != nil {
		p.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "reset_password", p)

		return
	}

	if err := h.deps.News.ResetPassword(r.Context(), f.Reset()); err != nil {
		// a rejected reset token is not the visitor's session expiring
		switch kind := serrors.KindOf(err); kind {
		case serrors.ErrBadRequest, serrors.ErrNotFound, serrors.ErrUnauthorized:
			p.Error = "Invalid or expired reset token. Please request a new password reset link."
			h.render(w, r, serrors.HTTPStatus(kind), "reset_password", p)
		default:
			if p.Error = h.formFailed(w, r, err); p.Error != "" {
				h.render(w, r, serrors.HTTPStatus(kind), "reset_password", p)
			}
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Your password has been reset. You can now log in.")
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}

func (h *Handler) ActivateAccount(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	// a 401 here rejects the activation token, the session is left alone
	err := h.deps.News.ActivateAccount(r.Context(), token)

	p := h.page(w, r, "Account activation")
	p.Form = forms.ResendActivation{}
	p.Data = activationData{Activated: err == nil, Attempted: true}
	status := http.StatusOK
	if err != nil {
		logger.Info(r.Context(), "account activation failed", zap.Error(err))
		p.Error = serrors.MessageOf(err, "Activation failed. The link may have expired.")
		status = serrors.HTTPStatus(serrors.KindOf(err))
	}
	h.render(w, r, status, "activate_account", p)
}

func (h *Handler) ResendActivationPage(w http.ResponseWriter, r *http.Request) {
	p := h.page(w, r, "Account activation")
	p.Form = forms.ResendActivation{}
	p.Data = activationData{}
	h.render(w, r, http.StatusOK, "activate_account", p)
}

func (h *Handler) ResendActivation(w http.ResponseWriter, r *http.Request) {
	var f forms.ResendActivation
	decode(r, &f)

	p := h.page(w, r, "Account activation")
	p.Form = f
	p.Data = activationData{}
	if errs := forms.Validate(f); errs != nil {
		p.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "activate_account", p)

		return
	}

	if err := h.deps.News.ResendActivation(r.Context(), f.Email); err != nil {
		msg := h.formFailed(w, r, err)
		if msg == "" {
			return
		}
		p.Error = msg
		h.render(w, r, serrors.HTTPStatus(serrors.KindOf(err)), "activate_account", p)

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Activation email sent. Please check your inbox.")
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}

func (h *Handler) JournalistActivationPage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	err := h.deps.News.ValidateJournalistActivation(r.Context(), token)
	if err != nil {
		logger.Info(r.Context(), "journalist activation token rejected", zap.Error(err))
	}

	p := h.page(w, r, "Activate account")
	p.Form = forms.ActivateJournalist{Token: token}
	p.Data = journalistActivationData{Token: token, Valid: err == nil}
	h.render(w, r, http.StatusOK, "journalist_activate", p)
}

func (h *Handler) ActivateJournalist(w http.ResponseWriter, r *http.Request) {
	var f forms.ActivateJournalist
	decode(r, &f)
	f.Token = chi.URLParam(r, "token")

	p := h.page(w, r, "Activate account")
	p.Data = journalistActivationData{Token: f.Token, Valid: true}
	if errs := forms.Validate(f); errs != nil {
		p.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "journalist_activate", p)

		return
	}

	if err := h.deps.News.ActivateJournalist(r.Context(), f.Activation()); err != nil {
		kind := serrors.KindOf(err)
		if kind == serrors.ErrUnauthorized {
			p.Data = journalistActivationData{Token: f.Token}
			p.Error = "Invalid or expired activation link."
			h.render(w, r, http.StatusUnauthorized, "journalist_activate", p)

			return
		}
		if p.Error = h.formFailed(w, r, err); p.Error != "" {
			h.render(w, r, serrors.HTTPStatus(kind), "journalist_activate", p)
		}

		return
	}

	h.deps.Flash.Set(w, flash.Success, "Your journalist account is active. You can now log in.")
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}
