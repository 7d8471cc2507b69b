package restapi

import (
	"context"
	"net/http"
	"net/url"
	"newsroom/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func (cl *Client) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	var token string
	err := cl.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/Auth/login",
		body:   credentials,
	}, func(body []byte) error {
		t, err := decodeToken(body)
		token = t

		return err
	})

	return token, err
}

// decodeToken reads {"token": "..."} or a bare JSON string.
func decodeToken(body []byte) (string, error) {
	d := jx.DecodeBytes(body)
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Object:
		var token string
		err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "token" || d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			token = s

			return err
		})
		if err != nil {
			return "", err
		}
		if token == "" {
			return "", errors.New("response has no token")
		}

		return token, nil
	default:
		return "", errors.Errorf("unexpected token response type %s", d.Next())
	}
}

func (cl *Client) Register(ctx context.Context, registration domain.Registration) error {
	return cl.do(ctx, call{
		op:     "register",
		method: http.MethodPost,
		path:   "/api/Auth/register",
		body:   registration,
	}, nil)
}

func (cl *Client) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	return cl.do(ctx, call{
		op:     "change_password",
		method: http.MethodPost,
		path:   "/api/Auth/change-password",
		body:   change,
	}, nil)
}

func (cl *Client) ActivateAccount(ctx context.Context, token string) error {
	return cl.do(ctx, call{
		op:     "activate_account",
		method: http.MethodPost,
		path:   "/api/Auth/activate-account/" + url.PathEscape(token),
	}, nil)
}

func (cl *Client) ResendActivation(ctx context.Context, email string) error {
	return cl.do(ctx, call{
		op:     "resend_activation",
		method: http.MethodPost,
		path:   "/api/Auth/resend-activation",
		body:   map[string]string{"email": email},
	}, nil)
}

func (cl *Client) ForgotPassword(ctx context.Context, email string) error {
	return cl.do(ctx, call{
		op:     "forgot_password",
		method: http.MethodPost,
		path:   "/forgot-password",
		body:   map[string]string{"email": email},
	}, nil)
}

func (cl *Client) ResetPassword(ctx context.Context, reset domain.PasswordReset) error {
	return cl.do(ctx, call{
		op:     "reset_password",
		method: http.MethodPost,
		path:   "/reset-password",
		body:   reset,
	}, nil)
}

func (cl *Client) ValidateJournalistActivation(ctx context.Context, token string) error {
	return cl.do(ctx, call{
		op:     "validate_journalist_activation",
		method: http.MethodGet,
		path:   "/api/journalists/validate-activation/" + url.PathEscape(token),
	}, nil)
}

func (cl *Client) ActivateJournalist(ctx context.Context, activation domain.JournalistActivation) error {
	return cl.do(ctx, call{
		op:     "activate_journalist",
		method: http.MethodPost,
		path:   "/api/journalists/activate",
		body:   activation,
	}, nil)
}

func (cl *Client) RegisterJournalist(ctx context.Context, registration domain.Registration) error {
	registration.Password = ""

	return cl.do(ctx, call{
		op:     "register_journalist",
		method: http.MethodPost,
		path:   "/api/Admin/register-journalist",
		body:   registration,
	}, nil)
}
