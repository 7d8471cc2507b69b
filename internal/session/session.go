// Package session keeps backend tokens on the server. The browser only holds
// an opaque session id cookie; the token, user id and role live in the
// session store and travel to the backend through the request context.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"newsroom/pkg/domain"
	"newsroom/pkg/logger"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/serrors"
	"newsroom/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoginPath is where visitors without a valid session are sent.
const LoginPath = "/login"

type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Store is the persistence a Manager needs: session rows plus transactions.
type Store interface {
	storage.SessionStorage

	WithTx(ctx context.Context, cb func(tx storage.AllStorage) error) error
}

type Manager struct {
	store Store
	opts  Options
	now   func() time.Time
}

func NewManager(store Store, opts Options) *Manager {
	return &Manager{store: store, opts: opts, now: time.Now}
}

// Login opens a session for a token freshly issued by the backend and sets the
// session cookie. The session ends at the token's expiry or after TTL,
// whichever comes first. A session id the request already carried is deleted
// in the same transaction, so a login never keeps a previously issued id.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, token string) (*domain.Session, error) {
	ctx := r.Context()
	claims, err := ParseClaims(token)
	if err != nil {
		return nil, err
	}

	now := m.now().UTC()
	expiresAt := now.Add(m.opts.TTL)
	if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(expiresAt) {
		expiresAt = claims.ExpiresAt.UTC()
	}
	if !expiresAt.After(now) {
		return nil, serrors.With(serrors.ErrUnauthorized, "token already expired")
	}

	var s *domain.Session
	err = m.store.WithTx(ctx, func(tx storage.AllStorage) error {
		if prev, ok := m.cookieID(r); ok {
			if err := tx.DeleteSession(ctx, prev); err != nil {
				return fmt.Errorf("could not delete previous session: %w", err)
			}
		}

		var err error
		s, err = tx.CreateSession(ctx, domain.Session{
			ID:        domain.SessionID(uuid.New()),
			Token:     token,
			UserID:    claims.UserID,
			Username:  claims.Username,
			Role:      claims.Role,
			ExpiresAt: expiresAt,
		})

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not store session: %w", err)
	}

	http.SetCookie(w, m.cookie(s.ID.String(), s.ExpiresAt))
	logger.Info(ctx, "session opened",
		zap.String("userID", string(s.UserID)), zap.Stringer("role", s.Role))

	return s, nil
}

// Load returns the session named by the request cookie. Missing, malformed,
// unknown and expired cookies all yield a nil session without error.
func (m *Manager) Load(r *http.Request) (*domain.Session, error) {
	id, ok := m.cookieID(r)
	if !ok {
		return nil, nil //nolint: nilnil
	}

	s, err := m.store.SessionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, nil //nolint: nilnil
		}

		return nil, fmt.Errorf("could not load session: %w", err)
	}
	if s.Expired(m.now()) {
		return nil, nil //nolint: nilnil
	}

	return s, nil
}

// Destroy deletes the request's session, if any, and expires the cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0)))

	s := FromContext(r.Context())
	if s == nil {
		var err error
		if s, err = m.Load(r); err != nil || s == nil {
			return err
		}
	}

	if err := m.store.DeleteSession(r.Context(), s.ID); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}

// RevokeOthers ends every other session of the user holding s.
func (m *Manager) RevokeOthers(ctx context.Context, s *domain.Session) error {
	n, err := m.store.DeleteUserSessions(ctx, s.UserID, s.ID)
	if err != nil {
		return fmt.Errorf("could not revoke sessions: %w", err)
	}
	logger.Debug(ctx, "revoked other sessions", zap.Int64("count", n))

	return nil
}

// Middleware loads the session and makes it, and its token, available to
// handlers and backend calls through the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Load(r)
		if err != nil {
			logger.Error(r.Context(), "could not load session", zap.Error(err))
		}
		if s == nil {
			next.ServeHTTP(w, r)

			return
		}

		ctx := WithSession(r.Context(), s)
		ctx = newsapi.WithToken(ctx, s.Token)
		ctx = logger.WithFields(ctx, zap.String("userID", string(s.UserID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HandleUnauthorized ends the session after the backend rejected its token
// and sends the browser to the login page. It reports whether a redirect was
// written; requests already on the login page are left to their handler.
func (m *Manager) HandleUnauthorized(w http.ResponseWriter, r *http.Request) bool {
	if err := m.Destroy(w, r); err != nil {
		logger.Warn(r.Context(), "could not destroy rejected session", zap.Error(err))
	}
	if strings.HasPrefix(r.URL.Path, LoginPath) {
		return false
	}

	http.Redirect(w, r, LoginPath, http.StatusSeeOther)

	return true
}

func (m *Manager) cookieID(r *http.Request) (domain.SessionID, bool) {
	c, err := r.Cookie(m.opts.CookieName)
	if err != nil {
		return domain.SessionID{}, false
	}
	id, err := domain.ParseSessionID(c.Value)
	if err != nil {
		return domain.SessionID{}, false
	}

	return id, true
}

func (m *Manager) cookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	}

	return c
}
