package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsroom/internal/session"
	"newsroom/pkg/domain"
	"newsroom/pkg/logger"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/serrors"
	"newsroom/pkg/storage"
	mockstorage "newsroom/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cookieName = "sid"

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "error")
	m.Run()
}

func newManager(t *testing.T, now time.Time) (*session.Manager, *mockstorage.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	m := session.NewManager(store, session.Options{CookieName: cookieName, TTL: 24 * time.Hour})
	m.SetClock(func() time.Time { return now })

	return m, store
}

func expectTx(store *mockstorage.MockStorage) *gomock.Call {
	return store.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(store)
		})
}

func loginRequest() *http.Request {
	return httptest.NewRequest(http.MethodPost, "/login", nil)
}

func echoCreate(_ context.Context, s domain.Session) (*domain.Session, error) {
	s.CreatedAt = time.Now()

	return &s, nil
}

func TestLogin_ExpiryIsTokenExpWhenSooner(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, store := newManager(t, now)

	exp := now.Add(2 * time.Hour)
	token := signToken(t, jwt.MapClaims{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier": "u1",
		"username": "jane",
		"role":     "1",
		"exp":      exp.Unix(),
	})

	expectTx(store)
	store.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, s domain.Session) (*domain.Session, error) {
			require.Equal(t, token, s.Token)
			require.Equal(t, domain.UserID("u1"), s.UserID)
			require.Equal(t, domain.RoleJournalist, s.Role)
			require.True(t, exp.Equal(s.ExpiresAt))
			require.NotEqual(t, uuid.Nil, uuid.UUID(s.ID))

			return echoCreate(ctx, s)
		})

	rec := httptest.NewRecorder()
	s, err := m.Login(rec, loginRequest(), token)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, cookieName, cookies[0].Name)
	require.Equal(t, s.ID.String(), cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestLogin_ExpiryCappedByTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, store := newManager(t, now)

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(30 * 24 * time.Hour).Unix()})

	expectTx(store)
	store.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, s domain.Session) (*domain.Session, error) {
			require.True(t, now.Add(24*time.Hour).Equal(s.ExpiresAt))

			return echoCreate(ctx, s)
		})

	_, err := m.Login(httptest.NewRecorder(), loginRequest(), token)
	require.NoError(t, err)
}

func TestLogin_ReplacesPreviousSessionInOneTransaction(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, store := newManager(t, now)

	prev := domain.SessionID(uuid.New())
	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(time.Hour).Unix()})

	gomock.InOrder(
		expectTx(store),
		store.EXPECT().DeleteSession(gomock.Any(), prev).Return(nil),
		store.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s domain.Session) (*domain.Session, error) {
				require.NotEqual(t, prev, s.ID)

				return echoCreate(ctx, s)
			}),
	)

	r := loginRequest()
	r.AddCookie(&http.Cookie{Name: cookieName, Value: prev.String()})
	rec := httptest.NewRecorder()
	s, err := m.Login(rec, r, token)
	require.NoError(t, err)
	require.NotEqual(t, prev.String(), rec.Result().Cookies()[0].Value)
	require.Equal(t, s.ID.String(), rec.Result().Cookies()[0].Value)
}

func TestLogin_StoreFailureSetsNoCookie(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, store := newManager(t, now)

	prev := domain.SessionID(uuid.New())
	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(time.Hour).Unix()})

	expectTx(store)
	store.EXPECT().DeleteSession(gomock.Any(), prev).Return(nil)
	store.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	r := loginRequest()
	r.AddCookie(&http.Cookie{Name: cookieName, Value: prev.String()})
	rec := httptest.NewRecorder()
	_, err := m.Login(rec, r, token)
	require.Error(t, err)
	require.Empty(t, rec.Result().Cookies())
}

func TestLogin_RejectsExpiredAndUnreadableTokens(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, _ := newManager(t, now)

	expired := signToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(-time.Minute).Unix()})
	_, err := m.Login(httptest.NewRecorder(), loginRequest(), expired)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = m.Login(httptest.NewRecorder(), loginRequest(), "garbage")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: cookieName, Value: value})
	}

	return r
}

func TestLoad(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := domain.SessionID(uuid.New())

	t.Run("no cookie", func(t *testing.T) {
		m, _ := newManager(t, now)
		s, err := m.Load(requestWithCookie(""))
		require.NoError(t, err)
		require.Nil(t, s)
	})

	t.Run("malformed cookie", func(t *testing.T) {
		m, _ := newManager(t, now)
		s, err := m.Load(requestWithCookie("not-a-uuid"))
		require.NoError(t, err)
		require.Nil(t, s)
	})

	t.Run("unknown session", func(t *testing.T) {
		m, store := newManager(t, now)
		store.EXPECT().SessionByID(gomock.Any(), id).Return(nil, serrors.KindOnly(serrors.ErrNotFound))

		s, err := m.Load(requestWithCookie(id.String()))
		require.NoError(t, err)
		require.Nil(t, s)
	})

	t.Run("expired session", func(t *testing.T) {
		m, store := newManager(t, now)
		store.EXPECT().SessionByID(gomock.Any(), id).Return(&domain.Session{ID: id, ExpiresAt: now}, nil)

		s, err := m.Load(requestWithCookie(id.String()))
		require.NoError(t, err)
		require.Nil(t, s)
	})

	t.Run("storage failure", func(t *testing.T) {
		m, store := newManager(t, now)
		store.EXPECT().SessionByID(gomock.Any(), id).Return(nil, errors.New("db down"))

		_, err := m.Load(requestWithCookie(id.String()))
		require.Error(t, err)
	})

	t.Run("live session", func(t *testing.T) {
		m, store := newManager(t, now)
		want := &domain.Session{ID: id, Token: "tok", ExpiresAt: now.Add(time.Minute)}
		store.EXPECT().SessionByID(gomock.Any(), id).Return(want, nil)

		s, err := m.Load(requestWithCookie(id.String()))
		require.NoError(t, err)
		require.Equal(t, want, s)
	})
}

func TestMiddleware_InjectsSessionAndToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m, store := newManager(t, now)
	id := domain.SessionID(uuid.New())
	store.EXPECT().SessionByID(gomock.Any(), id).
		Return(&domain.Session{ID: id, Token: "tok", UserID: "u1", ExpiresAt: now.Add(time.Hour)}, nil)

	var (
		gotSession *domain.Session
		gotToken   string
	)
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = session.FromContext(r.Context())
		gotToken, _ = newsapi.TokenFrom(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), requestWithCookie(id.String()))

	require.NotNil(t, gotSession)
	require.Equal(t, domain.UserID("u1"), gotSession.UserID)
	require.Equal(t, "tok", gotToken)
}

func TestMiddleware_AnonymousPassesThrough(t *testing.T) {
	m, _ := newManager(t, time.Now())

	called := false
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Nil(t, session.FromContext(r.Context()))
		_, ok := newsapi.TokenFrom(r.Context())
		require.False(t, ok)
	}))
	h.ServeHTTP(httptest.NewRecorder(), requestWithCookie(""))

	require.True(t, called)
}

func TestHandleUnauthorized(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := domain.SessionID(uuid.New())
	s := &domain.Session{ID: id, Token: "tok", ExpiresAt: now.Add(time.Hour)}

	t.Run("redirects to login", func(t *testing.T) {
		m, store := newManager(t, now)
		store.EXPECT().DeleteSession(gomock.Any(), id).Return(nil)

		r := httptest.NewRequest(http.MethodGet, "/profile", nil)
		r = r.WithContext(session.WithSession(r.Context(), s))
		rec := httptest.NewRecorder()

		require.True(t, m.HandleUnauthorized(rec, r))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Empty(t, cookies[0].Value)
		require.Negative(t, cookies[0].MaxAge)
	})

	t.Run("no redirect loop on login page", func(t *testing.T) {
		m, store := newManager(t, now)
		store.EXPECT().DeleteSession(gomock.Any(), id).Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r = r.WithContext(session.WithSession(r.Context(), s))
		rec := httptest.NewRecorder()

		require.False(t, m.HandleUnauthorized(rec, r))
		require.Empty(t, rec.Header().Get("Location"))
	})
}

func TestRevokeOthers(t *testing.T) {
	m, store := newManager(t, time.Now())
	s := &domain.Session{ID: domain.SessionID(uuid.New()), UserID: "u1"}
	store.EXPECT().DeleteUserSessions(gomock.Any(), domain.UserID("u1"), s.ID).Return(int64(2), nil)

	require.NoError(t, m.RevokeOthers(context.Background(), s))
}
