package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsroom/internal/session"
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"
	"newsroom/pkg/storage"
	"newsroom/pkg/storage/postgres"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSession(userID string) domain.Session {
	return domain.Session{
		ID:        domain.SessionID(uuid.New()),
		Token:     "token-" + userID,
		UserID:    domain.UserID(userID),
		Username:  "user " + userID,
		Role:      domain.RoleReader,
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond),
	}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg := testDB(t)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollbackOutsideTx(t *testing.T) {
	pg := testDB(t)

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsSession(t *testing.T) {
	pg := testDB(t)

	ctx := context.Background()
	s := newSession("u-commit")

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CreateSession(ctx, s)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := pg.SessionByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.Token, got.Token)
}

func TestPgSQL_Rollback_DiscardsSession(t *testing.T) {
	pg := testDB(t)

	ctx := context.Background()
	s := newSession("u-rollback")

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CreateSession(ctx, s)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	_, err = pg.SessionByID(ctx, s.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg := testDB(t)

	ctx := context.Background()
	kept := newSession("u-withtx")
	dropped := newSession("u-withtx-err")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.CreateSession(ctx, kept)

		return e
	})
	require.NoError(t, err)

	_, err = pg.SessionByID(ctx, kept.ID)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.CreateSession(ctx, dropped)

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = pg.SessionByID(ctx, dropped.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLogin_RotatesSessionInOneTransaction(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	prev := newSession("u-rotate")
	_, err := pg.CreateSession(ctx, prev)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u-rotate",
		"role": "0",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	m := session.NewManager(pg, session.Options{CookieName: "sid", TTL: time.Hour})
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: prev.ID.String()})

	s, err := m.Login(httptest.NewRecorder(), req, token)
	require.NoError(t, err)
	require.NotEqual(t, prev.ID, s.ID)

	_, err = pg.SessionByID(ctx, prev.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	got, err := pg.SessionByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, token, got.Token)
}
