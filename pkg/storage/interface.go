// Package storage declares the persistence the front-end keeps for itself.
// Everything else belongs to the news backend; what remains here is the
// session table that replaces the browser-held token.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"newsroom/pkg/domain"
	"time"
)

type SessionStorage interface {
	// CreateSession inserts s and returns it with CreatedAt filled in.
	CreateSession(ctx context.Context, s domain.Session) (*domain.Session, error)
	// SessionByID returns the session or an error of kind serrors.ErrNotFound.
	SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error)
	// DeleteSession removes a session. Deleting an unknown session is not an error.
	DeleteSession(ctx context.Context, id domain.SessionID) error
	// DeleteUserSessions removes every session of a user except keep.
	DeleteUserSessions(ctx context.Context, userID domain.UserID, keep domain.SessionID) (int64, error)
	// DeleteExpiredSessions removes sessions that expired before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type AllStorage interface {
	SessionStorage
}

// TxStorage is a storage handle bound to an open transaction. It is unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle owning the connection pool.
type Storage interface {
	AllStorage

	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil.
	WithTx(ctx context.Context, cb func(tx AllStorage) error) error
}
