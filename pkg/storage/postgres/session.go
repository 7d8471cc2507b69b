package postgres

import (
	"context"
	"fmt"
	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) CreateSession(ctx context.Context, s domain.Session) (*domain.Session, error) {
	var row PgSession
	row.FromDomain(s)

	var created PgSession
	ok, err := p.Builder.Insert(sessionsTable).
		Rows(row).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &created)
	if err != nil {
		return nil, fmt.Errorf("could not insert session: %w", err)
	}
	if !ok {
		return nil, serrors.With(serrors.ErrInternal, "session insert returned no row")
	}

	return created.ToDomain(), nil
}

func (p *PgSQL) SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	var row PgSession
	found, err := p.Builder.From(sessionsTable).
		Where(goqu.C("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select session: %w", err)
	}
	if !found {
		return nil, serrors.KindOnly(serrors.ErrNotFound)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteSession(ctx context.Context, id domain.SessionID) error {
	_, err := p.Builder.Delete(sessionsTable).
		Where(goqu.C("id").Eq(uuid.UUID(id))).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteUserSessions(ctx context.Context, userID domain.UserID, keep domain.SessionID) (int64, error) {
	res, err := p.Builder.Delete(sessionsTable).
		Where(
			goqu.C("user_id").Eq(string(userID)),
			goqu.C("id").Neq(uuid.UUID(keep)),
		).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete user sessions: %w", err)
	}

	return res.RowsAffected()
}

func (p *PgSQL) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Delete(sessionsTable).
		Where(goqu.C("expires_at").Lte(now)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired sessions: %w", err)
	}

	return res.RowsAffected()
}
