package session

import (
	"context"
	"newsroom/pkg/domain"
)

type key struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, key{}, s)
}

// FromContext returns the visitor's session, or nil for anonymous visitors.
func FromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(key{}).(*domain.Session)

	return s
}
