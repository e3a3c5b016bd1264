package auth

import (
	"context"

	"github.com/hunkymanie/shoply/internal/model"
)

type contextKey struct{}

// WithUser returns a context carrying the authenticated user snapshot.
func WithUser(ctx context.Context, u model.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the authenticated user, if any.
func FromContext(ctx context.Context) (model.User, bool) {
	u, ok := ctx.Value(contextKey{}).(model.User)
	return u, ok
}

// UserID returns the authenticated user's id, or "".
func UserID(ctx context.Context) string {
	u, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return u.ID
}
