package api_context

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

// WithID stores the route record ID on ctx.
func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, IDKey, id)
}

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

// WithAuth stores the verified caller on ctx.
func WithAuth(ctx context.Context, sub string, roles []string) context.Context {
	ctx = context.WithValue(ctx, AuthUserIDKey, sub)
	return context.WithValue(ctx, AuthRolesKey, roles)
}

// AuthUserIDFromContext returns the token subject set by the admin auth middleware.
func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthUserIDKey).(string)
	return sub, ok && sub != ""
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}

// HasRole reports whether the authenticated caller carries the given role.
func HasRole(ctx context.Context, role string) bool {
	roles, _ := AuthRolesFromContext(ctx)
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
