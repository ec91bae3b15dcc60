package ctxutil

import (
	"context"

	"github.com/sima-app/sima-backend/internal/domain"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the authenticated identity from the context.
// Returns false if the request was not authenticated.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok || id.ID == 0 {
		return domain.Identity{}, false
	}
	return id, true
}

// IsAdminCtx reports whether the context identity carries the admin role.
func IsAdminCtx(ctx context.Context) bool {
	id, ok := IdentityFromCtx(ctx)
	return ok && id.IsAdmin()
}

// ActorID returns a pointer to the context user's id for created_by/updated_by
// columns, or nil when the request is anonymous.
func ActorID(ctx context.Context) *int64 {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id.ID
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
