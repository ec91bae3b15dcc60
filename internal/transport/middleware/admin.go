package middleware

import (
	"context"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// RequireAdmin rejects callers whose context identity lacks the admin role.
// Handlers invoke it per operation instead of wrapping whole routes, since
// several endpoints mix admin-only and open verbs on the same path.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	return domain.ErrForbidden
}
