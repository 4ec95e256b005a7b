package httpapi

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}

// callerID returns the authenticated user id or ErrUnauthorized when the
// route was mounted without RequireAuth.
func callerID(ctx context.Context) (int64, error) {
	p, ok := principalFromContext(ctx)
	if !ok || p.UserID <= 0 {
		return 0, fmt.Errorf("%w: missing authenticated principal", usecase.ErrUnauthorized)
	}
	return p.UserID, nil
}
