package ports

import (
	"context"

	"github.com/bnema/avd-sessions-cli/internal/domain"
)

// PoolClient is the remote management surface for one virtual-desktop
// pool. RemoveUserSession always issues a forced disconnect and passes
// the session id through verbatim.
type PoolClient interface {
	VerifyPool(ctx context.Context, pool domain.Pool) error
	ListSessionHosts(ctx context.Context, pool domain.Pool) ([]domain.SessionHost, error)
	ListUserSessions(ctx context.Context, pool domain.Pool, host string) ([]domain.UserSession, error)
	RemoveUserSession(ctx context.Context, pool domain.Pool, host string, id domain.SessionID) error
}
