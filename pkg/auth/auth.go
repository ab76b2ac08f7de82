package auth

import (
	"context"
	"time"
)

type Config struct {
	Secret     string        `envconfig:"AUTH_SECRET" required:"true" json:"-"`
	Issuer     string        `envconfig:"AUTH_ISSUER" default:"library-management"`
	AccessTTL  time.Duration `envconfig:"AUTH_ACCESS_TTL" default:"30m"`
	RefreshTTL time.Duration `envconfig:"AUTH_REFRESH_TTL" default:"168h"`
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID   int64
	Username string
	IsAdmin  bool
	IsActive bool
}

func (p Principal) CanAccessUser(userID int64) bool {
	return p.IsAdmin || p.UserID == userID
}

func (p Principal) Roles() []string {
	if p.IsAdmin {
		return []string{"admin"}
	}
	return []string{"user"}
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
