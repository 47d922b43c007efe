// internal/auth/identity.go
package auth

import (
	"context"

	"github.com/fathomcrm/fathom/internal/model"
)

type contextKey string

const identityKey = contextKey("fathom_identity")

// WithIdentity stores the authenticated caller in the context. Only the auth
// middleware writes this.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext reads the authenticated caller, with an explicit
// absence instead of an error channel.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}

// ContextIdentityProvider adapts the context lookup to the gate's
// IdentityProvider interface.
type ContextIdentityProvider struct{}

func (ContextIdentityProvider) CallerFromContext(ctx context.Context) (model.Identity, bool) {
	return IdentityFromContext(ctx)
}
