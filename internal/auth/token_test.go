package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/fathomcrm/fathom/internal/auth"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	identity := model.Identity{ID: uuid.New(), Email: "user@example.com"}

	token, err := tm.Generate(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestTokenWrongSecret(t *testing.T) {
	identity := model.Identity{ID: uuid.New(), Email: "user@example.com"}

	token, err := auth.NewTokenManager("secret-a", time.Hour).Generate(identity)
	assert.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)
	identity := model.Identity{ID: uuid.New(), Email: "user@example.com"}

	token, err := tm.Generate(identity)
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	identity := model.Identity{ID: uuid.New(), Email: "user@example.com"}

	t.Run("round trip", func(t *testing.T) {
		ctx := auth.WithIdentity(context.Background(), identity)
		got, ok := auth.ContextIdentityProvider{}.CallerFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, identity, got)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := auth.ContextIdentityProvider{}.CallerFromContext(context.Background())
		assert.False(t, ok)
	})
}
