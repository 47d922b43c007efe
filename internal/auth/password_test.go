package auth_test

import (
	"strings"
	"testing"

	"github.com/fathomcrm/fathom/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("correct_password")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct_password", hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := hasher.Verify("correct_password", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong_password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHashSaltedPerCall(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	first, err := hasher.Hash("correct_password")
	assert.NoError(t, err)
	second, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	// Fresh salt every call, and both still verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify("correct_password", first)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Verify("correct_password", second)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordVerifyMalformedHash(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$onlyonesegment",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
	} {
		ok, err := hasher.Verify("correct_password", encoded)
		assert.False(t, ok, "hash %q", encoded)
		assert.ErrorIs(t, err, auth.ErrMalformedHash, "hash %q", encoded)
	}
}
