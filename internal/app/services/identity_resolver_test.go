package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/auth"
)

func TestIdentityResolver_CreatesPreVerifiedIdentity(t *testing.T) {
	repo := newFakeIdentityRepo()
	resolver := NewIdentityResolver(repo, zerolog.Nop())

	resolution, err := resolver.Resolve(context.Background(), "jane@school.ug", "s3cret!", "Jane Doe")
	require.NoError(t, err)
	assert.True(t, resolution.Created)

	identity := repo.identities["jane@school.ug"]
	require.NotNil(t, identity)
	assert.True(t, identity.IsVerified)
	assert.True(t, identity.IsActive)
	assert.Equal(t, "Jane Doe", identity.DisplayName)

	// The credential is stored hashed, never as the raw password
	assert.NotEqual(t, "s3cret!", identity.Password)
	assert.True(t, auth.CheckPassword(identity.Password, "s3cret!"))
}

func TestIdentityResolver_RejectsShortPasswordOnCreate(t *testing.T) {
	repo := newFakeIdentityRepo()
	resolver := NewIdentityResolver(repo, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "jane@school.ug", "abc", "Jane Doe")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	assert.Zero(t, repo.createCalls)
}

func TestIdentityResolver_ReuseSkipsRotationWithoutPassword(t *testing.T) {
	repo := newFakeIdentityRepo()
	repo.identities["jane@school.ug"] = &models.Identity{ID: 7, Email: "jane@school.ug", Password: "existing-hash"}
	resolver := NewIdentityResolver(repo, zerolog.Nop())

	resolution, err := resolver.Resolve(context.Background(), "jane@school.ug", "", "Jane Doe")
	require.NoError(t, err)

	assert.False(t, resolution.Created)
	assert.Equal(t, int64(7), resolution.IdentityID)
	assert.Zero(t, repo.updateCredentialsCalls)
	assert.Equal(t, "existing-hash", repo.identities["jane@school.ug"].Password)
}

func TestIdentityResolver_ReuseRotatesCredential(t *testing.T) {
	repo := newFakeIdentityRepo()
	repo.identities["jane@school.ug"] = &models.Identity{ID: 7, Email: "jane@school.ug", Password: "existing-hash"}
	resolver := NewIdentityResolver(repo, zerolog.Nop())

	resolution, err := resolver.Resolve(context.Background(), "jane@school.ug", "newpass1", "Jane N. Doe")
	require.NoError(t, err)

	assert.False(t, resolution.Created)
	assert.Equal(t, 1, repo.updateCredentialsCalls)
	identity := repo.identities["jane@school.ug"]
	assert.True(t, auth.CheckPassword(identity.Password, "newpass1"))
	assert.Equal(t, "Jane N. Doe", identity.DisplayName)
}

func TestIdentityResolver_IncompleteCreateIsAnError(t *testing.T) {
	repo := newFakeIdentityRepo()
	repo.nextID = 0 // store returns id 0 without an error
	resolver := NewIdentityResolver(repo, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "jane@school.ug", "s3cret!", "Jane Doe")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIdentityIncomplete)
}

func TestIdentityResolver_EmptyEmail(t *testing.T) {
	resolver := NewIdentityResolver(newFakeIdentityRepo(), zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "   ", "s3cret!", "Jane Doe")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
