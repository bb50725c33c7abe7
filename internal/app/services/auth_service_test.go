package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/auth"
)

// fakeTokenRepo is an in-memory ITokenRepository.
type fakeTokenRepo struct {
	tokens map[string]struct {
		identityID int64
		expiry     time.Time
		revoked    bool
	}
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]struct {
		identityID int64
		expiry     time.Time
		revoked    bool
	})}
}

func (f *fakeTokenRepo) CreateToken(ctx context.Context, token string, identityID int64, expiryDate time.Time) error {
	f.tokens[token] = struct {
		identityID int64
		expiry     time.Time
		revoked    bool
	}{identityID, expiryDate, false}
	return nil
}

func (f *fakeTokenRepo) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error) {
	entry, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	if entry.revoked {
		return 0, time.Time{}, true, apperrors.ErrTokenRevoked
	}
	if entry.expiry.Before(time.Now()) {
		return 0, time.Time{}, false, apperrors.ErrTokenExpired
	}
	return entry.identityID, entry.expiry, entry.revoked, nil
}

func (f *fakeTokenRepo) RevokeToken(ctx context.Context, token string) error {
	entry, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	entry.revoked = true
	f.tokens[token] = entry
	return nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "shulebase.test",
	})
}

type authFixture struct {
	identityRepo *fakeIdentityRepo
	profileRepo  *fakeProfileRepo
	tokenRepo    *fakeTokenRepo
	service      AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		identityRepo: newFakeIdentityRepo(),
		profileRepo:  newFakeProfileRepo(),
		tokenRepo:    newFakeTokenRepo(),
	}
	f.service = NewAuthService(f.identityRepo, f.profileRepo, f.tokenRepo, newTestJWTService(), zerolog.Nop())
	return f
}

func (f *authFixture) addIdentity(t *testing.T, email, password string, active bool) *models.Identity {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)
	identity := &models.Identity{Email: email, Password: hashed, IsActive: active}
	id, err := f.identityRepo.Create(context.Background(), identity)
	require.NoError(t, err)
	identity.ID = id
	return identity
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture()
	identity := f.addIdentity(t, "jane@school.ug", "s3cret!", true)
	_, err := f.profileRepo.Upsert(context.Background(), &models.Profile{
		IdentityID: identity.ID,
		Email:      identity.Email,
		FullName:   "Jane Doe",
		Role:       models.RoleTeacher,
	})
	require.NoError(t, err)

	resp, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    " Jane@School.UG ",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	// The role claim comes from the profile
	claims, err := newTestJWTService().ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.IdentityID)
	assert.Equal(t, string(models.RoleTeacher), claims.Role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.addIdentity(t, "jane@school.ug", "s3cret!", true)

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@school.ug",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@school.ug",
		Password: "s3cret!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	f := newAuthFixture()
	f.addIdentity(t, "jane@school.ug", "s3cret!", false)

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@school.ug",
		Password: "s3cret!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestAuthService_RefreshTokenRotates(t *testing.T) {
	f := newAuthFixture()
	f.addIdentity(t, "jane@school.ug", "s3cret!", true)

	login, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@school.ug",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	refreshed, err := f.service.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The used refresh token is revoked and cannot be replayed
	_, err = f.service.RefreshToken(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestAuthService_RefreshUnknownToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.RefreshToken(context.Background(), "never-issued")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}
