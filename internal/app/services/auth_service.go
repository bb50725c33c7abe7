package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/auth"
	"github.com/bkalungi/shulebase/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

type authService struct {
	identityRepo repositories.IIdentityRepository
	profileRepo  repositories.IProfileRepository
	tokenRepo    repositories.ITokenRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	identityRepo repositories.IIdentityRepository,
	profileRepo repositories.IProfileRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		identityRepo: identityRepo,
		profileRepo:  profileRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login authenticates an identity by email and password
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidationFailed)
	}

	identity, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(identity.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !identity.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.identityRepo.UpdateLastLogin(ctx, identity.ID); err != nil {
		s.logger.Warn().Err(err).Int64("identityId", identity.ID).Msg("Could not update last login time")
	}

	return s.generateTokenResponse(ctx, identity.ID, identity.Email)
}

// RefreshToken creates a new access token using a refresh token. The old
// refresh token is revoked so it cannot be replayed.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	identityID, expiryDate, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) ||
			errors.Is(err, apperrors.ErrTokenExpired) ||
			errors.Is(err, apperrors.ErrTokenRevoked) {
			return nil, err
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenRepo.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	identity, err := s.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("identity not found: %w", err)
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, identity.ID, identity.Email)
}

// generateTokenResponse creates and persists a token pair. The role claim
// comes from the identity's profile when one exists.
func (s *authService) generateTokenResponse(ctx context.Context, identityID int64, email string) (*dto.TokenResponse, error) {
	role := ""
	if profile, err := s.profileRepo.GetByIdentityID(ctx, identityID); err == nil {
		role = string(profile.Role)
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(identityID, email, role)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, identityID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
