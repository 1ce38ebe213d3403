package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/platform/config"
	"github.com/SaPok5/prs-sub001/internal/utils"
	"github.com/SaPok5/prs-sub001/internal/utils/mapping"
)

// authService issues access tokens and rotates refresh tokens. Only the
// SHA256 hash of a refresh token is stored; the plaintext travels once
// in an HTTP-only cookie.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	cfg      *config.Config
}

// NewAuthService creates the auth service.
func NewAuthService(userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var (
	_ portssvc.AuthSvcFacade  = (*authService)(nil)
	_ portssvc.TokenIssuerSvc = (*authService)(nil)
)

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, passwordHash, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure for unknown email and wrong password.
			return nil, "", "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, "", "", fmt.Errorf("failed to load user for login: %w", err)
	}
	if user.DeletedAt != nil {
		return nil, "", "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, passwordHash) {
		return nil, "", "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	accessToken, refreshToken, err := s.IssueTokensFor(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	s.LogInfo(ctx, "user logged in", slog.String("user_id", user.UserID))
	return user, accessToken, refreshToken, nil
}

func (s *authService) Refresh(ctx context.Context, userID, refreshToken string) (string, string, error) {
	storedHash, expiresAt, err := s.userRepo.FindRefreshToken(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", fmt.Errorf("%w: no active session", apperrors.ErrUnauthorized)
		}
		return "", "", fmt.Errorf("failed to load refresh token: %w", err)
	}
	if time.Now().After(expiresAt) {
		return "", "", fmt.Errorf("%w: refresh token expired", apperrors.ErrUnauthorized)
	}
	if !utils.CompareRefreshTokenHash(refreshToken, storedHash) {
		// A mismatch may mean token theft; invalidate the session.
		_ = s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil)
		return "", "", fmt.Errorf("%w: refresh token mismatch", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load user for refresh: %w", err)
	}
	if user.DeletedAt != nil {
		return "", "", fmt.Errorf("%w: account disabled", apperrors.ErrUnauthorized)
	}

	return s.IssueTokensFor(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.LogInfo(ctx, "user logged out", slog.String("user_id", userID))
	return nil
}

func (s *authService) AccessTokenTTL() time.Duration {
	return s.cfg.JWTExpiryDuration
}

// IssueTokensFor mints a fresh access/refresh pair and stores the refresh
// token hash. The Google sign-in path uses it after Google has verified
// the user's identity.
func (s *authService) IssueTokensFor(ctx context.Context, user *domain.User) (string, string, error) {
	accessToken, err := utils.GenerateAccessToken(
		user.UserID,
		user.OrganizationID,
		mapping.RolesToStrings(user.Roles),
		s.cfg.JWTSecret,
		s.cfg.JWTExpiryDuration,
		s.cfg.JWTIssuer,
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &tokenHash, &expiresAt); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}
