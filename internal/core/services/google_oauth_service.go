package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleUserInfo is the subset of the userinfo endpoint payload we read.
type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// googleOAuthService signs existing users in via Google. Accounts are
// provisioned by admins; an unknown Google email is rejected, not
// auto-created.
type googleOAuthService struct {
	BaseService
	tokens       portssvc.TokenIssuerSvc
	userRepo     portsrepo.UserRepository
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates the Google OAuth service.
func NewGoogleOAuthService(tokens portssvc.TokenIssuerSvc, userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		tokens:   tokens,
		userRepo: userRepo,
		cfg:      cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (*domain.User, string, string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: failed to exchange authorization code", apperrors.ErrUnauthorized)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, "", "", err
	}
	if !info.VerifiedEmail {
		return nil, "", "", fmt.Errorf("%w: google email not verified", apperrors.ErrUnauthorized)
	}

	// The ID token, when present, is validated against our client ID so a
	// token minted for another app cannot be replayed here.
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		if _, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID); err != nil {
			return nil, "", "", fmt.Errorf("%w: invalid google id token", apperrors.ErrUnauthorized)
		}
	}

	user, _, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", "", fmt.Errorf("%w: no account for %s", apperrors.ErrUnauthorized, info.Email)
		}
		return nil, "", "", fmt.Errorf("failed to load user for google login: %w", err)
	}
	if user.DeletedAt != nil {
		return nil, "", "", fmt.Errorf("%w: account disabled", apperrors.ErrUnauthorized)
	}

	// Google has already authenticated the user; only mint our tokens.
	accessToken, refreshToken, err := s.tokens.IssueTokensFor(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	s.LogInfo(ctx, "google login", slog.String("user_id", user.UserID))
	return user, accessToken, refreshToken, nil
}

func (s *googleOAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google userinfo returned status %d", apperrors.ErrUnauthorized, resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: google user info has no email", apperrors.ErrUnauthorized)
	}
	return &info, nil
}
