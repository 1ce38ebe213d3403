package services

import (
	"context"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// AuthSvcFacade authenticates users and manages token rotation.
type AuthSvcFacade interface {
	// Login verifies credentials and returns the user, a signed access
	// token and a fresh refresh token (its hash is stored, the plaintext
	// travels only once in the cookie).
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)

	// Refresh validates the presented refresh token against the stored
	// hash and rotates both tokens.
	Refresh(ctx context.Context, userID, refreshToken string) (string, string, error)

	// Logout invalidates the stored refresh token.
	Logout(ctx context.Context, userID string) error

	// AccessTokenTTL reports how long issued access tokens live.
	AccessTokenTTL() time.Duration
}

// GoogleOAuthSvcFacade signs users in via Google.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the consent-screen redirect carrying state.
	AuthCodeURL(state string) string

	// HandleCallback exchanges the code, fetches the Google profile and
	// logs the matching user in (same return shape as Login).
	HandleCallback(ctx context.Context, code string) (*domain.User, string, string, error)
}

// TokenIssuerSvc mints a token pair for a user already authenticated by
// some other means (e.g. a verified Google sign-in).
type TokenIssuerSvc interface {
	IssueTokensFor(ctx context.Context, user *domain.User) (accessToken, refreshToken string, err error)
}
