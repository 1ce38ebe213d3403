package repositories

import (
	"context"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// UserRepository persists users and their credentials.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) // also returns the password hash
	ListUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error

	// FindLatestEmployeeSerial returns the highest serial allocated in the
	// organization; found=false with nil error means no user exists yet.
	FindLatestEmployeeSerial(ctx context.Context, organizationID string) (serial int, found bool, err error)

	// UpdateRefreshToken stores (or clears, with nils) the hash and expiry
	// of the user's current refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
	FindRefreshToken(ctx context.Context, userID string) (tokenHash string, expiresAt time.Time, err error)
}
