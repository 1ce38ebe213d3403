package repositories

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// ClientRepository persists clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Client, *string, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error

	// FindLatestClientSerial returns the highest serial allocated in the
	// organization; found=false with nil error means no client exists yet.
	FindLatestClientSerial(ctx context.Context, organizationID string) (serial int, found bool, err error)
}
