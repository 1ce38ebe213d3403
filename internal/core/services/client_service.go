package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/SaPok5/prs-sub001/internal/utils"
	"github.com/SaPok5/prs-sub001/internal/utils/mapping"
	"github.com/google/uuid"
)

// clientService manages clients and allocates their org-scoped serials.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates the client service.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, principal domain.Principal, req dto.CreateClientRequest) (*domain.Client, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageClients); err != nil {
		return nil, err
	}

	latest, found, err := s.clientRepo.FindLatestClientSerial(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate client serial: %w", err)
	}
	serial := 1
	if found {
		serial = latest + 1
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:       uuid.NewString(),
		ClientNumber:   utils.FormatSerial(mapping.ClientSerialPrefix, serial),
		FullName:       req.FullName,
		Email:          req.Email,
		Contact:        req.Contact,
		Nationality:    req.Nationality,
		OrganizationID: principal.OrganizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to save client")
		return nil, fmt.Errorf("failed to create client in service: %w", err)
	}

	s.LogInfo(ctx, "client created",
		slog.String("client_id", client.ClientID),
		slog.String("client_number", client.ClientNumber))
	return &client, nil
}

func (s *clientService) GetClient(ctx context.Context, principal domain.Principal, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: client belongs to another organization", apperrors.ErrForbidden)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, principal domain.Principal, params dto.ListClientsParams) ([]domain.Client, *string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	clients, next, err := s.clientRepo.ListClients(ctx, principal.OrganizationID, limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list clients in service: %w", err)
	}
	return clients, next, nil
}

func (s *clientService) UpdateClient(ctx context.Context, principal domain.Principal, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageClients); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: client belongs to another organization", apperrors.ErrForbidden)
	}

	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.Nationality != nil {
		client.Nationality = *req.Nationality
	}

	now := time.Now().UTC()
	client.LastUpdatedAt = now
	client.LastUpdatedBy = principal.UserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client in service: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, principal domain.Principal, clientID string) error {
	if err := s.Authorize(ctx, principal, domain.CapManageClients); err != nil {
		return err
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client.OrganizationID != principal.OrganizationID {
		return fmt.Errorf("%w: client belongs to another organization", apperrors.ErrForbidden)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return fmt.Errorf("failed to delete client in service: %w", err)
	}
	s.LogInfo(ctx, "client deleted", slog.String("client_id", clientID))
	return nil
}
