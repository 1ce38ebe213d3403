package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDealFigures(ctx context.Context, organizationID string, window domain.Window, teamID, userID string) ([]domain.DealFigures, error) {
	args := m.Called(ctx, organizationID, window, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DealFigures), args.Error(1)
}

func (m *MockReportingRepository) GetUserSalesRecords(ctx context.Context, organizationID string, window domain.Window) ([]domain.UserSalesRecord, error) {
	args := m.Called(ctx, organizationID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSalesRecord), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Test Suite ---
type CommissionServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockRateRepo      *MockExchangeRateRepository
	service           portssvc.CommissionSvcFacade
	admin             domain.Principal
	month             time.Time
}

func (s *CommissionServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockRateRepo = new(MockExchangeRateRepository)
	s.service = services.NewCommissionService(s.mockReportingRepo, s.mockRateRepo)
	s.admin = domain.Principal{
		UserID:         uuid.NewString(),
		OrganizationID: uuid.NewString(),
		Roles:          []domain.RoleName{domain.RoleAdmin},
	}
	s.month = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func (s *CommissionServiceTestSuite) TestGetCommissions_AppliesFormula() {
	records := []domain.UserSalesRecord{
		{
			UserID:            "user-1",
			FullName:          "Asha",
			Currency:          "USD",
			TotalSales:        decimal.NewFromInt(10000),
			CommissionPercent: decimal.NewFromInt(5),
			Bonus:             decimal.NewFromInt(50),
		},
	}

	s.mockReportingRepo.On("GetUserSalesRecords", mock.Anything, s.admin.OrganizationID, mock.MatchedBy(func(w domain.Window) bool {
		return w.Start.Equal(s.month) && w.End.Equal(s.month.AddDate(0, 1, 0))
	})).Return(records, nil).Once()

	rows, err := s.service.GetCommissions(context.Background(), s.admin, s.month, "")

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.True(rows[0].TotalCommission.Equal(decimal.NewFromInt(550)), "10000 * 5%% + 50 should be 550, got %s", rows[0].TotalCommission)
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *CommissionServiceTestSuite) TestGetCommissions_ZeroSalesStillPaysBonus() {
	records := []domain.UserSalesRecord{
		{
			UserID:            "user-2",
			FullName:          "Bram",
			Currency:          "USD",
			TotalSales:        decimal.Zero,
			CommissionPercent: decimal.NewFromInt(10),
			Bonus:             decimal.NewFromInt(200),
		},
	}

	s.mockReportingRepo.On("GetUserSalesRecords", mock.Anything, s.admin.OrganizationID, mock.Anything).Return(records, nil).Once()

	rows, err := s.service.GetCommissions(context.Background(), s.admin, s.month, "")

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.True(rows[0].TotalCommission.Equal(decimal.NewFromInt(200)))
}

func (s *CommissionServiceTestSuite) TestGetCommissions_ConvertsWithProvidedRate() {
	records := []domain.UserSalesRecord{
		{
			UserID:            "user-3",
			FullName:          "Chen",
			Currency:          "NPR",
			TotalSales:        decimal.NewFromInt(133000),
			CommissionPercent: decimal.NewFromInt(10),
			Bonus:             decimal.Zero,
		},
	}
	rate := &domain.ExchangeRate{
		FromCurrencyCode: "NPR",
		ToCurrencyCode:   "USD",
		Rate:             decimal.RequireFromString("0.0075"),
	}

	s.mockReportingRepo.On("GetUserSalesRecords", mock.Anything, s.admin.OrganizationID, mock.Anything).Return(records, nil).Once()
	s.mockRateRepo.On("FindExchangeRate", mock.Anything, "NPR", "USD").Return(rate, nil).Once()

	rows, err := s.service.GetCommissions(context.Background(), s.admin, s.month, "USD")

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.True(rows[0].ConvertedAmount.Equal(decimal.RequireFromString("997.5")))
	s.True(rows[0].TotalCommission.Equal(decimal.RequireFromString("99.75")))
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *CommissionServiceTestSuite) TestGetCommissions_MissingRateRejectsBatch() {
	records := []domain.UserSalesRecord{
		{
			UserID:            "user-4",
			FullName:          "Dana",
			Currency:          "EUR",
			TotalSales:        decimal.NewFromInt(4000),
			CommissionPercent: decimal.NewFromInt(5),
		},
		{
			UserID:            "user-5",
			FullName:          "Eli",
			Currency:          "USD",
			TotalSales:        decimal.NewFromInt(9000),
			CommissionPercent: decimal.NewFromInt(5),
		},
	}

	s.mockReportingRepo.On("GetUserSalesRecords", mock.Anything, s.admin.OrganizationID, mock.Anything).Return(records, nil).Once()
	s.mockRateRepo.On("FindExchangeRate", mock.Anything, "EUR", "USD").Return(nil, apperrors.ErrNotFound).Once()

	rows, err := s.service.GetCommissions(context.Background(), s.admin, s.month, "USD")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidInput)
	s.Nil(rows)
}

func (s *CommissionServiceTestSuite) TestGetCommissions_RequiresCapability() {
	verifier := domain.Principal{
		UserID:         uuid.NewString(),
		OrganizationID: s.admin.OrganizationID,
		Roles:          []domain.RoleName{domain.RoleVerifier},
	}

	_, err := s.service.GetCommissions(context.Background(), verifier, s.month, "")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockReportingRepo.AssertNotCalled(s.T(), "GetUserSalesRecords", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}
