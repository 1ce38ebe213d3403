package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/core/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DecidePayment(ctx context.Context, paymentID string, status domain.PaymentStatus, verifierID string, denialRemarks string, decidedBy string, decidedAt time.Time) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, status, verifierID, denialRemarks, decidedBy, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePaymentDetails(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPaymentsByStatus(ctx context.Context, organizationID string, status domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, organizationID, status, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return payments, next, args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsByDeal(ctx context.Context, dealID string) ([]domain.Payment, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock DealRepository ---
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) SaveDeal(ctx context.Context, deal domain.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealRepository) ListDeals(ctx context.Context, organizationID string, params portsrepo.DealListFilter, limit int, nextToken *string) ([]domain.Deal, *string, error) {
	args := m.Called(ctx, organizationID, params, limit, nextToken)
	var deals []domain.Deal
	if args.Get(0) != nil {
		deals = args.Get(0).([]domain.Deal)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return deals, next, args.Error(2)
}

func (m *MockDealRepository) UpdateDeal(ctx context.Context, deal domain.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) DeleteDeal(ctx context.Context, dealID string) error {
	args := m.Called(ctx, dealID)
	return args.Error(0)
}

func (m *MockDealRepository) FindLatestDealSerial(ctx context.Context, organizationID string) (int, bool, error) {
	args := m.Called(ctx, organizationID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockDealRepo    *MockDealRepository
	service         portssvc.PaymentSvcFacade
	verifier        domain.Principal
	sales           domain.Principal
	orgID           string
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.mockDealRepo = new(MockDealRepository)
	s.service = services.NewPaymentService(s.mockPaymentRepo, s.mockDealRepo)
	s.orgID = uuid.NewString()
	s.verifier = domain.Principal{
		UserID:         uuid.NewString(),
		OrganizationID: s.orgID,
		Roles:          []domain.RoleName{domain.RoleVerifier},
	}
	s.sales = domain.Principal{
		UserID:         uuid.NewString(),
		OrganizationID: s.orgID,
		Roles:          []domain.RoleName{domain.RoleSales},
	}
}

func (s *PaymentServiceTestSuite) pendingPayment() *domain.Payment {
	return &domain.Payment{
		PaymentID:      uuid.NewString(),
		DealID:         uuid.NewString(),
		PaymentDate:    time.Now().UTC(),
		ReceivedAmount: decimal.NewFromInt(500),
		Status:         domain.PaymentPending,
	}
}

// expectScopedLookup mocks the payment-then-deal lookup that scopes every
// by-ID payment operation to the deal's organization.
func (s *PaymentServiceTestSuite) expectScopedLookup(payment *domain.Payment, orgID string) {
	s.mockPaymentRepo.On("FindPaymentByID", mock.Anything, payment.PaymentID).Return(payment, nil).Once()
	s.mockDealRepo.On("FindDealByID", mock.Anything, payment.DealID).
		Return(&domain.Deal{DealID: payment.DealID, OrganizationID: orgID}, nil).Once()
}

func (s *PaymentServiceTestSuite) TestCreatePayment_StartsPending() {
	deal := &domain.Deal{DealID: uuid.NewString(), OrganizationID: s.orgID}
	req := dto.CreatePaymentRequest{
		DealID:         deal.DealID,
		PaymentDate:    time.Now().UTC(),
		ReceivedAmount: decimal.NewFromInt(1000),
		Remarks:        "first installment",
	}

	s.mockDealRepo.On("FindDealByID", mock.Anything, deal.DealID).Return(deal, nil).Once()
	s.mockPaymentRepo.On("SavePayment", mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentPending && p.DealID == deal.DealID && !p.IsEdited
	})).Return(nil).Once()

	payment, err := s.service.CreatePayment(context.Background(), s.sales, req)

	s.Require().NoError(err)
	s.Equal(domain.PaymentPending, payment.Status)
	s.Equal(s.sales.UserID, payment.CreatedBy)
	s.mockPaymentRepo.AssertExpectations(s.T())
	s.mockDealRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	req := dto.CreatePaymentRequest{
		DealID:         uuid.NewString(),
		PaymentDate:    time.Now().UTC(),
		ReceivedAmount: decimal.Zero,
	}

	_, err := s.service.CreatePayment(context.Background(), s.sales, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestVerifyPayment_Succeeds() {
	payment := s.pendingPayment()
	decided := *payment
	decided.Status = domain.PaymentVerified
	decided.VerifierID = &s.verifier.UserID

	s.expectScopedLookup(payment, s.orgID)
	s.mockPaymentRepo.On("DecidePayment", mock.Anything, payment.PaymentID, domain.PaymentVerified, s.verifier.UserID, "", s.verifier.UserID, mock.AnythingOfType("time.Time")).
		Return(&decided, nil).Once()

	got, err := s.service.VerifyPayment(context.Background(), s.verifier, payment.PaymentID)

	s.Require().NoError(err)
	s.Equal(domain.PaymentVerified, got.Status)
	s.Require().NotNil(got.VerifierID)
	s.Equal(s.verifier.UserID, *got.VerifierID)
	s.mockPaymentRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestVerifyPayment_RequiresCapability() {
	_, err := s.service.VerifyPayment(context.Background(), s.sales, uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "DecidePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestVerifyPayment_AlreadyDecidedConflicts() {
	payment := s.pendingPayment()
	payment.Status = domain.PaymentDenied

	s.expectScopedLookup(payment, s.orgID)
	s.mockPaymentRepo.On("DecidePayment", mock.Anything, payment.PaymentID, domain.PaymentVerified, s.verifier.UserID, "", s.verifier.UserID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	_, err := s.service.VerifyPayment(context.Background(), s.verifier, payment.PaymentID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *PaymentServiceTestSuite) TestDenyPayment_RequiresRemarks() {
	_, err := s.service.DenyPayment(context.Background(), s.verifier, uuid.NewString(), "   ")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "DecidePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestDenyPayment_StoresRemarks() {
	payment := s.pendingPayment()
	decided := *payment
	decided.Status = domain.PaymentDenied
	decided.DenialRemarks = "receipt does not match amount"
	decided.VerifierID = &s.verifier.UserID

	s.expectScopedLookup(payment, s.orgID)
	s.mockPaymentRepo.On("DecidePayment", mock.Anything, payment.PaymentID, domain.PaymentDenied, s.verifier.UserID, "receipt does not match amount", s.verifier.UserID, mock.AnythingOfType("time.Time")).
		Return(&decided, nil).Once()

	got, err := s.service.DenyPayment(context.Background(), s.verifier, payment.PaymentID, "receipt does not match amount")

	s.Require().NoError(err)
	s.Equal(domain.PaymentDenied, got.Status)
	s.Equal("receipt does not match amount", got.DenialRemarks)
	s.mockPaymentRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestEditPayment_PreservesStatusAndMarksEdited() {
	payment := s.pendingPayment()
	payment.Status = domain.PaymentVerified
	newAmount := decimal.NewFromInt(750)

	s.expectScopedLookup(payment, s.orgID)
	s.mockPaymentRepo.On("UpdatePaymentDetails", mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentVerified &&
			p.IsEdited &&
			p.EditedAt != nil &&
			p.ReceivedAmount.Equal(newAmount)
	})).Return(nil).Once()

	got, err := s.service.EditPayment(context.Background(), s.sales, payment.PaymentID, dto.EditPaymentRequest{
		ReceivedAmount: &newAmount,
	})

	s.Require().NoError(err)
	s.Equal(domain.PaymentVerified, got.Status)
	s.True(got.IsEdited)
	s.NotNil(got.EditedAt)
	s.mockPaymentRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestEditPayment_RejectsNonPositiveAmount() {
	payment := s.pendingPayment()
	bad := decimal.NewFromInt(-10)

	s.expectScopedLookup(payment, s.orgID)

	_, err := s.service.EditPayment(context.Background(), s.sales, payment.PaymentID, dto.EditPaymentRequest{
		ReceivedAmount: &bad,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "UpdatePaymentDetails", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestListPaymentsByStatus_RejectsUnknownStatus() {
	_, _, err := s.service.ListPaymentsByStatus(context.Background(), s.verifier, domain.PaymentStatus("SOMEDAY"), 20, nil)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PaymentServiceTestSuite) TestVerifyPayment_ForeignOrgForbidden() {
	payment := s.pendingPayment()

	s.expectScopedLookup(payment, uuid.NewString())

	_, err := s.service.VerifyPayment(context.Background(), s.verifier, payment.PaymentID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "DecidePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestDenyPayment_ForeignOrgForbidden() {
	payment := s.pendingPayment()

	s.expectScopedLookup(payment, uuid.NewString())

	_, err := s.service.DenyPayment(context.Background(), s.verifier, payment.PaymentID, "suspicious receipt")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "DecidePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestEditPayment_ForeignOrgForbidden() {
	payment := s.pendingPayment()
	newAmount := decimal.NewFromInt(750)

	s.expectScopedLookup(payment, uuid.NewString())

	_, err := s.service.EditPayment(context.Background(), s.sales, payment.PaymentID, dto.EditPaymentRequest{
		ReceivedAmount: &newAmount,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "UpdatePaymentDetails", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestGetPayment_ForeignOrgForbidden() {
	payment := s.pendingPayment()

	s.expectScopedLookup(payment, uuid.NewString())

	_, err := s.service.GetPayment(context.Background(), s.verifier, payment.PaymentID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *PaymentServiceTestSuite) TestListPaymentsByDeal_ForeignOrgForbidden() {
	deal := &domain.Deal{DealID: uuid.NewString(), OrganizationID: uuid.NewString()}

	s.mockDealRepo.On("FindDealByID", mock.Anything, deal.DealID).Return(deal, nil).Once()

	_, err := s.service.ListPaymentsByDeal(context.Background(), s.sales, deal.DealID)

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
