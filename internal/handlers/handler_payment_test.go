package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/SaPok5/prs-sub001/internal/middleware"
	"github.com/SaPok5/prs-sub001/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, principal domain.Principal, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) VerifyPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, principal, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DenyPayment(ctx context.Context, principal domain.Principal, paymentID string, remarks string) (*domain.Payment, error) {
	args := m.Called(ctx, principal, paymentID, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) EditPayment(ctx context.Context, principal domain.Principal, paymentID string, req dto.EditPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, principal, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, principal, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByStatus(ctx context.Context, principal domain.Principal, status domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, principal, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Payment), token, args.Error(2)
}

func (m *MockPaymentService) ListPaymentsByDeal(ctx context.Context, principal domain.Principal, dealID string) ([]domain.Payment, error) {
	args := m.Called(ctx, principal, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPaymentService
	jwtSecret   string
	userID      string
	orgID       string
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.orgID = uuid.NewString()

	suite.router = gin.New()
	suite.mockService = new(MockPaymentService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerPaymentRoutes(v1, suite.mockService)
}

func (suite *PaymentHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateAccessToken(suite.userID, suite.orgID, []string{string(domain.RoleVerifier)},
		suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *PaymentHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decidedPayment(status domain.PaymentStatus, verifierID string) *domain.Payment {
	now := time.Now().UTC()
	p := &domain.Payment{
		PaymentID:      uuid.NewString(),
		DealID:         uuid.NewString(),
		PaymentDate:    now,
		ReceivedAmount: decimal.NewFromInt(500),
		Status:         status,
		VerifierID:     &verifierID,
	}
	p.CreatedAt = now
	p.LastUpdatedAt = now
	return p
}

// --- Test Cases ---

func (suite *PaymentHandlerTestSuite) TestVerifyPayment_SuccessEnvelope() {
	payment := decidedPayment(domain.PaymentVerified, suite.userID)
	suite.mockService.On("VerifyPayment", mock.Anything, mock.Anything, payment.PaymentID).
		Return(payment, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+payment.PaymentID+"/verify",
		dto.VerifyPaymentRequest{Status: domain.PaymentVerified})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("Payment verified", resp.Message)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestVerifyPayment_ConflictReportedInEnvelope() {
	paymentID := uuid.NewString()
	conflict := fmt.Errorf("%w: payment %s is no longer pending", apperrors.ErrConflict, paymentID)
	suite.mockService.On("VerifyPayment", mock.Anything, mock.Anything, paymentID).
		Return(nil, conflict).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+paymentID+"/verify",
		dto.VerifyPaymentRequest{Status: domain.PaymentVerified})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Contains(resp.Message, "no longer pending")
}

func (suite *PaymentHandlerTestSuite) TestDenyPayment_MissingRemarksFailsEnvelope() {
	paymentID := uuid.NewString()
	suite.mockService.On("DenyPayment", mock.Anything, mock.Anything, paymentID, "").
		Return(nil, fmt.Errorf("%w: denial requires remarks", apperrors.ErrValidation)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+paymentID+"/verify",
		dto.VerifyPaymentRequest{Status: domain.PaymentDenied})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Contains(resp.Message, "remarks")
}

func (suite *PaymentHandlerTestSuite) TestVerifyPayment_ForbiddenIsTransportError() {
	paymentID := uuid.NewString()
	suite.mockService.On("VerifyPayment", mock.Anything, mock.Anything, paymentID).
		Return(nil, fmt.Errorf("%w: missing capability verify_payments", apperrors.ErrForbidden)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+paymentID+"/verify",
		dto.VerifyPaymentRequest{Status: domain.PaymentVerified})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestVerifyPayment_UnknownStatusRejected() {
	w := suite.doJSON(http.MethodPost, "/api/v1/payments/"+uuid.NewString()+"/verify",
		map[string]string{"status": "MAYBE"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_RequiresAuth() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestGetPayment_NotFound() {
	paymentID := uuid.NewString()
	suite.mockService.On("GetPayment", mock.Anything, mock.Anything, paymentID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/payments/"+paymentID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_DefaultsToPendingQueue() {
	suite.mockService.On("ListPaymentsByStatus", mock.Anything, mock.Anything,
		domain.PaymentPending, 20, (*string)(nil)).
		Return([]domain.Payment{}, nil, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/payments", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
