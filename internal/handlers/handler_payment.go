package handlers

import (
	"errors"
	"net/http"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles payment recording, verification and correction.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.POST("/:id/verify", h.verifyPayment)
		payments.PUT("/:id", h.editPayment)
	}
}

// mutationFailure reports business-rule failures as a success=false envelope
// with HTTP 200, so clients read one shape for every mutation outcome.
// Authorization and infrastructure errors still fail at the transport level.
func mutationFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusOK, dto.Fail(err.Error()))
	default:
		respondWithError(c, err, "Payment mutation failed")
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a received payment against a deal. Payments start PENDING until a verifier decides them.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), principal, req)
	if err != nil {
		mutationFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Payment recorded", dto.ToPaymentResponse(payment)))
}

// verifyPayment godoc
// @Summary Decide a pending payment
// @Description Moves a PENDING payment to VERIFIED or DENIED. Denial requires remarks. Deciding an already-decided payment fails without changing it.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param decision body dto.VerifyPaymentRequest true "Decision"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/verify [post]
func (h *paymentHandler) verifyPayment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var (
		payment *domain.Payment
		err     error
	)
	switch req.Status {
	case domain.PaymentVerified:
		payment, err = h.paymentService.VerifyPayment(c.Request.Context(), principal, c.Param("id"))
	case domain.PaymentDenied:
		payment, err = h.paymentService.DenyPayment(c.Request.Context(), principal, c.Param("id"), req.Remarks)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status must be VERIFIED or DENIED"})
		return
	}
	if err != nil {
		mutationFailure(c, err)
		return
	}

	message := "Payment verified"
	if payment.Status == domain.PaymentDenied {
		message = "Payment denied"
	}
	c.JSON(http.StatusOK, dto.OK(message, dto.ToPaymentResponse(payment)))
}

// editPayment godoc
// @Summary Correct a payment
// @Description Corrects a payment's details in any status and marks it edited. The status never changes here.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.EditPaymentRequest true "Fields to correct"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) editPayment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.EditPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.paymentService.EditPayment(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		mutationFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Payment updated", dto.ToPaymentResponse(payment)))
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments by status
// @Description Pages through the organization's payments in a given status, newest first. Defaults to the PENDING queue.
// @Tags payments
// @Produce json
// @Param status query string false "Payment status" default(PENDING)
// @Param limit query int false "Limit number of results" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	status := domain.PaymentStatus(params.Status)
	if params.Status == "" {
		status = domain.PaymentPending
	}

	payments, nextToken, err := h.paymentService.ListPaymentsByStatus(c.Request.Context(), principal, status, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	})
}
