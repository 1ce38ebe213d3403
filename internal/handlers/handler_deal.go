package handlers

import (
	"net/http"

	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

type dealHandler struct {
	dealService    portssvc.DealSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newDealHandler(ds portssvc.DealSvcFacade, ps portssvc.PaymentSvcFacade) *dealHandler {
	return &dealHandler{dealService: ds, paymentService: ps}
}

func registerDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newDealHandler(dealService, paymentService)

	deals := rg.Group("/deals")
	{
		deals.POST("", h.createDeal)
		deals.GET("", h.listDeals)
		deals.GET("/:id", h.getDeal)
		deals.PUT("/:id", h.updateDeal)
		deals.DELETE("/:id", h.deleteDeal)
		deals.GET("/:id/payments", h.listDealPayments)
	}
}

// createDeal godoc
// @Summary Create a deal
// @Description Opens a deal for a client with the next deal number. The owning salesperson defaults to the caller.
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body dto.CreateDealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /deals [post]
func (h *dealHandler) createDeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), principal, req)
	if err != nil {
		respondWithError(c, err, "Failed to create deal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// getDeal godoc
// @Summary Get a deal
// @Description Retrieves a deal with its payments and collection figures.
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals/{id} [get]
func (h *dealHandler) getDeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	deal, err := h.dealService.GetDeal(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve deal")
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// listDeals godoc
// @Summary List deals
// @Description Pages through the organization's deals, newest first, optionally filtered by client or salesperson.
// @Tags deals
// @Produce json
// @Param clientID query string false "Filter by client"
// @Param userID query string false "Filter by salesperson"
// @Param limit query int false "Limit number of results" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListDealsResponse
// @Security BearerAuth
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var params dto.ListDealsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	deals, nextToken, err := h.dealService.ListDeals(c.Request.Context(), principal, params)
	if err != nil {
		respondWithError(c, err, "Failed to list deals")
		return
	}

	c.JSON(http.StatusOK, dto.ListDealsResponse{
		Deals:     dto.ToDealResponses(deals),
		NextToken: nextToken,
	})
}

// updateDeal godoc
// @Summary Update a deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param deal body dto.UpdateDealRequest true "Fields to update"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals/{id} [put]
func (h *dealHandler) updateDeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update deal")
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// deleteDeal godoc
// @Summary Delete a deal
// @Description Fails when the deal has recorded payments.
// @Tags deals
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Deal has payments"
// @Security BearerAuth
// @Router /deals/{id} [delete]
func (h *dealHandler) deleteDeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if err := h.dealService.DeleteDeal(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete deal")
		return
	}

	c.Status(http.StatusNoContent)
}

// listDealPayments godoc
// @Summary List a deal's payments
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals/{id}/payments [get]
func (h *dealHandler) listDealPayments(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsByDeal(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments)})
}
