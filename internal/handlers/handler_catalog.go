package handlers

import (
	"net/http"

	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler manages work types, source types and offers.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	workTypes := rg.Group("/work-types")
	{
		workTypes.POST("", h.createWorkType)
		workTypes.GET("", h.listWorkTypes)
	}

	sourceTypes := rg.Group("/source-types")
	{
		sourceTypes.POST("", h.createSourceType)
		sourceTypes.GET("", h.listSourceTypes)
	}

	offers := rg.Group("/offers")
	{
		offers.POST("", h.createOffer)
		offers.GET("", h.listOffers)
		offers.PUT("/:id/active", h.setOfferActive)
	}
}

// createWorkType godoc
// @Summary Create a work type
// @Tags catalog
// @Accept json
// @Produce json
// @Param workType body dto.CreateWorkTypeRequest true "Work type details"
// @Success 201 {object} dto.WorkTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-types [post]
func (h *catalogHandler) createWorkType(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateWorkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	workType, err := h.catalogService.CreateWorkType(c.Request.Context(), principal, req)
	if err != nil {
		respondWithError(c, err, "Failed to create work type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkTypeResponse(workType))
}

// listWorkTypes godoc
// @Summary List work types
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.WorkTypeResponse
// @Security BearerAuth
// @Router /work-types [get]
func (h *catalogHandler) listWorkTypes(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	workTypes, err := h.catalogService.ListWorkTypes(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err, "Failed to list work types")
		return
	}

	out := make([]dto.WorkTypeResponse, len(workTypes))
	for i := range workTypes {
		out[i] = dto.ToWorkTypeResponse(&workTypes[i])
	}
	c.JSON(http.StatusOK, out)
}

// createSourceType godoc
// @Summary Create a source type
// @Tags catalog
// @Accept json
// @Produce json
// @Param sourceType body dto.CreateSourceTypeRequest true "Source type details"
// @Success 201 {object} dto.SourceTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /source-types [post]
func (h *catalogHandler) createSourceType(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateSourceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sourceType, err := h.catalogService.CreateSourceType(c.Request.Context(), principal, req)
	if err != nil {
		respondWithError(c, err, "Failed to create source type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSourceTypeResponse(sourceType))
}

// listSourceTypes godoc
// @Summary List source types
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.SourceTypeResponse
// @Security BearerAuth
// @Router /source-types [get]
func (h *catalogHandler) listSourceTypes(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	sourceTypes, err := h.catalogService.ListSourceTypes(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err, "Failed to list source types")
		return
	}

	out := make([]dto.SourceTypeResponse, len(sourceTypes))
	for i := range sourceTypes {
		out[i] = dto.ToSourceTypeResponse(&sourceTypes[i])
	}
	c.JSON(http.StatusOK, out)
}

// createOffer godoc
// @Summary Create an offer
// @Description Creates a discount promotion. The discount must be between 0 and 100 percent.
// @Tags catalog
// @Accept json
// @Produce json
// @Param offer body dto.CreateOfferRequest true "Offer details"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers [post]
func (h *catalogHandler) createOffer(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	offer, err := h.catalogService.CreateOffer(c.Request.Context(), principal, req)
	if err != nil {
		respondWithError(c, err, "Failed to create offer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

// listOffers godoc
// @Summary List offers
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ListOffersResponse
// @Security BearerAuth
// @Router /offers [get]
func (h *catalogHandler) listOffers(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	offers, err := h.catalogService.ListOffers(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err, "Failed to list offers")
		return
	}

	out := make([]dto.OfferResponse, len(offers))
	for i := range offers {
		out[i] = dto.ToOfferResponse(&offers[i])
	}
	c.JSON(http.StatusOK, dto.ListOffersResponse{Offers: out})
}

type setOfferActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// setOfferActive godoc
// @Summary Activate or deactivate an offer
// @Tags catalog
// @Accept json
// @Param id path string true "Offer ID"
// @Param body body setOfferActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers/{id}/active [put]
func (h *catalogHandler) setOfferActive(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req setOfferActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.catalogService.SetOfferActive(c.Request.Context(), principal, c.Param("id"), *req.Active); err != nil {
		respondWithError(c, err, "Failed to update offer")
		return
	}

	c.Status(http.StatusNoContent)
}
