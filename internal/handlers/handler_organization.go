package handlers

import (
	"net/http"

	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles organization signup and lookup.
type organizationHandler struct {
	orgService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{orgService: os}
}

// registerOrganizationPublicRoutes exposes the unauthenticated signup route.
func registerOrganizationPublicRoutes(r *gin.Engine, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)
	r.POST("/api/v1/organizations", h.registerOrganization)
}

func registerOrganizationRoutes(rg *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)

	orgs := rg.Group("/organizations")
	{
		orgs.GET("/:id", h.getOrganization)
	}
}

// registerOrganization godoc
// @Summary Register an organization
// @Description Creates an organization together with its first admin user in one transaction.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.RegisterOrganizationRequest true "Organization and admin details"
// @Success 201 {object} dto.RegisterOrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /organizations [post]
func (h *organizationHandler) registerOrganization(c *gin.Context) {
	var req dto.RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	org, admin, err := h.orgService.RegisterOrganization(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register organization")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterOrganizationResponse{
		Organization: dto.ToOrganizationResponse(org),
		Admin:        dto.ToUserResponse(admin),
	})
}

// getOrganization godoc
// @Summary Get an organization
// @Description Retrieves the caller's own organization.
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	org, err := h.orgService.GetOrganization(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}
