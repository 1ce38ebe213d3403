package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

func newCommissionHandler(cs portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{commissionService: cs}
}

func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(commissionService)

	rg.GET("/commissions", h.getCommissions)
}

// getCommissions godoc
// @Summary Monthly commission sheet
// @Description Computes every user's commission for a calendar month from verified sales. When baseCurrency is given, cross-currency rows are converted with the stored rate; a missing rate rejects the whole request.
// @Tags commissions
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Param baseCurrency query string false "Currency to convert into (ISO 4217)"
// @Success 200 {object} dto.CommissionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /commissions [get]
func (h *commissionHandler) getCommissions(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var params dto.GetCommissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	monthStart, err := time.Parse("2006-01", params.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be formatted YYYY-MM"})
		return
	}

	rows, err := h.commissionService.GetCommissions(c.Request.Context(), principal, monthStart, params.BaseCurrency)
	if err != nil {
		respondWithError(c, err, "Failed to compute commissions")
		return
	}

	c.JSON(http.StatusOK, dto.CommissionsResponse{
		Month:        params.Month,
		BaseCurrency: params.BaseCurrency,
		Rows:         rows,
	})
}
