package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// salesHandler serves the dashboard aggregations.
type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

func newSalesHandler(ss portssvc.SalesSvcFacade) *salesHandler {
	return &salesHandler{salesService: ss}
}

func registerSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade) {
	h := newSalesHandler(salesService)

	sales := rg.Group("/sales")
	{
		sales.GET("/report", h.workTypeReport)
		sales.GET("/teams", h.teamSales)
		sales.GET("/top-performers", h.topPerformers)
	}
}

// workTypeReport godoc
// @Summary Per-employee sales report
// @Description Groups in-scope deals per employee with a work-type breakdown. Overall totals are sums over the employee rows.
// @Tags sales
// @Produce json
// @Param window query string false "Named window, e.g. this-month, last-30-days"
// @Param startDate query string false "Explicit start (YYYY-MM-DD)"
// @Param endDate query string false "Explicit end, inclusive (YYYY-MM-DD)"
// @Param teamID query string false "Restrict to one team"
// @Param userID query string false "Restrict to one employee"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/report [get]
func (h *salesHandler) workTypeReport(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	window, err := params.ResolveWindow(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.salesService.WorkTypeReport(c.Request.Context(), principal, window, params.TeamID, params.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to build sales report")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesReportResponse(report, window))
}

// teamSales godoc
// @Summary Team sales comparison
// @Description Groups the employee sales rows by team. The overall metrics equal the sum of the team rows.
// @Tags sales
// @Produce json
// @Param window query string false "Named window, e.g. this-month, last-30-days"
// @Param startDate query string false "Explicit start (YYYY-MM-DD)"
// @Param endDate query string false "Explicit end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.TeamSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/teams [get]
func (h *salesHandler) teamSales(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	window, err := params.ResolveWindow(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	teams, overall, err := h.salesService.TeamSales(c.Request.Context(), principal, window)
	if err != nil {
		respondWithError(c, err, "Failed to build team sales")
		return
	}

	c.JSON(http.StatusOK, dto.TeamSalesResponse{
		StartDate:      window.Start.Format("2006-01-02"),
		EndDate:        window.End.AddDate(0, 0, -1).Format("2006-01-02"),
		TeamSales:      teams,
		OverallMetrics: overall,
	})
}

// topPerformers godoc
// @Summary Top performers
// @Description Ranks employees by total verified sales in the window, descending.
// @Tags sales
// @Produce json
// @Param window query string false "Named window, e.g. this-month, last-30-days"
// @Param startDate query string false "Explicit start (YYYY-MM-DD)"
// @Param endDate query string false "Explicit end, inclusive (YYYY-MM-DD)"
// @Param limit query int false "Number of performers" default(10)
// @Success 200 {object} dto.TopPerformersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/top-performers [get]
func (h *salesHandler) topPerformers(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	window, err := params.ResolveWindow(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
	}

	performers, err := h.salesService.TopPerformers(c.Request.Context(), principal, window, limit)
	if err != nil {
		respondWithError(c, err, "Failed to rank performers")
		return
	}

	c.JSON(http.StatusOK, dto.TopPerformersResponse{
		StartDate:  window.Start.Format("2006-01-02"),
		EndDate:    window.End.AddDate(0, 0, -1).Format("2006-01-02"),
		Performers: performers,
	})
}
