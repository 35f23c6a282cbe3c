package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// DashboardHandler serves the aggregate views consumed by the console's
// charts.
type DashboardHandler struct {
	stats ports.StatsService
}

func NewDashboardHandler(stats ports.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

type tallyResponse struct {
	Data []ports.ChartPoint `json:"data"`
}

// Get handles GET /v1/dashboard?lang=en|ar.
//
// @Summary      Dashboard aggregate snapshot
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        lang  query     string  false  "Month-name language (en or ar)"
// @Success      200   {object}  ports.DashboardResult
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	result, err := h.stats.Dashboard(c.Request().Context(), c.QueryParam("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Monthly handles GET /v1/dashboard/monthly.
//
// @Summary      Operations per calendar month
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        lang  query     string  false  "Month-name language (en or ar)"
// @Success      200   {object}  tallyResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/dashboard/monthly [get]
func (h *DashboardHandler) Monthly(c echo.Context) error {
	points, err := h.stats.MonthlyOperations(c.Request().Context(), c.QueryParam("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tallyResponse{Data: points})
}

// Types handles GET /v1/dashboard/types.
//
// @Summary      Operations per type tag
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tallyResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/dashboard/types [get]
func (h *DashboardHandler) Types(c echo.Context) error {
	points, err := h.stats.OperationTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tallyResponse{Data: points})
}

// Countries handles GET /v1/dashboard/countries.
//
// @Summary      Users per country
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tallyResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/dashboard/countries [get]
func (h *DashboardHandler) Countries(c echo.Context) error {
	points, err := h.stats.UserCountries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tallyResponse{Data: points})
}
