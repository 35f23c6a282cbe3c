package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory and account
// adjustments.
type UserHandler struct {
	directory ports.DirectoryService
	billing   ports.BillingService
}

func NewUserHandler(directory ports.DirectoryService, billing ports.BillingService) *UserHandler {
	return &UserHandler{directory: directory, billing: billing}
}

// List handles GET /v1/users — the full normalized user listing.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.directory.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: users, Total: len(users)})
}

// AddCredit handles POST /v1/users/:id/credits.
//
// @Summary      Adjust a user's credit balance
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "User id"
// @Param        body  body      addCreditRequest  true  "Adjustment amount (may be negative)"
// @Success      200   {object}  addCreditResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id}/credits [post]
func (h *UserHandler) AddCredit(c echo.Context) error {
	var req addCreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID := c.Param("id")
	newBalance, err := h.billing.AddCredit(c.Request().Context(), userID, req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, addCreditResponse{UserID: userID, NewBalance: newBalance})
}

// SetBlock handles POST /v1/users/:id/block.
//
// @Summary      Block or unblock a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "User id"
// @Param        body  body      blockRequest  true  "Target block state"
// @Success      200   {object}  statusMessageResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/block [post]
func (h *UserHandler) SetBlock(c echo.Context) error {
	var req blockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.billing.SetBlocked(c.Request().Context(), c.Param("id"), *req.Blocked); err != nil {
		return err
	}

	msg := "user unblocked"
	if *req.Blocked {
		msg = "user blocked"
	}
	return c.JSON(http.StatusOK, statusMessageResponse{Message: msg})
}

// Renew handles POST /v1/users/:id/renew.
//
// @Summary      Renew a user's license
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "User id"
// @Param        body  body      renewRequest  true  "Renewal length in months"
// @Success      200   {object}  statusMessageResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/renew [post]
func (h *UserHandler) Renew(c echo.Context) error {
	var req renewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.billing.Renew(c.Request().Context(), c.Param("id"), req.Months); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessageResponse{Message: "user renewed"})
}
