package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue incoming
// operation records.
type EventDispatcher interface {
	Enqueue(event ports.OperationEventInput)
	EnqueueBatch(events []ports.OperationEventInput)
}

// OperationHandler handles the operation listing, the refund workflow, and
// async record ingest.
type OperationHandler struct {
	directory  ports.DirectoryService
	billing    ports.BillingService
	dispatcher EventDispatcher
}

func NewOperationHandler(directory ports.DirectoryService, billing ports.BillingService, dispatcher EventDispatcher) *OperationHandler {
	return &OperationHandler{directory: directory, billing: billing, dispatcher: dispatcher}
}

// List handles GET /v1/operations — full listing, newest first.
//
// @Summary      List all operations
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOperationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/operations [get]
func (h *OperationHandler) List(c echo.Context) error {
	ops, err := h.directory.ListOperations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOperationsResponse{Data: ops, Total: len(ops)})
}

// Refund handles POST /v1/operations/:id/refund.
//
// @Summary      Refund an operation
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Operation id"
// @Success      200 {object}  refundResponse
// @Failure      404 {object}  errorResponse
// @Failure      409 {object}  errorResponse
// @Failure      502 {object}  errorResponse
// @Router       /v1/operations/{id}/refund [post]
func (h *OperationHandler) Refund(c echo.Context) error {
	result, err := h.billing.Refund(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refundResponse{
		OperationID: result.OperationID,
		UserID:      result.UserID,
		Amount:      result.Amount,
		NewBalance:  result.NewBalance,
	})
}

// ReceiveEvent handles POST /v1/operations/events — enqueues one record, 202.
//
// @Summary      Ingest a single operation record
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      operationEventRequest  true  "Operation record"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/operations/events [post]
func (h *OperationHandler) ReceiveEvent(c echo.Context) error {
	var req operationEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "operation accepted"})
}

// ReceiveEventBatch handles POST /v1/operations/events/batch.
//
// @Summary      Ingest a batch of operation records
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []operationEventRequest  true  "Array of operation records"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/operations/events/batch [post]
func (h *OperationHandler) ReceiveEventBatch(c echo.Context) error {
	var reqs []operationEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.OperationEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("record[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toEventInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "operations accepted",
		Count:   len(inputs),
	})
}
