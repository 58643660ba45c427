// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetbook/backend/internal/application/usecase/cost"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/integration/entrypoint/dto"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// CostController handles cost ledger endpoints, nested under a vehicle.
type CostController struct {
	listUseCase   *cost.ListCostsUseCase
	createUseCase *cost.CreateCostUseCase
	updateUseCase *cost.UpdateCostUseCase
	deleteUseCase *cost.DeleteCostUseCase
}

// NewCostController creates a new cost controller instance.
func NewCostController(
	listUseCase *cost.ListCostsUseCase,
	createUseCase *cost.CreateCostUseCase,
	updateUseCase *cost.UpdateCostUseCase,
	deleteUseCase *cost.DeleteCostUseCase,
) *CostController {
	return &CostController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /vehicles/:id/costs requests.
func (c *CostController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), cost.ListCostsInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
	})
	if err != nil {
		handleCostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListCostsResponse{
		Costs: dto.ToCostResponses(output.Costs),
		Total: len(output.Costs),
	})
}

// Create handles POST /vehicles/:id/costs requests.
func (c *CostController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCostLabel),
		})
		return
	}

	input := cost.CreateCostInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
		Label:     req.Label,
		Amount:    req.Amount,
		Category:  entity.CostCategory(req.Category),
	}
	if req.IncurredAt != "" {
		incurredAt, err := time.Parse("2006-01-02", req.IncurredAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid incurredAt date, expected YYYY-MM-DD",
			})
			return
		}
		input.IncurredAt = incurredAt
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCostResponse(output.Cost))
}

// Update handles PATCH /vehicles/:id/costs/:costId requests.
func (c *CostController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	costID, ok := parseIDParam(ctx, "costId")
	if !ok {
		return
	}

	var req dto.UpdateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCostLabel),
		})
		return
	}

	input := cost.UpdateCostInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
		CostID:    costID,
		Label:     req.Label,
		Amount:    req.Amount,
	}
	if req.Category != nil {
		category := entity.CostCategory(*req.Category)
		input.Category = &category
	}
	if req.IncurredAt != nil {
		incurredAt, err := time.Parse("2006-01-02", *req.IncurredAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid incurredAt date, expected YYYY-MM-DD",
			})
			return
		}
		input.IncurredAt = &incurredAt
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostResponse(output.Cost))
}

// Delete handles DELETE /vehicles/:id/costs/:costId requests.
func (c *CostController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	costID, ok := parseIDParam(ctx, "costId")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), cost.DeleteCostInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
		CostID:    costID,
	})
	if err != nil {
		handleCostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleCostError maps cost domain errors to HTTP responses. Vehicle lookups
// happen first in every cost use case, so vehicle errors surface here too.
func handleCostError(ctx *gin.Context, err error) {
	var costErr *domainerror.CostError
	if errors.As(err, &costErr) {
		statusCode := http.StatusBadRequest
		if costErr.Code == domainerror.ErrCodeCostNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: costErr.Message,
			Code:  string(costErr.Code),
		})
		return
	}

	handleVehicleError(ctx, err)
}
