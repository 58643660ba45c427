// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/usecase/vehicle"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/integration/entrypoint/dto"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// VehicleController handles fleet item endpoints.
type VehicleController struct {
	listUseCase   *vehicle.ListVehiclesUseCase
	getUseCase    *vehicle.GetVehicleUseCase
	createUseCase *vehicle.CreateVehicleUseCase
	updateUseCase *vehicle.UpdateVehicleUseCase
	deleteUseCase *vehicle.DeleteVehicleUseCase
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(
	listUseCase *vehicle.ListVehiclesUseCase,
	getUseCase *vehicle.GetVehicleUseCase,
	createUseCase *vehicle.CreateVehicleUseCase,
	updateUseCase *vehicle.UpdateVehicleUseCase,
	deleteUseCase *vehicle.DeleteVehicleUseCase,
) *VehicleController {
	return &VehicleController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /vehicles requests.
func (c *VehicleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := vehicle.ListVehiclesInput{
		OwnerID: userID,
		Status:  ctx.Query("status"),
		Make:    ctx.Query("make"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleVehicleError(ctx, err)
		return
	}

	vehicles := make([]dto.VehicleResponse, len(output.Vehicles))
	for i, vt := range output.Vehicles {
		vehicles[i] = dto.ToVehicleResponse(vt.Vehicle, vt.Totals)
	}

	ctx.JSON(http.StatusOK, dto.ListVehiclesResponse{
		Vehicles: vehicles,
		Total:    len(vehicles),
	})
}

// Get handles GET /vehicles/:id requests.
func (c *VehicleController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), vehicle.GetVehicleInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
	})
	if err != nil {
		handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VehicleDetailResponse{
		VehicleResponse: dto.ToVehicleResponse(output.Vehicle, output.Totals),
		Costs:           dto.ToCostResponses(output.Costs),
		Photos:          dto.ToPhotoResponses(output.Photos),
	})
}

// Create handles POST /vehicles requests.
func (c *VehicleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingVehicleFields),
		})
		return
	}

	input := vehicle.CreateVehicleInput{
		OwnerID:       userID,
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Mileage:       req.Mileage,
		Status:        entity.VehicleStatus(req.Status),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(output.Vehicle, output.Totals))
}

// Update handles PATCH /vehicles/:id requests.
func (c *VehicleController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingVehicleFields),
		})
		return
	}

	input := vehicle.UpdateVehicleInput{
		OwnerID:       userID,
		VehicleID:     vehicleID,
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		ClearSale:     req.ClearSale,
		Mileage:       req.Mileage,
	}
	if req.Status != nil {
		status := entity.VehicleStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(output.Vehicle, output.Totals))
}

// Delete handles DELETE /vehicles/:id requests.
func (c *VehicleController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), vehicle.DeleteVehicleInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
	})
	if err != nil {
		handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// respondUnauthenticated writes the shared missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// parseIDParam parses a UUID path parameter, writing a 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleVehicleError maps vehicle domain errors to HTTP responses.
func handleVehicleError(ctx *gin.Context, err error) {
	var vehicleErr *domainerror.VehicleError
	if errors.As(err, &vehicleErr) {
		statusCode := http.StatusBadRequest
		if vehicleErr.Code == domainerror.ErrCodeVehicleNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: vehicleErr.Message,
			Code:  string(vehicleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
