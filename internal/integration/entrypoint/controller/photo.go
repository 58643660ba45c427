// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetbook/backend/internal/application/usecase/photo"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/integration/entrypoint/dto"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// PhotoController handles photo reference endpoints, nested under a vehicle.
type PhotoController struct {
	listUseCase   *photo.ListPhotosUseCase
	addUseCase    *photo.AddPhotoUseCase
	deleteUseCase *photo.DeletePhotoUseCase
}

// NewPhotoController creates a new photo controller instance.
func NewPhotoController(
	listUseCase *photo.ListPhotosUseCase,
	addUseCase *photo.AddPhotoUseCase,
	deleteUseCase *photo.DeletePhotoUseCase,
) *PhotoController {
	return &PhotoController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /vehicles/:id/photos requests.
func (c *PhotoController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), photo.ListPhotosInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
	})
	if err != nil {
		handlePhotoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListPhotosResponse{
		Photos: dto.ToPhotoResponses(output.Photos),
		Total:  len(output.Photos),
	})
}

// Add handles POST /vehicles/:id/photos requests.
func (c *PhotoController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddPhotoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPhotoURL),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), photo.AddPhotoInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
		URL:       req.URL,
		Position:  req.Position,
	})
	if err != nil {
		handlePhotoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPhotoResponse(output.Photo))
}

// Delete handles DELETE /vehicles/:id/photos/:photoId requests.
func (c *PhotoController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	photoID, ok := parseIDParam(ctx, "photoId")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), photo.DeletePhotoInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
		PhotoID:   photoID,
	})
	if err != nil {
		handlePhotoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handlePhotoError maps photo domain errors to HTTP responses.
func handlePhotoError(ctx *gin.Context, err error) {
	var photoErr *domainerror.PhotoError
	if errors.As(err, &photoErr) {
		statusCode := http.StatusBadRequest
		if photoErr.Code == domainerror.ErrCodePhotoNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: photoErr.Message,
			Code:  string(photoErr.Code),
		})
		return
	}

	handleVehicleError(ctx, err)
}
