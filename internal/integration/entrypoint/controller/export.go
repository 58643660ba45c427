// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetbook/backend/internal/application/usecase/report"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// ExportController handles report export endpoints.
type ExportController struct {
	exportPDFUseCase *report.ExportVehiclePDFUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportPDFUseCase *report.ExportVehiclePDFUseCase) *ExportController {
	return &ExportController{exportPDFUseCase: exportPDFUseCase}
}

// VehiclePDF handles GET /export/vehicles/:id/pdf requests.
func (c *ExportController) VehiclePDF(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	vehicleID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.exportPDFUseCase.Execute(ctx.Request.Context(), report.ExportVehiclePDFInput{
		OwnerID:   userID,
		VehicleID: vehicleID,
	})
	if err != nil {
		handleVehicleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, "application/pdf", output.Content)
}
