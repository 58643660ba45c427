// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetbook/backend/internal/application/usecase/dashboard"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/domain/finance"
	"github.com/fleetbook/backend/internal/integration/entrypoint/dto"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the profitability dashboard endpoint.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{getUseCase: getUseCase}
}

// Get handles GET /dashboard requests. An absent period means no filtering.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	period := finance.Period(ctx.DefaultQuery("period", string(finance.PeriodNone)))

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		OwnerID: userID,
		Period:  period,
	})
	if err != nil {
		var financeErr *domainerror.FinanceError
		if errors.As(err, &financeErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: financeErr.Message,
				Code:  string(financeErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Report)
}
