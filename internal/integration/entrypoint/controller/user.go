// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetbook/backend/internal/application/adapter"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/integration/entrypoint/dto"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
)

// UserController handles merchant account endpoints.
type UserController struct {
	userRepo adapter.UserRepository
}

// NewUserController creates a new user controller instance.
func NewUserController(userRepo adapter.UserRepository) *UserController {
	return &UserController{userRepo: userRepo}
}

// Me handles GET /me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	user, err := c.userRepo.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}
