// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/fleetbook/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for merchant logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of merchant logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles merchant logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Revoking an already-revoked or unknown
// token is not an error; logout is idempotent.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutUserOutput{
		Message: "logged out",
	}, nil
}
