// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: make(map[string]*entity.User)}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokenService struct {
	revoked map[string]bool
	claims  map[string]*adapter.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		revoked: make(map[string]bool),
		claims:  make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	refresh := "refresh-" + uuid.NewString()
	s.claims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{
		AccessToken:  "access-" + uuid.NewString(),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if s.revoked[token] {
		return nil, errors.New("token revoked")
	}
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func TestRegisterUser(t *testing.T) {
	t.Run("registers and returns tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "dealer@example.com",
			Name:     "Dealer One",
			Password: "a-strong-password",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, out.AccessToken)
		assert.NotEmpty(t, out.RefreshToken)
		assert.Equal(t, entity.UserRoleSeller, out.User.Role)
		assert.Equal(t, "hashed:a-strong-password", out.User.PasswordHash)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Dealer",
			Password: "a-strong-password",
		})
		require.Error(t, err)

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeMissingFields, authErr.Code)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "dealer@example.com",
			Name:     "Dealer",
			Password: "short",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrWeakPassword)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		existing := entity.NewUser("dealer@example.com", "Dealer", "hashed:x")
		uc := NewRegisterUserUseCase(newFakeUserRepo(existing), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "dealer@example.com",
			Name:     "Dealer",
			Password: "a-strong-password",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
	})
}

func TestLoginUser(t *testing.T) {
	user := entity.NewUser("dealer@example.com", "Dealer", "hashed:a-strong-password")

	t.Run("valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "dealer@example.com",
			Password: "a-strong-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "dealer@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, err := tokens.GenerateTokenPair(context.Background(), uuid.New(), "dealer@example.com")
		require.NoError(t, err)

		uc := NewRefreshTokenUseCase(tokens)
		out, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		require.NoError(t, err)

		assert.NotEqual(t, pair.RefreshToken, out.RefreshToken)
		assert.True(t, tokens.revoked[pair.RefreshToken])

		// The rotated-out token must no longer refresh.
		_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())
		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "bogus"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})
}

func TestLogoutUser(t *testing.T) {
	tokens := newFakeTokenService()
	pair, err := tokens.GenerateTokenPair(context.Background(), uuid.New(), "dealer@example.com")
	require.NoError(t, err)

	uc := NewLogoutUserUseCase(tokens)

	out, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Message)
	assert.True(t, tokens.revoked[pair.RefreshToken])

	// Logging out twice is fine.
	_, err = uc.Execute(context.Background(), LogoutUserInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
}
