package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

func newTestAuthService(t *testing.T, active bool) *AuthService {
	t.Helper()
	utils.SetJWTSecret("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := repository.NewMemoryAdminUserRepository()
	require.NoError(t, repo.Create(&models.AdminUser{
		Email:        "ops@sankofamarket.com",
		PasswordHash: string(hash),
		Name:         "Ops",
		IsActive:     active,
	}))
	return NewAuthService(repo)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t, true)

	token, user, err := svc.Login(models.LoginRequest{Email: "ops@sankofamarket.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ops@sankofamarket.com", user.Email)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, true)

	_, _, err := svc.Login(models.LoginRequest{Email: "ops@sankofamarket.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t, true)

	_, _, err := svc.Login(models.LoginRequest{Email: "ghost@sankofamarket.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc := newTestAuthService(t, false)

	_, _, err := svc.Login(models.LoginRequest{Email: "ops@sankofamarket.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, utils.ErrAccountInactive)
}
