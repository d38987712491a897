package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

// AuthService authenticates admin users and issues JWTs.
type AuthService struct {
	adminRepo repository.AdminUserRepository
}

func NewAuthService(adminRepo repository.AdminUserRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo}
}

// Login verifies credentials and returns a signed token plus the user.
// Invalid email and invalid password are indistinguishable to the caller.
func (s *AuthService) Login(req models.LoginRequest) (string, *models.AdminUser, error) {
	user, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, utils.ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("Failed to look up admin user")
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, utils.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign token")
		return "", nil, err
	}
	return token, user, nil
}
