// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artisanhub/marketplace-backend/internal/config"
	"github.com/artisanhub/marketplace-backend/internal/domain"
	"github.com/artisanhub/marketplace-backend/internal/models"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type SignupRequest struct {
	Name     string             `json:"name" validate:"required,min=1,max=100"`
	Email    string             `json:"email" validate:"required,email"`
	Password string             `json:"password" validate:"required,min=6"`
	Kind     models.AccountKind `json:"kind" validate:"required,account_kind"`
	ShopName string             `json:"shop_name" validate:"required_if=Kind seller"`
	TaxID    string             `json:"tax_id" validate:"required_if=Kind seller"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Account   *models.Account `json:"account"`
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Signup(req *SignupRequest) (*models.Account, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Pre-check keeps the common case friendly; the unique index on
	// email is what actually guarantees no duplicate survives a race.
	var existing models.Account
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: account with this email already exists", domain.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	account := &models.Account{
		Name:  req.Name,
		Email: email,
		Kind:  req.Kind,
	}

	if req.Kind == models.AccountKindSeller {
		account.ShopName = req.ShopName
		account.TaxID = req.TaxID
	}

	if err := account.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(account).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: account with this email already exists", domain.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}

	var account models.Account
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := account.CheckPassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(account.ID, string(account.Kind), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		Account:   &account,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

func (s *AuthService) GetAccount(accountID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &account, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Postgres unique_violation is 23505; gorm surfaces it in the message
	// when the translator is not enabled.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
