// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/turhanbey/presetshop-backend/internal/config"
	"github.com/turhanbey/presetshop-backend/internal/models"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

// AuthService guards the admin surface. The PIN is compared against a
// bcrypt hash only; a successful login replaces the single persisted
// session row, so at most one token validates at a time.
type AuthService struct {
	db      *gorm.DB
	cfg     *config.Config
	pinHash []byte
}

type LoginRequest struct {
	PIN string `json:"pin" validate:"required"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresIn int       `json:"expires_in"` // in seconds
	LoginAt   time.Time `json:"login_at"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) (*AuthService, error) {
	hash := cfg.Admin.PINHash
	if hash == "" {
		// Development convenience: hash the configured plaintext once at
		// startup. The comparison path is the same either way.
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin PIN: %w", err)
		}
		hash = string(hashed)
	}

	return &AuthService{
		db:      db,
		cfg:     cfg,
		pinHash: []byte(hash),
	}, nil
}

// Login verifies the PIN and opens the admin session, invalidating any
// previously issued token.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(req.PIN)); err != nil {
		return nil, ErrInvalidPIN
	}

	now := time.Now()
	session := &models.AdminSession{
		ID:      models.SessionRowID,
		TokenID: uuid.NewString(),
		LoginAt: now,
	}

	if err := s.db.Save(session).Error; err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := utils.GenerateSessionToken(session.TokenID, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.cfg.JWT.TokenTTL * 3600,
		LoginAt:   now,
	}, nil
}

// IsActive reports whether an admin session currently exists.
func (s *AuthService) IsActive() (bool, error) {
	var session models.AdminSession
	if err := s.db.First(&session, models.SessionRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("database error: %w", err)
	}
	return true, nil
}

// Session returns the active session with its login instant.
func (s *AuthService) Session() (*models.AdminSession, error) {
	var session models.AdminSession
	if err := s.db.First(&session, models.SessionRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active session", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &session, nil
}

// Logout clears the session row and with it the recorded login instant.
// Logging out twice is a no-op.
func (s *AuthService) Logout() error {
	if err := s.db.Delete(&models.AdminSession{}, models.SessionRowID).Error; err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
