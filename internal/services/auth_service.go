package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/taskhubapp/taskhub-backend/internal/config"
	"github.com/taskhubapp/taskhub-backend/internal/dto"
	"github.com/taskhubapp/taskhub-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("username, email and password are required")
	}

	if err := checkUnique(s.db, req.Username, req.Email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique indexes are the authority; a racing insert slips past
		// the read check above and lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, resolveDuplicate(s.db, req.Username, req.Email, 0)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.generateTokenPair(s.db, &user)
}

// Login matches the identifier against either username or email. Unknown
// identifier and wrong password produce the same error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("username = ? OR email = ?", req.Identifier, req.Identifier).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(s.db, &user)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		// Best effort; an expired token is rejected whether or not the flag lands.
		_ = s.db.Model(&stored).Update("revoked", true).Error
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := s.db.First(&user, stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	// Rotate: every refresh token is single-use. The revoke and the new token
	// commit together, so a failed revoke aborts the refresh instead of
	// leaving the spent token spendable.
	var resp *dto.AuthResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&stored).Update("revoked", true).Error; err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		var err error
		resp, err = s.generateTokenPair(tx, &user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// SeedAdmin creates the configured admin account if it does not exist yet.
func (s *AuthService) SeedAdmin() error {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	if err := s.db.Where("username = ?", s.cfg.AdminUsername).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:     s.cfg.AdminUsername,
		Email:        s.cfg.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (s *AuthService) generateTokenPair(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			IsAdmin:  user.IsAdmin,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(db *gorm.DB, user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

// checkUnique is the fast-path uniqueness check before an insert or rename.
// excludeID skips the user's own row so renaming to the current value is a
// no-op success.
func checkUnique(db *gorm.DB, username, email string, excludeID uint) error {
	if username != "" {
		var count int64
		if err := db.Model(&models.User{}).Where("username = ? AND id <> ?", username, excludeID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if count > 0 {
			return ErrUsernameTaken
		}
	}
	if email != "" {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ? AND id <> ?", email, excludeID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
	}
	return nil
}

// resolveDuplicate decides which Duplicate error to report after the store's
// unique index fired.
func resolveDuplicate(db *gorm.DB, username, email string, excludeID uint) error {
	if err := checkUnique(db, username, "", excludeID); err != nil {
		return err
	}
	if err := checkUnique(db, "", email, excludeID); err != nil {
		return err
	}
	return ErrUsernameTaken
}
