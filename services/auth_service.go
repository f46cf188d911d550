package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"yultimate/dto"
	"yultimate/errors"
	"yultimate/models"
	"yultimate/services/logger"
)

// GoogleVerifier validates a Google ID token and returns its payload.
type GoogleVerifier func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type AuthService struct {
	db             *gorm.DB
	tokens         *TokenService
	logger         logger.Logger
	googleClientID string
	verifyGoogle   GoogleVerifier
}

type AuthServiceOptions struct {
	DB             *gorm.DB
	Tokens         *TokenService
	Logger         logger.Logger
	GoogleClientID string
	VerifyGoogle   GoogleVerifier
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	verify := opts.VerifyGoogle
	if verify == nil {
		verify = idtoken.Validate
	}
	return &AuthService{
		db:             opts.DB,
		tokens:         opts.Tokens,
		logger:         opts.Logger,
		googleClientID: opts.GoogleClientID,
		verifyGoogle:   verify,
	}
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.findByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return s.issue(user)
}

// GoogleEnabled reports whether Google sign-in is configured.
func (s *AuthService) GoogleEnabled() bool {
	return s.googleClientID != ""
}

// GoogleLogin signs in the existing user owning the email of a verified Google ID token.
func (s *AuthService) GoogleLogin(ctx context.Context, rawToken string) (*dto.LoginResponse, error) {
	if !s.GoogleEnabled() {
		return nil, errors.NotFound("Google sign-in is not enabled")
	}
	payload, err := s.verifyGoogle(ctx, rawToken, s.googleClientID)
	if err != nil {
		s.logger.Warn("google token rejected: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid Google token", err)
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.ErrInvalidCredentials
	}
	if !emailVerified(payload.Claims["email_verified"]) {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Email has not been verified", nil)
	}
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// emailVerified accepts the claim as a bool or as the string "true".
func emailVerified(claim interface{}) bool {
	switch v := claim.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("User not found")
		}
		return nil, errors.Database("failed to load user", err)
	}
	resp := toUserResponse(&user)
	return &resp, nil
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := s.db.WithContext(ctx).Where("LOWER(email) = ?", email).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, errors.Database("failed to load user", err)
	}
	return &user, nil
}

func (s *AuthService) issue(user *models.User) (*dto.LoginResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, errors.Internal("failed to sign token", err)
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
