package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"yultimate/errors"
	"yultimate/models"
	"yultimate/types"
)

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Generate(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the signature and expiry of raw and returns the caller identity.
func (s *TokenService) Parse(raw string) (*types.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, errors.ErrInvalidToken.Message, err)
	}
	if claims.UserID == 0 || claims.Role == "" {
		return nil, errors.ErrInvalidToken
	}

	return &types.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
