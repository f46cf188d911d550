package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"yultimate/dto"
	"yultimate/errors"
	"yultimate/services/logger"
	"yultimate/testutil"
)

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(AuthServiceOptions{DB: db, Tokens: tokens, Logger: logger.NewNop()})
	user := testutil.CreateUser(t, db, "coach@yultimate.com", "password123", "coach")

	resp, err := svc.Login(ctx, dto.LoginInput{Email: " Coach@YUltimate.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "coach", resp.User.Role)

	id, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id.UserID)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "coach@yultimate.com", Password: "wrong"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidCredentials))

	_, err = svc.Login(ctx, dto.LoginInput{Email: "nobody@yultimate.com", Password: "password123"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidCredentials))

	me, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "coach@yultimate.com", me.Email)
}

func TestAuthGoogleLogin(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "admin@yultimate.com", "x", "admin")

	verify := func(_ context.Context, raw, aud string) (*idtoken.Payload, error) {
		if aud != "client-id" {
			return nil, fmt.Errorf("bad audience")
		}
		switch raw {
		case "good":
			return &idtoken.Payload{Claims: map[string]interface{}{"email": "admin@yultimate.com", "email_verified": true}}, nil
		case "unverified":
			return &idtoken.Payload{Claims: map[string]interface{}{"email": "admin@yultimate.com", "email_verified": false}}, nil
		case "no-claim":
			return &idtoken.Payload{Claims: map[string]interface{}{"email": "admin@yultimate.com"}}, nil
		}
		return nil, fmt.Errorf("bad token")
	}
	svc := NewAuthService(AuthServiceOptions{
		DB:             db,
		Tokens:         NewTokenService("secret", time.Hour),
		Logger:         logger.NewNop(),
		GoogleClientID: "client-id",
		VerifyGoogle:   verify,
	})

	resp, err := svc.GoogleLogin(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)

	_, err = svc.GoogleLogin(ctx, "bad")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))

	for _, raw := range []string{"unverified", "no-claim"} {
		resp, err := svc.GoogleLogin(ctx, raw)
		assert.Nil(t, resp, raw)
		assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized), raw)
	}

	disabled := NewAuthService(AuthServiceOptions{DB: db, Tokens: NewTokenService("s", time.Hour), Logger: logger.NewNop()})
	_, err = disabled.GoogleLogin(ctx, "good")
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}
