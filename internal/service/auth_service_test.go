package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
	return NewAuthService(cfg, rdb), mr
}

func testAssociate() *model.Associate {
	return &model.Associate{
		ID:          uuid.New(),
		Email:       "hr@example.com",
		Name:        "HR Person",
		Role:        model.RoleHR,
		Designation: "HR Executive",
		IsActive:    true,
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	s, _ := newTestAuthService(t)

	hash, err := s.HashPassword("secret123")
	require.NoError(t, err)

	assert.NoError(t, s.CheckPassword(hash, "secret123"))
	assert.ErrorIs(t, s.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

func TestGenerateTokenCarriesIdentity(t *testing.T) {
	s, _ := newTestAuthService(t)
	a := testAssociate()

	token, err := s.GenerateToken(context.Background(), a)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, a.ID.String(), claims.AssociateID)
	assert.Equal(t, a.Email, claims.Email)
	assert.Equal(t, model.RoleHR, claims.Role)
	assert.Equal(t, "HR Executive", claims.Designation)
	assert.NotEmpty(t, claims.ID, "token carries a JTI")

	identity := claims.Identity()
	assert.Equal(t, a.Email, identity.Email)
	assert.Equal(t, a.Role, identity.Role)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	s, _ := newTestAuthService(t)
	a := testAssociate()

	token, err := s.GenerateToken(context.Background(), a)
	require.NoError(t, err)

	_, err = s.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = s.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	s, _ := newTestAuthService(t)
	a := testAssociate()
	ctx := context.Background()

	token, err := s.GenerateToken(ctx, a)
	require.NoError(t, err)
	claims, err := s.ValidateToken(token)
	require.NoError(t, err)

	assert.NoError(t, s.ValidateSession(ctx, claims.ID))

	require.NoError(t, s.RevokeSession(ctx, claims.ID))
	assert.ErrorIs(t, s.ValidateSession(ctx, claims.ID), ErrSessionInvalid)
}

func TestSessionExpiresWithToken(t *testing.T) {
	s, mr := newTestAuthService(t)
	a := testAssociate()
	ctx := context.Background()

	token, err := s.GenerateToken(ctx, a)
	require.NoError(t, err)
	claims, err := s.ValidateToken(token)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	assert.ErrorIs(t, s.ValidateSession(ctx, claims.ID), ErrSessionInvalid)
}
