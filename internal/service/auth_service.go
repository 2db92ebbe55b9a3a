package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrSessionInvalid     = errors.New("session invalidated")
)

// Claims extends JWT standard claims with the identity fields the access
// evaluator needs. The JTI doubles as the Redis session key, so revoking the
// session kills the token before its expiry.
type Claims struct {
	jwt.RegisteredClaims
	AssociateID string     `json:"associate_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        model.Role `json:"role"`
	Designation string     `json:"designation,omitempty"`
	Picture     string     `json:"picture,omitempty"`
}

// Identity projects the claims into the canonical identity payload.
func (c *Claims) Identity() model.Identity {
	return model.Identity{
		AssociateID: c.AssociateID,
		Email:       c.Email,
		Name:        c.Name,
		Role:        c.Role,
		Designation: c.Designation,
		Picture:     c.Picture,
	}
}

// AuthService handles authentication, JWT, and session management.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a JWT for an associate and registers the session in
// Redis with the same expiry as the token.
func (s *AuthService) GenerateToken(ctx context.Context, a *model.Associate) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   a.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		AssociateID: a.ID.String(),
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Designation: a.Designation,
		Picture:     a.Picture,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	sessionKey := config.CacheKey.SessionKey(jti)
	if err := s.rdb.Set(ctx, sessionKey, a.ID.String(), s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ValidateSession checks that the token's JTI still has a session record in
// Redis. A missing record means the session was revoked.
func (s *AuthService) ValidateSession(ctx context.Context, jti string) error {
	sessionKey := config.CacheKey.SessionKey(jti)
	_, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionInvalid
		}
		return fmt.Errorf("check session: %w", err)
	}
	return nil
}

// RevokeSession removes a session from Redis, invalidating its token.
func (s *AuthService) RevokeSession(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, config.CacheKey.SessionKey(jti)).Err()
}
