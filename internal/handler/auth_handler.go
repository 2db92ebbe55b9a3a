package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/middleware"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/onegt/chrms-backend/internal/response"
	"github.com/onegt/chrms-backend/internal/service"
	"github.com/onegt/chrms-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	cfg              *config.Config
	authService      *service.AuthService
	associateService *service.AssociateService
	verifier         service.CredentialVerifier
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	cfg *config.Config,
	authService *service.AuthService,
	associateService *service.AssociateService,
	verifier service.CredentialVerifier,
) *AuthHandler {
	return &AuthHandler{
		cfg:              cfg,
		authService:      authService,
		associateService: associateService,
		verifier:         verifier,
	}
}

// GetConfig godoc
// GET /api/v1/auth/config
// Returns the public sign-in configuration.
func (h *AuthHandler) GetConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, model.AuthConfigResponse{
		GoogleClientID: h.cfg.GoogleClientID,
	})
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password and returns a JWT with the identity payload.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	associate, err := h.associateService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Same response for unknown email and bad password.
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if associate.PasswordHash == "" {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(associate.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	h.issueToken(c, associate)
}

// GoogleLogin godoc
// POST /api/v1/auth/google
// Exchanges a Google ID token credential for a session JWT. Only emails that
// already exist in the directory may sign in.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req model.GoogleLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.verifier.Verify(c.Request.Context(), req.Credential)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrGoogleAuthFailed)
		return
	}

	associate, err := h.associateService.GetByEmail(c.Request.Context(), profile.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if associate.Picture == "" {
		associate.Picture = profile.Picture
	}

	h.issueToken(c, associate)
}

// Me godoc
// GET /api/v1/auth/me
// Returns the current identity, read fresh from the directory rather than
// echoed from token claims, so role changes land without a re-login.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	associate, err := h.associateService.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if !associate.IsActive {
		response.Fail(c, http.StatusUnauthorized, response.ErrAccountInactive)
		return
	}

	response.Success(c, http.StatusOK, associate.Identity())
}

// Logout godoc
// POST /api/v1/auth/logout
// Revokes the current session. The token dies even before its expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.RevokeSession(c.Request.Context(), claims.ID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *AuthHandler) issueToken(c *gin.Context, associate *model.Associate) {
	if !associate.IsActive {
		response.Fail(c, http.StatusUnauthorized, response.ErrAccountInactive)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), associate)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{
		AccessToken: token,
		User:        associate.Identity(),
	})
}
