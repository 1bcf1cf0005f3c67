package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/christopherjparrett/TheUniverse/internal/api/dto"
	"github.com/christopherjparrett/TheUniverse/internal/auth"
	"github.com/christopherjparrett/TheUniverse/internal/service"
	apperrors "github.com/christopherjparrett/TheUniverse/pkg/util"
)

// AuthHandler exposes login and whoami endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	_, token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("Incorrect username or password")
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusOK).JSON(dto.NewTokenResponse(token))
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}
	return c.JSON(dto.NewUserResponse(user))
}
