package handlers

import (
	"github.com/creator-crm/backend/internal/config"
	"github.com/creator-crm/backend/internal/http/dto"
	"github.com/creator-crm/backend/internal/middleware"
	"github.com/creator-crm/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, log: log}
}

// setAuthCookie installs the session cookie: HTTP-only, strict same-site,
// secure outside development, scoped to the whole app.
func setAuthCookie(c *fiber.Ctx, cfg *config.Config, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.JWTExpiration.Seconds()),
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func clearAuthCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, token, err := h.authService.Register(c.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return writeError(c, h.log, err)
	}

	setAuthCookie(c, h.cfg, token)
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, h.log, err)
	}

	setAuthCookie(c, h.cfg, token)
	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

// Logout clears the session cookie. Tokens are stateless, so this is
// idempotent and holds no server-side state.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearAuthCookie(c, h.cfg)
	return c.JSON(dto.SuccessResponse{OK: true})
}
