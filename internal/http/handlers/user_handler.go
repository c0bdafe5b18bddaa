package handlers

import (
	"github.com/creator-crm/backend/internal/auth"
	"github.com/creator-crm/backend/internal/config"
	"github.com/creator-crm/backend/internal/http/dto"
	"github.com/creator-crm/backend/internal/middleware"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/creator-crm/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo    *repositories.UserRepo
	authService *services.AuthService
	cfg         *config.Config
	log         *zap.Logger
}

func NewUserHandler(userRepo *repositories.UserRepo, authService *services.AuthService, cfg *config.Config, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, authService: authService, cfg: cfg, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.userRepo.GetByID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		h.log.Error("failed to load user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) ChangeEmail(c *fiber.Ctx) error {
	var req dto.ChangeEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.authService.ChangeEmail(c.Context(), middleware.GetEmail(c), req.NewEmail, req.Password)
	if err != nil {
		return writeError(c, h.log, err)
	}

	// The old token carries the stale email claim; issue a fresh one.
	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to reissue token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	setAuthCookie(c, h.cfg, token)

	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.authService.ChangePassword(c.Context(), middleware.GetEmail(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}
