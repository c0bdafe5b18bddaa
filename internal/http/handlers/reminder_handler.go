package handlers

import (
	"strconv"
	"time"

	"github.com/creator-crm/backend/internal/http/dto"
	"github.com/creator-crm/backend/internal/middleware"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/creator-crm/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderHandler struct {
	reminderService *services.ReminderService
	log             *zap.Logger
}

func NewReminderHandler(reminderService *services.ReminderService, log *zap.Logger) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, log: log}
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	expiration, err := time.Parse(time.RFC3339, req.ExpirationDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid expiration_date, expected RFC3339 timestamp"})
	}

	influencerID, err := parseOptionalUUID(req.InfluencerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}
	campaignID, err := parseOptionalUUID(req.CampaignID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	reminder := &models.Reminder{
		Title:          req.Title,
		Description:    req.Description,
		ExpirationDate: expiration,
		Type:           req.Type,
		Priority:       req.Priority,
		InfluencerID:   influencerID,
		CampaignID:     campaignID,
		Metadata:       req.Metadata,
	}

	if err := h.reminderService.Create(c.Context(), middleware.GetUserID(c), reminder); err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: reminder})
}

func (h *ReminderHandler) List(c *fiber.Ctx) error {
	filter := repositories.ReminderFilter{UserID: middleware.GetUserID(c)}

	if v := c.Query("active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Active = &b
		}
	}
	if v := c.Query("type"); v != "" {
		filter.Type = &v
	}
	if v := c.Query("priority"); v != "" {
		filter.Priority = &v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	reminders, err := h.reminderService.List(c.Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: reminders})
}

func (h *ReminderHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid reminder id"})
	}

	var req dto.UpdateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	patch := repositories.ReminderPatch{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		Metadata:    req.Metadata,
	}

	if req.ExpirationDate != nil {
		expiration, err := time.Parse(time.RFC3339, *req.ExpirationDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid expiration_date, expected RFC3339 timestamp"})
		}
		patch.ExpirationDate = &expiration
	}

	patch.InfluencerID, err = parseOptionalUUID(req.InfluencerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}
	patch.CampaignID, err = parseOptionalUUID(req.CampaignID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	updated, err := h.reminderService.Update(c.Context(), middleware.GetUserID(c), id, patch)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid reminder id"})
	}

	if err := h.reminderService.Delete(c.Context(), middleware.GetUserID(c), id); err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
