package handlers

import (
	"github.com/creator-crm/backend/internal/http/dto"
	"github.com/creator-crm/backend/internal/middleware"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/creator-crm/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InfluencerHandler struct {
	influencerService *services.InfluencerService
	campaignService   *services.CampaignService
	log               *zap.Logger
}

func NewInfluencerHandler(influencerService *services.InfluencerService, campaignService *services.CampaignService, log *zap.Logger) *InfluencerHandler {
	return &InfluencerHandler{influencerService: influencerService, campaignService: campaignService, log: log}
}

func (h *InfluencerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	influencer := &models.Influencer{
		Handle:           req.Handle,
		ProfileLink:      req.ProfileLink,
		Followers:        req.Followers,
		Email:            req.Email,
		Rate:             req.Rate,
		Categories:       req.Categories,
		FollowersAge:     req.FollowersAge,
		FollowersSex:     req.FollowersSex,
		EngagementRate:   req.EngagementRate,
		Platform:         req.Platform,
		BrandsWorkedWith: req.BrandsWorkedWith,
	}

	if err := h.influencerService.Create(c.Context(), middleware.GetUserID(c), influencer); err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: influencer})
}

func (h *InfluencerHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	influencer, err := h.influencerService.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if influencer == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "influencer not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: influencer})
}

func (h *InfluencerHandler) List(c *fiber.Ctx) error {
	influencers, err := h.influencerService.ListAll(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: influencers})
}

func (h *InfluencerHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	var req dto.UpdateInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	patch := repositories.InfluencerPatch{
		Handle:           req.Handle,
		ProfileLink:      req.ProfileLink,
		Followers:        req.Followers,
		Email:            req.Email,
		Rate:             req.Rate,
		Categories:       req.Categories,
		FollowersAge:     req.FollowersAge,
		FollowersSex:     req.FollowersSex,
		EngagementRate:   req.EngagementRate,
		Platform:         req.Platform,
		BrandsWorkedWith: req.BrandsWorkedWith,
		Notes:            req.Notes,
		Files:            req.Files,
		Messages:         req.Messages,
	}

	updated, err := h.influencerService.Update(c.Context(), middleware.GetUserID(c), id, patch)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *InfluencerHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	if err := h.influencerService.Delete(c.Context(), middleware.GetUserID(c), id); err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

// GetCampaigns returns every campaign the influencer participates in, with
// association detail.
func (h *InfluencerHandler) GetCampaigns(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	campaigns, err := h.campaignService.GetInfluencerCampaigns(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}
