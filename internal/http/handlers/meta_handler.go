package handlers

import (
	"github.com/creator-crm/backend/internal/http/dto"
	"github.com/creator-crm/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves the enumerations UI dropdowns are built from.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) GetMeta(c *fiber.Ctx) error {
	return c.JSON(dto.MetaResponse{
		Platforms: models.Platforms(),
		CampaignStatuses: []string{
			models.CampaignStatusDraft, models.CampaignStatusActive,
			models.CampaignStatusCompleted, models.CampaignStatusCancelled,
		},
		AssociationStatuses: models.NextAssociationStatuses,
		DeliverableTypes: []string{
			models.DeliverablePost, models.DeliverableStory, models.DeliverableReel,
			models.DeliverableVideo, models.DeliverableBlog, models.DeliverableOther,
		},
		ReminderPriorities: models.ReminderPriorities(),
	})
}
