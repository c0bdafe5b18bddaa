package services

import (
	"context"

	"github.com/creator-crm/backend/internal/apperr"
	"github.com/creator-crm/backend/internal/events"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo    *repositories.CampaignRepo
	associationRepo *repositories.CampaignInfluencerRepo
	influencerRepo  *repositories.InfluencerRepo
	auditRepo       *repositories.AuditRepo
	publisher       events.Publisher
	log             *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	associationRepo *repositories.CampaignInfluencerRepo,
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo:    campaignRepo,
		associationRepo: associationRepo,
		influencerRepo:  influencerRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		log:             log,
	}
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	if c.Name == "" {
		return apperr.Validation("name is required")
	}
	c.UserID = userID
	if c.Status == "" {
		c.Status = models.CampaignStatusDraft
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return apperr.Validation("invalid campaign status")
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})
	return nil
}

// GetByID returns the campaign with its read-time aggregates. Campaigns are
// owner-scoped: a mismatched userID yields NotFound, never another user's
// data.
func (s *CampaignService) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("campaign not found")
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, apperr.NotFound("campaign not found")
	}
	return c, nil
}

func (s *CampaignService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	return s.campaignRepo.ListByUser(ctx, userID)
}

func (s *CampaignService) Update(ctx context.Context, id, userID uuid.UUID, p repositories.CampaignPatch) (*models.Campaign, error) {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return nil, err
	}
	if p.Status != nil && !models.IsValidCampaignStatus(*p.Status) {
		return nil, apperr.Validation("invalid campaign status")
	}

	updated, err := s.campaignRepo.Update(ctx, id, p)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("campaign not found")
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_updated",
		EntityType:  "campaign",
		EntityID:    &id,
	})
	return updated, nil
}

// Delete removes the campaign and, via cascade, every association row it
// owns.
func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	deleted, err := s.campaignRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("campaign not found")
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_deleted",
		EntityType:  "campaign",
		EntityID:    &id,
	})
	return nil
}

// AddInfluencer creates the association row. Status defaults to contacted.
// A second add for the same pair fails with Conflict, serialized by the
// unique index rather than application locking.
func (s *CampaignService) AddInfluencer(ctx context.Context, userID uuid.UUID, a *models.CampaignInfluencer) error {
	if _, err := s.GetByID(ctx, a.CampaignID, userID); err != nil {
		return err
	}
	if _, err := s.influencerRepo.GetByID(ctx, a.InfluencerID); err != nil {
		if repositories.IsNoRows(err) {
			return apperr.NotFound("influencer not found")
		}
		return err
	}

	if a.Status == "" {
		a.Status = models.AssociationStatusContacted
	}
	if !models.IsValidAssociationStatus(a.Status) {
		return apperr.Validation("invalid association status")
	}
	if a.PerformanceRating != nil && (*a.PerformanceRating < 1 || *a.PerformanceRating > 5) {
		return apperr.Validation("performance rating must be between 1 and 5")
	}
	for _, d := range a.Deliverables {
		if !models.IsValidDeliverableType(d.Type) {
			return apperr.Validation("invalid deliverable type")
		}
	}

	if err := s.associationRepo.Create(ctx, a); err != nil {
		if repositories.IsUniqueViolation(err) {
			return apperr.Conflict("influencer already added to campaign")
		}
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_influencer_added",
		EntityType:  "campaign_influencer",
		EntityID:    &a.ID,
	})
	return nil
}

func (s *CampaignService) ListInfluencers(ctx context.Context, campaignID, userID uuid.UUID) ([]models.CampaignInfluencer, error) {
	if _, err := s.GetByID(ctx, campaignID, userID); err != nil {
		return nil, err
	}
	return s.associationRepo.ListByCampaign(ctx, campaignID)
}

func (s *CampaignService) UpdateAssociation(ctx context.Context, userID, associationID uuid.UUID, p repositories.AssociationPatch) (*models.CampaignInfluencer, error) {
	existing, err := s.associationRepo.GetByID(ctx, associationID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("association not found")
		}
		return nil, err
	}
	if _, err := s.GetByID(ctx, existing.CampaignID, userID); err != nil {
		return nil, err
	}

	if p.Status != nil && !models.IsValidAssociationStatus(*p.Status) {
		return nil, apperr.Validation("invalid association status")
	}
	if p.PerformanceRating != nil && (*p.PerformanceRating < 1 || *p.PerformanceRating > 5) {
		return nil, apperr.Validation("performance rating must be between 1 and 5")
	}
	for _, d := range p.Deliverables {
		if !models.IsValidDeliverableType(d.Type) {
			return nil, apperr.Validation("invalid deliverable type")
		}
	}

	updated, err := s.associationRepo.Update(ctx, associationID, p)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("association not found")
		}
		return nil, err
	}

	if p.Status != nil && *p.Status != existing.Status {
		_ = s.publisher.Publish(ctx, events.StreamCRM, events.Event{
			Type: events.EventAssociationStatusChanged,
			Payload: map[string]any{
				"user_id":       userID.String(),
				"campaign_id":   existing.CampaignID.String(),
				"influencer_id": existing.InfluencerID.String(),
				"old_status":    existing.Status,
				"new_status":    *p.Status,
			},
		})
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_influencer_updated",
		EntityType:  "campaign_influencer",
		EntityID:    &associationID,
	})
	return updated, nil
}

func (s *CampaignService) RemoveInfluencer(ctx context.Context, userID, campaignID, influencerID uuid.UUID) error {
	if _, err := s.GetByID(ctx, campaignID, userID); err != nil {
		return err
	}

	deleted, err := s.associationRepo.DeleteByPair(ctx, campaignID, influencerID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("association not found")
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_influencer_removed",
		EntityType:  "campaign",
		EntityID:    &campaignID,
	})
	return nil
}

// GetInfluencerCampaigns is the influencer-centric traversal; it crosses the
// campaign owner boundary by design.
func (s *CampaignService) GetInfluencerCampaigns(ctx context.Context, influencerID uuid.UUID) ([]models.InfluencerCampaign, error) {
	if _, err := s.influencerRepo.GetByID(ctx, influencerID); err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("influencer not found")
		}
		return nil, err
	}
	return s.associationRepo.ListForInfluencer(ctx, influencerID)
}
