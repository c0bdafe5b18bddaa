package services

import (
	"context"

	"github.com/creator-crm/backend/internal/apperr"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InfluencerService struct {
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	log            *zap.Logger
}

func NewInfluencerService(
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *InfluencerService {
	return &InfluencerService{
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		log:            log,
	}
}

func (s *InfluencerService) Create(ctx context.Context, actorID uuid.UUID, i *models.Influencer) error {
	if i.Handle == "" {
		return apperr.Validation("handle is required")
	}
	if i.Followers < 0 {
		return apperr.Validation("followers must be non-negative")
	}

	if err := s.influencerRepo.Create(ctx, i); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "influencer_created",
		EntityType:  "influencer",
		EntityID:    &i.ID,
	})
	return nil
}

// GetByID returns nil without error when the influencer does not exist;
// absence is a normal result, the transport layer decides the status code.
func (s *InfluencerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	i, err := s.influencerRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return i, nil
}

func (s *InfluencerService) ListAll(ctx context.Context) ([]models.Influencer, error) {
	return s.influencerRepo.ListAll(ctx)
}

func (s *InfluencerService) Update(ctx context.Context, actorID, id uuid.UUID, p repositories.InfluencerPatch) (*models.Influencer, error) {
	if p.Followers != nil && *p.Followers < 0 {
		return nil, apperr.Validation("followers must be non-negative")
	}

	updated, err := s.influencerRepo.Update(ctx, id, p)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("influencer not found")
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "influencer_updated",
		EntityType:  "influencer",
		EntityID:    &id,
	})
	return updated, nil
}

// Delete removes the influencer; association rows cascade at the storage
// layer.
func (s *InfluencerService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	deleted, err := s.influencerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("influencer not found")
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "influencer_deleted",
		EntityType:  "influencer",
		EntityID:    &id,
	})
	return nil
}
