package services

import (
	"context"

	"github.com/creator-crm/backend/internal/apperr"
	"github.com/creator-crm/backend/internal/models"
	"github.com/creator-crm/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderService struct {
	reminderRepo *repositories.ReminderRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewReminderService(
	reminderRepo *repositories.ReminderRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *ReminderService) Create(ctx context.Context, userID uuid.UUID, m *models.Reminder) error {
	if m.Title == "" {
		return apperr.Validation("title is required")
	}
	if m.ExpirationDate.IsZero() {
		return apperr.Validation("expiration_date is required")
	}
	m.UserID = userID
	if m.Priority == "" {
		m.Priority = models.PriorityMedium
	}

	if err := s.reminderRepo.Create(ctx, m); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "reminder_created",
		EntityType:  "reminder",
		EntityID:    &m.ID,
	})
	return nil
}

func (s *ReminderService) List(ctx context.Context, f repositories.ReminderFilter) ([]models.Reminder, error) {
	return s.reminderRepo.List(ctx, f)
}

// getOwned loads a reminder and enforces the ownership boundary.
func (s *ReminderService) getOwned(ctx context.Context, id, userID uuid.UUID) (*models.Reminder, error) {
	m, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("reminder not found")
		}
		return nil, err
	}
	if m.UserID != userID {
		return nil, apperr.NotFound("reminder not found")
	}
	return m, nil
}

func (s *ReminderService) Update(ctx context.Context, userID, id uuid.UUID, p repositories.ReminderPatch) (*models.Reminder, error) {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	updated, err := s.reminderRepo.Update(ctx, id, p)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, apperr.NotFound("reminder not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *ReminderService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	deleted, err := s.reminderRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("reminder not found")
	}
	return nil
}
