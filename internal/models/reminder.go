package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ReminderPriorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}

type Reminder struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	ExpirationDate time.Time      `json:"expiration_date"`
	Type           string         `json:"type"`
	Priority       string         `json:"priority"`
	InfluencerID   *uuid.UUID     `json:"influencer_id,omitempty"`
	CampaignID     *uuid.UUID     `json:"campaign_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	NotifiedAt     *time.Time     `json:"notified_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsActive reports whether the reminder has not yet expired at the given
// instant. Activity is derived, not stored.
func (r *Reminder) IsActive(now time.Time) bool {
	return r.ExpirationDate.After(now)
}
