package dto

import (
	"time"

	"github.com/creator-crm/backend/internal/models"
)

// Auth

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangeEmailRequest struct {
	NewEmail string `json:"new_email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Influencers

type CreateInfluencerRequest struct {
	Handle           string   `json:"handle"`
	ProfileLink      string   `json:"profile_link"`
	Followers        int64    `json:"followers"`
	Email            *string  `json:"email,omitempty"`
	Rate             float64  `json:"rate"`
	Categories       []string `json:"categories,omitempty"`
	FollowersAge     *string  `json:"followers_age,omitempty"`
	FollowersSex     *string  `json:"followers_sex,omitempty"`
	EngagementRate   float64  `json:"engagement_rate"`
	Platform         string   `json:"platform"`
	BrandsWorkedWith []string `json:"brands_worked_with,omitempty"`
}

// UpdateInfluencerRequest is a partial merge: absent fields stay untouched.
type UpdateInfluencerRequest struct {
	Handle           *string                 `json:"handle,omitempty"`
	ProfileLink      *string                 `json:"profile_link,omitempty"`
	Followers        *int64                  `json:"followers,omitempty"`
	Email            *string                 `json:"email,omitempty"`
	Rate             *float64                `json:"rate,omitempty"`
	Categories       []string                `json:"categories,omitempty"`
	FollowersAge     *string                 `json:"followers_age,omitempty"`
	FollowersSex     *string                 `json:"followers_sex,omitempty"`
	EngagementRate   *float64                `json:"engagement_rate,omitempty"`
	Platform         *string                 `json:"platform,omitempty"`
	BrandsWorkedWith []string                `json:"brands_worked_with,omitempty"`
	Notes            []models.InfluencerNote `json:"notes,omitempty"`
	Files            []models.FileMeta       `json:"files,omitempty"`
	Messages         []models.Message        `json:"messages,omitempty"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Budget      float64    `json:"budget"`
	Status      string     `json:"status,omitempty"`
	BriefURL    *string    `json:"brief_url,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type UpdateCampaignRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Status      *string    `json:"status,omitempty"`
	BriefURL    *string    `json:"brief_url,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// Associations

type AddCampaignInfluencerRequest struct {
	InfluencerID      string               `json:"influencer_id"`
	Status            string               `json:"status,omitempty"`
	Rate              *float64             `json:"rate,omitempty"`
	PerformanceRating *int                 `json:"performance_rating,omitempty"`
	Deliverables      []models.Deliverable `json:"deliverables,omitempty"`
	Performance       *models.Performance  `json:"performance,omitempty"`
	Notes             *string              `json:"notes,omitempty"`
}

type UpdateCampaignInfluencerRequest struct {
	Status            *string              `json:"status,omitempty"`
	Rate              *float64             `json:"rate,omitempty"`
	PerformanceRating *int                 `json:"performance_rating,omitempty"`
	Deliverables      []models.Deliverable `json:"deliverables,omitempty"`
	Performance       *models.Performance  `json:"performance,omitempty"`
	Notes             *string              `json:"notes,omitempty"`
}

// Reminders
//
// expiration_date is accepted as a string and parsed at the handler so a
// malformed timestamp maps to a validation error rather than a generic
// body-parse failure.

type CreateReminderRequest struct {
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	ExpirationDate string         `json:"expiration_date"`
	Type           string         `json:"type"`
	Priority       string         `json:"priority,omitempty"`
	InfluencerID   *string        `json:"influencer_id,omitempty"`
	CampaignID     *string        `json:"campaign_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type UpdateReminderRequest struct {
	Title          *string        `json:"title,omitempty"`
	Description    *string        `json:"description,omitempty"`
	ExpirationDate *string        `json:"expiration_date,omitempty"`
	Type           *string        `json:"type,omitempty"`
	Priority       *string        `json:"priority,omitempty"`
	InfluencerID   *string        `json:"influencer_id,omitempty"`
	CampaignID     *string        `json:"campaign_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}
