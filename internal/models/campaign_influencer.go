package models

import (
	"time"

	"github.com/google/uuid"
)

// Association statuses
const (
	AssociationStatusContacted = "contacted"
	AssociationStatusConfirmed = "confirmed"
	AssociationStatusPosted    = "posted"
	AssociationStatusPaid      = "paid"
)

// Expected progression: contacted -> confirmed -> posted -> paid.
// Advisory only; no layer rejects out-of-order updates.
var NextAssociationStatuses = map[string][]string{
	AssociationStatusContacted: {AssociationStatusConfirmed},
	AssociationStatusConfirmed: {AssociationStatusPosted},
	AssociationStatusPosted:    {AssociationStatusPaid},
	AssociationStatusPaid:      {},
}

func IsValidAssociationStatus(s string) bool {
	_, ok := NextAssociationStatuses[s]
	return ok
}

// Deliverable types
const (
	DeliverablePost  = "post"
	DeliverableStory = "story"
	DeliverableReel  = "reel"
	DeliverableVideo = "video"
	DeliverableBlog  = "blog"
	DeliverableOther = "other"
)

func IsValidDeliverableType(s string) bool {
	switch s {
	case DeliverablePost, DeliverableStory, DeliverableReel, DeliverableVideo, DeliverableBlog, DeliverableOther:
		return true
	}
	return false
}

type Deliverable struct {
	Type        string     `json:"type"` // post / story / reel / video / blog / other
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	URL         *string    `json:"url,omitempty"`
}

// Performance holds post-level metrics reported for an association.
type Performance struct {
	Impressions *int64 `json:"impressions,omitempty"`
	Engagement  *int64 `json:"engagement,omitempty"`
	Clicks      *int64 `json:"clicks,omitempty"`
	Conversions *int64 `json:"conversions,omitempty"`
	Reach       *int64 `json:"reach,omitempty"`
	Saves       *int64 `json:"saves,omitempty"`
	Shares      *int64 `json:"shares,omitempty"`
}

// CampaignInfluencer is the association row between a campaign and an
// influencer. At most one row exists per (campaign_id, influencer_id) pair,
// enforced by a unique index.
type CampaignInfluencer struct {
	ID                uuid.UUID     `json:"id"`
	CampaignID        uuid.UUID     `json:"campaign_id"`
	InfluencerID      uuid.UUID     `json:"influencer_id"`
	Status            string        `json:"status"`
	Rate              *float64      `json:"rate,omitempty"`
	PerformanceRating *int          `json:"performance_rating,omitempty"` // 1-5
	Deliverables      []Deliverable `json:"deliverables,omitempty"`
	Performance       *Performance  `json:"performance,omitempty"`
	Notes             *string       `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// InfluencerCampaign is the influencer-side traversal row: the campaign an
// influencer participates in plus the association detail.
type InfluencerCampaign struct {
	Campaign    Campaign           `json:"campaign"`
	Association CampaignInfluencer `json:"association"`
}
