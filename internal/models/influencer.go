package models

import (
	"time"

	"github.com/google/uuid"
)

// InfluencerNote is an entry in the influencer's note history, stored as JSONB.
type InfluencerNote struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// FileMeta describes an attachment. Only metadata is stored; file content
// lives in external storage.
type FileMeta struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size,omitempty"`
	URL         string    `json:"url,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Message directions
const (
	MessageInbound  = "inbound"
	MessageOutbound = "outbound"
)

type Message struct {
	ID        uuid.UUID `json:"id"`
	Direction string    `json:"direction"` // inbound / outbound
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
}

type Influencer struct {
	ID               uuid.UUID        `json:"id"`
	Handle           string           `json:"handle"`
	ProfileLink      string           `json:"profile_link"`
	Followers        int64            `json:"followers"`
	Email            *string          `json:"email,omitempty"`
	Rate             float64          `json:"rate"`
	Categories       []string         `json:"categories"`
	FollowersAge     *string          `json:"followers_age,omitempty"`
	FollowersSex     *string          `json:"followers_sex,omitempty"`
	EngagementRate   float64          `json:"engagement_rate"`
	Platform         string           `json:"platform"`
	BrandsWorkedWith []string         `json:"brands_worked_with,omitempty"`
	Notes            []InfluencerNote `json:"notes"`
	Files            []FileMeta       `json:"files"`
	Messages         []Message        `json:"messages"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Platforms recognized by the worker's follower refresh. Others are stored
// verbatim but never scraped.
const (
	PlatformTelegram  = "telegram"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitch    = "twitch"
	PlatformOther     = "other"
)

func Platforms() []string {
	return []string{
		PlatformTelegram, PlatformInstagram, PlatformTikTok,
		PlatformYouTube, PlatformTwitch, PlatformOther,
	}
}
