package db

import (
	"time"
)

// Campaign statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
)

// Campaign represents a campaign record.
type Campaign struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	BrandName      string     `json:"brand_name"`
	CompetitorName string     `json:"competitor_name"`
	Zipcode        string     `json:"zipcode,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	AudienceType   string     `json:"audience_type,omitempty"`
	OfferType      string     `json:"offer_type,omitempty"`
	Goal           string     `json:"goal,omitempty"`
	Status         string     `json:"status"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AdVariant represents one stored ad variant belonging to a campaign.
type AdVariant struct {
	ID           int64     `json:"id"`
	CampaignID   int64     `json:"campaign_id"`
	Headline     string    `json:"headline"`
	AdText       string    `json:"ad_text"`
	Hashtags     []string  `json:"hashtags"`
	CTA          string    `json:"cta"`
	QualityScore *float64  `json:"quality_score,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
