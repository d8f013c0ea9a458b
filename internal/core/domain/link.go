package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a tracked short link owned by a tenant. TenantID is fixed at
// creation; ClickCount only moves through the redirect pipeline.
type Link struct {
	ID            uuid.UUID `json:"id"`
	CampaignTitle string    `json:"campaignTitle"`
	OriginalURL   string    `json:"originalUrl"`
	Category      string    `json:"category"`
	Thumbnail     string    `json:"thumbnail"`
	TenantID      uuid.UUID `json:"tenantId"`
	ClickCount    int64     `json:"clickCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LinkFields carries the editable part of a link. A nil Thumbnail leaves the
// stored value untouched on update.
type LinkFields struct {
	CampaignTitle string
	OriginalURL   string
	Category      string
	Thumbnail     *string
}
