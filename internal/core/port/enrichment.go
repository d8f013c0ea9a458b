package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"snaplink/internal/core/domain"
)

// LinkCache keeps links hot for the public redirect path. Get returns
// nil, nil on a miss.
type LinkCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Link, error)
	Set(ctx context.Context, link *domain.Link) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// GeoLocator resolves a visitor IP to a location through the external geo
// service.
type GeoLocator interface {
	Locate(ctx context.Context, ip string) (*domain.GeoInfo, error)
}

// DeviceDetector classifies a User-Agent header. It never fails; unknown
// agents map to domain.DeviceUnknown.
type DeviceDetector interface {
	Detect(userAgent string) domain.DeviceInfo
}

// ClickPublisher hands a raw visit to the enrichment queue.
type ClickPublisher interface {
	PublishClick(ctx context.Context, event domain.ClickEvent) error
}

// UploadSigner issues signatures for direct asset uploads.
type UploadSigner interface {
	Sign(now time.Time) (*UploadSignature, error)
}
