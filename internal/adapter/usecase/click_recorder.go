package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"snaplink/internal/core/domain"
)

// RecordClick enriches a queued visit with location and device data and
// stores it. A geo lookup that keeps failing does not lose the click: it is
// stored without location so the number of clicks matches the link's
// counter.
func (u *LinkUseCase) RecordClick(ctx context.Context, event domain.ClickEvent) error {
	geo, err := u.locate(ctx, event.IP)
	if err != nil {
		u.logger.Warn("geo lookup failed, recording click without location",
			slog.String("link_id", event.LinkID.String()),
			slog.String("ip", event.IP),
			slog.Any("error", err),
		)
		geo = &domain.GeoInfo{}
	}
	device := u.device.Detect(event.UserAgent)

	click := &domain.Click{
		ID:         uuid.New(),
		LinkID:     event.LinkID,
		IP:         event.IP,
		City:       geo.City,
		Country:    geo.Country,
		Region:     geo.Region,
		Latitude:   geo.Latitude,
		Longitude:  geo.Longitude,
		ISP:        geo.ISP,
		Referrer:   event.Referrer,
		UserAgent:  event.UserAgent,
		DeviceType: device.DeviceType,
		Browser:    device.Browser,
		ClickedAt:  event.ClickedAt,
	}
	if err = u.repo.CreateClick(ctx, click); err != nil {
		return fmt.Errorf("create click: %w", err)
	}
	u.logger.Debug("click recorded",
		slog.String("link_id", event.LinkID.String()),
		slog.String("country", click.Country),
		slog.String("device", click.DeviceType),
	)
	return nil
}

// locate calls the geo service with exponential backoff. Rejections are
// final.
func (u *LinkUseCase) locate(ctx context.Context, ip string) (*domain.GeoInfo, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = u.geoRetryBackoff
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, u.geoRetries), ctx)

	var info *domain.GeoInfo
	err := backoff.Retry(func() error {
		var err error
		info, err = u.geo.Locate(ctx, ip)
		if errors.Is(err, domain.ErrGeoRejected) {
			return backoff.Permanent(err)
		}
		return err
	}, retry)
	if err != nil {
		return nil, err
	}
	return info, nil
}
