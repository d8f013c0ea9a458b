package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snaplink/internal/core/domain"
)

func clickEvent() domain.ClickEvent {
	referrer := "https://news.example"
	return domain.ClickEvent{
		LinkID:    uuid.New(),
		IP:        "8.8.8.8",
		UserAgent: "Mozilla/5.0",
		Referrer:  &referrer,
		ClickedAt: fixedNow,
	}
}

func TestRecordClickEnriches(t *testing.T) {
	uc, d := newTestUseCase(t)
	event := clickEvent()

	d.geo.EXPECT().Locate(mock.Anything, "8.8.8.8").Return(&domain.GeoInfo{
		City: "Mountain View", Country: "United States", Region: "CA",
		Latitude: 37.386, Longitude: -122.0838, ISP: "Google LLC",
	}, nil).Once()
	d.device.EXPECT().Detect("Mozilla/5.0").Return(domain.DeviceInfo{DeviceType: domain.DeviceDesktop, Browser: "Chrome"})
	d.repo.EXPECT().
		CreateClick(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(_ context.Context, c *domain.Click) {
			assert.NotEqual(t, uuid.Nil, c.ID)
			assert.Equal(t, event.LinkID, c.LinkID)
			assert.Equal(t, "Mountain View", c.City)
			assert.Equal(t, "Google LLC", c.ISP)
			assert.Equal(t, domain.DeviceDesktop, c.DeviceType)
			assert.Equal(t, "Chrome", c.Browser)
			assert.Equal(t, event.Referrer, c.Referrer)
			assert.Equal(t, fixedNow, c.ClickedAt)
		}).
		Return(nil).
		Once()

	require.NoError(t, uc.RecordClick(context.Background(), event))
}

func TestRecordClickRetriesGeo(t *testing.T) {
	uc, d := newTestUseCase(t, WithGeoRetry(2, time.Millisecond))
	event := clickEvent()

	d.geo.EXPECT().Locate(mock.Anything, event.IP).Return(nil, errors.New("timeout")).Times(2)
	d.geo.EXPECT().Locate(mock.Anything, event.IP).Return(&domain.GeoInfo{Country: "Germany"}, nil).Once()
	d.device.EXPECT().Detect(mock.Anything).Return(domain.DeviceInfo{DeviceType: domain.DeviceUnknown, Browser: "Unknown"})
	d.repo.EXPECT().
		CreateClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool { return c.Country == "Germany" })).
		Return(nil).
		Once()

	require.NoError(t, uc.RecordClick(context.Background(), event))
}

func TestRecordClickWithoutGeo(t *testing.T) {
	t.Run("retries exhausted", func(t *testing.T) {
		uc, d := newTestUseCase(t, WithGeoRetry(2, time.Millisecond))
		event := clickEvent()

		d.geo.EXPECT().Locate(mock.Anything, event.IP).Return(nil, errors.New("timeout")).Times(3)
		d.device.EXPECT().Detect(mock.Anything).Return(domain.DeviceInfo{DeviceType: domain.DeviceMobile, Browser: "Safari"})
		d.repo.EXPECT().
			CreateClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool {
				return c.Country == "" && c.City == "" && c.DeviceType == domain.DeviceMobile
			})).
			Return(nil).
			Once()

		require.NoError(t, uc.RecordClick(context.Background(), event))
	})

	t.Run("rejected lookup is not retried", func(t *testing.T) {
		uc, d := newTestUseCase(t, WithGeoRetry(5, time.Millisecond))
		event := clickEvent()
		event.IP = "10.0.0.1"

		d.geo.EXPECT().
			Locate(mock.Anything, "10.0.0.1").
			Return(nil, fmt.Errorf("%w: private range", domain.ErrGeoRejected)).
			Once()
		d.device.EXPECT().Detect(mock.Anything).Return(domain.DeviceInfo{DeviceType: domain.DeviceBot, Browser: "Googlebot"})
		d.repo.EXPECT().CreateClick(mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, uc.RecordClick(context.Background(), event))
	})
}

func TestRecordClickStorageFailure(t *testing.T) {
	uc, d := newTestUseCase(t)
	event := clickEvent()

	d.geo.EXPECT().Locate(mock.Anything, event.IP).Return(&domain.GeoInfo{}, nil)
	d.device.EXPECT().Detect(mock.Anything).Return(domain.DeviceInfo{})
	d.repo.EXPECT().CreateClick(mock.Anything, mock.Anything).Return(errors.New("conn reset"))

	require.Error(t, uc.RecordClick(context.Background(), event))
}
