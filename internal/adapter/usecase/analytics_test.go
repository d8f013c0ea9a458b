package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

func TestGetAnalytics(t *testing.T) {
	adminID := uuid.New()
	link := &domain.Link{ID: uuid.New(), TenantID: adminID}
	from := fixedNow.Add(-48 * time.Hour)
	to := fixedNow

	clicks := []domain.Click{
		{ID: uuid.New(), LinkID: link.ID, ClickedAt: fixedNow.Add(-time.Hour)},
		{ID: uuid.New(), LinkID: link.ID, ClickedAt: fixedNow.Add(-2 * time.Hour)},
	}

	tests := []struct {
		name string
		req  port.AnalyticsReq
		want port.ClickQuery
	}{
		{
			name: "full range",
			req:  port.AnalyticsReq{LinkID: link.ID.String(), From: &from, To: &to},
			want: port.ClickQuery{LinkID: link.ID, From: &from, To: &to},
		},
		{
			name: "one-sided range is ignored",
			req:  port.AnalyticsReq{LinkID: link.ID.String(), From: &from},
			want: port.ClickQuery{LinkID: link.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, d := newTestUseCase(t)
			d.repo.EXPECT().GetLink(mock.Anything, link.ID).Return(link, nil)
			d.repo.EXPECT().ListClicks(mock.Anything, tt.want).Return(clicks, nil)

			got, err := uc.GetAnalytics(context.Background(), operatorActor(domain.RoleViewer, adminID), tt.req)
			require.NoError(t, err)
			assert.Equal(t, clicks, got)
		})
	}
}

func TestGetAnalyticsErrors(t *testing.T) {
	adminID := uuid.New()
	link := &domain.Link{ID: uuid.New(), TenantID: adminID}

	t.Run("missing link id", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		_, err := uc.GetAnalytics(context.Background(), adminActor(adminID), port.AnalyticsReq{})
		require.ErrorIs(t, err, domain.ErrMissingID)
	})

	t.Run("foreign link", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.repo.EXPECT().GetLink(mock.Anything, link.ID).Return(link, nil)

		_, err := uc.GetAnalytics(context.Background(), adminActor(uuid.New()), port.AnalyticsReq{LinkID: link.ID.String()})
		require.ErrorIs(t, err, domain.ErrForbidden)
		d.repo.AssertNotCalled(t, "ListClicks", mock.Anything, mock.Anything)
	})

	t.Run("inverted range", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.repo.EXPECT().GetLink(mock.Anything, link.ID).Return(link, nil)
		from, to := fixedNow, fixedNow.Add(-time.Hour)

		_, err := uc.GetAnalytics(context.Background(), adminActor(adminID), port.AnalyticsReq{
			LinkID: link.ID.String(), From: &from, To: &to,
		})
		require.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("no clicks", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		d.repo.EXPECT().GetLink(mock.Anything, link.ID).Return(link, nil)
		d.repo.EXPECT().ListClicks(mock.Anything, port.ClickQuery{LinkID: link.ID}).Return(nil, nil)

		got, err := uc.GetAnalytics(context.Background(), adminActor(adminID), port.AnalyticsReq{LinkID: link.ID.String()})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
