package usecase

import (
	"context"
	"fmt"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// GetAnalytics returns the clicks of a link owned by the actor's tenant,
// newest first. The time window is applied only when both bounds are given.
func (u *LinkUseCase) GetAnalytics(ctx context.Context, actor domain.Actor, req port.AnalyticsReq) ([]domain.Click, error) {
	tenantID, err := domain.ResolveOwner(actor)
	if err != nil {
		return nil, err
	}
	link, err := u.ownedLink(ctx, tenantID, req.LinkID)
	if err != nil {
		return nil, err
	}

	q := port.ClickQuery{LinkID: link.ID}
	if req.From != nil && req.To != nil {
		if req.From.After(*req.To) {
			return nil, fmt.Errorf("%w: from is after to", domain.ErrBadRequest)
		}
		q.From, q.To = req.From, req.To
	}
	clicks, err := u.repo.ListClicks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	if clicks == nil {
		clicks = []domain.Click{}
	}
	return clicks, nil
}
